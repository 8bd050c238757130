package property

import (
	"context"

	"github.com/propertyhub/backend/internal/domain/owner"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// PropertyService handles property-related business operations
type PropertyService struct {
	propertyRepo property.PropertyRepository
	typeRepo     property.PropertyTypeRepository
	ownerRepo    owner.OwnerRepository
	logger       *zap.Logger
	metrics      *telemetry.DomainMetrics
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(
	propertyRepo property.PropertyRepository,
	typeRepo property.PropertyTypeRepository,
	ownerRepo owner.OwnerRepository,
	logger *zap.Logger,
) *PropertyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PropertyService{
		propertyRepo: propertyRepo,
		typeRepo:     typeRepo,
		ownerRepo:    ownerRepo,
		logger:       logger,
	}
}

// SetMetrics sets the domain metrics recorder (optional)
func (s *PropertyService) SetMetrics(m *telemetry.DomainMetrics) {
	s.metrics = m
}

// List returns all properties with owner and type
func (s *PropertyService) List(ctx context.Context) ([]PropertyResponse, error) {
	properties, err := s.propertyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToPropertyResponses(properties), nil
}

// GetByID retrieves a property with owner and type
func (s *PropertyService) GetByID(ctx context.Context, id int) (*PropertyResponse, error) {
	p, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToPropertyResponse(p)
	return &resp, nil
}

// Create creates a new property after verifying its owner and type
func (s *PropertyService) Create(ctx context.Context, req CreatePropertyRequest) (*PropertyResponse, error) {
	if err := s.verifyReferences(ctx, &req.OwnerID, &req.PropertyTypeID); err != nil {
		return nil, err
	}

	p, err := property.NewProperty(req.OwnerID, req.PropertyTypeID, req.PropertyLength, req.PropertyCost, req.DateOfBuilding)
	if err != nil {
		return nil, err
	}
	if err := p.SetAddress(req.Country, req.City, req.Street, req.ZipCode); err != nil {
		return nil, err
	}
	p.Description = req.Description

	if err := s.propertyRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("Property created",
		zap.Int("property_id", p.ID),
		zap.Int("owner_id", p.OwnerID),
	)
	s.metrics.RecordCreated(ctx, telemetry.EntityProperty)
	return s.GetByID(ctx, p.ID)
}

// Update applies a merge-patch to a property.
// A missing owner or type is reported before anything is changed.
func (s *PropertyService) Update(ctx context.Context, id int, req UpdatePropertyRequest) (*PropertyResponse, error) {
	p, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.verifyReferences(ctx, req.OwnerID, req.PropertyTypeID); err != nil {
		return nil, err
	}

	if req.OwnerID != nil {
		p.OwnerID = *req.OwnerID
	}
	if req.PropertyTypeID != nil {
		p.PropertyTypeID = *req.PropertyTypeID
	}
	if req.PropertyLength != nil {
		p.PropertyLength = *req.PropertyLength
	}
	if req.PropertyCost != nil {
		p.PropertyCost = *req.PropertyCost
	}
	if req.DateOfBuilding != nil {
		p.SetDateOfBuilding(*req.DateOfBuilding)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Country != nil && *req.Country != "" {
		p.Country = *req.Country
	}
	if req.City != nil && *req.City != "" {
		p.City = *req.City
	}
	if req.Street != nil {
		p.Street = *req.Street
	}
	if req.ZipCode != nil {
		p.ZipCode = *req.ZipCode
	}

	if err := s.propertyRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete deletes a property
func (s *PropertyService) Delete(ctx context.Context, id int) error {
	deleted, err := s.propertyRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return shared.NewNotFoundError("Property", id)
	}

	s.logger.Info("Property deleted", zap.Int("property_id", id))
	s.metrics.RecordDeleted(ctx, telemetry.EntityProperty)
	return nil
}

// verifyReferences checks the owner and type ids that are set
func (s *PropertyService) verifyReferences(ctx context.Context, ownerID, typeID *int) error {
	if ownerID != nil {
		exists, err := s.ownerRepo.Exists(ctx, *ownerID)
		if err != nil {
			return err
		}
		if !exists {
			return shared.NewReferenceNotFoundError("ownerId", *ownerID)
		}
	}
	if typeID != nil {
		exists, err := s.typeRepo.Exists(ctx, *typeID)
		if err != nil {
			return err
		}
		if !exists {
			return shared.NewReferenceNotFoundError("propertyTypeId", *typeID)
		}
	}
	return nil
}
