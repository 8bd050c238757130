package owner

import (
	"context"
	"errors"

	"github.com/propertyhub/backend/internal/domain/owner"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// OwnerService handles owner-related business operations
type OwnerService struct {
	ownerRepo    owner.OwnerRepository
	companyRepo  owner.CompanyRepository
	propertyRepo property.PropertyRepository
	logger       *zap.Logger
	metrics      *telemetry.DomainMetrics
}

// NewOwnerService creates a new OwnerService
func NewOwnerService(
	ownerRepo owner.OwnerRepository,
	companyRepo owner.CompanyRepository,
	propertyRepo property.PropertyRepository,
	logger *zap.Logger,
) *OwnerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OwnerService{
		ownerRepo:    ownerRepo,
		companyRepo:  companyRepo,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// SetMetrics sets the domain metrics recorder (optional)
func (s *OwnerService) SetMetrics(m *telemetry.DomainMetrics) {
	s.metrics = m
}

// List returns all owners
func (s *OwnerService) List(ctx context.Context) ([]OwnerResponse, error) {
	owners, err := s.ownerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToOwnerResponses(owners), nil
}

// GetByID retrieves an owner by ID
func (s *OwnerService) GetByID(ctx context.Context, id int) (*OwnerResponse, error) {
	o, err := s.ownerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToOwnerResponse(o)
	return &resp, nil
}

// Create creates a new owner. The company contact flag always starts false.
func (s *OwnerService) Create(ctx context.Context, req CreateOwnerRequest) (*OwnerResponse, error) {
	o, err := owner.NewOwner(req.FirstName, req.LastName, req.Email, req.Phone, req.Address, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.ownerRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("Owner created", zap.Int("owner_id", o.ID))
	s.metrics.RecordCreated(ctx, telemetry.EntityOwner)
	resp := ToOwnerResponse(o)
	return &resp, nil
}

// Update applies a merge-patch to an owner
func (s *OwnerService) Update(ctx context.Context, id int, req UpdateOwnerRequest) (*OwnerResponse, error) {
	o, err := s.ownerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyNonEmpty(&o.FirstName, req.FirstName)
	applyNonEmpty(&o.LastName, req.LastName)
	applyNonEmpty(&o.Email, req.Email)
	applyNonEmpty(&o.Phone, req.Phone)
	applyPresent(&o.Address, req.Address)
	applyPresent(&o.Description, req.Description)

	if err := s.ownerRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	resp := ToOwnerResponse(o)
	return &resp, nil
}

// Delete deletes an owner that has no companies and no properties
func (s *OwnerService) Delete(ctx context.Context, id int) error {
	exists, err := s.ownerRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewNotFoundError("Owner", id)
	}

	companies, err := s.companyRepo.FindByOwnerID(ctx, id)
	if err != nil {
		return err
	}
	properties, err := s.propertyRepo.FindByOwnerID(ctx, id)
	if err != nil {
		return err
	}

	var dependents []string
	if len(companies) > 0 {
		dependents = append(dependents, "companies")
	}
	if len(properties) > 0 {
		dependents = append(dependents, "properties")
	}
	if len(dependents) > 0 {
		s.logger.Warn("Owner delete refused",
			zap.Int("owner_id", id),
			zap.Int("companies", len(companies)),
			zap.Int("properties", len(properties)),
		)
		s.metrics.RecordDeleteRefused(ctx, telemetry.EntityOwner)
		return shared.NewHasDependentsError("Owner", id, dependents...)
	}

	deleted, err := s.ownerRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrHasDependents) {
			s.metrics.RecordDeleteRefused(ctx, telemetry.EntityOwner)
		}
		return err
	}
	if !deleted {
		return shared.NewNotFoundError("Owner", id)
	}

	s.logger.Info("Owner deleted", zap.Int("owner_id", id))
	s.metrics.RecordDeleted(ctx, telemetry.EntityOwner)
	return nil
}

// applyNonEmpty overwrites dst when v is present and not empty
func applyNonEmpty(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

// applyPresent overwrites dst whenever v is present, including ""
func applyPresent(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
