package owner

import (
	"context"

	"github.com/propertyhub/backend/internal/domain/owner"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// CompanyService handles company-related business operations
type CompanyService struct {
	txScope     TransactionScope
	companyRepo owner.CompanyRepository
	logger      *zap.Logger
	metrics     *telemetry.DomainMetrics
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(txScope TransactionScope, companyRepo owner.CompanyRepository, logger *zap.Logger) *CompanyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompanyService{
		txScope:     txScope,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// SetMetrics sets the domain metrics recorder (optional)
func (s *CompanyService) SetMetrics(m *telemetry.DomainMetrics) {
	s.metrics = m
}

// List returns all companies with their owners
func (s *CompanyService) List(ctx context.Context) ([]CompanyResponse, error) {
	companies, err := s.companyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToCompanyResponses(companies), nil
}

// GetByID retrieves a company with its owner
func (s *CompanyService) GetByID(ctx context.Context, id int) (*CompanyResponse, error) {
	c, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCompanyResponse(c)
	return &resp, nil
}

// Create creates a company and flags its owner as company contact.
// Both writes commit together or not at all.
func (s *CompanyService) Create(ctx context.Context, req CreateCompanyRequest) (*CompanyResponse, error) {
	company, err := owner.NewCompany(req.OwnerID, req.CompanyName, req.CompanySite)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.OwnerRepo().Exists(ctx, req.OwnerID)
		if err != nil {
			return err
		}
		if !exists {
			return shared.NewReferenceNotFoundError("ownerId", req.OwnerID)
		}

		if err := repos.CompanyRepo().Create(ctx, company); err != nil {
			return err
		}

		o, err := repos.OwnerRepo().FindByID(ctx, req.OwnerID)
		if err != nil {
			return err
		}
		o.MarkCompanyContact()
		return repos.OwnerRepo().Update(ctx, o)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Company created",
		zap.Int("company_id", company.ID),
		zap.Int("owner_id", company.OwnerID),
	)
	s.metrics.RecordCreated(ctx, telemetry.EntityCompany)
	s.metrics.RecordCompanyContact(ctx)

	// Reload so the response carries the owner as committed
	return s.GetByID(ctx, company.ID)
}

// Update applies a merge-patch to a company
func (s *CompanyService) Update(ctx context.Context, id int, req UpdateCompanyRequest) (*CompanyResponse, error) {
	c, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyNonEmpty(&c.CompanyName, req.CompanyName)
	applyPresent(&c.CompanySite, req.CompanySite)

	if err := s.companyRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete deletes a company
func (s *CompanyService) Delete(ctx context.Context, id int) error {
	deleted, err := s.companyRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return shared.NewNotFoundError("Company", id)
	}

	s.logger.Info("Company deleted", zap.Int("company_id", id))
	s.metrics.RecordDeleted(ctx, telemetry.EntityCompany)
	return nil
}
