package owner

import (
	"context"

	"github.com/propertyhub/backend/internal/domain/owner"
)

// TransactionScope provides transactional access to owner and company repositories.
type TransactionScope interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes repositories bound to one transaction.
type TransactionalRepositories interface {
	// OwnerRepo returns the owner repository scoped to the current transaction
	OwnerRepo() owner.OwnerRepository
	// CompanyRepo returns the company repository scoped to the current transaction
	CompanyRepo() owner.CompanyRepository
}

// NoOpTransactionScope runs fn directly against the given repositories.
// It is meant for unit tests.
type NoOpTransactionScope struct {
	ownerRepo   owner.OwnerRepository
	companyRepo owner.CompanyRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(ownerRepo owner.OwnerRepository, companyRepo owner.CompanyRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		ownerRepo:   ownerRepo,
		companyRepo: companyRepo,
	}
}

// Execute runs fn without a transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// OwnerRepo returns the owner repository
func (s *NoOpTransactionScope) OwnerRepo() owner.OwnerRepository {
	return s.ownerRepo
}

// CompanyRepo returns the company repository
func (s *NoOpTransactionScope) CompanyRepo() owner.CompanyRepository {
	return s.companyRepo
}

var (
	_ TransactionScope          = (*NoOpTransactionScope)(nil)
	_ TransactionalRepositories = (*NoOpTransactionScope)(nil)
)
