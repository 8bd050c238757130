package persistence

import (
	"context"

	appowner "github.com/propertyhub/backend/internal/application/owner"
	"github.com/propertyhub/backend/internal/domain/owner"
	"gorm.io/gorm"
)

// GormTransactionScope implements the owner TransactionScope using GORM transactions.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn within a database transaction.
// If fn returns an error, the transaction is rolled back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appowner.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) OwnerRepo() owner.OwnerRepository {
	return NewGormOwnerRepository(r.tx)
}

func (r *gormTransactionalRepositories) CompanyRepo() owner.CompanyRepository {
	return NewGormCompanyRepository(r.tx)
}

var (
	_ appowner.TransactionScope          = (*GormTransactionScope)(nil)
	_ appowner.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
)
