package persistence

import (
	"context"
	"errors"

	"github.com/propertyhub/backend/internal/domain/owner"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var companyColumns = []string{"OwnerID", "CompanyName", "CompanySite"}

// GormCompanyRepository implements CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

func (r *GormCompanyRepository) withOwner(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Owner")
}

// FindAll returns all companies with their owners
func (r *GormCompanyRepository) FindAll(ctx context.Context) ([]owner.Company, error) {
	var ms []models.CompanyModel
	if err := r.withOwner(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return toCompanies(ms), nil
}

// FindByID finds a company by ID with its owner
func (r *GormCompanyRepository) FindByID(ctx context.Context, id int) (*owner.Company, error) {
	var m models.CompanyModel
	if err := r.withOwner(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Company", id)
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// FindByOwnerID returns all companies referencing the owner
func (r *GormCompanyRepository) FindByOwnerID(ctx context.Context, ownerID int) ([]owner.Company, error) {
	var ms []models.CompanyModel
	if err := r.withOwner(ctx).Where("owner_id = ?", ownerID).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return toCompanies(ms), nil
}

// Create inserts a new company and assigns its ID
func (r *GormCompanyRepository) Create(ctx context.Context, c *owner.Company) error {
	m := models.CompanyModelFromDomain(c)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return shared.NewReferenceNotFoundError("ownerId", c.OwnerID)
		}
		return err
	}
	c.ID = m.ID
	return nil
}

// Update writes all company columns
func (r *GormCompanyRepository) Update(ctx context.Context, c *owner.Company) error {
	m := models.CompanyModelFromDomain(c)
	result := r.db.WithContext(ctx).Model(m).Omit(clause.Associations).Select(companyColumns).Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Company", c.ID)
	}
	return nil
}

// Delete deletes a company by ID and reports whether it existed
func (r *GormCompanyRepository) Delete(ctx context.Context, id int) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.CompanyModel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists checks if a company exists by ID
func (r *GormCompanyRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CompanyModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func toCompanies(ms []models.CompanyModel) []owner.Company {
	companies := make([]owner.Company, len(ms))
	for i := range ms {
		companies[i] = *ms[i].ToDomain()
	}
	return companies
}

// Ensure GormCompanyRepository implements CompanyRepository
var _ owner.CompanyRepository = (*GormCompanyRepository)(nil)
