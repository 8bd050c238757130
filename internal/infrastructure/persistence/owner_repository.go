package persistence

import (
	"context"
	"errors"

	"github.com/propertyhub/backend/internal/domain/owner"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// ownerColumns are the columns written by Update
var ownerColumns = []string{
	"FirstName", "LastName", "Email", "Phone", "Address", "Description", "IsCompanyContact",
}

// GormOwnerRepository implements OwnerRepository using GORM
type GormOwnerRepository struct {
	db *gorm.DB
}

// NewGormOwnerRepository creates a new GormOwnerRepository
func NewGormOwnerRepository(db *gorm.DB) *GormOwnerRepository {
	return &GormOwnerRepository{db: db}
}

// FindAll returns all owners ordered by id
func (r *GormOwnerRepository) FindAll(ctx context.Context) ([]owner.Owner, error) {
	var ms []models.OwnerModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	owners := make([]owner.Owner, len(ms))
	for i := range ms {
		owners[i] = *ms[i].ToDomain()
	}
	return owners, nil
}

// FindByID finds an owner by ID
func (r *GormOwnerRepository) FindByID(ctx context.Context, id int) (*owner.Owner, error) {
	var m models.OwnerModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Owner", id)
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// Create inserts a new owner and assigns its ID
func (r *GormOwnerRepository) Create(ctx context.Context, o *owner.Owner) error {
	m := models.OwnerModelFromDomain(o)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	o.ID = m.ID
	return nil
}

// Update writes all owner columns
func (r *GormOwnerRepository) Update(ctx context.Context, o *owner.Owner) error {
	m := models.OwnerModelFromDomain(o)
	result := r.db.WithContext(ctx).Model(m).Select(ownerColumns).Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Owner", o.ID)
	}
	return nil
}

// Delete deletes an owner by ID. A foreign key violation means a company or
// property was attached concurrently and is reported as HAS_DEPENDENTS.
func (r *GormOwnerRepository) Delete(ctx context.Context, id int) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.OwnerModel{}, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return false, shared.NewHasDependentsError("Owner", id)
		}
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists checks if an owner exists by ID
func (r *GormOwnerRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.OwnerModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormOwnerRepository implements OwnerRepository
var _ owner.OwnerRepository = (*GormOwnerRepository)(nil)
