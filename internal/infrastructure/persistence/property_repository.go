package persistence

import (
	"context"
	"errors"

	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/propertyhub/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var propertyColumns = []string{
	"OwnerID", "PropertyTypeID", "PropertyLength", "PropertyCost", "DateOfBuilding",
	"Description", "Country", "City", "Street", "ZipCode",
}

// GormPropertyRepository implements PropertyRepository using GORM
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewGormPropertyRepository creates a new GormPropertyRepository
func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

func (r *GormPropertyRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Owner").Preload("PropertyType")
}

// FindAll returns all properties with owner and type
func (r *GormPropertyRepository) FindAll(ctx context.Context) ([]property.Property, error) {
	var ms []models.PropertyModel
	if err := r.withRelations(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return toProperties(ms), nil
}

// FindByID finds a property by ID with owner and type
func (r *GormPropertyRepository) FindByID(ctx context.Context, id int) (*property.Property, error) {
	var m models.PropertyModel
	if err := r.withRelations(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Property", id)
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// FindByOwnerID returns all properties referencing the owner
func (r *GormPropertyRepository) FindByOwnerID(ctx context.Context, ownerID int) ([]property.Property, error) {
	var ms []models.PropertyModel
	if err := r.withRelations(ctx).Where("owner_id = ?", ownerID).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return toProperties(ms), nil
}

// Create inserts a new property and assigns its ID
func (r *GormPropertyRepository) Create(ctx context.Context, p *property.Property) error {
	m := models.PropertyModelFromDomain(p)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	return nil
}

// Update writes all property columns
func (r *GormPropertyRepository) Update(ctx context.Context, p *property.Property) error {
	m := models.PropertyModelFromDomain(p)
	result := r.db.WithContext(ctx).Model(m).Omit(clause.Associations).Select(propertyColumns).Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Property", p.ID)
	}
	return nil
}

// Delete deletes a property by ID and reports whether it existed
func (r *GormPropertyRepository) Delete(ctx context.Context, id int) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.PropertyModel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists checks if a property exists by ID
func (r *GormPropertyRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PropertyModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func toProperties(ms []models.PropertyModel) []property.Property {
	properties := make([]property.Property, len(ms))
	for i := range ms {
		properties[i] = *ms[i].ToDomain()
	}
	return properties
}

// GormPropertyTypeRepository implements PropertyTypeRepository using GORM
type GormPropertyTypeRepository struct {
	db *gorm.DB
}

// NewGormPropertyTypeRepository creates a new GormPropertyTypeRepository
func NewGormPropertyTypeRepository(db *gorm.DB) *GormPropertyTypeRepository {
	return &GormPropertyTypeRepository{db: db}
}

// FindAll returns all property types ordered by id
func (r *GormPropertyTypeRepository) FindAll(ctx context.Context) ([]property.PropertyType, error) {
	var ms []models.PropertyTypeModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	types := make([]property.PropertyType, len(ms))
	for i := range ms {
		types[i] = *ms[i].ToDomain()
	}
	return types, nil
}

// Exists checks if a property type exists by ID
func (r *GormPropertyTypeRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PropertyTypeModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var (
	_ property.PropertyRepository     = (*GormPropertyRepository)(nil)
	_ property.PropertyTypeRepository = (*GormPropertyTypeRepository)(nil)
)
