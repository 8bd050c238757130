package models

import (
	"time"

	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/shopspring/decimal"
)

// PropertyTypeModel is the persistence model for the PropertyType lookup.
type PropertyTypeModel struct {
	ID   int    `gorm:"primaryKey"`
	Type string `gorm:"type:varchar(50);not null"`
}

// TableName returns the table name for GORM
func (PropertyTypeModel) TableName() string {
	return "property_types"
}

// ToDomain converts the persistence model to a domain PropertyType.
func (m *PropertyTypeModel) ToDomain() *property.PropertyType {
	return &property.PropertyType{
		ID:   m.ID,
		Type: m.Type,
	}
}

// PropertyModel is the persistence model for the Property domain entity.
type PropertyModel struct {
	BaseModel
	OwnerID        int                `gorm:"not null;index"`
	PropertyTypeID int                `gorm:"not null;index"`
	PropertyLength decimal.Decimal    `gorm:"type:numeric(18,2);not null"`
	PropertyCost   decimal.Decimal    `gorm:"type:numeric(18,2);not null"`
	DateOfBuilding time.Time          `gorm:"not null"`
	Description    string             `gorm:"type:varchar(1000);not null;default:''"`
	Country        string             `gorm:"type:varchar(100);not null"`
	City           string             `gorm:"type:varchar(100);not null"`
	Street         string             `gorm:"type:varchar(200);not null;default:''"`
	ZipCode        string             `gorm:"type:varchar(20);not null;default:''"`
	Owner          *OwnerModel        `gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`
	PropertyType   *PropertyTypeModel `gorm:"foreignKey:PropertyTypeID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for GORM
func (PropertyModel) TableName() string {
	return "properties"
}

// ToDomain converts the persistence model to a domain Property entity.
func (m *PropertyModel) ToDomain() *property.Property {
	p := &property.Property{
		ID:             m.ID,
		OwnerID:        m.OwnerID,
		PropertyTypeID: m.PropertyTypeID,
		PropertyLength: m.PropertyLength,
		PropertyCost:   m.PropertyCost,
		DateOfBuilding: m.DateOfBuilding.UTC(),
		Description:    m.Description,
		Country:        m.Country,
		City:           m.City,
		Street:         m.Street,
		ZipCode:        m.ZipCode,
	}
	if m.Owner != nil {
		p.Owner = m.Owner.ToDomain()
	}
	if m.PropertyType != nil {
		p.PropertyType = m.PropertyType.ToDomain()
	}
	return p
}

// FromDomain populates the persistence model from a domain Property entity.
// Relations are never written through the property.
func (m *PropertyModel) FromDomain(p *property.Property) {
	m.ID = p.ID
	m.OwnerID = p.OwnerID
	m.PropertyTypeID = p.PropertyTypeID
	m.PropertyLength = p.PropertyLength
	m.PropertyCost = p.PropertyCost
	m.DateOfBuilding = p.DateOfBuilding.UTC()
	m.Description = p.Description
	m.Country = p.Country
	m.City = p.City
	m.Street = p.Street
	m.ZipCode = p.ZipCode
}

// PropertyModelFromDomain creates a new persistence model from a domain Property entity.
func PropertyModelFromDomain(p *property.Property) *PropertyModel {
	m := &PropertyModel{}
	m.FromDomain(p)
	return m
}
