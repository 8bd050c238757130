package models

import (
	"github.com/propertyhub/backend/internal/domain/owner"
)

// OwnerModel is the persistence model for the Owner domain entity.
type OwnerModel struct {
	BaseModel
	FirstName        string `gorm:"type:varchar(100);not null"`
	LastName         string `gorm:"type:varchar(100);not null"`
	Email            string `gorm:"type:varchar(200);not null"`
	Phone            string `gorm:"type:varchar(20);not null"`
	Address          string `gorm:"type:varchar(500);not null;default:''"`
	Description      string `gorm:"type:varchar(1000);not null;default:''"`
	IsCompanyContact bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (OwnerModel) TableName() string {
	return "owners"
}

// ToDomain converts the persistence model to a domain Owner entity.
func (m *OwnerModel) ToDomain() *owner.Owner {
	return &owner.Owner{
		ID:               m.ID,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Email:            m.Email,
		Phone:            m.Phone,
		Address:          m.Address,
		Description:      m.Description,
		IsCompanyContact: m.IsCompanyContact,
	}
}

// FromDomain populates the persistence model from a domain Owner entity.
func (m *OwnerModel) FromDomain(o *owner.Owner) {
	m.ID = o.ID
	m.FirstName = o.FirstName
	m.LastName = o.LastName
	m.Email = o.Email
	m.Phone = o.Phone
	m.Address = o.Address
	m.Description = o.Description
	m.IsCompanyContact = o.IsCompanyContact
}

// OwnerModelFromDomain creates a new persistence model from a domain Owner entity.
func OwnerModelFromDomain(o *owner.Owner) *OwnerModel {
	m := &OwnerModel{}
	m.FromDomain(o)
	return m
}

// CompanyModel is the persistence model for the Company domain entity.
type CompanyModel struct {
	BaseModel
	OwnerID     int         `gorm:"not null;index"`
	CompanyName string      `gorm:"type:varchar(200);not null"`
	CompanySite string      `gorm:"type:varchar(500);not null;default:''"`
	Owner       *OwnerModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company entity.
func (m *CompanyModel) ToDomain() *owner.Company {
	c := &owner.Company{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		CompanyName: m.CompanyName,
		CompanySite: m.CompanySite,
	}
	if m.Owner != nil {
		c.Owner = m.Owner.ToDomain()
	}
	return c
}

// FromDomain populates the persistence model from a domain Company entity.
// The Owner relation is never written through the company.
func (m *CompanyModel) FromDomain(c *owner.Company) {
	m.ID = c.ID
	m.OwnerID = c.OwnerID
	m.CompanyName = c.CompanyName
	m.CompanySite = c.CompanySite
}

// CompanyModelFromDomain creates a new persistence model from a domain Company entity.
func CompanyModelFromDomain(c *owner.Company) *CompanyModel {
	m := &CompanyModel{}
	m.FromDomain(c)
	return m
}
