package property

import (
	"strings"
	"time"

	"github.com/propertyhub/backend/internal/domain/owner"
	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Property is a real-estate asset held by an owner.
type Property struct {
	ID             int
	OwnerID        int
	PropertyTypeID int
	PropertyLength decimal.Decimal
	PropertyCost   decimal.Decimal
	DateOfBuilding time.Time
	Description    string
	Country        string
	City           string
	Street         string
	ZipCode        string

	// Relations populated by repository reads
	Owner        *owner.Owner
	PropertyType *PropertyType
}

// NewProperty creates a property. The building date is stored in UTC.
func NewProperty(ownerID, propertyTypeID int, length, cost decimal.Decimal, builtAt time.Time) (*Property, error) {
	if ownerID <= 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Owner ID must be positive")
	}
	if propertyTypeID <= 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Property type ID must be positive")
	}

	return &Property{
		OwnerID:        ownerID,
		PropertyTypeID: propertyTypeID,
		PropertyLength: length,
		PropertyCost:   cost,
		DateOfBuilding: builtAt.UTC(),
	}, nil
}

// SetAddress sets the postal address. Country and city are mandatory.
func (p *Property) SetAddress(country, city, street, zipCode string) error {
	if strings.TrimSpace(country) == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "Country cannot be empty")
	}
	if strings.TrimSpace(city) == "" {
		return shared.NewDomainError(shared.CodeInvalidInput, "City cannot be empty")
	}
	p.Country = country
	p.City = city
	p.Street = street
	p.ZipCode = zipCode
	return nil
}

// SetDateOfBuilding stores the building date in UTC
func (p *Property) SetDateOfBuilding(t time.Time) {
	p.DateOfBuilding = t.UTC()
}
