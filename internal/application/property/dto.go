package property

import (
	"time"

	appowner "github.com/propertyhub/backend/internal/application/owner"
	"github.com/propertyhub/backend/internal/domain/property"
	"github.com/shopspring/decimal"
)

// CreatePropertyRequest represents a request to create a new property
type CreatePropertyRequest struct {
	OwnerID        int             `json:"ownerId" binding:"required,gt=0" example:"1"`
	PropertyTypeID int             `json:"propertyTypeId" binding:"required,gt=0" example:"1"`
	PropertyLength decimal.Decimal `json:"propertyLength" binding:"required,gt=0" swaggertype:"number" example:"120.5"`
	PropertyCost   decimal.Decimal `json:"propertyCost" binding:"required,gt=0" swaggertype:"number" example:"350000"`
	DateOfBuilding time.Time       `json:"dateOfBuilding" binding:"required,notfuture" example:"2001-06-15T00:00:00Z"`
	Description    string          `json:"description" binding:"max=1000"`
	Country        string          `json:"country" binding:"required,max=100" example:"Norway"`
	City           string          `json:"city" binding:"required,max=100" example:"Oslo"`
	Street         string          `json:"street" binding:"max=200"`
	ZipCode        string          `json:"zipCode" binding:"max=20"`
}

// UpdatePropertyRequest is a merge-patch.
// Numeric and date fields apply whenever present, zero included.
// Empty country and city are ignored; description, street and zipCode
// may be cleared with an empty string.
type UpdatePropertyRequest struct {
	OwnerID        *int             `json:"ownerId" binding:"omitempty,gt=0"`
	PropertyTypeID *int             `json:"propertyTypeId" binding:"omitempty,gt=0"`
	PropertyLength *decimal.Decimal `json:"propertyLength" binding:"omitempty,gt=0" swaggertype:"number"`
	PropertyCost   *decimal.Decimal `json:"propertyCost" binding:"omitempty,gt=0" swaggertype:"number"`
	DateOfBuilding *time.Time       `json:"dateOfBuilding" binding:"omitempty,notfuture"`
	Description    *string          `json:"description" binding:"omitempty,max=1000"`
	Country        *string          `json:"country" binding:"omitempty,max=100"`
	City           *string          `json:"city" binding:"omitempty,max=100"`
	Street         *string          `json:"street" binding:"omitempty,max=200"`
	ZipCode        *string          `json:"zipCode" binding:"omitempty,max=20"`
}

// PropertyTypeResponse represents a property type in API responses
type PropertyTypeResponse struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// PropertyResponse represents a property in API responses
type PropertyResponse struct {
	ID             int                     `json:"id"`
	OwnerID        int                     `json:"ownerId"`
	PropertyTypeID int                     `json:"propertyTypeId"`
	PropertyLength decimal.Decimal         `json:"propertyLength" swaggertype:"number"`
	PropertyCost   decimal.Decimal         `json:"propertyCost" swaggertype:"number"`
	DateOfBuilding time.Time               `json:"dateOfBuilding"`
	Description    string                  `json:"description"`
	Country        string                  `json:"country"`
	City           string                  `json:"city"`
	Street         string                  `json:"street"`
	ZipCode        string                  `json:"zipCode"`
	Owner          *appowner.OwnerResponse `json:"owner,omitempty"`
	PropertyType   *PropertyTypeResponse   `json:"propertyType,omitempty"`
}

// ToPropertyTypeResponse converts a domain PropertyType to its response
func ToPropertyTypeResponse(t *property.PropertyType) PropertyTypeResponse {
	return PropertyTypeResponse{ID: t.ID, Type: t.Type}
}

// ToPropertyResponse converts a domain Property to PropertyResponse
func ToPropertyResponse(p *property.Property) PropertyResponse {
	resp := PropertyResponse{
		ID:             p.ID,
		OwnerID:        p.OwnerID,
		PropertyTypeID: p.PropertyTypeID,
		PropertyLength: p.PropertyLength,
		PropertyCost:   p.PropertyCost,
		DateOfBuilding: p.DateOfBuilding.UTC(),
		Description:    p.Description,
		Country:        p.Country,
		City:           p.City,
		Street:         p.Street,
		ZipCode:        p.ZipCode,
	}
	if p.Owner != nil {
		o := appowner.ToOwnerResponse(p.Owner)
		resp.Owner = &o
	}
	if p.PropertyType != nil {
		t := ToPropertyTypeResponse(p.PropertyType)
		resp.PropertyType = &t
	}
	return resp
}

// ToPropertyResponses converts a slice of domain Properties to responses
func ToPropertyResponses(properties []property.Property) []PropertyResponse {
	responses := make([]PropertyResponse, len(properties))
	for i := range properties {
		responses[i] = ToPropertyResponse(&properties[i])
	}
	return responses
}
