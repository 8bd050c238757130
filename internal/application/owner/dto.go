package owner

import (
	"github.com/propertyhub/backend/internal/domain/owner"
)

// =============================================================================
// Owner DTOs
// =============================================================================

// CreateOwnerRequest represents a request to create a new owner
type CreateOwnerRequest struct {
	FirstName   string `json:"firstName" binding:"required,max=100" example:"Jane"`
	LastName    string `json:"lastName" binding:"required,max=100" example:"Doe"`
	Email       string `json:"email" binding:"required,email,max=200" example:"jane.doe@example.com"`
	Phone       string `json:"phone" binding:"required,max=20,phone" example:"+47 22 00 00 00"`
	Address     string `json:"address" binding:"max=500"`
	Description string `json:"description" binding:"max=1000"`
}

// UpdateOwnerRequest is a merge-patch. A nil field is left unchanged.
// Empty firstName, lastName, email and phone are also ignored, while address
// and description may be cleared with an empty string.
type UpdateOwnerRequest struct {
	FirstName   *string `json:"firstName" binding:"omitempty,max=100"`
	LastName    *string `json:"lastName" binding:"omitempty,max=100"`
	Email       *string `json:"email" binding:"omitempty,max=200,email_or_empty"`
	Phone       *string `json:"phone" binding:"omitempty,max=20,phone"`
	Address     *string `json:"address" binding:"omitempty,max=500"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// OwnerResponse represents an owner in API responses
type OwnerResponse struct {
	ID               int    `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	Description      string `json:"description"`
	IsCompanyContact bool   `json:"isCompanyContact"`
}

// ToOwnerResponse converts a domain Owner to OwnerResponse
func ToOwnerResponse(o *owner.Owner) OwnerResponse {
	return OwnerResponse{
		ID:               o.ID,
		FirstName:        o.FirstName,
		LastName:         o.LastName,
		Email:            o.Email,
		Phone:            o.Phone,
		Address:          o.Address,
		Description:      o.Description,
		IsCompanyContact: o.IsCompanyContact,
	}
}

// ToOwnerResponses converts a slice of domain Owners to responses
func ToOwnerResponses(owners []owner.Owner) []OwnerResponse {
	responses := make([]OwnerResponse, len(owners))
	for i := range owners {
		responses[i] = ToOwnerResponse(&owners[i])
	}
	return responses
}

// =============================================================================
// Company DTOs
// =============================================================================

// CreateCompanyRequest represents a request to create a new company
type CreateCompanyRequest struct {
	OwnerID     int    `json:"ownerId" binding:"required,gt=0" example:"1"`
	CompanyName string `json:"companyName" binding:"required,max=200" example:"Doe Holdings"`
	CompanySite string `json:"companySite" binding:"omitempty,max=500,httpurl" example:"https://doe.example.com"`
}

// UpdateCompanyRequest is a merge-patch. An empty companyName is ignored;
// companySite may be cleared with an empty string.
type UpdateCompanyRequest struct {
	CompanyName *string `json:"companyName" binding:"omitempty,max=200"`
	CompanySite *string `json:"companySite" binding:"omitempty,max=500,httpurl"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	ID          int            `json:"id"`
	OwnerID     int            `json:"ownerId"`
	CompanyName string         `json:"companyName"`
	CompanySite string         `json:"companySite"`
	Owner       *OwnerResponse `json:"owner,omitempty"`
}

// ToCompanyResponse converts a domain Company to CompanyResponse
func ToCompanyResponse(c *owner.Company) CompanyResponse {
	resp := CompanyResponse{
		ID:          c.ID,
		OwnerID:     c.OwnerID,
		CompanyName: c.CompanyName,
		CompanySite: c.CompanySite,
	}
	if c.Owner != nil {
		o := ToOwnerResponse(c.Owner)
		resp.Owner = &o
	}
	return resp
}

// ToCompanyResponses converts a slice of domain Companies to responses
func ToCompanyResponses(companies []owner.Company) []CompanyResponse {
	responses := make([]CompanyResponse, len(companies))
	for i := range companies {
		responses[i] = ToCompanyResponse(&companies[i])
	}
	return responses
}
