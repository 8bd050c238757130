package owner

import (
	"strings"

	"github.com/propertyhub/backend/internal/domain/shared"
)

// Owner is a person or entity holding companies and properties.
type Owner struct {
	ID               int
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Address          string
	Description      string
	IsCompanyContact bool
}

// NewOwner creates an owner. IsCompanyContact always starts false; it is
// only ever set as a side effect of company creation.
func NewOwner(firstName, lastName, email, phone, address, description string) (*Owner, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "First name cannot be empty")
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Last name cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Email cannot be empty")
	}

	return &Owner{
		FirstName:        firstName,
		LastName:         lastName,
		Email:            email,
		Phone:            phone,
		Address:          address,
		Description:      description,
		IsCompanyContact: false,
	}, nil
}

// FullName returns "First Last"
func (o *Owner) FullName() string {
	return strings.TrimSpace(o.FirstName + " " + o.LastName)
}

// MarkCompanyContact flags the owner as the contact of a company.
// Deleting the company does not reverse this.
func (o *Owner) MarkCompanyContact() {
	o.IsCompanyContact = true
}
