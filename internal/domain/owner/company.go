package owner

import (
	"strings"

	"github.com/propertyhub/backend/internal/domain/shared"
)

// Company is a business entity associated with exactly one owner.
type Company struct {
	ID          int
	OwnerID     int
	CompanyName string
	CompanySite string

	// Owner is populated by repository reads
	Owner *Owner
}

// NewCompany creates a company for the given owner
func NewCompany(ownerID int, name, site string) (*Company, error) {
	if ownerID <= 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Owner ID must be positive")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Company name cannot be empty")
	}

	return &Company{
		OwnerID:     ownerID,
		CompanyName: name,
		CompanySite: site,
	}, nil
}
