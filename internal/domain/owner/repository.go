package owner

import (
	"github.com/propertyhub/backend/internal/domain/shared"
)

// OwnerRepository defines the interface for owner persistence
type OwnerRepository interface {
	shared.Repository[Owner]
}

// CompanyRepository defines the interface for company persistence.
// Reads return the company with its Owner loaded.
type CompanyRepository interface {
	shared.OwnedRepository[Company]
}
