package property

import (
	"context"

	"github.com/propertyhub/backend/internal/domain/shared"
)

// PropertyRepository defines the interface for property persistence.
// Reads return the property with Owner and PropertyType loaded.
type PropertyRepository interface {
	shared.OwnedRepository[Property]
}

// PropertyTypeRepository provides read-only access to the lookup table
type PropertyTypeRepository interface {
	// FindAll returns all property types ordered by id
	FindAll(ctx context.Context) ([]PropertyType, error)

	// Exists reports whether a property type with the id exists
	Exists(ctx context.Context, id int) (bool, error)
}
