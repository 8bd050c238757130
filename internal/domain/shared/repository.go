package shared

import (
	"context"
)

// Repository is the storage gateway contract shared by all entities.
// Reads return the entity with its direct relations loaded.
type Repository[T any] interface {
	// FindAll returns every record ordered by id
	FindAll(ctx context.Context) ([]T, error)

	// FindByID returns ErrNotFound when the record does not exist
	FindByID(ctx context.Context, id int) (*T, error)

	// Create inserts the entity and assigns its id
	Create(ctx context.Context, entity *T) error

	// Update persists all columns of an existing entity
	Update(ctx context.Context, entity *T) error

	// Delete removes the record and reports whether a row existed
	Delete(ctx context.Context, id int) (bool, error)

	// Exists reports whether a record with the id exists
	Exists(ctx context.Context, id int) (bool, error)
}

// OwnedRepository is a Repository whose records reference an owner.
type OwnedRepository[T any] interface {
	Repository[T]

	// FindByOwnerID returns all records referencing the owner
	FindByOwnerID(ctx context.Context, ownerID int) ([]T, error)
}
