package property

import (
	"context"

	"github.com/propertyhub/backend/internal/domain/property"
)

// PropertyTypeService exposes the read-only property type lookup
type PropertyTypeService struct {
	typeRepo property.PropertyTypeRepository
}

// NewPropertyTypeService creates a new PropertyTypeService
func NewPropertyTypeService(typeRepo property.PropertyTypeRepository) *PropertyTypeService {
	return &PropertyTypeService{typeRepo: typeRepo}
}

// List returns all property types ordered by id
func (s *PropertyTypeService) List(ctx context.Context) ([]PropertyTypeResponse, error) {
	types, err := s.typeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]PropertyTypeResponse, len(types))
	for i := range types {
		responses[i] = ToPropertyTypeResponse(&types[i])
	}
	return responses, nil
}
