package property

// PropertyType is a fixed category label for properties.
type PropertyType struct {
	ID   int
	Type string
}

// Seeded property type ids
const (
	PropertyTypeResidential    = 1
	PropertyTypeCommercial     = 2
	PropertyTypeIndustrial     = 3
	PropertyTypeRawLand        = 4
	PropertyTypeSpecialPurpose = 5
)
