// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Structure:
//   - base.go: BaseModel with integer identity and timestamps
//   - owner.go: owners and companies
//   - property.go: property types and properties
//   - identity.go: users and their roles
package models
