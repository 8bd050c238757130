package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Email        string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string          `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	LastLoginAt  *time.Time      `gorm:"index"`
	Roles        []UserRoleModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// UserRoleModel stores one role membership of a user.
type UserRoleModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role   string    `gorm:"type:varchar(20);primaryKey"`
}

// TableName returns the table name for GORM
func (UserRoleModel) TableName() string {
	return "user_roles"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	names := make([]string, len(m.Roles))
	for i, r := range m.Roles {
		names[i] = r.Role
	}
	return &identity.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Roles:        identity.ParseRoles(names),
		CreatedAt:    m.CreatedAt,
		LastLoginAt:  m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.CreatedAt = u.CreatedAt
	m.LastLoginAt = u.LastLoginAt
	m.Roles = make([]UserRoleModel, len(u.Roles))
	for i, r := range u.Roles {
		m.Roles[i] = UserRoleModel{UserID: u.ID, Role: string(r)}
	}
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
