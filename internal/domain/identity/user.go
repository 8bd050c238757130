package identity

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// Password length bounds
const (
	MinPasswordLength = 6
	MaxPasswordLength = 128
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User is an account allowed to call the API
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Roles        []Role
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// NewUser creates a user with a hashed password and the given roles
func NewUser(email, password string, roles ...Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	for _, r := range roles {
		if !r.IsValid() {
			return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(r))
		}
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Roles:        slices.Clone(roles),
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// VerifyPassword checks the password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// HasRole reports whether the user holds the role
func (u *User) HasRole(role Role) bool {
	return slices.Contains(u.Roles, role)
}

// RoleNames returns the roles as plain strings
func (u *User) RoleNames() []string {
	names := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		names[i] = string(r)
	}
	return names
}

// RecordLogin stamps the last successful login time
func (u *User) RecordLogin(at time.Time) {
	t := at.UTC()
	u.LastLoginAt = &t
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	if len(password) > MaxPasswordLength {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
