// Package testutil provides common test utilities for the PropertyHub backend:
// a migrated SQLite database, gin test helpers and response assertions.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/propertyhub/backend/internal/infrastructure/persistence"
	"github.com/propertyhub/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// PropertyTypeSeed mirrors the rows inserted by the property types migration
var PropertyTypeSeed = []models.PropertyTypeModel{
	{ID: 1, Type: "residential"},
	{ID: 2, Type: "commercial"},
	{ID: 3, Type: "industrial"},
	{ID: 4, Type: "raw land"},
	{ID: 5, Type: "special purpose"},
}

// NewSQLiteDB opens a file-backed SQLite database in a temp dir with foreign
// keys enforced, migrates every model and seeds the property types.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "propertyhub.db") + "?_foreign_keys=on"
	db, err := persistence.Open(sqlite.Open(dsn), nil)
	require.NoError(t, err, "Failed to open SQLite database")

	require.NoError(t, db.DB.AutoMigrate(
		&models.OwnerModel{},
		&models.CompanyModel{},
		&models.PropertyTypeModel{},
		&models.PropertyModel{},
		&models.UserModel{},
		&models.UserRoleModel{},
	))

	seed := make([]models.PropertyTypeModel, len(PropertyTypeSeed))
	copy(seed, PropertyTypeSeed)
	require.NoError(t, db.DB.Create(&seed).Error)

	t.Cleanup(func() { _ = db.Close() })
	return db.DB
}

// NewTestUUID generates a deterministic UUID for testing.
func NewTestUUID(seed string) uuid.UUID {
	namespace := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	return uuid.NewSHA1(namespace, []byte(seed))
}

// ContextWithTimeout creates a context with a timeout that is cancelled when the test ends.
func ContextWithTimeout(t *testing.T, timeout time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
