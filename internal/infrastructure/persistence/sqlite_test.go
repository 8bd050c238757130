package persistence

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/propertyhub/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// sqliteDialector reports ON DELETE RESTRICT violations the way the postgres
// driver does. SQLite enforces RESTRICT with a RAISE trigger, so the error
// carries SQLITE_CONSTRAINT_TRIGGER, which the sqlite driver leaves untranslated.
type sqliteDialector struct {
	sqlite.Dialector
}

func (d sqliteDialector) Translate(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) &&
		sqliteErr.Code == sqlite3.ErrConstraint &&
		strings.HasPrefix(sqliteErr.Error(), "FOREIGN KEY") {
		return gorm.ErrForeignKeyViolated
	}
	return d.Dialector.Translate(err)
}

// newSQLiteDB opens a file-backed SQLite database with foreign keys enforced,
// migrates all models and seeds the property types.
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "propertyhub.db") + "?_foreign_keys=on"
	db, err := Open(sqliteDialector{sqlite.Dialector{DSN: dsn}}, nil)
	require.NoError(t, err)

	require.NoError(t, db.DB.AutoMigrate(
		&models.OwnerModel{},
		&models.CompanyModel{},
		&models.PropertyTypeModel{},
		&models.PropertyModel{},
		&models.UserModel{},
		&models.UserRoleModel{},
	))

	types := []models.PropertyTypeModel{
		{ID: 1, Type: "residential"},
		{ID: 2, Type: "commercial"},
		{ID: 3, Type: "industrial"},
		{ID: 4, Type: "raw land"},
		{ID: 5, Type: "special purpose"},
	}
	require.NoError(t, db.DB.Create(&types).Error)

	t.Cleanup(func() { _ = db.Close() })
	return db.DB
}
