package integration

import (
	"testing"

	"github.com/propertyhub/backend/internal/infrastructure/migration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMigrations_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewTestDB(t)
	m, err := migration.New(tdb.SqlDB, zap.NewNop())
	require.NoError(t, err)

	tableExists := func(name string) bool {
		var exists bool
		require.NoError(t, tdb.DB.Raw("SELECT to_regclass(?) IS NOT NULL", "public."+name).Scan(&exists).Error)
		return exists
	}

	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(3), version)
	assert.False(t, dirty)
	assert.True(t, tableExists("users"))

	require.NoError(t, m.Steps(-1))
	version, _, err = m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
	assert.False(t, tableExists("users"))
	assert.True(t, tableExists("properties"))

	require.NoError(t, m.Down())
	assert.False(t, tableExists("owners"))
	assert.False(t, tableExists("property_types"))

	require.NoError(t, m.Up())
	var types int64
	require.NoError(t, tdb.DB.Table("property_types").Count(&types).Error)
	assert.EqualValues(t, 5, types)

	// Up is idempotent once at head
	require.NoError(t, m.Up())
}
