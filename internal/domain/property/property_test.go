package property

import (
	"errors"
	"testing"
	"time"

	"github.com/propertyhub/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProperty(t *testing.T) {
	plus3 := time.FixedZone("UTC+3", 3*60*60)
	built := time.Date(2001, 5, 10, 12, 0, 0, 0, plus3)

	p, err := NewProperty(1, PropertyTypeCommercial, decimal.NewFromInt(120), decimal.RequireFromString("250000.50"), built)
	require.NoError(t, err)

	assert.Equal(t, 1, p.OwnerID)
	assert.Equal(t, PropertyTypeCommercial, p.PropertyTypeID)
	assert.True(t, p.PropertyCost.Equal(decimal.RequireFromString("250000.5")))
	assert.Equal(t, time.UTC, p.DateOfBuilding.Location())
	assert.True(t, built.Equal(p.DateOfBuilding))
	assert.Equal(t, 9, p.DateOfBuilding.Hour())
}

func TestNewProperty_InvalidReferences(t *testing.T) {
	_, err := NewProperty(0, 1, decimal.Zero, decimal.Zero, time.Now())
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	_, err = NewProperty(1, -1, decimal.Zero, decimal.Zero, time.Now())
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
}

func TestProperty_SetAddress(t *testing.T) {
	p := &Property{}

	require.NoError(t, p.SetAddress("Norway", "Oslo", "", ""))
	assert.Equal(t, "Norway", p.Country)
	assert.Equal(t, "Oslo", p.City)

	err := p.SetAddress("", "Oslo", "", "")
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	err = p.SetAddress("Norway", " ", "", "")
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	assert.Equal(t, "Oslo", p.City)
}
