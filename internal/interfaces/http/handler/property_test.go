package handler

import (
	"net/http"
	"testing"
	"time"

	propertyapp "github.com/propertyhub/backend/internal/application/property"
	"github.com/propertyhub/backend/tests/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func propertyBody(ownerID, typeID int) map[string]any {
	return map[string]any{
		"ownerId":        ownerID,
		"propertyTypeId": typeID,
		"propertyLength": 120.5,
		"propertyCost":   350000,
		"dateOfBuilding": "2001-06-15T00:00:00Z",
		"country":        "Norway",
		"city":           "Oslo",
		"street":         "Storgata 1",
		"zipCode":        "0155",
	}
}

func TestPropertyHandler_CreateAndGet(t *testing.T) {
	env := newTestEnv(t)
	o := env.createOwner(t, "jane@example.com")

	w := env.call(t, http.MethodPost, "/api/properties", propertyBody(o.ID, 2))
	created := testutil.DecodeData[propertyapp.PropertyResponse](t, w, http.StatusCreated)
	assert.True(t, created.PropertyLength.Equal(decimal.RequireFromString("120.5")))
	assert.True(t, created.PropertyCost.Equal(decimal.NewFromInt(350000)))
	assert.True(t, time.Date(2001, 6, 15, 0, 0, 0, 0, time.UTC).Equal(created.DateOfBuilding))

	w = env.call(t, http.MethodGet, "/api/properties/"+itoa(created.ID), nil)
	got := testutil.DecodeData[propertyapp.PropertyResponse](t, w, http.StatusOK)
	require.NotNil(t, got.Owner)
	require.NotNil(t, got.PropertyType)
	assert.Equal(t, "commercial", got.PropertyType.Type)
	assert.Equal(t, o.ID, got.Owner.ID)
}

func TestPropertyHandler_CreateUnknownReferences(t *testing.T) {
	env := newTestEnv(t)
	o := env.createOwner(t, "jane@example.com")

	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"unknown owner", propertyBody(999, 1), "ownerId"},
		{"unknown type", propertyBody(o.ID, 6), "propertyTypeId"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.call(t, http.MethodPost, "/api/properties", tt.body)
			resp := testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "ERR_REFERENCE_NOT_FOUND")
			assert.Equal(t, tt.field, resp.Error.Context["field"])
		})
	}
}

func TestPropertyHandler_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	o := env.createOwner(t, "jane@example.com")

	future := propertyBody(o.ID, 1)
	future["dateOfBuilding"] = time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)

	zeroCost := propertyBody(o.ID, 1)
	zeroCost["propertyCost"] = 0

	noCity := propertyBody(o.ID, 1)
	delete(noCity, "city")

	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"future build date", future, "dateOfBuilding"},
		{"zero cost", zeroCost, "propertyCost"},
		{"missing city", noCity, "city"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.call(t, http.MethodPost, "/api/properties", tt.body)
			resp := testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "ERR_VALIDATION")
			require.NotEmpty(t, resp.Error.Details)
			assert.Equal(t, tt.field, resp.Error.Details[0].Field)
		})
	}
}

func TestPropertyHandler_UpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	first := env.createOwner(t, "jane@example.com")
	second := env.createOwner(t, "john@example.com")

	w := env.call(t, http.MethodPost, "/api/properties", propertyBody(first.ID, 1))
	created := testutil.DecodeData[propertyapp.PropertyResponse](t, w, http.StatusCreated)

	w = env.call(t, http.MethodPatch, "/api/properties/"+itoa(created.ID), map[string]any{
		"ownerId": second.ID,
		"city":    "",
		"street":  "",
	})
	updated := testutil.DecodeData[propertyapp.PropertyResponse](t, w, http.StatusOK)
	assert.Equal(t, second.ID, updated.OwnerID)
	assert.Equal(t, "Oslo", updated.City)
	assert.Empty(t, updated.Street)

	w = env.call(t, http.MethodPatch, "/api/properties/"+itoa(created.ID), map[string]any{"propertyTypeId": 99})
	testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "ERR_REFERENCE_NOT_FOUND")

	w = env.call(t, http.MethodDelete, "/api/properties/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.call(t, http.MethodGet, "/api/properties", nil)
	list := testutil.DecodeData[[]propertyapp.PropertyResponse](t, w, http.StatusOK)
	assert.Empty(t, list)
}

func TestPropertyHandler_ListTypes(t *testing.T) {
	env := newTestEnv(t)

	w := env.call(t, http.MethodGet, "/api/propertytypes", nil)
	types := testutil.DecodeData[[]propertyapp.PropertyTypeResponse](t, w, http.StatusOK)
	require.Len(t, types, 5)
	for i, want := range []string{"residential", "commercial", "industrial", "raw land", "special purpose"} {
		assert.Equal(t, i+1, types[i].ID)
		assert.Equal(t, want, types[i].Type)
	}
}
