package handler

import (
	"net/http"
	"testing"

	ownerapp "github.com/propertyhub/backend/internal/application/owner"
	"github.com/propertyhub/backend/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyHandler_CreateMarksOwnerAsContact(t *testing.T) {
	env := newTestEnv(t)
	o := env.createOwner(t, "jane@example.com")

	w := env.call(t, http.MethodPost, "/api/companies", map[string]any{
		"ownerId":     o.ID,
		"companyName": "Doe Holdings",
		"companySite": "https://doe.example.com",
	})
	company := testutil.DecodeData[ownerapp.CompanyResponse](t, w, http.StatusCreated)
	assert.Equal(t, o.ID, company.OwnerID)
	assert.Equal(t, "Doe Holdings", company.CompanyName)

	w = env.call(t, http.MethodGet, "/api/owners/"+itoa(o.ID), nil)
	owner := testutil.DecodeData[ownerapp.OwnerResponse](t, w, http.StatusOK)
	assert.True(t, owner.IsCompanyContact)

	w = env.call(t, http.MethodGet, "/api/companies/"+itoa(company.ID), nil)
	got := testutil.DecodeData[ownerapp.CompanyResponse](t, w, http.StatusOK)
	require.NotNil(t, got.Owner)
	assert.Equal(t, "Jane", got.Owner.FirstName)
}

func TestCompanyHandler_CreateUnknownOwner(t *testing.T) {
	env := newTestEnv(t)

	w := env.call(t, http.MethodPost, "/api/companies", map[string]any{
		"ownerId":     999,
		"companyName": "Ghost Ltd",
	})
	resp := testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "ERR_REFERENCE_NOT_FOUND")
	assert.Equal(t, "ownerId", resp.Error.Context["field"])

	w = env.call(t, http.MethodGet, "/api/companies", nil)
	list := testutil.DecodeData[[]ownerapp.CompanyResponse](t, w, http.StatusOK)
	assert.Empty(t, list)
}

func TestCompanyHandler_CreateRejectsNonHTTPSite(t *testing.T) {
	env := newTestEnv(t)
	o := env.createOwner(t, "jane@example.com")

	w := env.call(t, http.MethodPost, "/api/companies", map[string]any{
		"ownerId":     o.ID,
		"companyName": "Doe Holdings",
		"companySite": "ftp://doe.example.com",
	})
	resp := testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "ERR_VALIDATION")
	require.NotEmpty(t, resp.Error.Details)
	assert.Equal(t, "companySite", resp.Error.Details[0].Field)
}

func TestCompanyHandler_UpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	o := env.createOwner(t, "jane@example.com")

	w := env.call(t, http.MethodPost, "/api/companies", map[string]any{
		"ownerId":     o.ID,
		"companyName": "Doe Holdings",
		"companySite": "https://doe.example.com",
	})
	company := testutil.DecodeData[ownerapp.CompanyResponse](t, w, http.StatusCreated)

	w = env.call(t, http.MethodPatch, "/api/companies/"+itoa(company.ID), map[string]any{
		"companyName": "",
		"companySite": "",
	})
	updated := testutil.DecodeData[ownerapp.CompanyResponse](t, w, http.StatusOK)
	assert.Equal(t, "Doe Holdings", updated.CompanyName)
	assert.Empty(t, updated.CompanySite)

	w = env.call(t, http.MethodDelete, "/api/companies/"+itoa(company.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.call(t, http.MethodDelete, "/api/companies/"+itoa(company.ID), nil)
	testutil.AssertErrorResponse(t, w, http.StatusNotFound, "ERR_NOT_FOUND")
}
