package handler

import (
	"net/http"
	"testing"

	identityapp "github.com/propertyhub/backend/internal/application/identity"
	"github.com/propertyhub/backend/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_RegisterLoginMeLogout(t *testing.T) {
	env := newTestEnv(t)
	creds := map[string]any{"email": "new.user@example.com", "password": "secret1"}

	w := testutil.Do(t, env.engine, testutil.Request{Method: http.MethodPost, Path: "/api/auth/register", Body: creds})
	registered := testutil.DecodeData[identityapp.AuthResponse](t, w, http.StatusCreated)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, []string{"User"}, registered.Roles)

	w = testutil.Do(t, env.engine, testutil.Request{Method: http.MethodPost, Path: "/api/auth/login", Body: creds})
	login := testutil.DecodeData[identityapp.AuthResponse](t, w, http.StatusOK)
	require.NotEmpty(t, login.Token)

	w = testutil.Do(t, env.engine, testutil.Request{Path: "/api/auth/me", Token: login.Token})
	me := testutil.DecodeData[identityapp.UserResponse](t, w, http.StatusOK)
	assert.Equal(t, "new.user@example.com", me.Email)
	assert.NotNil(t, me.LastLoginAt)

	w = testutil.Do(t, env.engine, testutil.Request{Method: http.MethodPost, Path: "/api/auth/logout", Token: login.Token})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = testutil.Do(t, env.engine, testutil.Request{Path: "/api/auth/me", Token: login.Token})
	testutil.AssertErrorResponse(t, w, http.StatusUnauthorized, "ERR_TOKEN_REVOKED")

	// the registration token is a different jti and stays valid
	w = testutil.Do(t, env.engine, testutil.Request{Path: "/api/auth/me", Token: registered.Token})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_RegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	creds := map[string]any{"email": "dup@example.com", "password": "secret1"}

	w := testutil.Do(t, env.engine, testutil.Request{Method: http.MethodPost, Path: "/api/auth/register", Body: creds})
	require.Equal(t, http.StatusCreated, w.Code)

	w = testutil.Do(t, env.engine, testutil.Request{Method: http.MethodPost, Path: "/api/auth/register", Body: creds})
	testutil.AssertErrorResponse(t, w, http.StatusConflict, "ERR_ALREADY_EXISTS")
}

func TestAuthHandler_RegisterShortPassword(t *testing.T) {
	env := newTestEnv(t)

	w := testutil.Do(t, env.engine, testutil.Request{
		Method: http.MethodPost,
		Path:   "/api/auth/register",
		Body:   map[string]any{"email": "short@example.com", "password": "12345"},
	})
	resp := testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "ERR_VALIDATION")
	require.NotEmpty(t, resp.Error.Details)
	assert.Equal(t, "password", resp.Error.Details[0].Field)
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)

	w := testutil.Do(t, env.engine, testutil.Request{
		Method: http.MethodPost,
		Path:   "/api/auth/register",
		Body:   map[string]any{"email": "known@example.com", "password": "secret1"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	for _, body := range []map[string]any{
		{"email": "known@example.com", "password": "wrong-password"},
		{"email": "unknown@example.com", "password": "secret1"},
	} {
		w = testutil.Do(t, env.engine, testutil.Request{Method: http.MethodPost, Path: "/api/auth/login", Body: body})
		testutil.AssertErrorResponse(t, w, http.StatusUnauthorized, "ERR_INVALID_CREDENTIALS")
	}
}

func TestAuthHandler_ProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/auth/me", "/api/owners", "/api/companies", "/api/properties", "/api/propertytypes"} {
		w := testutil.Do(t, env.engine, testutil.Request{Path: path})
		testutil.AssertErrorResponse(t, w, http.StatusUnauthorized, "ERR_UNAUTHORIZED")
	}
}
