package integration

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	identityapp "github.com/propertyhub/backend/internal/application/identity"
	ownerapp "github.com/propertyhub/backend/internal/application/owner"
	propertyapp "github.com/propertyhub/backend/internal/application/property"
	"github.com/propertyhub/backend/internal/infrastructure/auth"
	"github.com/propertyhub/backend/internal/infrastructure/config"
	"github.com/propertyhub/backend/internal/infrastructure/persistence"
	"github.com/propertyhub/backend/internal/interfaces/http/handler"
	"github.com/propertyhub/backend/internal/interfaces/http/middleware"
	"github.com/propertyhub/backend/internal/interfaces/http/router"
	"github.com/propertyhub/backend/tests/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// APITestServer wires the full engine over a migrated PostgreSQL database
type APITestServer struct {
	DB     *TestDB
	Engine *router.Engine
	token  string
}

func apiTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "propertyhub", Env: "test"},
		JWT: config.JWTConfig{
			Secret:                "integration-test-secret-key-1234567890",
			Issuer:                "propertyhub",
			Audience:              "propertyhub-api",
			AccessTokenExpiration: 15 * time.Minute,
		},
		HTTP: config.HTTPConfig{
			MaxBodySize:      1 << 20,
			CORSAllowOrigins: []string{"*"},
			CORSAllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			CORSAllowHeaders: []string{"Authorization", "Content-Type"},
		},
		Telemetry: config.TelemetryConfig{ServiceName: "propertyhub-integration"},
	}
}

// NewAPITestServer builds the engine with the given blacklist, falling back
// to the in-memory one when nil.
func NewAPITestServer(t *testing.T, blacklist auth.TokenBlacklist) *APITestServer {
	t.Helper()

	require.NoError(t, middleware.SetupValidator())
	decimal.MarshalJSONWithoutQuotes = true

	tdb := NewSharedTestDB(t)
	tdb.CleanTables()

	cfg := apiTestConfig()
	log := zap.NewNop()
	if blacklist == nil {
		blacklist = auth.NewInMemoryTokenBlacklist()
	}

	ownerRepo := persistence.NewGormOwnerRepository(tdb.DB)
	companyRepo := persistence.NewGormCompanyRepository(tdb.DB)
	propertyRepo := persistence.NewGormPropertyRepository(tdb.DB)
	typeRepo := persistence.NewGormPropertyTypeRepository(tdb.DB)
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(persistence.NewGormUserRepository(tdb.DB), jwtService, blacklist, log)

	engine := router.NewEngine(router.Dependencies{
		Config:     cfg,
		Logger:     log,
		JWTService: jwtService,
		Blacklist:  blacklist,
		Handlers: router.Handlers{
			Auth:      handler.NewAuthHandler(authService),
			Owners:    handler.NewOwnerHandler(ownerapp.NewOwnerService(ownerRepo, companyRepo, propertyRepo, log)),
			Companies: handler.NewCompanyHandler(ownerapp.NewCompanyService(persistence.NewGormTransactionScope(tdb.DB), companyRepo, log)),
			Properties: handler.NewPropertyHandler(
				propertyapp.NewPropertyService(propertyRepo, typeRepo, ownerRepo, log),
				propertyapp.NewPropertyTypeService(typeRepo),
			),
			Health: handler.NewHealthHandler(tdb.SqlDB),
		},
	})
	t.Cleanup(engine.Close)

	return &APITestServer{DB: tdb, Engine: engine}
}

// Login registers a user and keeps its token for later requests
func (s *APITestServer) Login(t *testing.T, email string) string {
	t.Helper()

	w := testutil.Do(t, s.Engine, testutil.Request{
		Method: http.MethodPost,
		Path:   "/api/auth/register",
		Body:   map[string]any{"email": email, "password": "s3cret-pass"},
	})
	s.token = testutil.DecodeData[identityapp.AuthResponse](t, w, http.StatusCreated).Token
	return s.token
}

func (s *APITestServer) call(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.Do(t, s.Engine, testutil.Request{Method: method, Path: path, Body: body, Token: s.token})
}

func TestAPI_PropertyLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	s := NewAPITestServer(t, nil)
	s.Login(t, "agent@example.com")

	w := s.call(t, http.MethodGet, "/api/propertytypes", nil)
	types := testutil.DecodeData[[]propertyapp.PropertyTypeResponse](t, w, http.StatusOK)
	require.Len(t, types, 5)

	w = s.call(t, http.MethodPost, "/api/owners", map[string]any{
		"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com", "phone": "+47 22 00 00 00",
	})
	jane := testutil.DecodeData[ownerapp.OwnerResponse](t, w, http.StatusCreated)
	assert.False(t, jane.IsCompanyContact)

	w = s.call(t, http.MethodPost, "/api/companies", map[string]any{
		"ownerId": jane.ID, "companyName": "Doe Holdings", "companySite": "https://doe.example.com",
	})
	company := testutil.DecodeData[ownerapp.CompanyResponse](t, w, http.StatusCreated)
	require.NotNil(t, company.Owner)
	assert.True(t, company.Owner.IsCompanyContact)

	w = s.call(t, http.MethodPost, "/api/properties", map[string]any{
		"ownerId":        jane.ID,
		"propertyTypeId": 2,
		"propertyLength": 250.75,
		"propertyCost":   1999999.99,
		"dateOfBuilding": "1987-09-01T00:00:00Z",
		"country":        "Norway",
		"city":           "Oslo",
	})
	prop := testutil.DecodeData[propertyapp.PropertyResponse](t, w, http.StatusCreated)
	assert.Equal(t, "1999999.99", prop.PropertyCost.StringFixed(2))
	require.NotNil(t, prop.PropertyType)
	assert.Equal(t, "commercial", prop.PropertyType.Type)

	w = s.call(t, http.MethodPatch, fmt.Sprintf("/api/properties/%d", prop.ID), map[string]any{"city": "", "street": "Karl Johans gate 1"})
	patched := testutil.DecodeData[propertyapp.PropertyResponse](t, w, http.StatusOK)
	assert.Equal(t, "Oslo", patched.City)
	assert.Equal(t, "Karl Johans gate 1", patched.Street)

	w = s.call(t, http.MethodPatch, fmt.Sprintf("/api/properties/%d", prop.ID), map[string]any{"propertyTypeId": 99})
	testutil.AssertErrorResponse(t, w, http.StatusBadRequest, "ERR_REFERENCE_NOT_FOUND")

	// Owner with a company and a property cannot be removed
	w = s.call(t, http.MethodDelete, fmt.Sprintf("/api/owners/%d", jane.ID), nil)
	testutil.AssertErrorResponse(t, w, http.StatusConflict, "ERR_HAS_DEPENDENTS")

	w = s.call(t, http.MethodDelete, fmt.Sprintf("/api/properties/%d", prop.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = s.call(t, http.MethodDelete, fmt.Sprintf("/api/companies/%d", company.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.call(t, http.MethodGet, fmt.Sprintf("/api/owners/%d", jane.ID), nil)
	assert.True(t, testutil.DecodeData[ownerapp.OwnerResponse](t, w, http.StatusOK).IsCompanyContact)

	w = s.call(t, http.MethodDelete, fmt.Sprintf("/api/owners/%d", jane.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.call(t, http.MethodGet, fmt.Sprintf("/api/owners/%d", jane.ID), nil)
	testutil.AssertErrorResponse(t, w, http.StatusNotFound, "ERR_NOT_FOUND")
}

func TestAPI_Health(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	s := NewAPITestServer(t, nil)

	w := testutil.Do(t, s.Engine, testutil.Request{Path: "/health"})
	health := testutil.DecodeData[handler.HealthData](t, w, http.StatusOK)
	assert.Equal(t, "up", health.Database)
}

func startRedis(t *testing.T) *redis.Client {
	t.Helper()

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "Failed to start Redis container")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = container.Terminate(ctx)
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestAPI_LogoutRevokesTokenInRedis(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	client := startRedis(t)
	blacklist := auth.NewRedisTokenBlacklistWithClient(client)
	s := NewAPITestServer(t, blacklist)
	token := s.Login(t, "redis-user@example.com")

	w := s.call(t, http.MethodGet, "/api/auth/me", nil)
	me := testutil.DecodeData[identityapp.UserResponse](t, w, http.StatusOK)
	assert.Equal(t, "redis-user@example.com", me.Email)

	w = s.call(t, http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	keys, err := client.Keys(context.Background(), "propertyhub:token:blacklist:*").Result()
	require.NoError(t, err)
	require.Len(t, keys, 1)

	ttl, err := client.TTL(context.Background(), keys[0]).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
	assert.LessOrEqual(t, ttl, 15*time.Minute)

	w = testutil.Do(t, s.Engine, testutil.Request{Path: "/api/owners", Token: token})
	testutil.AssertErrorResponse(t, w, http.StatusUnauthorized, "ERR_TOKEN_REVOKED")
}
