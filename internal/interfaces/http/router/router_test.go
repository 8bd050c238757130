package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())
	assert.Equal(t, DefaultBasePath, r.basePath)
	assert.Empty(t, r.registrars)

	r = NewRouter(gin.New(), WithBasePath("/internal"))
	assert.Equal(t, "/internal", r.basePath)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()

	g := NewDomainGroup("test", "/test")
	g.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	NewRouter(engine).Register(g).Setup()

	w := serve(engine, http.MethodGet, "/api/test/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestDomainGroup_Methods(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("items", "/items").
		GET("", func(c *gin.Context) { c.String(http.StatusOK, "list") }).
		POST("", func(c *gin.Context) { c.String(http.StatusCreated, "created") }).
		PATCH("/:id", func(c *gin.Context) { c.String(http.StatusOK, "patched "+c.Param("id")) }).
		DELETE("/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, "items", g.Name())
	assert.Equal(t, "/items", g.Prefix())

	NewRouter(engine).Register(g).Setup()

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{http.MethodGet, "/api/items", http.StatusOK, "list"},
		{http.MethodPost, "/api/items", http.StatusCreated, "created"},
		{http.MethodPatch, "/api/items/7", http.StatusOK, "patched 7"},
		{http.MethodDelete, "/api/items/7", http.StatusNoContent, ""},
		{http.MethodPut, "/api/items/7", http.StatusNotFound, "404 page not found"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := serve(engine, tt.method, tt.path)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestDomainGroup_MiddlewareScopedToGroup(t *testing.T) {
	engine := gin.New()

	guard := func(c *gin.Context) {
		c.AbortWithStatus(http.StatusUnauthorized)
	}

	public := NewDomainGroup("auth", "/auth")
	public.POST("/login", func(c *gin.Context) { c.String(http.StatusOK, "token") })
	public.Group("session", "").Use(guard).GET("/me", func(c *gin.Context) { c.String(http.StatusOK, "me") })

	owners := NewDomainGroup("owners", "/owners").Use(guard).
		GET("", func(c *gin.Context) { c.String(http.StatusOK, "owners") })

	NewRouter(engine).Register(public, owners).Setup()

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodPost, "/api/auth/login").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodGet, "/api/auth/me").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodGet, "/api/owners").Code)
}

func TestRouter_Routes(t *testing.T) {
	noop := func(*gin.Context) {}
	owners := NewDomainGroup("owners", "/owners").
		GET("", noop).
		DELETE("/:id", noop)
	owners.Group("owner-admin", "/admin").POST("/reindex", noop)

	r := NewRouter(gin.New()).Register(owners)

	assert.Equal(t, []RouteInfo{
		{Group: "owners", Method: http.MethodGet, Path: "/api/owners"},
		{Group: "owners", Method: http.MethodDelete, Path: "/api/owners/:id"},
		{Group: "owner-admin", Method: http.MethodPost, Path: "/api/owners/admin/reindex"},
	}, r.Routes())
}
