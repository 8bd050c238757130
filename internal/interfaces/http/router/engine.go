package router

import (
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/propertyhub/backend/internal/infrastructure/auth"
	"github.com/propertyhub/backend/internal/infrastructure/config"
	"github.com/propertyhub/backend/internal/infrastructure/logger"
	"github.com/propertyhub/backend/internal/infrastructure/telemetry"
	"github.com/propertyhub/backend/internal/interfaces/http/handler"
	"github.com/propertyhub/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/propertyhub/backend/docs"
)

// Handlers groups the HTTP handlers mounted by the engine
type Handlers struct {
	Auth       *handler.AuthHandler
	Owners     *handler.OwnerHandler
	Companies  *handler.CompanyHandler
	Properties *handler.PropertyHandler
	Health     *handler.HealthHandler
}

// Dependencies carries everything NewEngine needs
type Dependencies struct {
	Config     *config.Config
	Logger     *zap.Logger
	Meter      *telemetry.MeterProvider // nil disables HTTP metrics
	JWTService *auth.JWTService
	Blacklist  auth.TokenBlacklist
	Handlers   Handlers
}

// Engine is the configured gin engine plus the background resources it owns
type Engine struct {
	*gin.Engine
	limiters []*middleware.RateLimiter
}

// Close stops the rate limiter cleanup goroutines
func (e *Engine) Close() {
	for _, l := range e.limiters {
		l.Stop()
	}
}

// NewEngine builds the gin engine with the full middleware chain and routes
func NewEngine(deps Dependencies) *Engine {
	cfg := deps.Config
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine := gin.New()
	e := &Engine{Engine: engine}

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Tracing(cfg.Telemetry.ServiceName, cfg.Telemetry.Enabled))
	engine.Use(middleware.TracingAttributeInjector())
	if deps.Meter.IsEnabled() {
		engine.Use(middleware.HTTPMetrics(deps.Meter, log))
	}
	engine.Use(middleware.CORS(cfg.HTTP))
	engine.Use(middleware.Secure())
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		e.limiters = append(e.limiters, limiter)
		engine.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	engine.GET("/health", deps.Handlers.Health.Check)

	if cfg.Swagger.Enabled {
		engine.GET("/swagger/*any",
			middleware.SwaggerProtection(cfg.Swagger),
			ginSwagger.WrapHandler(swaggerFiles.Handler),
		)
	}

	var authLimit []gin.HandlerFunc
	if cfg.HTTP.AuthRateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		e.limiters = append(e.limiters, limiter)
		authLimit = append(authLimit, middleware.RateLimit(limiter))
	}

	requireAuth := middleware.JWTAuthMiddleware(deps.JWTService, deps.Blacklist, log)

	r := NewRouter(engine)
	r.Register(
		authRoutes(deps.Handlers.Auth, authLimit, requireAuth),
		ownerRoutes(deps.Handlers.Owners).Use(requireAuth),
		companyRoutes(deps.Handlers.Companies).Use(requireAuth),
		propertyRoutes(deps.Handlers.Properties).Use(requireAuth),
		propertyTypeRoutes(deps.Handlers.Properties).Use(requireAuth),
	)
	r.Setup()

	routes := r.Routes()
	for _, route := range routes {
		log.Debug("Route registered",
			zap.String("group", route.Group),
			zap.String("method", route.Method),
			zap.String("path", route.Path),
		)
	}
	log.Info("HTTP routes registered", zap.Int("count", len(routes)))

	return e
}

// authRoutes leaves register and login public and protects the session routes
func authRoutes(h *handler.AuthHandler, limit []gin.HandlerFunc, requireAuth gin.HandlerFunc) *DomainGroup {
	public := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		return append(slices.Clone(limit), fn)
	}

	g := NewDomainGroup("auth", "/auth")
	g.POST("/register", public(h.Register)...)
	g.POST("/login", public(h.Login)...)

	session := g.Group("session", "").Use(requireAuth)
	session.GET("/me", h.Me)
	session.POST("/logout", h.Logout)
	return g
}

func ownerRoutes(h *handler.OwnerHandler) *DomainGroup {
	return NewDomainGroup("owners", "/owners").
		GET("", h.List).
		POST("", h.Create).
		GET("/:id", h.GetByID).
		PATCH("/:id", h.Update).
		DELETE("/:id", h.Delete)
}

func companyRoutes(h *handler.CompanyHandler) *DomainGroup {
	return NewDomainGroup("companies", "/companies").
		GET("", h.List).
		POST("", h.Create).
		GET("/:id", h.GetByID).
		PATCH("/:id", h.Update).
		DELETE("/:id", h.Delete)
}

func propertyRoutes(h *handler.PropertyHandler) *DomainGroup {
	return NewDomainGroup("properties", "/properties").
		GET("", h.List).
		POST("", h.Create).
		GET("/:id", h.GetByID).
		PATCH("/:id", h.Update).
		DELETE("/:id", h.Delete)
}

func propertyTypeRoutes(h *handler.PropertyHandler) *DomainGroup {
	return NewDomainGroup("propertytypes", "/propertytypes").
		GET("", h.ListTypes)
}
