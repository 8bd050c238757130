package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	identityapp "github.com/propertyhub/backend/internal/application/identity"
	"github.com/propertyhub/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@ID				register
//	@Summary		Register a user
//	@Description	Creates an account with the User role and returns an access token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		identityapp.RegisterRequest	true	"Registration request"
//	@Success		201		{object}	APIResponse[identityapp.AuthResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		429		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req identityapp.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Login godoc
//
//	@ID				login
//	@Summary		User login
//	@Description	Authenticate with email and password
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		identityapp.LoginRequest	true	"Login credentials"
//	@Success		200		{object}	APIResponse[identityapp.AuthResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		429		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Me godoc
//
//	@ID				currentUser
//	@Summary		Get current user
//	@Description	Get the currently authenticated user's profile
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	APIResponse[identityapp.UserResponse]
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	userID, err := claims.GetUserUUID()
	if err != nil {
		h.Unauthorized(c, "Invalid user ID in token")
		return
	}

	user, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// Logout godoc
//
//	@ID				logout
//	@Summary		User logout
//	@Description	Revokes the presented token until it expires
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	APIResponse[LogoutData]
//	@Failure		401	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	userID, err := claims.GetUserUUID()
	if err != nil {
		h.Unauthorized(c, "Invalid user ID in token")
		return
	}

	input := identityapp.LogoutInput{
		UserID:   userID,
		TokenJTI: claims.ID,
	}
	if claims.ExpiresAt != nil {
		input.ExpiresAt = claims.ExpiresAt.Time
	}

	if err := h.authService.Logout(c.Request.Context(), input); err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, APIResponse[LogoutData]{Success: true, Data: LogoutData{Message: "Logged out"}})
}
