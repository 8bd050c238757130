package handler

import (
	"github.com/gin-gonic/gin"
	ownerapp "github.com/propertyhub/backend/internal/application/owner"
)

// OwnerHandler handles owner-related API endpoints
type OwnerHandler struct {
	BaseHandler
	ownerService *ownerapp.OwnerService
}

// NewOwnerHandler creates a new OwnerHandler
func NewOwnerHandler(ownerService *ownerapp.OwnerService) *OwnerHandler {
	return &OwnerHandler{
		ownerService: ownerService,
	}
}

// List godoc
//
//	@ID				listOwners
//	@Summary		List owners
//	@Description	Returns all owners ordered by id
//	@Tags			owners
//	@Produce		json
//	@Success		200	{object}	APIResponse[[]ownerapp.OwnerResponse]
//	@Failure		401	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/owners [get]
func (h *OwnerHandler) List(c *gin.Context) {
	owners, err := h.ownerService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, owners)
}

// GetByID godoc
//
//	@ID				getOwner
//	@Summary		Get owner by ID
//	@Tags			owners
//	@Produce		json
//	@Param			id	path		int	true	"Owner ID"
//	@Success		200	{object}	APIResponse[ownerapp.OwnerResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/owners/{id} [get]
func (h *OwnerHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	owner, err := h.ownerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, owner)
}

// Create godoc
//
//	@ID				createOwner
//	@Summary		Create an owner
//	@Description	New owners start with isCompanyContact=false
//	@Tags			owners
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ownerapp.CreateOwnerRequest	true	"Owner creation request"
//	@Success		201		{object}	APIResponse[ownerapp.OwnerResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/owners [post]
func (h *OwnerHandler) Create(c *gin.Context) {
	var req ownerapp.CreateOwnerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	owner, err := h.ownerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, owner)
}

// Update godoc
//
//	@ID				updateOwner
//	@Summary		Partially update an owner
//	@Description	Absent fields are kept. Empty firstName, lastName, email and phone are ignored; address and description can be cleared.
//	@Tags			owners
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Owner ID"
//	@Param			request	body		ownerapp.UpdateOwnerRequest	true	"Fields to change"
//	@Success		200		{object}	APIResponse[ownerapp.OwnerResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/owners/{id} [patch]
func (h *OwnerHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req ownerapp.UpdateOwnerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	owner, err := h.ownerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, owner)
}

// Delete godoc
//
//	@ID				deleteOwner
//	@Summary		Delete an owner
//	@Description	Refused with 409 while the owner still has companies or properties
//	@Tags			owners
//	@Param			id	path	int	true	"Owner ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/owners/{id} [delete]
func (h *OwnerHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.ownerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
