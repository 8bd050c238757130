package handler

import (
	"github.com/gin-gonic/gin"
	propertyapp "github.com/propertyhub/backend/internal/application/property"
)

// PropertyHandler handles property and property type endpoints
type PropertyHandler struct {
	BaseHandler
	propertyService *propertyapp.PropertyService
	typeService     *propertyapp.PropertyTypeService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService *propertyapp.PropertyService, typeService *propertyapp.PropertyTypeService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		typeService:     typeService,
	}
}

// List godoc
//
//	@ID				listProperties
//	@Summary		List properties
//	@Description	Returns all properties with owner and property type
//	@Tags			properties
//	@Produce		json
//	@Success		200	{object}	APIResponse[[]propertyapp.PropertyResponse]
//	@Failure		401	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	properties, err := h.propertyService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, properties)
}

// GetByID godoc
//
//	@ID				getProperty
//	@Summary		Get property by ID
//	@Tags			properties
//	@Produce		json
//	@Param			id	path		int	true	"Property ID"
//	@Success		200	{object}	APIResponse[propertyapp.PropertyResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/properties/{id} [get]
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	property, err := h.propertyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, property)
}

// Create godoc
//
//	@ID				createProperty
//	@Summary		Create a property
//	@Description	ownerId and propertyTypeId must reference existing records
//	@Tags			properties
//	@Accept			json
//	@Produce		json
//	@Param			request	body		propertyapp.CreatePropertyRequest	true	"Property creation request"
//	@Success		201		{object}	APIResponse[propertyapp.PropertyResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	var req propertyapp.CreatePropertyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	property, err := h.propertyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, property)
}

// Update godoc
//
//	@ID				updateProperty
//	@Summary		Partially update a property
//	@Description	A changed ownerId or propertyTypeId must reference an existing record. Empty country and city are ignored.
//	@Tags			properties
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int									true	"Property ID"
//	@Param			request	body		propertyapp.UpdatePropertyRequest	true	"Fields to change"
//	@Success		200		{object}	APIResponse[propertyapp.PropertyResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/properties/{id} [patch]
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req propertyapp.UpdatePropertyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	property, err := h.propertyService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, property)
}

// Delete godoc
//
//	@ID				deleteProperty
//	@Summary		Delete a property
//	@Tags			properties
//	@Param			id	path	int	true	"Property ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/properties/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListTypes godoc
//
//	@ID				listPropertyTypes
//	@Summary		List property types
//	@Tags			propertytypes
//	@Produce		json
//	@Success		200	{object}	APIResponse[[]propertyapp.PropertyTypeResponse]
//	@Failure		401	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/propertytypes [get]
func (h *PropertyHandler) ListTypes(c *gin.Context) {
	types, err := h.typeService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, types)
}
