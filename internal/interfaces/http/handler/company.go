package handler

import (
	"github.com/gin-gonic/gin"
	ownerapp "github.com/propertyhub/backend/internal/application/owner"
)

// CompanyHandler handles company-related API endpoints
type CompanyHandler struct {
	BaseHandler
	companyService *ownerapp.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService *ownerapp.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// List godoc
//
//	@ID				listCompanies
//	@Summary		List companies
//	@Description	Returns all companies with their owner
//	@Tags			companies
//	@Produce		json
//	@Success		200	{object}	APIResponse[[]ownerapp.CompanyResponse]
//	@Failure		401	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companyService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, companies)
}

// GetByID godoc
//
//	@ID				getCompany
//	@Summary		Get company by ID
//	@Tags			companies
//	@Produce		json
//	@Param			id	path		int	true	"Company ID"
//	@Success		200	{object}	APIResponse[ownerapp.CompanyResponse]
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	company, err := h.companyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// Create godoc
//
//	@ID				createCompany
//	@Summary		Create a company
//	@Description	Marks the referenced owner as a company contact in the same transaction
//	@Tags			companies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ownerapp.CreateCompanyRequest	true	"Company creation request"
//	@Success		201		{object}	APIResponse[ownerapp.CompanyResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req ownerapp.CreateCompanyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, company)
}

// Update godoc
//
//	@ID				updateCompany
//	@Summary		Partially update a company
//	@Description	The owner of a company cannot be changed. An empty companyName is ignored.
//	@Tags			companies
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Company ID"
//	@Param			request	body		ownerapp.UpdateCompanyRequest	true	"Fields to change"
//	@Success		200		{object}	APIResponse[ownerapp.CompanyResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies/{id} [patch]
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req ownerapp.UpdateCompanyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// Delete godoc
//
//	@ID				deleteCompany
//	@Summary		Delete a company
//	@Tags			companies
//	@Param			id	path	int	true	"Company ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
