package customer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"petshop/internal/middleware"
	"petshop/internal/pkg/response"
	"petshop/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/customers", h.Create)
	rg.GET("/customers", h.List)
	rg.GET("/customers/:id", h.Get)
	rg.PUT("/customers/:id", h.Update)
	rg.DELETE("/customers/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(&req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dados inválidos", fields)
		return
	}

	cust, err := h.service.Create(c.Request.Context(), tenant, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"customer": cust})
}

func (h *Handler) List(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	customers, err := h.service.List(c.Request.Context(), tenant)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do servidor")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"customers": customers})
}

func (h *Handler) Get(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid customer id")
		return
	}

	cust, err := h.service.Get(c.Request.Context(), tenant, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"customer": cust})
}

func (h *Handler) Update(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid customer id")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(&req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dados inválidos", fields)
		return
	}

	cust, err := h.service.Update(c.Request.Context(), tenant, id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"customer": cust})
}

func (h *Handler) Delete(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid customer id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), tenant, id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Cliente não encontrado")
	case errors.Is(err, ErrInvalidCPF):
		response.Error(c, http.StatusBadRequest, "INVALID_CPF", "CPF inválido")
	case errors.Is(err, ErrCPFDuplicate):
		response.Error(c, http.StatusBadRequest, "CPF_DUPLICATE", "CPF já cadastrado neste tenant")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do servidor")
	}
}
