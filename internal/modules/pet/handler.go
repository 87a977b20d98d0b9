package pet

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"petshop/internal/middleware"
	"petshop/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/pets", h.Create)
	rg.GET("/pets", h.List)
	rg.GET("/pets/:id", h.Get)
	rg.PUT("/pets/:id", h.Update)
	rg.DELETE("/pets/:id", h.Delete)
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

	p, err := h.service.Create(c.Request.Context(), tenant, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"pet": p})
}

func (h *Handler) List(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	pets, err := h.service.List(c.Request.Context(), tenant)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do servidor")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"pets": pets})
}

func (h *Handler) Get(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid pet id")
		return
	}

	p, err := h.service.Get(c.Request.Context(), tenant, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"pet": p})
}

func (h *Handler) Update(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid pet id")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), tenant, id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"pet": p})
}

func (h *Handler) Delete(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid pet id")
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
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Pet não encontrado")
	case errors.Is(err, ErrInvalidSpecies):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Espécie inválida")
	case errors.Is(err, ErrCustomerNotFound):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cliente não encontrado")
	case errors.Is(err, ErrCustomerWrongTenant):
		response.Error(c, http.StatusBadRequest, "CUSTOMER_WRONG_TENANT", "Cliente pertence a outro tenant")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do servidor")
	}
}
