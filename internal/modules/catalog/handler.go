package catalog

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
	rg.POST("/services", h.Create)
	rg.GET("/services", h.List)
	rg.GET("/services/:id", h.Get)
	rg.PUT("/services/:id", h.Update)
	rg.DELETE("/services/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	var req UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.Create(c.Request.Context(), tenant, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"service": svc})
}

func (h *Handler) List(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	services, err := h.service.List(c.Request.Context(), tenant)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do servidor")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"services": services})
}

func (h *Handler) Get(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service id")
		return
	}

	svc, err := h.service.Get(c.Request.Context(), tenant, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"service": svc})
}

func (h *Handler) Update(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service id")
		return
	}

	var req UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.Update(c.Request.Context(), tenant, id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"service": svc})
}

func (h *Handler) Delete(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service id")
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
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Serviço não encontrado")
	case errors.Is(err, ErrInvalidPrice):
		response.Error(c, http.StatusBadRequest, "INVALID_PRICE", "Preço inválido")
	case errors.Is(err, ErrInvalidDuration):
		response.Error(c, http.StatusBadRequest, "INVALID_DURATION", "Duração inválida")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do servidor")
	}
}
