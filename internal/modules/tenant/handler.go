package tenant

import (
	"errors"
	"net/http"

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

// RegisterAdminRoutes mounts onboarding; callers must wrap the group with
// Auth plus RequireRole("admin").
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/tenants", h.Create)
}

// RegisterInfoRoutes mounts the tenant-scoped introspection endpoint.
func (h *Handler) RegisterInfoRoutes(rg *gin.RouterGroup) {
	rg.GET("/tenant-info", h.Info)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSubdomain):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Subdomínio inválido")
		case errors.Is(err, ErrSubdomainTaken):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Subdomínio já cadastrado")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do servidor")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"tenant": t})
}

func (h *Handler) Info(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tenant": tenant})
}
