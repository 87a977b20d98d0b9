package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"petshop/internal/domain"
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
	rg.POST("/appointments/pre-book", h.PreBook)
	rg.GET("/appointments", h.List)
	rg.GET("/appointments/:id", h.Get)
	rg.PATCH("/appointments/:id", h.UpdateStatus)
	rg.POST("/appointments/:id/cancel", h.Cancel)
	rg.POST("/appointments/expire", h.Expire)
}

func (h *Handler) PreBook(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	var req PreBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.PreBook(c.Request.Context(), tenant, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPetNotFound):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Pet não encontrado")
		case errors.Is(err, ErrPetWrongTenant):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Pet pertence a outro tenant")
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Serviço não encontrado")
		case errors.Is(err, ErrServiceWrongTenant):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Serviço pertence a outro tenant")
		case errors.Is(err, ErrScheduleConflict):
			response.Error(c, http.StatusConflict, "CONFLICT_SCHEDULE", "Horário já ocupado")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do servidor")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"appointment": newAppointmentResponse(a)})
}

func (h *Handler) List(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	items, err := h.service.List(c.Request.Context(), tenant)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do servidor")
		return
	}

	out := make([]AppointmentResponse, 0, len(items))
	for i := range items {
		out = append(out, newAppointmentResponse(&items[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"appointments": out})
}

func (h *Handler) Get(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid appointment id")
		return
	}

	a, err := h.service.Get(c.Request.Context(), tenant, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment não encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do servidor")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointment": newAppointmentResponse(a)})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid appointment id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.UpdateStatus(c.Request.Context(), tenant, id, domain.AppointmentStatus(req.Status))
	if err != nil {
		var transitionErr *domain.TransitionError
		switch {
		case errors.As(err, &transitionErr):
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "INVALID_TRANSITION", transitionErr.Error(), gin.H{
				"current_status":      transitionErr.From,
				"requested_status":    transitionErr.To,
				"allowed_transitions": transitionErr.Allowed,
			})
		case errors.Is(err, ErrUnknownStatus):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status inválido")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment não encontrado")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do servidor")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointment": newAppointmentResponse(a)})
}

func (h *Handler) Cancel(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid appointment id")
		return
	}

	var req CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
			return
		}
	}

	refund, err := h.service.Cancel(c.Request.Context(), tenant, id, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment não encontrado")
		case errors.Is(err, ErrNotCancellable):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Apenas appointments CONFIRMED podem ser cancelados")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do servidor")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"refund_amount": refund.StringFixed(2)})
}

// Expire is the pull-based sweep entry point, designed for an external
// periodic trigger. Invoking it twice in a row is harmless.
func (h *Handler) Expire(c *gin.Context) {
	count, err := h.service.ExpireDue(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do servidor")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"expired": count})
}
