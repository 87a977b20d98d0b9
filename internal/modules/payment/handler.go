package payment

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

// RegisterRoutes mounts the tenant-scoped checkout endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/checkout", h.Checkout)
}

// RegisterWebhook mounts the gateway callback outside the tenant group: the
// notification carries no tenant and no credentials, only the external
// payment id.
func (h *Handler) RegisterWebhook(rg *gin.RouterGroup) {
	rg.POST("/webhooks/mercadopago", h.Webhook)
}

func (h *Handler) Checkout(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "TENANT_NOT_FOUND", "Tenant não encontrado")
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	link, err := h.service.Checkout(c.Request.Context(), tenant, req.AppointmentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment não encontrado")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Appointment deve estar PRE_BOOKED")
		case errors.Is(err, ErrCheckoutExists):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Checkout já iniciado para este appointment")
		case errors.Is(err, ErrPaymentFailed):
			response.Error(c, http.StatusInternalServerError, "PAYMENT_FAILED", "Falha no pagamento")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno do servidor")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"payment_link": link})
}

// Webhook answers the gateway in its own flat vocabulary, not the standard
// envelope. Every recognized notification gets a 200 so the gateway stops
// retrying; only malformed or unknown references are rejected.
func (h *Handler) Webhook(c *gin.Context) {
	var n WebhookNotification
	if err := c.ShouldBindJSON(&n); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "MISSING_PAYMENT_ID"})
		return
	}

	result, err := h.service.HandleWebhook(c.Request.Context(), n)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingPaymentID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "MISSING_PAYMENT_ID"})
		case errors.Is(err, ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "PAYMENT_NOT_FOUND"})
		case errors.Is(err, ErrPaymentFailed):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "PAYMENT_FAILED"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "INTERNAL_ERROR"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
