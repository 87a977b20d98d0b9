package payment

type CheckoutRequest struct {
	AppointmentID int64 `json:"appointment_id" binding:"required"`
}

type CheckoutResponse struct {
	PaymentLink string `json:"payment_link"`
}

// WebhookNotification is the gateway's {type, data:{id}} payload shape.
type WebhookNotification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Webhook outcome vocabulary. The gateway retries on non-2xx, so every
// recognized situation maps to one of these plus a 200.
const (
	OutcomeIgnored          = "ignored"
	OutcomeAlreadyProcessed = "already_processed"
	OutcomeProcessed        = "processed"
	OutcomePending          = "pending"
)

type WebhookResult struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status,omitempty"`
}
