package booking

import (
	"time"

	"petshop/internal/domain"
)

type PreBookRequest struct {
	PetID       int64     `json:"pet_id" binding:"required"`
	ServiceID   int64     `json:"service_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type AppointmentResponse struct {
	ID          int64      `json:"id"`
	PetID       int64      `json:"pet_id"`
	ServiceID   int64      `json:"service_id"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	EndTime     time.Time  `json:"end_time"`
	Status      string     `json:"status"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		PetID:       a.PetID,
		ServiceID:   a.ServiceID,
		ScheduledAt: a.ScheduledAt,
		EndTime:     a.EndTime,
		Status:      string(a.Status),
		ExpiresAt:   a.ExpiresAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
