package domain

import (
	"fmt"
	"time"
)

type AppointmentStatus string

const (
	StatusPreBooked AppointmentStatus = "PRE_BOOKED"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusNoShow    AppointmentStatus = "NO_SHOW"
	StatusExpired   AppointmentStatus = "EXPIRED"
)

// allowedTransitions is the full lifecycle graph. COMPLETED, CANCELLED,
// NO_SHOW and EXPIRED are terminal.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPreBooked: {StatusConfirmed, StatusExpired, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusNoShow, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
	StatusExpired:   {},
}

// AllowedTransitions returns the legal target statuses for the given status.
func AllowedTransitions(status AppointmentStatus) []AppointmentStatus {
	targets := allowedTransitions[status]
	out := make([]AppointmentStatus, len(targets))
	copy(out, targets)
	return out
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to AppointmentStatus) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

func ValidAppointmentStatus(s AppointmentStatus) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// TransitionError reports an illegal state-machine move. It carries the
// allowed targets so callers can render the available next actions.
type TransitionError struct {
	From    AppointmentStatus
	To      AppointmentStatus
	Allowed []AppointmentStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition from '%s' to '%s', allowed transitions: %v", e.From, e.To, e.Allowed)
}

// Appointment is the central entity. EndTime is always recomputed from the
// service duration when the appointment is persisted with a start time and
// service set, never trusted from a caller. ExpiresAt is set once, on entry
// into PRE_BOOKED, and is not recomputed on later saves.
type Appointment struct {
	ID          int64             `json:"id" gorm:"primaryKey"`
	TenantID    int64             `json:"tenant_id" gorm:"index"`
	PetID       int64             `json:"pet_id" gorm:"index"`
	ServiceID   int64             `json:"service_id" gorm:"index"`
	ScheduledAt time.Time         `json:"scheduled_at" gorm:"index"`
	EndTime     time.Time         `json:"end_time"`
	Status      AppointmentStatus `json:"status" gorm:"size:20;index"`
	ExpiresAt   *time.Time        `json:"expires_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	Pet     *Pet     `json:"pet,omitempty" gorm:"foreignKey:PetID;constraint:OnDelete:CASCADE"`
	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

// ComputeEndTime derives the appointment end from its start and the service
// duration in minutes. [start, end) is half-open: an appointment ending at T
// does not conflict with one starting at T.
func ComputeEndTime(start time.Time, durationMinutes int) time.Time {
	return start.Add(time.Duration(durationMinutes) * time.Minute)
}
