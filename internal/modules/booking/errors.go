package booking

import "errors"

var (
	ErrPetNotFound        = errors.New("pet not found")
	ErrPetWrongTenant     = errors.New("pet belongs to another tenant")
	ErrServiceNotFound    = errors.New("service not found")
	ErrServiceWrongTenant = errors.New("service belongs to another tenant")
	ErrScheduleConflict   = errors.New("schedule conflict")
	ErrNotFound           = errors.New("appointment not found")
	ErrUnknownStatus      = errors.New("unknown appointment status")
	ErrNotCancellable     = errors.New("only CONFIRMED appointments can be cancelled")
)
