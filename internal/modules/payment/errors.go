package payment

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found in tenant")
	ErrInvalidStatus       = errors.New("appointment must be PRE_BOOKED")
	ErrCheckoutExists      = errors.New("checkout already started for appointment")
	ErrMissingPaymentID    = errors.New("notification missing payment id")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrPaymentFailed       = errors.New("payment gateway failure")
)
