package pet

import "errors"

var (
	ErrNotFound            = errors.New("pet not found in tenant")
	ErrInvalidSpecies      = errors.New("invalid species")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCustomerWrongTenant = errors.New("customer belongs to another tenant")
)
