package customer

import "errors"

var (
	ErrNotFound     = errors.New("customer not found in tenant")
	ErrInvalidCPF   = errors.New("invalid cpf")
	ErrCPFDuplicate = errors.New("cpf already registered in tenant")
)
