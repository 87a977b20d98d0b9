package tenant

import "errors"

var (
	ErrSubdomainTaken   = errors.New("subdomain already registered")
	ErrInvalidSubdomain = errors.New("invalid subdomain")
)
