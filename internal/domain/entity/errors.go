package entity

import "errors"

var (
	ErrProductIsRequired = errors.New("product is required")
	ErrVendorNotFound    = errors.New("vendor not found")
)
