package shared

import "fmt"

var (
	// Field errors
	ErrInvalidType  = fmt.Errorf("invalid type")
	ErrInvalidValue = fmt.Errorf("invalid value")

	// Persistence errors
	ErrIllegalOperation = fmt.Errorf("illegal operation")
	ErrNotFound         = fmt.Errorf("not found")

	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
)
