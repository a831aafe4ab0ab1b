package catalog

import "errors"

var (
	ErrNotFound           = errors.New("test not found")
	ErrTestInUse          = errors.New("test is referenced by existing samples")
	ErrNameRequired       = errors.New("name_ar and name_en are required")
	ErrNegativePrice      = errors.New("price must not be negative")
	ErrNegativeTurnaround = errors.New("turnaround_hours must not be negative")
	ErrFieldNameRequired  = errors.New("result field name is required")
	ErrInvalidFieldType   = errors.New("result field type must be number or text")
)
