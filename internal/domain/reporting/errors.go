package reporting

import "errors"

var (
	ErrRangeRequired     = errors.New("start and end dates are required")
	ErrInvalidRange      = errors.New("end date must not be before start date")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
