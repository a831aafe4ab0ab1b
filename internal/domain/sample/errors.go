package sample

import "errors"

var (
	// ErrNotFound is returned by reads only. Lifecycle writes report
	// ErrInvalidState for missing ids too, so they never reveal whether
	// an id exists.
	ErrNotFound               = errors.New("sample not found")
	ErrInvalidState           = errors.New("sample is not in a state that allows this operation")
	ErrPatientNameRequired    = errors.New("patient_name is required")
	ErrCollectionDateRequired = errors.New("collection_date is required")
	ErrTestTypeRequired       = errors.New("test_type_id is required")
	ErrUnknownTestType        = errors.New("unknown test type")
	ErrResultDataRequired     = errors.New("result_data is required")
	ErrEmptySearch            = errors.New("at least one search filter is required")
)
