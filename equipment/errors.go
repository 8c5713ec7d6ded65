package equipment

import "errors"

var (
	// ErrNameRequired indicates a blank name on creation.
	ErrNameRequired = errors.New("equipment name is required")
	// ErrDateRequired indicates a missing date on creation.
	ErrDateRequired = errors.New("equipment date is required")
	// ErrDateInvalid indicates a date that is not a YYYY-MM-DD calendar date.
	ErrDateInvalid = errors.New("equipment date is invalid")
	// ErrStatusInvalid indicates a status outside present/absent.
	ErrStatusInvalid = errors.New("equipment status is invalid")
)
