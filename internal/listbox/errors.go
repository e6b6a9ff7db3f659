package listbox

import "errors"

var (
	// ErrMissingAccessibleName is returned when neither aria-label nor
	// aria-labelledby is configured.
	ErrMissingAccessibleName = errors.New("listbox requires aria-label or aria-labelledby")

	// ErrConflictingAccessibleName is returned when both aria-label and
	// aria-labelledby are configured.
	ErrConflictingAccessibleName = errors.New("listbox accepts only one of aria-label and aria-labelledby")

	// ErrInvalidMode is returned for an unknown selection mode.
	ErrInvalidMode = errors.New("invalid selection mode")

	// ErrEmptyOptionValue is returned when an option has no value.
	ErrEmptyOptionValue = errors.New("option value must not be empty")

	// ErrDuplicateOptionValue is returned when two options share a value.
	ErrDuplicateOptionValue = errors.New("duplicate option value")
)
