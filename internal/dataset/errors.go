package dataset

import "errors"

var (
	// ErrDataUnavailable indicates a dataset resource is missing or malformed.
	// It is fatal: the dashboard cannot start without both datasets.
	ErrDataUnavailable = errors.New("dataset unavailable")

	// ErrMalformedYear indicates a year column header that is not a valid integer.
	ErrMalformedYear = errors.New("malformed year column")
)
