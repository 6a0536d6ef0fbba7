package workload

import "errors"

var (
	// ErrNilAPI is returned by New when no API is provided.
	ErrNilAPI = errors.New("api must not be nil")

	// ErrInvalidPeriodRange is returned by New when the inter-action period
	// bounds are negative or the minimum is not strictly below the maximum.
	ErrInvalidPeriodRange = errors.New("invalid inter-action period range")
)
