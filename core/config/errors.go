package config

import "errors"

// ErrNilConfig is returned when Load is called with a nil config pointer.
var ErrNilConfig = errors.New("config must not be nil")
