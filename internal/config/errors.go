package config

import (
	"errors"
)

// ErrInvalidConfig wraps every config validation failure.
var ErrInvalidConfig = errors.New("invalid config")
