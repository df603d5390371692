package objid

import (
	"errors"
)

var (
	// ErrInvalidSize is returned if a requested id length is not a positive integer.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidAlphabet is returned if an alphabet is empty or longer than MaxAlphabetLen characters.
	ErrInvalidAlphabet = errors.New("invalid alphabet")

	// ErrInvalidDefaultSize is returned if the default size of a custom generator is not a positive integer.
	ErrInvalidDefaultSize = errors.New("invalid default size")
)
