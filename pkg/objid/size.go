package objid

import (
	"strconv"

	"github.com/pkg/errors"
)

// ParseSize parses a textual id length such as a command line argument.
// Fractional, non-numeric and non-positive values are rejected with ErrInvalidSize.
func ParseSize(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSize, "size must be an integer, got %q", s)
	}

	if n <= 0 {
		return 0, errors.Wrap(ErrInvalidSize, "size must be greater than 0")
	}

	return n, nil
}

// resolveSize returns the single optional size or defaultSize if none was given.
func resolveSize(defaultSize int, size []int) (int, error) {
	switch len(size) {
	case 0:
		return defaultSize, nil
	case 1:
		if size[0] <= 0 {
			return 0, errors.Wrap(ErrInvalidSize, "size must be greater than 0")
		}

		return size[0], nil
	default:
		return 0, errors.Wrapf(ErrInvalidSize, "expected at most one size, got %d", len(size))
	}
}
