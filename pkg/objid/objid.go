package objid

import (
	"crypto/rand"
	"io"
	"strings"
)

const (
	// DefaultAlphabet is the URL-safe set of characters used by New.
	DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

	// DefaultSize is the id length used when no size is given, ~126 bits of entropy
	// with the default alphabet.
	DefaultSize = 21

	// MaxAlphabetLen is the largest alphabet a single random byte can address.
	MaxAlphabetLen = 256
)

// defaultAlphabet is read-only.
var defaultAlphabet = []rune(DefaultAlphabet) //nolint:gochecknoglobals

// New returns a new random id built from DefaultAlphabet.
// The optional size defaults to DefaultSize.
func New(size ...int) (string, error) {
	n, err := resolveSize(DefaultSize, size)
	if err != nil {
		return "", err
	}

	return generate(rand.Reader, defaultAlphabet, n)
}

// MustNew is like New but panics if the id can not be generated.
func MustNew(size ...int) string {
	id, err := New(size...)
	if err != nil {
		panic("objid: " + err.Error())
	}

	return id
}

// generate reads size bytes from r and maps each of them onto alphabet.
// Errors of r are returned unchanged.
func generate(r io.Reader, alphabet []rune, size int) (string, error) {
	buf := make([]byte, size) // storage for random bytes

	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err //nolint:wrapcheck
	}

	clen := len(alphabet)

	var b strings.Builder

	b.Grow(size)

	for _, rb := range buf {
		b.WriteRune(alphabet[int(rb)%clen])
	}

	return b.String(), nil
}
