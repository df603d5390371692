package objid

import (
	"crypto/rand"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// GenerateFunc returns a new id. The optional size overrides the default size
// the function was created with.
type GenerateFunc func(size ...int) (string, error)

// Generator produces ids from a custom alphabet. It is immutable and safe for
// concurrent use as long as its random source is.
type Generator struct {
	alphabet    []rune
	defaultSize int
	rand        io.Reader
}

// NewGenerator validates alphabet and the optional default size (DefaultSize
// if omitted) and returns a Generator bound to them.
// Creating a Generator does not touch the random source.
func NewGenerator(alphabet string, defaultSize ...int) (*Generator, error) {
	if alphabet == "" {
		return nil, errors.Wrap(ErrInvalidAlphabet, "alphabet must not be empty")
	}

	if n := utf8.RuneCountInString(alphabet); n > MaxAlphabetLen {
		return nil, errors.Wrapf(ErrInvalidAlphabet,
			"alphabet length must not exceed %d characters, got %d", MaxAlphabetLen, n)
	}

	size := DefaultSize

	switch len(defaultSize) {
	case 0:
	case 1:
		size = defaultSize[0]
	default:
		return nil, errors.Wrapf(ErrInvalidDefaultSize, "expected at most one default size, got %d", len(defaultSize))
	}

	if size <= 0 {
		return nil, errors.Wrap(ErrInvalidDefaultSize, "default size must be a positive integer")
	}

	return &Generator{
		alphabet:    []rune(alphabet),
		defaultSize: size,
		rand:        rand.Reader,
	}, nil
}

// CustomAlphabet returns a GenerateFunc drawing characters from alphabet.
// The validation rules are those of NewGenerator.
func CustomAlphabet(alphabet string, defaultSize ...int) (GenerateFunc, error) {
	g, err := NewGenerator(alphabet, defaultSize...)
	if err != nil {
		return nil, err
	}

	return g.Generate, nil
}

// Generate returns a new id of the optional size, or of the generator's
// default size if omitted.
func (g *Generator) Generate(size ...int) (string, error) {
	n, err := resolveSize(g.defaultSize, size)
	if err != nil {
		return "", err
	}

	return generate(g.rand, g.alphabet, n)
}

// MustGenerate is like Generate but panics if the id can not be generated.
func (g *Generator) MustGenerate(size ...int) string {
	id, err := g.Generate(size...)
	if err != nil {
		panic("objid: " + err.Error())
	}

	return id
}

// Alphabet returns the characters ids are drawn from.
func (g *Generator) Alphabet() string {
	return string(g.alphabet)
}

// DefaultSize returns the id length used when Generate is called without a size.
func (g *Generator) DefaultSize() int {
	return g.defaultSize
}

// WithRandReader returns a copy of g reading random bytes from r.
// A nil r restores crypto/rand.
func (g *Generator) WithRandReader(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}

	c := *g
	c.rand = r

	return &c
}
