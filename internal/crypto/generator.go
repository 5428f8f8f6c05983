package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	NumberChars    = "0123456789"
	SymbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	MinLength     = 4
	MaxLength     = 128
	DefaultLength = 8
)

var (
	ErrSelectionEmpty = errors.New("at least one character type must be selected")
	ErrInvalidLength  = fmt.Errorf("password length must be between %d and %d", MinLength, MaxLength)
)

// Selection holds the enabled character classes.
type Selection struct {
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultSelection mirrors the initial state of the generator form:
// letters and numbers on, symbols off.
func DefaultSelection() Selection {
	return Selection{
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
	}
}

// Empty reports whether no character class is enabled.
func (s Selection) Empty() bool {
	return !s.Uppercase && !s.Lowercase && !s.Numbers && !s.Symbols
}

// Pool concatenates the alphabets of the enabled classes in the fixed order
// uppercase, lowercase, numbers, symbols.
func (s Selection) Pool() string {
	var b strings.Builder
	if s.Uppercase {
		b.WriteString(UppercaseChars)
	}
	if s.Lowercase {
		b.WriteString(LowercaseChars)
	}
	if s.Numbers {
		b.WriteString(NumberChars)
	}
	if s.Symbols {
		b.WriteString(SymbolChars)
	}
	return b.String()
}

// Generator draws passwords from a random source.
type Generator struct {
	src io.Reader
}

// NewGenerator returns a Generator reading randomness from src.
// A nil src selects crypto/rand.Reader.
func NewGenerator(src io.Reader) *Generator {
	if src == nil {
		src = rand.Reader
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(rand.Reader)

// Generate creates a cryptographically secure random password using crypto/rand.
func Generate(length int, sel Selection) (string, error) {
	return defaultGenerator.Generate(length, sel)
}

// Generate returns a password of exactly length characters, each drawn
// independently and uniformly from the selection's pool.
func (g *Generator) Generate(length int, sel Selection) (string, error) {
	if sel.Empty() {
		return "", ErrSelectionEmpty
	}
	if length < MinLength || length > MaxLength {
		return "", ErrInvalidLength
	}

	pool := sel.Pool()
	result := make([]byte, length)
	for i := range result {
		ch, err := g.randChar(pool)
		if err != nil {
			return "", fmt.Errorf("drawing random index: %w", err)
		}
		result[i] = ch
	}

	return string(result), nil
}

// randChar picks a random byte from the ASCII charset.
func (g *Generator) randChar(charset string) (byte, error) {
	n, err := rand.Int(g.src, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
