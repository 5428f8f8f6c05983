package cli

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/crypto"
)

type fakeClipboard struct {
	got string
	err error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.got = text
	return nil
}

func run(t *testing.T, cb *fakeClipboard, args ...string) (string, error) {
	t.Helper()
	if cb == nil {
		cb = &fakeClipboard{}
	}
	var out bytes.Buffer
	cmd := NewRootCmd(Deps{
		Generator: crypto.NewGenerator(rand.NewChaCha8([32]byte{9})),
		Clipboard: clipboard.New(cb),
	}, &out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func parseLines(t *testing.T, out string) []string {
	t.Helper()
	var passwords []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		password, rating, ok := strings.Cut(line, "\tPassword Strength: ")
		if !ok {
			continue
		}
		assert.Equal(t, crypto.Score(password).String(), rating)
		passwords = append(passwords, password)
	}
	return passwords
}

func TestGenerateCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		count   int
		length  int
		charset string
	}{
		{"defaults", []string{"generate"}, 1, 8, crypto.UppercaseChars + crypto.LowercaseChars + crypto.NumberChars},
		{"length and symbols", []string{"generate", "-l", "24", "--symbols"}, 1, 24, crypto.SymbolChars + crypto.UppercaseChars + crypto.LowercaseChars + crypto.NumberChars},
		{"numbers only", []string{"generate", "--upper=false", "--lower=false", "-n", "3"}, 3, 8, crypto.NumberChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, &fakeClipboard{}, tt.args...)
			require.NoError(t, err)

			passwords := parseLines(t, out)
			require.Len(t, passwords, tt.count)
			for _, p := range passwords {
				assert.Len(t, p, tt.length)
				for _, c := range p {
					assert.Contains(t, tt.charset, string(c))
				}
			}
		})
	}
}

func TestGenerateCommandErrors(t *testing.T) {
	_, err := run(t, &fakeClipboard{}, "generate", "--upper=false", "--lower=false", "--numbers=false")
	assert.ErrorIs(t, err, crypto.ErrSelectionEmpty)

	_, err = run(t, &fakeClipboard{}, "generate", "-l", "3")
	assert.ErrorIs(t, err, crypto.ErrInvalidLength)

	_, err = run(t, &fakeClipboard{}, "generate", "-n", "0")
	assert.ErrorIs(t, err, errCountRange)
}

func TestGenerateCommandCopy(t *testing.T) {
	cb := &fakeClipboard{}
	out, err := run(t, cb, "generate", "-n", "2", "--copy")
	require.NoError(t, err)

	passwords := parseLines(t, out)
	require.Len(t, passwords, 2)
	assert.Equal(t, passwords[1], cb.got)
	assert.Contains(t, out, "Password copied to clipboard!")
}

func TestGenerateCommandCopyFailure(t *testing.T) {
	out, err := run(t, &fakeClipboard{err: errors.New("no display")}, "generate", "--copy")
	require.NoError(t, err)

	assert.Len(t, parseLines(t, out), 1)
	assert.Contains(t, out, "Could not copy to clipboard")
	assert.NotContains(t, out, "Password copied to clipboard!")
}

func TestStrengthCommand(t *testing.T) {
	tests := map[string]string{
		"abcdefgh":     "Password Strength: Weak\n",
		"Abcdefg1":     "Password Strength: Moderate\n",
		"Abcdefgh123!": "Password Strength: Strong\n",
	}
	for password, want := range tests {
		out, err := run(t, nil, "strength", password)
		require.NoError(t, err)
		assert.Equal(t, want, out)
	}

	out, err := run(t, nil, "strength", "-v", "Abcdefg1")
	require.NoError(t, err)
	assert.Equal(t, "Password Strength: Moderate (3/5)\n", out)

	_, err = run(t, nil, "strength")
	assert.Error(t, err)
}

func TestHashKeyCommand(t *testing.T) {
	out, err := run(t, nil, "hash-key", "operator-key")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := crypto.VerifyKey("operator-key", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}
