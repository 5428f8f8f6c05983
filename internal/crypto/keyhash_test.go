package crypto

import (
	"strings"
	"testing"
)

// Small parameters keep the tests fast.
var testHashParams = HashParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func TestHashKeyFormat(t *testing.T) {
	hash, err := HashKey("operator-key")
	if err != nil {
		t.Fatalf("HashKey() unexpected error: %v", err)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("HashKey() expected 6 parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("HashKey() algorithm = %q, want %q", parts[1], "argon2id")
	}
	if parts[2] != "v=19" {
		t.Errorf("HashKey() version = %q, want %q", parts[2], "v=19")
	}
	if parts[3] != "m=65536,t=3,p=2" {
		t.Errorf("HashKey() params = %q, want %q", parts[3], "m=65536,t=3,p=2")
	}
}

func TestVerifyKey(t *testing.T) {
	hash, err := HashKeyWithParams("correct-key", testHashParams)
	if err != nil {
		t.Fatalf("HashKeyWithParams() unexpected error: %v", err)
	}

	tests := []struct {
		key  string
		want bool
	}{
		{"correct-key", true},
		{"wrong-key", false},
		{"", false},
	}
	for _, tt := range tests {
		match, err := VerifyKey(tt.key, hash)
		if err != nil {
			t.Fatalf("VerifyKey(%q) unexpected error: %v", tt.key, err)
		}
		if match != tt.want {
			t.Errorf("VerifyKey(%q) = %v, want %v", tt.key, match, tt.want)
		}
	}
}

func TestHashKeySalted(t *testing.T) {
	a, err := HashKeyWithParams("same-key", testHashParams)
	if err != nil {
		t.Fatal(err)
	}
	b, err := HashKeyWithParams("same-key", testHashParams)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("identical hashes for same key (salt should differ)")
	}
}

func TestVerifyKeyInvalidHash(t *testing.T) {
	tests := map[string]string{
		"garbage":       "invalid-hash-format",
		"wrong algo":    "$argon2i$v=19$m=1024,t=1,p=1$c2FsdA$aGFzaA",
		"bad params":    "$argon2id$v=19$m=x,t=1,p=1$c2FsdA$aGFzaA",
		"bad salt":      "$argon2id$v=19$m=1024,t=1,p=1$!!!$aGFzaA",
		"wrong version": "$argon2id$v=16$m=1024,t=1,p=1$c2FsdA$aGFzaA",
	}
	for name, encoded := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := VerifyKey("key", encoded); err == nil {
				t.Error("VerifyKey() expected error")
			}
		})
	}
}
