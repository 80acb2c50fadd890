package auth

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash == "Password123" {
		t.Error("hash must not equal the plaintext password")
	}

	if !strings.HasPrefix(hash, "$2a$12$") {
		t.Errorf("expected bcrypt hash with cost 12, got prefix %q", hash[:7])
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("Password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "correct password", password: "Password123", want: true},
		{name: "wrong password", password: "password123", want: false},
		{name: "empty password", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPassword(hash, tt.password); got != tt.want {
				t.Errorf("CheckPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckPasswordInvalidHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "Password123") {
		t.Error("expected check against malformed hash to fail")
	}
}
