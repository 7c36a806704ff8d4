package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordService(t *testing.T) {
	service := NewBcryptPasswordService(bcrypt.MinCost)

	t.Run("HashAndVerify", func(t *testing.T) {
		hash, err := service.HashPassword("secret123")
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		if hash == "secret123" {
			t.Error("Hash should differ from the plain password")
		}
		if !strings.HasPrefix(hash, "$2a$") {
			t.Errorf("Expected bcrypt hash, got %q", hash)
		}

		ok, err := service.VerifyPassword("secret123", hash)
		if err != nil {
			t.Fatalf("Failed to verify password: %v", err)
		}
		if !ok {
			t.Error("Correct password should verify")
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		hash, err := service.HashPassword("secret123")
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}

		ok, err := service.VerifyPassword("wrong-password", hash)
		if err != nil {
			t.Fatalf("Verify should not fail on mismatch: %v", err)
		}
		if ok {
			t.Error("Wrong password should not verify")
		}
	})

	t.Run("EmptyPassword", func(t *testing.T) {
		if _, err := service.HashPassword(""); err == nil {
			t.Error("Hashing an empty password should fail")
		}

		ok, err := service.VerifyPassword("", "$2a$10$somethinghashedgoeshere")
		if err != nil {
			t.Fatalf("Verify should not fail on empty password: %v", err)
		}
		if ok {
			t.Error("Empty password should not verify")
		}
	})

	t.Run("UniqueSalts", func(t *testing.T) {
		first, err := service.HashPassword("secret123")
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		second, err := service.HashPassword("secret123")
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		if first == second {
			t.Error("Two hashes of the same password should use different salts")
		}
	})
}
