package outbound

// PasswordService hashes and verifies login passwords.
type PasswordService interface {
	HashPassword(password string) (string, error)
	// VerifyPassword reports whether password matches hash. A mismatch is
	// (false, nil); the error is reserved for malformed hashes.
	VerifyPassword(password, hash string) (bool, error)
}
