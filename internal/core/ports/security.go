package ports

// TokenProvider issues and verifies bearer tokens carrying the subject's
// email address.
type TokenProvider interface {
	// Sign issues a signed token for the given email.
	Sign(email string) (string, error)

	// Verify checks the token signature and expiry and returns the email
	// the token was issued for. Returns an UnauthorizedError when the token
	// is invalid or expired.
	Verify(token string) (string, error)
}

// PasswordHasher hashes plaintext passwords and compares plaintext
// candidates against stored hashes.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether the plaintext password matches the hash.
	// Returns an UnauthorizedError on mismatch.
	Compare(hash string, password string) error
}
