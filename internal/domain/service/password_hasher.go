package service

// PasswordHasher defines the interface for hashing and verifying passwords
// of directly provisioned accounts.
type PasswordHasher interface {
	// Hash generates a secure hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password against a stored hash.
	Check(password, hash string) bool
}
