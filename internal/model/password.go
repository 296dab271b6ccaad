package model

// PasswordHasher is the opaque credential verifier. Digests are stored
// as-is; the algorithm is not part of the domain contract.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
