package utils

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// HashPassword returns a salted bcrypt hash of the plaintext password.
// Salt and cost are embedded in the digest, so verification needs no
// side channel.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPasswordHash compares a plaintext password against a bcrypt
// digest. Returns false on mismatch or malformed digest, never panics.
func CheckPasswordHash(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
