package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt hash. Two calls on the same plaintext
// yield different hashes; both verify. cost <= 0 falls back to the bcrypt
// default.
func HashPassword(plain string, cost int) (string, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plain matches hash. A malformed hash is not
// an error, just a mismatch.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
