package customer

import (
	"crypto/rand"
	"math/big"
)

const (
	passwordLength   = 10
	passwordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// generatePassword returns a random first-login password.
func generatePassword() (string, error) {
	max := big.NewInt(int64(len(passwordAlphabet)))
	out := make([]byte, passwordLength)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out), nil
}
