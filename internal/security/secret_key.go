package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// keyAlphabet avoids characters that need escaping in .env files or URLs.
const keyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var errNegativeLength = errors.New("length must be non-negative")

// GenerateSecretKey returns a cryptographically secure, unbiased random key
// of the requested length, suitable as a JWT signing secret.
func GenerateSecretKey(length int) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}

	limit := big.NewInt(int64(len(keyAlphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = keyAlphabet[position.Int64()]
	}

	return string(value), nil
}
