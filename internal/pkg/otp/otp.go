package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const codeDigits = 6

// GenerateCode returns a six digit numeric code from crypto/rand,
// zero-padded so leading zeros survive.
func GenerateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp code: %w", err)
	}

	return fmt.Sprintf("%0*d", codeDigits, n), nil
}
