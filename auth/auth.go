// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"fmt"
	"math/big"
)

// SecretAlphabet is the base62 alphabet admin secrets are drawn from.
const SecretAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// AdminSecretLength is the number of characters in a generated admin secret.
// 12 base62 characters is roughly 71 bits of entropy.
const AdminSecretLength = 12

// NewAdminSecret generates a random admin secret over the base62 alphabet.
// Each character is drawn uniformly, no modulo bias.
func NewAdminSecret() (string, error) {
	max := big.NewInt(int64(len(SecretAlphabet)))
	secret := make([]byte, AdminSecretLength)
	for i := range secret {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate admin secret: %w", err)
		}
		secret[i] = SecretAlphabet[n.Int64()]
	}
	return string(secret), nil
}

// VerifyAdminSecret compares a supplied secret against the stored one.
// Exact string equality, in constant time.
func VerifyAdminSecret(stored, supplied string) bool {
	return hmac.Equal([]byte(stored), []byte(supplied))
}
