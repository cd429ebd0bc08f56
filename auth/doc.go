// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth generates and verifies poll admin secrets.

An admin secret is an opaque bearer token: whoever presents the stored string
has full admin rights on that poll, indefinitely. There is no rotation,
expiry, or rate limiting.

	secret, err := auth.NewAdminSecret()
	ok := auth.VerifyAdminSecret(poll.AdminSecret, supplied)

Secrets are 12 characters over the base62 alphabet, drawn from crypto/rand.
Verification uses a constant-time comparison.
*/
package auth
