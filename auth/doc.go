// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin access tokens and password hashing.

# Access Tokens

An Issuer signs HS256 JWTs with a shared secret:

	issuer := auth.NewIssuer(cfg.JWTSecret, 30*time.Minute)
	token, expiresAt, err := issuer.Issue(auth.AdminSubject)

Validate rejects tokens with a bad signature, a non-HMAC algorithm, or
an expiry in the past:

	claims, err := issuer.Validate(token)
	if errors.Is(err, auth.ErrInvalidToken) {
		// 401
	}

# Passwords

The admin password is configured as a bcrypt hash:

	hash, err := auth.HashPassword("s3cret")
	err = auth.CheckPassword(hash, "s3cret") // nil

Generate the hash from the command line:

	ballot-box hash-password s3cret

# Security Notes

  - Tokens are bearer credentials; serve the API over TLS
  - Only mutating routes require a token (see middleware.RequireToken)
  - Token lifetime defaults to 30 minutes (TOKEN_TTL_MINUTES)
*/
package auth
