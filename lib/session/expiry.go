// Copyright 2026 The Ebank Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt returns the credential's expiry time when the backend token
// is a JWT with an exp claim. The claims are decoded without signature
// verification — the client has no key and never makes an authorization
// decision from them; this is display-only ("session expires at ...")
// and a hint for warning before the backend starts rejecting calls.
//
// Returns false when logged out or when the token is opaque to us,
// which is not an error: the contract treats the credential as opaque.
func (s *Store) ExpiresAt() (time.Time, bool) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	if token == "" {
		return time.Time{}, false
	}

	parser := jwt.NewParser()
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Expired reports whether the credential carries an exp claim in the
// past. An opaque token is never reported as expired.
func (s *Store) Expired(now time.Time) bool {
	expiresAt, ok := s.ExpiresAt()
	return ok && expiresAt.Before(now)
}
