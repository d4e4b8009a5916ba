// Package token generates the opaque identifiers used by the action
// protocol: approval tokens and confirmation numbers. Both are derived from
// crypto/rand so they are unpredictable.
package token

import (
	"crypto/rand"
	"encoding/base32"
	"encoding/base64"
)

// NewApprovalToken returns an opaque, URL-safe approval token.
func NewApprovalToken() string {
	buf := make([]byte, 18)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic("token: reading random bytes: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}

// NewConfirmationNumber returns a short uppercase confirmation number
// suitable for reading back to a user.
func NewConfirmationNumber() string {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		panic("token: reading random bytes: " + err.Error())
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf)
}
