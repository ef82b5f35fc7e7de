package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

const tokenByteSize = 16

// NewToken returns a fresh 128-bit random token in compact base64url form
// (22 characters, no padding).
func NewToken() (string, error) {
	var raw [tokenByteSize]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw[:]), nil
}

// CheckToken rejects strings that cannot be the output of [NewToken]. It is a
// cheap pre-filter only; possession of a well-formed token proves nothing until
// the store resolves it.
func CheckToken(token string) error {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return err
	}
	if len(raw) != tokenByteSize {
		return errors.New("invalid token size")
	}
	return nil
}
