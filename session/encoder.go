package session

import (
	"bytes"
	"errors"
)

const identityFormatVersion = 1

// ErrCorruptIdentity is returned when a stored identity blob cannot be decoded.
var ErrCorruptIdentity = errors.New("corrupt identity blob")

// Encode serializes an [Identity] into the compact binary form stored under the
// token key in Redis: version byte, then length-prefixed email and role.
func Encode(ident Identity) ([]byte, error) {
	if len(ident.Email) > 255 {
		return nil, errors.New("email too long")
	}
	if len(ident.Role) > 255 {
		return nil, errors.New("role too long")
	}

	var buf bytes.Buffer
	buf.WriteByte(identityFormatVersion)
	buf.WriteByte(byte(len(ident.Email)))
	buf.WriteString(ident.Email)
	buf.WriteByte(byte(len(ident.Role)))
	buf.WriteString(ident.Role)

	return buf.Bytes(), nil
}

// Decode parses a blob produced by [Encode]. Any structural defect fails with
// [ErrCorruptIdentity]; no partial identities are returned.
func Decode(data []byte) (Identity, error) {
	if len(data) < 3 || data[0] != identityFormatVersion {
		return Identity{}, ErrCorruptIdentity
	}

	idx := 1
	emailLen := int(data[idx])
	idx++
	if len(data) < idx+emailLen+1 {
		return Identity{}, ErrCorruptIdentity
	}
	email := string(data[idx : idx+emailLen])
	idx += emailLen

	roleLen := int(data[idx])
	idx++
	if len(data) != idx+roleLen {
		return Identity{}, ErrCorruptIdentity
	}
	role := string(data[idx : idx+roleLen])

	if email == "" {
		return Identity{}, ErrCorruptIdentity
	}

	return Identity{Email: email, Role: role}, nil
}
