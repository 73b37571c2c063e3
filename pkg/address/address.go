// Package address normalises the hex account identities handed to the service
// by the authentication layer.
package address

import (
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/sha3"
)

const hexLen = 40

var ErrInvalidAddress = errors.New("address: expected 0x followed by 40 hex characters")

// Normalize trims, validates and lowercases an address. Mixed-case input is
// accepted without enforcing its checksum; identity is verified upstream.
func Normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if len(s) != hexLen+2 || !(strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")) {
		return "", ErrInvalidAddress
	}
	body := strings.ToLower(s[2:])
	if _, err := hex.DecodeString(body); err != nil {
		return "", ErrInvalidAddress
	}
	return "0x" + body, nil
}

// IsValid reports whether raw can be normalised.
func IsValid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}

// Checksum renders an address in EIP-55 mixed-case form. Values that are not
// addresses are returned unchanged.
func Checksum(raw string) string {
	norm, err := Normalize(raw)
	if err != nil {
		return raw
	}
	body := norm[2:]

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(body))
	digest := h.Sum(nil)

	out := make([]byte, hexLen)
	for i := 0; i < hexLen; i++ {
		c := body[i]
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if c >= 'a' && c <= 'f' && nibble&0x0f >= 8 {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return "0x" + string(out)
}
