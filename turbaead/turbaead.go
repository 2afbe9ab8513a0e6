// Package turbaead is a small authenticated-encryption construction built
// on top of turb1600. It adapts an NRS.A6-style AEAD architecture: key
// material from a keyed sponge, encryption with XSalsa20, a keyed MAC tag.
// A master key and session nonce derive a hash key and a cipher key, the
// cipher key drives golang.org/x/crypto/salsa20 in XSalsa20 mode, and the
// hash key drives a MAC tag checked in constant time.
//
// Because turb1600.Hash has no variable-length squeeze, unlike a
// SHAKE-style primitive that can be read from indefinitely, every distinct
// piece of key material here comes from a separate Hash call distinguished
// by a one-byte domain separator, rather than from successive reads of one
// sponge.
//
// This package makes no claim of security: it inherits turb1600's
// "no security claim" status and exists to exercise golang.org/x/crypto/
// salsa20 and crypto/subtle against a realistic construction.
package turbaead

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/salsa20"

	"github.com/Turbulenss/Turb1600/turb1600"
)

const (
	nonceLen = 24
	tagLen   = 32

	dsHashKey   = 0x01
	dsCipherKey = 0x02
	dsIV        = 0x03
	dsTag       = 0x04
)

// ErrAuthenticationFailed is returned by Open when the tag does not match.
var ErrAuthenticationFailed = errors.New("turbaead: authentication failed")

// ErrSealedTooShort is returned by Open when the input is shorter than the
// fixed nonce+tag overhead.
var ErrSealedTooShort = errors.New("turbaead: sealed input shorter than nonce+tag overhead")

// Sealer seals and opens messages under a single master key.
type Sealer struct {
	hashKey   [32]byte
	cipherKey [32]byte
}

// New derives a Sealer's hash and cipher keys from a master key and a
// session nonce (distinct from the per-message nonce Seal generates).
func New(key, sessionNonce []byte) *Sealer {
	var s Sealer
	hk := turb1600.Hash(concat(key, []byte{dsHashKey}, sessionNonce))
	ck := turb1600.Hash(concat(key, []byte{dsCipherKey}, sessionNonce))
	copy(s.hashKey[:], hk[:32])
	copy(s.cipherKey[:], ck[:32])
	return &s
}

// Overhead is the number of bytes Seal adds beyond the plaintext length.
func (s *Sealer) Overhead() int { return nonceLen + tagLen }

// Seal encrypts plaintext and authenticates it together with
// associatedData, returning nonce || tag || ciphertext.
func (s *Sealer) Seal(plaintext, associatedData []byte) ([]byte, error) {
	nonce := make([]byte, nonceLen)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	iv := s.deriveIV(nonce, associatedData)
	ciphertext := make([]byte, len(plaintext))
	salsa20.XORKeyStream(ciphertext, plaintext, iv, &s.cipherKey)

	tag := s.deriveTag(nonce, associatedData, ciphertext)

	out := make([]byte, 0, nonceLen+tagLen+len(ciphertext))
	out = append(out, nonce...)
	out = append(out, tag...)
	out = append(out, ciphertext...)
	return out, nil
}

// Open verifies and decrypts a value produced by Seal under the same key,
// session nonce, and associatedData.
func (s *Sealer) Open(sealed, associatedData []byte) ([]byte, error) {
	if len(sealed) < nonceLen+tagLen {
		return nil, ErrSealedTooShort
	}
	nonce := sealed[:nonceLen]
	tag := sealed[nonceLen : nonceLen+tagLen]
	ciphertext := sealed[nonceLen+tagLen:]

	want := s.deriveTag(nonce, associatedData, ciphertext)
	if subtle.ConstantTimeCompare(tag, want) != 1 {
		return nil, ErrAuthenticationFailed
	}

	iv := s.deriveIV(nonce, associatedData)
	plaintext := make([]byte, len(ciphertext))
	salsa20.XORKeyStream(plaintext, ciphertext, iv, &s.cipherKey)
	return plaintext, nil
}

func (s *Sealer) deriveIV(nonce, associatedData []byte) []byte {
	d := turb1600.Hash(concat(s.hashKey[:], []byte{dsIV}, nonce, associatedData))
	iv := make([]byte, nonceLen)
	copy(iv, d[:nonceLen])
	return iv
}

func (s *Sealer) deriveTag(nonce, associatedData, ciphertext []byte) []byte {
	d := turb1600.Hash(concat(s.hashKey[:], []byte{dsTag}, nonce, associatedData, ciphertext))
	tag := make([]byte, tagLen)
	copy(tag, d[:tagLen])
	return tag
}

// concat returns the concatenation of parts, without mutating any of them.
func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
