package shared

import (
	"encoding/hex"
	"fmt"
)

type (
	// Entropy is the mutable prefix of the work buffer. It is incremented as a little-endian counter while searching.
	Entropy [EntropySize]byte

	// Nonce is the entropy value at the moment a search succeeded.
	Nonce = Entropy

	// Digest holds the truncated hash of a work buffer.
	Digest [DigestSize]byte

	// Target is the threshold a digest must reach to be accepted.
	Target [TargetSize]byte

	// WorkBuffer is the preimage hashed on every attempt: entropy followed by the challenge.
	WorkBuffer [WorkBufferSize]byte
)

// String returns the hex encoding of the nonce (16 characters).
func (e Entropy) String() string {
	return hex.EncodeToString(e[:])
}

// MarshalText encodes the nonce as hex.
func (e Entropy) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText decodes a hex encoded nonce, see ParseNonce.
func (e *Entropy) UnmarshalText(text []byte) (err error) {
	*e, err = ParseNonce(string(text))
	return
}

// ParseNonce decodes a hex encoded nonce as returned by a proof generator.
func ParseNonce(s string) (Nonce, error) {
	var n Nonce
	if len(s) != hex.EncodedLen(EntropySize) {
		return n, fmt.Errorf("%w: expected %d hex characters, given: %d", ErrInvalidNonce, hex.EncodedLen(EntropySize), len(s))
	}
	if _, err := hex.Decode(n[:], []byte(s)); err != nil {
		return n, fmt.Errorf("%w: %v", ErrInvalidNonce, err)
	}
	return n, nil
}

// Challenge returns the challenge part of the work buffer.
func (b *WorkBuffer) Challenge() Challenge {
	var ch Challenge
	copy(ch[:], b[EntropySize:])
	return ch
}

// Entropy returns the entropy part of the work buffer.
func (b *WorkBuffer) Entropy() Entropy {
	var e Entropy
	copy(e[:], b[:EntropySize])
	return e
}

func (t Target) String() string {
	return hex.EncodeToString(t[:])
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}
