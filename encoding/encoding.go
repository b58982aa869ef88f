// Package encoding defines the interface shared by message encoding methods
// that map messages into prime field elements ahead of signing.
package encoding

import "errors"

// ErrDigestLength indicates a pre-hashed digest of the wrong size
var ErrDigestLength = errors.New("digest length does not match hash output size")

// Method encodes messages as elements of a prime field with element type T.
// Implementations hold no mutable state and are safe for concurrent use.
type Method[T any] interface {
	// Name returns the method name, e.g. "EMSA1(SHA-256)"
	Name() string

	// Encode hashes msg and maps the digest into the field
	Encode(msg []byte) T

	// EncodeDigest maps an already computed digest into the field.
	// Returns ErrDigestLength if the digest has the wrong size.
	EncodeDigest(digest []byte) (T, error)

	// Verify reports whether claimed is the encoding of msg.
	// A mismatch is a normal outcome, not an error.
	Verify(msg []byte, claimed *T) bool
}

// Encode applies m to msg
func Encode[T any](m Method[T], msg []byte) T {
	return m.Encode(msg)
}

// Verify checks claimed against the encoding of msg under m
func Verify[T any](m Method[T], msg []byte, claimed *T) bool {
	return m.Verify(msg, claimed)
}
