package emsa1

import (
	"errors"
	"fmt"
	"math/big"

	logging "github.com/ipfs/go-log/v2"

	"github.com/aerius-labs/pkpad-go/digest"
	"github.com/aerius-labs/pkpad-go/encoding"
	"github.com/aerius-labs/pkpad-go/field"
	"github.com/aerius-labs/pkpad-go/internal/bitutil"
)

var log = logging.Logger("emsa1")

var (
	// ErrDegenerateField is returned for fields whose modulus is 1 or less
	ErrDegenerateField = errors.New("field bit length must be positive")

	// ErrModulusMismatch is returned when a field descriptor's modulus is
	// not the one its element type reduces by
	ErrModulusMismatch = errors.New("field modulus does not match element type")

	// ErrNilHash is returned when no hash algorithm is supplied
	ErrNilHash = errors.New("hash algorithm is required")

	// ErrDigestLength is returned for pre-hashed input of the wrong size
	ErrDigestLength = encoding.ErrDigestLength
)

// Scheme is EMSA1 over the field with element type T using one hash
// algorithm.
type Scheme[T any, PT field.Element[T]] struct {
	field field.Field[T]
	hash  digest.Algorithm
	bits  int
}

// New pairs field f with hash algorithm h
func New[T any, PT field.Element[T]](f field.Field[T], h digest.Algorithm) (*Scheme[T, PT], error) {
	if h == nil {
		log.Errorw("rejected configuration", "field", f.Name(), "error", ErrNilHash)
		return nil, ErrNilHash
	}
	if f.BitLen() == 0 {
		log.Errorw("rejected configuration", "field", f.Name(), "hash", h.Name(), "error", ErrDegenerateField)
		return nil, fmt.Errorf("%w: %s", ErrDegenerateField, f.Name())
	}
	if !field.Matches[T, PT](f) {
		log.Errorw("rejected configuration", "field", f.Name(), "hash", h.Name(), "error", ErrModulusMismatch)
		return nil, fmt.Errorf("%w: %s", ErrModulusMismatch, f.Name())
	}

	s := &Scheme[T, PT]{
		field: f,
		hash:  h,
		bits:  f.BitLen(),
	}

	log.Debugw("configured encoding",
		"method", s.Name(),
		"field", f.Name(),
		"field_bits", s.bits,
		"digest_bits", 8*h.Size(),
		"truncates", 8*h.Size() > s.bits,
	)
	return s, nil
}

// MustNew is like New but panics on an invalid configuration
func MustNew[T any, PT field.Element[T]](f field.Field[T], h digest.Algorithm) *Scheme[T, PT] {
	s, err := New[T, PT](f, h)
	if err != nil {
		panic("emsa1: " + err.Error())
	}
	return s
}

// Name returns "EMSA1(<hash>)"
func (s *Scheme[T, PT]) Name() string {
	return "EMSA1(" + s.hash.Name() + ")"
}

// Field returns the target field
func (s *Scheme[T, PT]) Field() field.Field[T] {
	return s.field
}

// Hash returns the hash algorithm
func (s *Scheme[T, PT]) Hash() digest.Algorithm {
	return s.hash
}

// Encode hashes msg and maps the digest into the field
func (s *Scheme[T, PT]) Encode(msg []byte) T {
	return s.fromDigest(digest.Sum(s.hash, msg))
}

// EncodeDigest maps a digest produced by the scheme's hash algorithm into
// the field
func (s *Scheme[T, PT]) EncodeDigest(d []byte) (T, error) {
	if len(d) != s.hash.Size() {
		var zero T
		return zero, fmt.Errorf("%w: got %d bytes, %s produces %d",
			ErrDigestLength, len(d), s.hash.Name(), s.hash.Size())
	}
	return s.fromDigest(d), nil
}

// Verify reports whether claimed is the encoding of msg. The comparison
// takes the same time wherever the two values differ.
func (s *Scheme[T, PT]) Verify(msg []byte, claimed *T) bool {
	if claimed == nil {
		return false
	}
	expected := s.Encode(msg)
	return PT(&expected).Equal(claimed)
}

// VerifyDigest is Verify for a pre-hashed message
func (s *Scheme[T, PT]) VerifyDigest(d []byte, claimed *T) (bool, error) {
	expected, err := s.EncodeDigest(d)
	if err != nil {
		return false, err
	}
	if claimed == nil {
		return false, nil
	}
	return PT(&expected).Equal(claimed), nil
}

func (s *Scheme[T, PT]) fromDigest(d []byte) T {
	var e T
	PT(&e).SetBytes(bitutil.TruncateDigest(d, s.bits))
	return e
}

// DigestToInt returns the integer EMSA1 derives from digest d for a field
// of bit length bits, before any modular reduction. The result is below
// 2^bits but may exceed the modulus.
func DigestToInt(d []byte, bits int) *big.Int {
	return new(big.Int).SetBytes(bitutil.TruncateDigest(d, bits))
}
