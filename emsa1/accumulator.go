package emsa1

import (
	"hash"

	"github.com/aerius-labs/pkpad-go/field"
)

// Accumulator encodes a message supplied incrementally through Write.
// It is not safe for concurrent use.
type Accumulator[T any, PT field.Element[T]] struct {
	scheme *Scheme[T, PT]
	h      hash.Hash
}

// NewAccumulator returns an empty accumulator for s
func (s *Scheme[T, PT]) NewAccumulator() *Accumulator[T, PT] {
	return &Accumulator[T, PT]{
		scheme: s,
		h:      s.hash.New(),
	}
}

// Write absorbs more message bytes. It never returns an error.
func (a *Accumulator[T, PT]) Write(p []byte) (int, error) {
	return a.h.Write(p)
}

// Encode returns the encoding of everything written so far. The
// accumulator keeps its state, so more data may be written afterwards.
func (a *Accumulator[T, PT]) Encode() T {
	return a.scheme.fromDigest(a.h.Sum(nil))
}

// Verify reports whether claimed encodes everything written so far
func (a *Accumulator[T, PT]) Verify(claimed *T) bool {
	if claimed == nil {
		return false
	}
	expected := a.Encode()
	return PT(&expected).Equal(claimed)
}

// Reset discards all written data
func (a *Accumulator[T, PT]) Reset() {
	a.h.Reset()
}
