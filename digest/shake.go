package digest

import (
	"golang.org/x/crypto/sha3"
)

// shakeHash adapts a SHAKE XOF to hash.Hash by squeezing a fixed number of
// output bytes.
type shakeHash struct {
	newXOF func() sha3.ShakeHash
	xof    sha3.ShakeHash
	size   int
}

func newShake(newXOF func() sha3.ShakeHash, size int) *shakeHash {
	return &shakeHash{newXOF: newXOF, xof: newXOF(), size: size}
}

func (s *shakeHash) Write(p []byte) (int, error) {
	return s.xof.Write(p)
}

// Sum appends the digest to b without changing the absorbed state
func (s *shakeHash) Sum(b []byte) []byte {
	out := make([]byte, s.size)
	s.xof.Clone().Read(out)
	return append(b, out...)
}

func (s *shakeHash) Reset() {
	s.xof = s.newXOF()
}

func (s *shakeHash) Size() int {
	return s.size
}

func (s *shakeHash) BlockSize() int {
	return s.xof.BlockSize()
}
