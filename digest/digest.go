// Package digest defines the hash capability consumed by message encoding
// methods, together with the closed set of supported algorithms.
package digest

import (
	"crypto/sha1"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"

	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// ErrUnknownAlgorithm is returned by Lookup for names outside the supported set
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// Algorithm is a hash function with a fixed output length.
// Implementations must be safe for concurrent use; all state lives in the
// hash.Hash returned by New.
type Algorithm interface {
	// Name returns the conventional algorithm name, e.g. "SHA-256"
	Name() string

	// Size returns the digest length in bytes
	Size() int

	// New returns a fresh streaming hash state
	New() hash.Hash
}

// Sum returns the digest of msg under a
func Sum(a Algorithm, msg []byte) []byte {
	h := a.New()
	h.Write(msg)
	return h.Sum(nil)
}

type algorithm struct {
	name    string
	size    int
	newHash func() hash.Hash
}

func (a *algorithm) Name() string   { return a.name }
func (a *algorithm) Size() int      { return a.size }
func (a *algorithm) New() hash.Hash { return a.newHash() }
func (a *algorithm) String() string { return a.name }

// Supported algorithms
var (
	SHA1     Algorithm = &algorithm{"SHA-1", sha1.Size, sha1.New}
	SHA256   Algorithm = &algorithm{"SHA-256", sha256.Size, sha256.New}
	SHA384   Algorithm = &algorithm{"SHA-384", sha512.Size384, sha512.New384}
	SHA512   Algorithm = &algorithm{"SHA-512", sha512.Size, sha512.New}
	SHA3_256 Algorithm = &algorithm{"SHA3-256", 32, sha3.New256}
	SHA3_512 Algorithm = &algorithm{"SHA3-512", 64, sha3.New512}

	BLAKE2b256 Algorithm = &algorithm{"BLAKE2b-256", blake2b.Size256, mustBlake2b(blake2b.Size256)}
	BLAKE2b512 Algorithm = &algorithm{"BLAKE2b-512", blake2b.Size, mustBlake2b(blake2b.Size)}

	BLAKE3 Algorithm = &algorithm{"BLAKE3", 32, func() hash.Hash { return blake3.New(32, nil) }}

	// SHAKE128 and SHAKE256 are squeezed to a fixed length so they behave
	// like ordinary digests.
	SHAKE128 Algorithm = &algorithm{"SHAKE128", 32, func() hash.Hash { return newShake(sha3.NewShake128, 32) }}
	SHAKE256 Algorithm = &algorithm{"SHAKE256", 64, func() hash.Hash { return newShake(sha3.NewShake256, 64) }}
)

// All lists every supported algorithm
var All = []Algorithm{
	SHA1, SHA256, SHA384, SHA512,
	SHA3_256, SHA3_512,
	BLAKE2b256, BLAKE2b512,
	BLAKE3,
	SHAKE128, SHAKE256,
}

// Lookup returns the supported algorithm named name
func Lookup(name string) (Algorithm, error) {
	for _, a := range All {
		if a.Name() == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func mustBlake2b(size int) func() hash.Hash {
	return func() hash.Hash {
		// only fails for a bad size or an oversized key
		h, err := blake2b.New(size, nil)
		if err != nil {
			panic("blake2b: " + err.Error())
		}
		return h
	}
}
