// Package field describes the prime fields message encodings map into,
// backed by gnark-crypto field arithmetic.
package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bn254fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	secp256k1fr "github.com/consensys/gnark-crypto/ecc/secp256k1/fr"
	"github.com/consensys/gnark-crypto/field/babybear"
)

// Element is satisfied by a pointer to a prime field element type T.
//
// SetBytes interprets its input as a big-endian unsigned integer of any
// length and reduces it modulo p. Equal must run in constant time.
type Element[T any] interface {
	*T
	SetBytes(e []byte) *T
	Equal(x *T) bool
	BigInt(res *big.Int) *big.Int
	String() string
}

// Field is an immutable description of the prime field whose elements have
// type T.
type Field[T any] struct {
	name    string
	modulus *big.Int
	bitLen  int
}

// New describes a field of element type T. modulus must be the prime T
// reduces by.
func New[T any](name string, modulus *big.Int) Field[T] {
	return Field[T]{
		name:    name,
		modulus: new(big.Int).Set(modulus),
		bitLen:  BitLen(modulus),
	}
}

// Matches reports whether T reduces by exactly the modulus p of f: p maps
// to zero and p-1 is kept unreduced.
func Matches[T any, PT Element[T]](f Field[T]) bool {
	if f.modulus.Sign() <= 0 {
		return false
	}
	var e, zero T
	PT(&e).SetBytes(f.modulus.Bytes())
	if !PT(&e).Equal(&zero) {
		return false
	}

	pm1 := new(big.Int).Sub(f.modulus, big.NewInt(1))
	PT(&e).SetBytes(pm1.Bytes())
	return PT(&e).BigInt(new(big.Int)).Cmp(pm1) == 0
}

// BitLen returns the minimal L with 2^L > p-1, or 0 when p <= 1
func BitLen(p *big.Int) int {
	if p.Cmp(big.NewInt(1)) <= 0 {
		return 0
	}
	return new(big.Int).Sub(p, big.NewInt(1)).BitLen()
}

// Name returns the field name
func (f Field[T]) Name() string {
	return f.name
}

// Modulus returns a copy of p
func (f Field[T]) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// BitLen returns L, the number of bits needed to represent p-1
func (f Field[T]) BitLen() int {
	return f.bitLen
}

// FromBytes reduces the big-endian integer b into the field
func FromBytes[T any, PT Element[T]](b []byte) T {
	var e T
	PT(&e).SetBytes(b)
	return e
}

// FromBigInt reduces the non-negative integer v into the field.
// It panics if v is negative.
func FromBigInt[T any, PT Element[T]](v *big.Int) T {
	if v.Sign() < 0 {
		panic("field: negative value " + v.String())
	}
	return FromBytes[T, PT](v.Bytes())
}

// ToBigInt converts to big.Int
func ToBigInt[T any, PT Element[T]](e *T) *big.Int {
	return PT(e).BigInt(new(big.Int))
}

// Scalar fields of pairing-friendly and Koblitz curves, and BabyBear
var (
	BabyBear    = New[babybear.Element]("babybear", babybear.Modulus())
	BN254Fr     = New[bn254fr.Element]("bn254_fr", bn254fr.Modulus())
	BLS12381Fr  = New[fr.Element]("bls12_381_fr", fr.Modulus())
	Secp256k1Fr = New[secp256k1fr.Element]("secp256k1_fr", secp256k1fr.Modulus())
)
