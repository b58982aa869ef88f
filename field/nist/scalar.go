// Package nist provides the scalar fields of the NIST prime curves
// (secp256r1, secp384r1, secp521r1), i.e. integers modulo the group order.
//
// gnark-crypto has no backend for these curves. Elements are stored as
// fixed-width canonical big-endian bytes and compared in constant time.
package nist

import (
	"crypto/elliptic"
	"crypto/subtle"
	"math/big"

	"github.com/aerius-labs/pkpad-go/field"
)

var (
	p256N = elliptic.P256().Params().N
	p384N = elliptic.P384().Params().N
	p521N = elliptic.P521().Params().N
)

// Scalar fields of the NIST curves
var (
	P256 = field.New[P256Scalar]("secp256r1_fr", p256N)
	P384 = field.New[P384Scalar]("secp384r1_fr", p384N)
	P521 = field.New[P521Scalar]("secp521r1_fr", p521N)
)

// P256Scalar is an integer modulo the secp256r1 group order
type P256Scalar [32]byte

// P384Scalar is an integer modulo the secp384r1 group order
type P384Scalar [48]byte

// P521Scalar is an integer modulo the secp521r1 group order
type P521Scalar [66]byte

// SetBytes sets z to the big-endian integer e reduced modulo the group order
func (z *P256Scalar) SetBytes(e []byte) *P256Scalar {
	setBytes(z[:], e, p256N)
	return z
}

// Equal returns z == x; constant-time
func (z *P256Scalar) Equal(x *P256Scalar) bool {
	return subtle.ConstantTimeCompare(z[:], x[:]) == 1
}

// BigInt sets and returns res as the integer value of z
func (z *P256Scalar) BigInt(res *big.Int) *big.Int {
	return res.SetBytes(z[:])
}

func (z *P256Scalar) String() string {
	return z.BigInt(new(big.Int)).String()
}

// SetBytes sets z to the big-endian integer e reduced modulo the group order
func (z *P384Scalar) SetBytes(e []byte) *P384Scalar {
	setBytes(z[:], e, p384N)
	return z
}

// Equal returns z == x; constant-time
func (z *P384Scalar) Equal(x *P384Scalar) bool {
	return subtle.ConstantTimeCompare(z[:], x[:]) == 1
}

// BigInt sets and returns res as the integer value of z
func (z *P384Scalar) BigInt(res *big.Int) *big.Int {
	return res.SetBytes(z[:])
}

func (z *P384Scalar) String() string {
	return z.BigInt(new(big.Int)).String()
}

// SetBytes sets z to the big-endian integer e reduced modulo the group order
func (z *P521Scalar) SetBytes(e []byte) *P521Scalar {
	setBytes(z[:], e, p521N)
	return z
}

// Equal returns z == x; constant-time
func (z *P521Scalar) Equal(x *P521Scalar) bool {
	return subtle.ConstantTimeCompare(z[:], x[:]) == 1
}

// BigInt sets and returns res as the integer value of z
func (z *P521Scalar) BigInt(res *big.Int) *big.Int {
	return res.SetBytes(z[:])
}

func (z *P521Scalar) String() string {
	return z.BigInt(new(big.Int)).String()
}

// setBytes writes e mod n into dst as fixed-width big-endian.
// dst must be wide enough for n-1.
func setBytes(dst, e []byte, n *big.Int) {
	v := new(big.Int).SetBytes(e)
	if v.Cmp(n) >= 0 {
		v.Mod(v, n)
	}
	v.FillBytes(dst)
}
