package nist

import (
	"crypto/elliptic"
	"math/big"
	"testing"

	"github.com/aerius-labs/pkpad-go/field"
)

func TestBitLengths(t *testing.T) {
	if P256.BitLen() != 256 {
		t.Errorf("P256 bit length %d", P256.BitLen())
	}
	if P384.BitLen() != 384 {
		t.Errorf("P384 bit length %d", P384.BitLen())
	}
	if P521.BitLen() != 521 {
		t.Errorf("P521 bit length %d", P521.BitLen())
	}
	if P256.Modulus().Cmp(elliptic.P256().Params().N) != 0 {
		t.Error("P256 modulus is not the group order")
	}
}

func TestReduction(t *testing.T) {
	n := P256.Modulus()

	testCases := []struct {
		name     string
		input    *big.Int
		expected *big.Int
	}{
		{"Zero", big.NewInt(0), big.NewInt(0)},
		{"Small", big.NewInt(7), big.NewInt(7)},
		{"Order minus one", new(big.Int).Sub(n, big.NewInt(1)), new(big.Int).Sub(n, big.NewInt(1))},
		{"Order", n, big.NewInt(0)},
		{"All ones", new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)),
			new(big.Int).Mod(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)), n)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := field.FromBigInt[P256Scalar](tc.input)
			if got := field.ToBigInt(&e); got.Cmp(tc.expected) != 0 {
				t.Errorf("got %s, expected %s", got, tc.expected)
			}
		})
	}
}

func TestFixedWidth(t *testing.T) {
	var z P521Scalar
	z.SetBytes([]byte{0x01})
	if z[len(z)-1] != 0x01 {
		t.Fatalf("value not right-aligned: %x", z[:])
	}
	for _, b := range z[:len(z)-1] {
		if b != 0 {
			t.Fatalf("high bytes not cleared: %x", z[:])
		}
	}

	// reuse must overwrite previous contents
	z.SetBytes(new(big.Int).Lsh(big.NewInt(1), 520).Bytes())
	z.SetBytes([]byte{0x02})
	if z.String() != "2" {
		t.Fatalf("stale contents after SetBytes: %s", z.String())
	}
}

func TestEqual(t *testing.T) {
	n := P384.Modulus()
	a := field.FromBigInt[P384Scalar](big.NewInt(5))
	b := field.FromBigInt[P384Scalar](new(big.Int).Add(n, big.NewInt(5)))
	c := field.FromBigInt[P384Scalar](big.NewInt(6))

	if !a.Equal(&b) {
		t.Error("5 and n+5 should be equal")
	}
	if a.Equal(&c) {
		t.Error("5 and 6 should differ")
	}
}

func TestMatches(t *testing.T) {
	if !field.Matches(P256) || !field.Matches(P384) || !field.Matches(P521) {
		t.Fatal("NIST descriptor does not match its element type")
	}
	if field.Matches(field.New[P384Scalar]("x", p256N)) {
		t.Error("P-256 order accepted for a P-384 scalar")
	}
}
