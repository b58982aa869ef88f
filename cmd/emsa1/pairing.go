package main

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/aerius-labs/pkpad-go/digest"
	"github.com/aerius-labs/pkpad-go/emsa1"
	"github.com/aerius-labs/pkpad-go/field"
	"github.com/aerius-labs/pkpad-go/field/nist"
)

// pairing runs EMSA1 over one concrete field with a hash chosen at run time
type pairing struct {
	field  string
	bits   int
	encode func(h digest.Algorithm, msg []byte) (*big.Int, error)
	verify func(h digest.Algorithm, msg []byte, claimed *big.Int) (bool, error)
}

func bind[T any, PT field.Element[T]](f field.Field[T]) pairing {
	return pairing{
		field: f.Name(),
		bits:  f.BitLen(),
		encode: func(h digest.Algorithm, msg []byte) (*big.Int, error) {
			s, err := emsa1.New[T, PT](f, h)
			if err != nil {
				return nil, err
			}
			e := s.Encode(msg)
			return field.ToBigInt[T, PT](&e), nil
		},
		verify: func(h digest.Algorithm, msg []byte, claimed *big.Int) (bool, error) {
			s, err := emsa1.New[T, PT](f, h)
			if err != nil {
				return false, err
			}
			// a claim outside [0, p) is never a valid encoding
			if claimed.Sign() < 0 || claimed.Cmp(f.Modulus()) >= 0 {
				return false, nil
			}
			e := field.FromBigInt[T, PT](claimed)
			return s.Verify(msg, &e), nil
		},
	}
}

var pairings = map[string]pairing{
	"secp256r1": bind(nist.P256),
	"secp384r1": bind(nist.P384),
	"secp521r1": bind(nist.P521),
	"secp256k1": bind(field.Secp256k1Fr),
	"bn254":     bind(field.BN254Fr),
	"bls12_381": bind(field.BLS12381Fr),
	"babybear":  bind(field.BabyBear),
}

func lookupField(name string) (pairing, error) {
	p, ok := pairings[name]
	if !ok {
		return pairing{}, fmt.Errorf("%w: unknown field %q", ErrPrintUsage, name)
	}
	return p, nil
}

func fieldNames() []string {
	names := make([]string, 0, len(pairings))
	for name := range pairings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
