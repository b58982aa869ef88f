// Package emsa1 implements EMSA1, the IEEE 1363 message encoding that turns
// an arbitrary message into an element of a prime field for use by
// (EC)DSA-style signature schemes.
//
// The message is hashed, the digest is read as a big-endian integer and,
// when the digest has more bits than the field, shifted right so only its
// leftmost L bits remain (L being the bit length of the modulus). The result
// is reduced into the field.
//
// A Scheme pairs one field with one hash algorithm and is fixed at
// construction:
//
//	s, err := emsa1.New(nist.P256, digest.SHA256)
//	if err != nil {
//		return err
//	}
//	e := s.Encode(msg)
//	ok := s.Verify(msg, &e)
//
// Schemes carry no mutable state and may be shared between goroutines.
package emsa1
