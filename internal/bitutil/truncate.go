// Package bitutil converts hash digests into bounded big-endian integers.
package bitutil

// TruncateDigest interprets digest as a big-endian unsigned integer of
// n = 8*len(digest) bits and keeps only its leftmost bits bits.
//
// When n <= bits the digest is returned unchanged (as a copy). Otherwise the
// integer is shifted right by n-bits, so the result is strictly less than
// 2^bits. The shift is bit-level: bits need not be a multiple of 8.
//
// The result is big-endian and has ceil(min(n, bits)/8) bytes. No branch
// depends on digest contents.
func TruncateDigest(digest []byte, bits int) []byte {
	if bits <= 0 {
		return []byte{}
	}

	excess := len(digest)*8 - bits
	if excess <= 0 {
		out := make([]byte, len(digest))
		copy(out, digest)
		return out
	}

	// Whole bytes fall off the low end first, the remaining shift is < 8.
	src := digest[:len(digest)-excess/8]
	shift := uint(excess % 8)

	out := make([]byte, len(src))
	var carry byte
	for i, b := range src {
		out[i] = carry | b>>shift
		// b << 8 is 0 for a byte, which covers shift == 0
		carry = b << (8 - shift)
	}
	return out
}

// BitLen returns the bit length of the big-endian integer b.
func BitLen(b []byte) int {
	for i, v := range b {
		if v == 0 {
			continue
		}
		n := 0
		for ; v != 0; v >>= 1 {
			n++
		}
		return (len(b)-i-1)*8 + n
	}
	return 0
}
