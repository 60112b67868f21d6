package merkle

import (
	"encoding/hex"

	"gitlab.com/NebulousLabs/errors"
	"golang.org/x/crypto/sha3"
)

// Size is the width, in bytes, of a Digest. SHA3-256 produces 32 bytes.
const Size = 32

// Digest is a fixed-width cryptographic hash. It is the leaf, interior-node,
// and root value type used throughout the Merkle commitment subsystem.
type Digest [Size]byte

// Zero is the all-zero digest. It is never produced by Sum or Combine for
// non-adversarial input, but is returned by operations that have no
// meaningful digest to report (e.g. the root of an empty tree).
var Zero Digest

// Sum returns the digest of data: Sum(data) = SHA3-256(data).
func Sum(data []byte) Digest {
	return sha3.Sum256(data)
}

// Combine returns the digest formed by hashing the concatenation of a and b,
// in that order. Combine is the binary combiner used to build interior nodes
// from their children; it is not commutative.
func Combine(a, b Digest) Digest {
	buf := make([]byte, 0, 2*Size)
	buf = append(buf, a[:]...)
	buf = append(buf, b[:]...)
	return Sum(buf)
}

// Bytes returns a copy of the digest's raw bytes.
func (d Digest) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, d[:])
	return out
}

// String returns the lowercase hexadecimal form of the digest. It is the
// canonical interchange form described in spec.md §3.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Equal reports whether d and other are byte-wise identical.
func (d Digest) Equal(other Digest) bool {
	return d == other
}

// ParseHex parses the canonical lowercase-hex form of a Digest. It is the
// exact inverse of String: ParseHex(d.String()) == d for every Digest d.
// ParseHex rejects any string that is not exactly 2*Size lowercase hex
// characters.
func ParseHex(s string) (Digest, error) {
	var d Digest
	if len(s) != 2*Size {
		return d, errors.AddContext(errMalformedDigest, "wrong length")
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return d, errors.Extend(errMalformedDigest, err)
	}
	// hex.DecodeString accepts both cases; reject uppercase explicitly so
	// that the canonical form round-trips exactly as documented.
	if hex.EncodeToString(raw) != s {
		return d, errors.AddContext(errMalformedDigest, "not canonical lowercase hex")
	}
	copy(d[:], raw)
	return d, nil
}

// MarshalJSON implements json.Marshaler, encoding the digest as its
// canonical hex string.
func (d Digest) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting only the canonical
// hex string form.
func (d *Digest) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.AddContext(errMalformedDigest, "not a JSON string")
	}
	parsed, err := ParseHex(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
