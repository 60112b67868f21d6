package merkle

import "gitlab.com/NebulousLabs/errors"

// Sentinel errors surfaced at the core's boundary (spec.md §7). Core
// algorithms that are infallible by contract (Sum, Combine, append, the
// fold in Verify) never return an error; these are only raised by the
// parsing/decoding routines that sit at the edge of the package and by
// BuildBatchProof's range check.
var (
	// errMalformedDigest is returned by ParseHex (and Digest's JSON
	// unmarshaling) when the input is not a canonical lowercase-hex digest
	// of the expected length.
	errMalformedDigest = errors.New("malformed digest")

	// errMalformedProof is returned when decoding a Proof or a LightTree
	// frontier whose wire form carries an unknown tag or structurally
	// inconsistent data, and by BuildBatchProof for an out-of-bounds range.
	errMalformedProof = errors.New("malformed proof")
)
