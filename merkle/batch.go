package merkle

import "gitlab.com/NebulousLabs/errors"

// BatchProof is a supplementary, convenience-oriented membership proof for
// a contiguous run of leaves, adapted from this package's teacher's range
// and diff machinery. Unlike that machinery, which built a minimal proof
// whose size is proportional to the range's boundary rather than its
// width, BatchProof simply bundles one independent per-leaf Proof per
// index in the range. It is larger on the wire than a true range proof
// would be, but its correctness reduces entirely to the already-verified
// single-leaf Verify, which matters more here than shaving bytes: nothing
// in this repository runs to catch a subtler range-proof bug.
//
// A FullTree is required to build one; a LightTree cannot produce per-leaf
// proofs at all.
type BatchProof struct {
	Start  int
	Leaves []Digest
	Proofs []Proof
}

// BuildBatchProof returns the BatchProof for the contiguous leaf range
// [start, end) of t.
func BuildBatchProof(t *FullTree, start, end int) (BatchProof, error) {
	n := t.NumLeaves()
	if start < 0 || end < start || end > n {
		return BatchProof{}, errors.AddContext(errMalformedProof, "batch range out of bounds")
	}

	bp := BatchProof{
		Start:  start,
		Leaves: make([]Digest, 0, end-start),
		Proofs: make([]Proof, 0, end-start),
	}
	for i := start; i < end; i++ {
		proof, ok := t.ProofFor(i)
		if !ok {
			return BatchProof{}, errors.AddContext(errMalformedProof, "batch range out of bounds")
		}
		bp.Leaves = append(bp.Leaves, t.levels[0][i])
		bp.Proofs = append(bp.Proofs, proof)
	}
	return bp, nil
}

// VerifyBatch reports whether every leaf in bp folds, through its matching
// proof, to root. It is exactly len(bp.Leaves) independent calls to Verify;
// a single failure fails the whole batch.
func VerifyBatch(root Digest, bp BatchProof) bool {
	if len(bp.Leaves) != len(bp.Proofs) {
		return false
	}
	for i, leaf := range bp.Leaves {
		if !Verify(root, leaf, bp.Proofs[i]) {
			return false
		}
	}
	return true
}
