package merkle

// FullTree is an append-only Merkle tree that retains every interior node
// it has ever computed. It trades memory (O(n) digests) for the ability to
// produce an inclusion proof for any leaf appended so far.
//
// levels[0] holds the leaves in append order. levels[k] for k>0 holds the
// interior nodes one level above levels[k-1]: levels[k][i] is the combine
// of levels[k-1][2i] and levels[k-1][2i+1], or the duplicate-self combine
// of levels[k-1][2i] when that leaf has no right sibling yet. levels[len-1]
// always holds exactly one entry: the current root.
//
// Appending only ever changes the rightmost spine of the tree, so each
// Append recomputes at most the trailing one or two entries of each level
// rather than rebuilding it from scratch. This is the same sticky
// overwrite-vs-append behavior described for the tree's incremental cousin,
// expressed here as a plain recompute-from-below loop instead of an
// explicit carried flag: level k+1 must hold ceil(len(levels[k])/2)
// entries, and the loop grows or rewrites its tail until that invariant
// holds.
type FullTree struct {
	levels [][]Digest
}

// NewFullTree returns an empty tree.
func NewFullTree() *FullTree {
	return &FullTree{}
}

// NumLeaves reports how many leaves have been appended.
func (t *FullTree) NumLeaves() int {
	if len(t.levels) == 0 {
		return 0
	}
	return len(t.levels[0])
}

// Append adds a new leaf digest and brings every affected interior node up
// to date.
func (t *FullTree) Append(h Digest) {
	if len(t.levels) == 0 {
		t.levels = [][]Digest{{h}}
	} else {
		t.levels[0] = append(t.levels[0], h)
	}

	for k := 0; ; k++ {
		below := t.levels[k]
		m := len(below)

		var parent Digest
		if m%2 == 0 {
			parent = Combine(below[m-2], below[m-1])
		} else {
			parent = Combine(below[m-1], below[m-1])
		}

		if k+1 == len(t.levels) {
			t.levels = append(t.levels, []Digest{parent})
			return
		}

		above := t.levels[k+1]
		wantLen := (m + 1) / 2
		if wantLen > len(above) {
			t.levels[k+1] = append(above, parent)
		} else {
			above[len(above)-1] = parent
		}

		if len(t.levels[k+1]) == 1 {
			return
		}
	}
}

// Root returns the current root digest and true, or the zero digest and
// false if no leaves have been appended.
func (t *FullTree) Root() (Digest, bool) {
	if len(t.levels) == 0 {
		return Zero, false
	}
	top := t.levels[len(t.levels)-1]
	return top[0], true
}

// ProofFor returns the inclusion proof for the leaf at index, and true. It
// returns false if index is out of range.
//
// The proof is built bottom-up: at each level below the top, the sibling of
// the current node is recorded (Absent if the node is the unpaired last
// entry of an odd-length level), and the walk continues with the parent's
// index at the level above. The walk stops at the topmost level — the root —
// which is never itself part of the proof. A one-leaf tree therefore yields
// a single Absent entry, since its leaf is paired with itself to form the
// root.
func (t *FullTree) ProofFor(index int) (Proof, bool) {
	if index < 0 || index >= t.NumLeaves() {
		return Proof{}, false
	}

	var entries []ProofEntry
	idx := index
	for k := 0; k < len(t.levels)-1; k++ {
		level := t.levels[k]
		if idx%2 == 0 {
			if idx+1 < len(level) {
				entries = append(entries, SiblingRightEntry(level[idx+1]))
			} else {
				entries = append(entries, AbsentEntry())
			}
		} else {
			entries = append(entries, SiblingLeftEntry(level[idx-1]))
		}
		idx /= 2
	}
	return Proof{Entries: entries}, true
}
