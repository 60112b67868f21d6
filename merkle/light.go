package merkle

// nodeState tags the three states a LightTree frontier node can be in.
// Full means both children of the node are known and its hash is final
// until the next taller apex is grown above it. PartialLeft/PartialRight
// mean the node's right side is not yet complete. A PartialRight node's
// hash combines its known left child with the current, duplicate-padded
// value of the level below it (Combine(left, left) when it is first
// created); a PartialLeft node's hash is the duplicate-self combine of the
// value below it. Either is overwritten in place on the next Append that
// reaches this height.
type nodeState uint8

const (
	stateFull nodeState = iota
	statePartialLeft
	statePartialRight
)

// frontierNode is one level of a LightTree's retained frontier.
type frontierNode struct {
	state nodeState
	left  Digest // the known child; meaningless when state == stateFull
	hash  Digest
}

// LightTree is the incremental counterpart of FullTree: it retains only the
// O(log n) frontier nodes needed to keep appending and to report the
// current root, not the full interior-node history. It cannot produce
// inclusion proofs; a server that needs those keeps a FullTree alongside.
type LightTree struct {
	frontier []frontierNode
	numLeft  int
}

// NewLightTree returns an empty incremental tree.
func NewLightTree() *LightTree {
	return &LightTree{}
}

// NumLeaves reports how many leaves have been appended.
func (t *LightTree) NumLeaves() int {
	return t.numLeft
}

// Append folds a new leaf digest into the frontier.
func (t *LightTree) Append(h Digest) {
	t.numLeft++

	if len(t.frontier) == 0 {
		t.frontier = []frontierNode{{
			state: statePartialRight,
			left:  h,
			hash:  Combine(h, h),
		}}
		return
	}

	// Topmost-node rule: once the current apex is Full, it can no longer
	// absorb a new leaf directly — grow a fresh apex above it, itself
	// duplicate-padded until its own right child arrives.
	if top := t.frontier[len(t.frontier)-1]; top.state == stateFull {
		t.frontier = append(t.frontier, frontierNode{
			state: statePartialRight,
			left:  top.hash,
			hash:  Combine(top.hash, top.hash),
		})
	}

	stored := false
	prevFull := false
	cur := h
	for i := range t.frontier {
		n := t.frontier[i]
		var next frontierNode

		switch {
		case n.state == statePartialLeft:
			if prevFull {
				next = frontierNode{state: statePartialRight, left: cur, hash: Combine(cur, cur)}
			} else {
				next = frontierNode{state: statePartialLeft, left: n.left, hash: Combine(cur, cur)}
			}
		case n.state == statePartialRight && !stored:
			next = frontierNode{state: stateFull, left: n.left, hash: Combine(n.left, cur)}
			stored = true
		case n.state == statePartialRight && stored:
			if prevFull {
				next = frontierNode{state: stateFull, left: n.left, hash: Combine(n.left, cur)}
			} else {
				next = frontierNode{state: statePartialRight, left: n.left, hash: Combine(n.left, cur)}
			}
		case n.state == stateFull && !stored:
			next = frontierNode{state: statePartialRight, left: cur, hash: Combine(cur, cur)}
			stored = true
		default: // stateFull && stored
			next = frontierNode{state: statePartialLeft, left: cur, hash: Combine(cur, cur)}
		}

		t.frontier[i] = next
		prevFull = next.state == stateFull
		cur = next.hash
	}
}

// Root returns the current root digest and true, or the zero digest and
// false if no leaves have been appended.
func (t *LightTree) Root() (Digest, bool) {
	if len(t.frontier) == 0 {
		return Zero, false
	}
	return t.frontier[len(t.frontier)-1].hash, true
}
