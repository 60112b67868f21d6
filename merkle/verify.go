package merkle

// Verify reports whether proof ties leaf to root: it folds leaf through
// every entry of proof, in order, and compares the result to root.
//
// Folding is pure and total. There is no short-circuit on a mismatched
// intermediate value and no special-casing of an empty proof (Verify(root,
// root, Proof{}) is true by construction, the n=0 case never arises since
// an empty tree has no leaves to prove). The only comparison against root
// happens once, after every entry has been folded.
func Verify(root Digest, leaf Digest, proof Proof) bool {
	acc := leaf
	for _, e := range proof.Entries {
		if e.IsAbsent() {
			acc = Combine(acc, acc)
			continue
		}
		sibling, _ := e.Sibling()
		if e.OnLeft() {
			acc = Combine(sibling, acc)
		} else {
			acc = Combine(acc, sibling)
		}
	}
	return acc.Equal(root)
}
