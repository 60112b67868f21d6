package merkle

import (
	"encoding/json"

	"gitlab.com/NebulousLabs/errors"
)

// entryKind tags the three closed variants a ProofEntry can take (spec.md
// §3 Proof, §6 Proof wire form). There is no open extension: every switch
// over entryKind in this package is exhaustive.
type entryKind uint8

const (
	entryAbsent entryKind = iota
	entrySiblingLeft
	entrySiblingRight
)

// ProofEntry is one step of an inclusion proof: either the duplicate-self
// padding step (Absent), or a concrete sibling digest tagged with which side
// of the folded accumulator it occupies.
type ProofEntry struct {
	kind    entryKind
	sibling Digest
}

// AbsentEntry returns the entry emitted at an odd-length level whose last
// node has no real sibling (spec.md §4.2 "duplicate-self padding").
func AbsentEntry() ProofEntry {
	return ProofEntry{kind: entryAbsent}
}

// SiblingLeftEntry returns a proof entry whose sibling occupies the left
// side of the fold: Verify computes combine(sibling, accumulator).
func SiblingLeftEntry(sibling Digest) ProofEntry {
	return ProofEntry{kind: entrySiblingLeft, sibling: sibling}
}

// SiblingRightEntry returns a proof entry whose sibling occupies the right
// side of the fold: Verify computes combine(accumulator, sibling).
func SiblingRightEntry(sibling Digest) ProofEntry {
	return ProofEntry{kind: entrySiblingRight, sibling: sibling}
}

// IsAbsent reports whether e is the duplicate-self padding step.
func (e ProofEntry) IsAbsent() bool {
	return e.kind == entryAbsent
}

// Sibling returns the entry's sibling digest and true, or the zero digest
// and false if e is Absent.
func (e ProofEntry) Sibling() (Digest, bool) {
	if e.kind == entryAbsent {
		return Zero, false
	}
	return e.sibling, true
}

// OnLeft reports whether the sibling occupies the left side of the fold.
// It is only meaningful when e is not Absent.
func (e ProofEntry) OnLeft() bool {
	return e.kind == entrySiblingLeft
}

// Proof is the ordered, bottom-to-top sequence of proof entries produced by
// FullTree.ProofFor and consumed by Verify.
type Proof struct {
	Entries []ProofEntry
}

// Len reports the number of entries in the proof, i.e. the tree depth at
// the time the proof was emitted.
func (p Proof) Len() int {
	return len(p.Entries)
}

type wireProofEntry struct {
	Type    string  `json:"type"`
	Sibling *Digest `json:"hash,omitempty"`
}

// MarshalJSON encodes the proof as the tagged JSON array described in
// spec.md §6: each element is one of {"type":"absent"},
// {"type":"sibling_left","hash":"..."}, {"type":"sibling_right","hash":"..."}.
func (p Proof) MarshalJSON() ([]byte, error) {
	out := make([]wireProofEntry, len(p.Entries))
	for i, e := range p.Entries {
		switch e.kind {
		case entryAbsent:
			out[i] = wireProofEntry{Type: "absent"}
		case entrySiblingLeft:
			sib := e.sibling
			out[i] = wireProofEntry{Type: "sibling_left", Sibling: &sib}
		case entrySiblingRight:
			sib := e.sibling
			out[i] = wireProofEntry{Type: "sibling_right", Sibling: &sib}
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a proof encoded by MarshalJSON. An unknown tag, or a
// sibling entry missing its hash, is reported as errMalformedProof.
func (p *Proof) UnmarshalJSON(data []byte) error {
	var wire []wireProofEntry
	if err := json.Unmarshal(data, &wire); err != nil {
		return errors.Extend(errMalformedProof, err)
	}
	entries := make([]ProofEntry, len(wire))
	for i, w := range wire {
		switch w.Type {
		case "absent":
			entries[i] = AbsentEntry()
		case "sibling_left":
			if w.Sibling == nil {
				return errors.AddContext(errMalformedProof, "sibling_left entry missing hash")
			}
			entries[i] = SiblingLeftEntry(*w.Sibling)
		case "sibling_right":
			if w.Sibling == nil {
				return errors.AddContext(errMalformedProof, "sibling_right entry missing hash")
			}
			entries[i] = SiblingRightEntry(*w.Sibling)
		default:
			return errors.AddContext(errMalformedProof, "unknown proof entry tag: "+w.Type)
		}
	}
	p.Entries = entries
	return nil
}
