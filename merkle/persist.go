package merkle

import (
	"encoding/json"

	"gitlab.com/NebulousLabs/errors"
)

// wireFrontierNode is the bottom-to-top, on-disk encoding of a single
// LightTree frontier level (spec.md §6): a state tag plus, for the two
// partial states, the single known child digest.
type wireFrontierNode struct {
	State string  `json:"state"`
	Left  *Digest `json:"left,omitempty"`
	Hash  Digest  `json:"hash"`
}

type wireLightTree struct {
	NumLeaves int                `json:"num_leaves"`
	Frontier  []wireFrontierNode `json:"frontier"`
}

// MarshalJSON encodes the tree's frontier so that a client process can
// reload it and keep appending across invocations without ever holding the
// full leaf history.
func (t *LightTree) MarshalJSON() ([]byte, error) {
	w := wireLightTree{
		NumLeaves: t.numLeft,
		Frontier:  make([]wireFrontierNode, len(t.frontier)),
	}
	for i, n := range t.frontier {
		wn := wireFrontierNode{Hash: n.hash}
		switch n.state {
		case stateFull:
			wn.State = "full"
		case statePartialLeft:
			wn.State = "partial_left"
			left := n.left
			wn.Left = &left
		case statePartialRight:
			wn.State = "partial_right"
			left := n.left
			wn.Left = &left
		}
		w.Frontier[i] = wn
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes a frontier encoded by MarshalJSON.
func (t *LightTree) UnmarshalJSON(data []byte) error {
	var w wireLightTree
	if err := json.Unmarshal(data, &w); err != nil {
		return errors.Extend(errMalformedProof, err)
	}
	frontier := make([]frontierNode, len(w.Frontier))
	for i, wn := range w.Frontier {
		n := frontierNode{hash: wn.Hash}
		switch wn.State {
		case "full":
			n.state = stateFull
		case "partial_left":
			n.state = statePartialLeft
			if wn.Left == nil {
				return errors.AddContext(errMalformedProof, "partial_left frontier entry missing left child")
			}
			n.left = *wn.Left
		case "partial_right":
			n.state = statePartialRight
			if wn.Left == nil {
				return errors.AddContext(errMalformedProof, "partial_right frontier entry missing left child")
			}
			n.left = *wn.Left
		default:
			return errors.AddContext(errMalformedProof, "unknown frontier state tag: "+wn.State)
		}
		frontier[i] = n
	}
	t.frontier = frontier
	t.numLeft = w.NumLeaves
	return nil
}
