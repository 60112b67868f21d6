package merkle

import "testing"

// TestProofJSONRoundTrip checks that a proof built from a real tree survives
// a marshal/unmarshal cycle and still verifies afterward.
func TestProofJSONRoundTrip(t *testing.T) {
	leaves := randomLeaves(11)
	tr := NewFullTree()
	for _, h := range leaves {
		tr.Append(h)
	}
	root, _ := tr.Root()
	proof, ok := tr.ProofFor(4)
	if !ok {
		t.Fatal("ProofFor(4) ok = false")
	}

	data, err := proof.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var decoded Proof
	if err := decoded.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if len(decoded.Entries) != len(proof.Entries) {
		t.Fatalf("decoded proof has %d entries, want %d", len(decoded.Entries), len(proof.Entries))
	}
	if !Verify(root, leaves[4], decoded) {
		t.Fatal("decoded proof failed to verify")
	}
}

// TestProofUnmarshalRejectsUnknownTag checks that decoding a proof entry
// with an unrecognized type tag fails rather than silently defaulting.
func TestProofUnmarshalRejectsUnknownTag(t *testing.T) {
	var p Proof
	err := p.UnmarshalJSON([]byte(`[{"type":"sideways"}]`))
	if err == nil {
		t.Fatal("expected an error decoding an unknown proof entry tag")
	}
}

// TestProofUnmarshalRejectsMissingHash checks that a sibling entry without
// a hash field is rejected.
func TestProofUnmarshalRejectsMissingHash(t *testing.T) {
	var p Proof
	err := p.UnmarshalJSON([]byte(`[{"type":"sibling_left"}]`))
	if err == nil {
		t.Fatal("expected an error decoding a sibling entry with no hash")
	}
}

// TestAbsentEntryRoundTrip checks the zero-information Absent entry
// encodes and decodes without a hash field.
func TestAbsentEntryRoundTrip(t *testing.T) {
	p := Proof{Entries: []ProofEntry{AbsentEntry()}}
	data, err := p.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var decoded Proof
	if err := decoded.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if len(decoded.Entries) != 1 || !decoded.Entries[0].IsAbsent() {
		t.Fatal("Absent entry did not round-trip")
	}
}
