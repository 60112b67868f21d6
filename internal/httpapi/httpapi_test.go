package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tadovas/safestore/internal/api"
	"github.com/tadovas/safestore/internal/logging"
	"github.com/tadovas/safestore/internal/store"
	"github.com/tadovas/safestore/merkle"
)

func newTestServer() *httptest.Server {
	s := store.New()
	router := New(s, logging.NewDiscard())
	return httptest.NewServer(router)
}

func TestUploadListGetRoot(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	body, _ := json.Marshal(api.NewFile{Name: "a.txt", Content: []byte("hello")})
	resp, err := http.Post(ts.URL+"/files", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /files: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST /files status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	var created api.File
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	resp.Body.Close()
	if created.ID != 0 || created.Name != "a.txt" {
		t.Fatalf("created = %+v", created)
	}

	resp, err = http.Get(ts.URL + "/files")
	if err != nil {
		t.Fatalf("GET /files: %v", err)
	}
	var list api.FileList
	json.NewDecoder(resp.Body).Decode(&list)
	resp.Body.Close()
	if len(list.Files) != 1 || list.Files[0].Name != "a.txt" {
		t.Fatalf("list = %+v", list)
	}

	resp, err = http.Get(ts.URL + "/root")
	if err != nil {
		t.Fatalf("GET /root: %v", err)
	}
	var rootResp api.RootHash
	json.NewDecoder(resp.Body).Decode(&rootResp)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/files/0")
	if err != nil {
		t.Fatalf("GET /files/0: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /files/0 status = %d", resp.StatusCode)
	}
	var content api.FileContent
	json.NewDecoder(resp.Body).Decode(&content)
	resp.Body.Close()

	if !merkle.Verify(rootResp.Hash, merkle.Sum(content.Content), content.Proof) {
		t.Fatal("downloaded proof does not verify against reported root")
	}
}

func TestGetFileNotFound(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/files/42")
	if err != nil {
		t.Fatalf("GET /files/42: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestRootNotAvailableBeforeUpload(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/root")
	if err != nil {
		t.Fatalf("GET /root: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestBatchProofEndpoint(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	for i := 0; i < 5; i++ {
		body, _ := json.Marshal(api.NewFile{Name: "f", Content: []byte{byte(i)}})
		resp, _ := http.Post(ts.URL+"/files", "application/json", bytes.NewReader(body))
		resp.Body.Close()
	}

	rootResp, _ := http.Get(ts.URL + "/root")
	var root api.RootHash
	json.NewDecoder(rootResp.Body).Decode(&root)
	rootResp.Body.Close()

	reqBody, _ := json.Marshal(api.BatchRange{Start: 1, End: 4})
	resp, err := http.Post(ts.URL+"/files/batch-proof", "application/json", bytes.NewReader(reqBody))
	if err != nil {
		t.Fatalf("POST batch-proof: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var bp api.BatchProof
	json.NewDecoder(resp.Body).Decode(&bp)
	if len(bp.Leaves) != 3 {
		t.Fatalf("got %d leaves, want 3", len(bp.Leaves))
	}
	if !merkle.VerifyBatch(root.Hash, merkle.BatchProof{Start: bp.Start, Leaves: bp.Leaves, Proofs: bp.Proofs}) {
		t.Fatal("batch proof from endpoint does not verify")
	}
}
