// Package store holds the server's file bodies and the Merkle tree that
// commits to them behind one mutex, the same single-lock discipline the
// teacher's own subtree stack assumes of its caller. Every file ever
// accepted keeps its full content in memory and its digest as a leaf in an
// append-only FullTree, so any previously issued id can still be proven
// against the current root.
package store

import (
	"sync"

	"gitlab.com/NebulousLabs/errors"

	"github.com/tadovas/safestore/merkle"
)

// ErrNotFound is returned when a file id has never been assigned.
var ErrNotFound = errors.New("file not found")

// ErrEmpty is returned by Root when no file has been uploaded yet.
var ErrEmpty = errors.New("store is empty")

type file struct {
	name    string
	content []byte
	digest  merkle.Digest
}

// Store is a mutex-guarded, append-only collection of files with a
// FullTree committing to their content in upload order. A single mutex
// guards both reads (List, Get, Root, BatchProof) and writes (Add): the tree's append is
// cheap enough, and the invariant that a proof always matches the root
// returned alongside it, that splitting the lock is not worth the
// complexity.
type Store struct {
	mu    sync.Mutex
	files []file
	tree  *merkle.FullTree
}

// New returns an empty Store.
func New() *Store {
	return &Store{tree: merkle.NewFullTree()}
}

// Add appends a new file, returning the id it was assigned.
func (s *Store) Add(name string, content []byte) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	digest := merkle.Sum(content)
	s.files = append(s.files, file{name: name, content: content, digest: digest})
	s.tree.Append(digest)
	return len(s.files) - 1
}

// ListResult is one entry of List's return value.
type ListResult struct {
	ID   int
	Name string
}

// List returns every file's id and name, in upload order.
func (s *Store) List() []ListResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ListResult, len(s.files))
	for i, f := range s.files {
		out[i] = ListResult{ID: i, Name: f.name}
	}
	return out
}

// Get returns a file's name, content, and inclusion proof against the
// store's current root. It returns ErrNotFound if id has never been
// assigned.
func (s *Store) Get(id int) (name string, content []byte, proof merkle.Proof, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id < 0 || id >= len(s.files) {
		return "", nil, merkle.Proof{}, ErrNotFound
	}
	f := s.files[id]
	p, ok := s.tree.ProofFor(id)
	if !ok {
		// Every assigned id has a corresponding leaf; ProofFor only
		// fails on an out-of-range index, which was just checked.
		return "", nil, merkle.Proof{}, errors.New("internal error: proof unavailable for a valid id")
	}
	return f.name, f.content, p, nil
}

// Root returns the store's current root digest. It returns ErrEmpty if no
// file has been uploaded yet.
func (s *Store) Root() (merkle.Digest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	root, ok := s.tree.Root()
	if !ok {
		return merkle.Zero, ErrEmpty
	}
	return root, nil
}

// BatchProof returns a proof for the contiguous id range [start, end).
func (s *Store) BatchProof(start, end int) (merkle.BatchProof, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return merkle.BuildBatchProof(s.tree, start, end)
}
