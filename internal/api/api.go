// Package api defines the JSON wire types shared by the safestore server and
// client: file metadata, the upload request, a downloaded file's content and
// inclusion proof, and the retained root. These mirror the shapes exchanged
// over the HTTP boundary one-for-one; internal/httpapi, internal/apiclient
// and cmd/safestore-client are the only packages that construct them.
package api

import "github.com/tadovas/safestore/merkle"

// File is one entry returned by GET /files.
type File struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// FileList is the response body of GET /files.
type FileList struct {
	Files []File `json:"files"`
}

// NewFile is the request body of POST /files.
type NewFile struct {
	Name    string `json:"name"`
	Content []byte `json:"content"`
}

// FileContent is the response body of GET /files/{id}: the file's bytes
// alongside the inclusion proof tying them to the server's current root at
// the time of the download.
type FileContent struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	Content []byte       `json:"content"`
	Proof   merkle.Proof `json:"proof"`
}

// RootHash is the response body of GET /root.
type RootHash struct {
	Hash merkle.Digest `json:"hash"`
}

// BatchRange is the request body of POST /files/batch-proof: a contiguous,
// half-open range of already-uploaded file ids.
type BatchRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// BatchProof is the response body of POST /files/batch-proof.
type BatchProof struct {
	Start  int             `json:"start"`
	Leaves []merkle.Digest `json:"leaves"`
	Proofs []merkle.Proof  `json:"proofs"`
}
