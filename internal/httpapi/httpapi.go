// Package httpapi exposes a store.Store over HTTP using the same four
// routes the teacher's original actix-web service defined, plus the batch
// proof endpoint the incremental-proof extension needs. Routing is done
// with httprouter, in the minimal-handler-function style that library is
// built for.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/tadovas/safestore/internal/api"
	"github.com/tadovas/safestore/internal/logging"
	"github.com/tadovas/safestore/internal/store"
)

// Server bundles the dependencies every handler needs.
type Server struct {
	store *store.Store
	log   *logging.Logger
}

// New returns an httprouter.Router serving s over the routes described in
// the package doc.
func New(s *store.Store, log *logging.Logger) *httprouter.Router {
	srv := &Server{store: s, log: log}

	router := httprouter.New()
	router.GET("/files", srv.listFiles)
	router.POST("/files", srv.uploadFile)
	router.GET("/files/:id", srv.getFile)
	router.GET("/root", srv.getRoot)
	router.POST("/files/batch-proof", srv.batchProof)
	return router
}

func (s *Server) listFiles(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	results := s.store.List()
	files := make([]api.File, len(results))
	for i, res := range results {
		files[i] = api.File{ID: res.ID, Name: res.Name}
	}
	writeJSON(w, http.StatusOK, api.FileList{Files: files})
}

func (s *Server) uploadFile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req api.NewFile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}
	id := s.store.Add(req.Name, req.Content)
	s.log.Println("accepted upload:", req.Name, "id", id)
	writeJSON(w, http.StatusCreated, api.File{ID: id, Name: req.Name})
}

func (s *Server) getFile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		http.Error(w, "id must be an integer", http.StatusBadRequest)
		return
	}
	name, content, proof, err := s.store.Get(id)
	if err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, api.FileContent{
		ID:      id,
		Name:    name,
		Content: content,
		Proof:   proof,
	})
}

func (s *Server) getRoot(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	root, err := s.store.Root()
	if err != nil {
		http.Error(w, "root is not available yet - try uploading some files", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, api.RootHash{Hash: root})
}

func (s *Server) batchProof(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req api.BatchRange
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}
	bp, err := s.store.BatchProof(req.Start, req.End)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, api.BatchProof{
		Start:  bp.Start,
		Leaves: bp.Leaves,
		Proofs: bp.Proofs,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
