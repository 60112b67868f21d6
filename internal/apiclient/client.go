// Package apiclient is the HTTP client half of the safestore wire protocol,
// mirroring the teacher's own reqwest-based client one method per route.
package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gitlab.com/NebulousLabs/errors"

	"github.com/tadovas/safestore/internal/api"
)

// Client talks to a safestore server over HTTP.
type Client struct {
	apiBase string
	http    *http.Client
}

// New returns a Client targeting the server at apiBase (e.g.
// "http://127.0.0.1:8080").
func New(apiBase string) *Client {
	return &Client{apiBase: apiBase, http: &http.Client{}}
}

// List returns every file currently stored.
func (c *Client) List() (api.FileList, error) {
	var out api.FileList
	err := c.get("/files", &out)
	return out, err
}

// Upload sends a new file and returns the id it was assigned.
func (c *Client) Upload(name string, content []byte) (api.File, error) {
	var out api.File
	err := c.post("/files", api.NewFile{Name: name, Content: content}, &out)
	return out, err
}

// Download fetches a file's content and inclusion proof.
func (c *Client) Download(id int) (api.FileContent, error) {
	var out api.FileContent
	err := c.get(fmt.Sprintf("/files/%d", id), &out)
	return out, err
}

// Root fetches the server's current commitment root.
func (c *Client) Root() (api.RootHash, error) {
	var out api.RootHash
	err := c.get("/root", &out)
	return out, err
}

// BatchProof fetches a proof for the contiguous id range [start, end).
func (c *Client) BatchProof(start, end int) (api.BatchProof, error) {
	var out api.BatchProof
	err := c.post("/files/batch-proof", api.BatchRange{Start: start, End: end}, &out)
	return out, err
}

func (c *Client) get(path string, out interface{}) error {
	resp, err := c.http.Get(c.apiBase + path)
	if err != nil {
		return errors.AddContext(err, "request failed")
	}
	return decode(resp, out)
}

func (c *Client) post(path string, body, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return errors.AddContext(err, "could not encode request body")
	}
	resp, err := c.http.Post(c.apiBase+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return errors.AddContext(err, "request failed")
	}
	return decode(resp, out)
}

func decode(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return errors.AddContext(errors.New("http error"), fmt.Sprintf("status %d: %s", resp.StatusCode, body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.AddContext(err, "could not decode response body")
	}
	return nil
}
