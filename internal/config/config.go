// Package config holds the defaults and validation shared by both
// safestore binaries. The binaries themselves bind these to command-line
// flags (server: stdlib flag; client: cobra/pflag) rather than parsing a
// config file — there is exactly one deployment shape, so a config file
// format would be ceremony with nothing left for it to cover beyond what a
// flag already does.
package config

import "gitlab.com/NebulousLabs/errors"

// Defaults for the server binary.
const (
	DefaultListenAddr = "127.0.0.1:8080"
	DefaultLogPath    = "safestore-server.log"
)

// Defaults for the client binary.
const (
	DefaultAPIBase       = "http://127.0.0.1:8080"
	DefaultFrontierState = "safestore-client.frontier.json"
)

// Server is the validated configuration for cmd/safestore-server.
type Server struct {
	ListenAddr string
	LogPath    string
}

// Validate reports whether s is usable, returning a descriptive error if
// not.
func (s Server) Validate() error {
	if s.ListenAddr == "" {
		return errors.New("listen address must not be empty")
	}
	if s.LogPath == "" {
		return errors.New("log path must not be empty")
	}
	return nil
}

// Client is the validated configuration for cmd/safestore-client.
type Client struct {
	APIBase       string
	FrontierState string
}

// Validate reports whether c is usable, returning a descriptive error if
// not.
func (c Client) Validate() error {
	if c.APIBase == "" {
		return errors.New("api base url must not be empty")
	}
	return nil
}
