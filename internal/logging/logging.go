// Package logging wires up the logger used by the safestore server binary
// and its HTTP handlers. It follows the same pattern this project's teacher uses for its
// own diagnostic output: a single process-wide logger, backed by a file, that
// every other package receives by reference rather than constructing itself.
package logging

import (
	"io"
	"os"

	"gitlab.com/NebulousLabs/errors"
	"gitlab.com/NebulousLabs/log"
)

// Logger is the type every other safestore package logs through.
type Logger = log.Logger

// New opens (creating if necessary) the log file at path and returns a
// Logger writing to it. The caller is responsible for closing the returned
// io.Closer on shutdown.
func New(path string) (*Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, errors.AddContext(err, "could not open log file")
	}
	logger, err := log.NewLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, errors.AddContext(err, "could not create logger")
	}
	return logger, f, nil
}

// NewDiscard returns a Logger that writes to nothing, for use in tests.
func NewDiscard() *Logger {
	logger, err := log.NewLogger(io.Discard)
	if err != nil {
		// log.NewLogger only fails on a nil writer; io.Discard is never nil.
		panic(err)
	}
	return logger
}
