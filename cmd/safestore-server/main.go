// Command safestore-server serves a Store over HTTP: upload files, list
// them, download a file together with its inclusion proof, and fetch the
// current root.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/tadovas/safestore/internal/config"
	"github.com/tadovas/safestore/internal/httpapi"
	"github.com/tadovas/safestore/internal/logging"
	"github.com/tadovas/safestore/internal/store"
)

func main() {
	if err := mainCore(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func mainCore() error {
	var cfg config.Server
	flag.StringVar(&cfg.ListenAddr, "listen", config.DefaultListenAddr, "address to listen on")
	flag.StringVar(&cfg.LogPath, "log", config.DefaultLogPath, "path to the server log file")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog, err := logging.New(cfg.LogPath)
	if err != nil {
		return err
	}
	defer closeLog.Close()

	s := store.New()
	router := httpapi.New(s, log)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Println("listening on", cfg.ListenAddr)
		serveErr <- server.ListenAndServe()
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	select {
	case err := <-serveErr:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case sig := <-interrupt:
		log.Println("received signal", sig, "- shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}
