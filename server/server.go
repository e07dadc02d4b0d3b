// Package server provides an HTTP API to compute edit sequences and to play games against a
// dictionary that can be replaced while serving.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"znkr.io/distle/dictionary"
)

// Server serves the API via HTTP.
type Server struct {
	http    *http.Server
	handler *Handler
	addr    net.Addr
	errc    chan error
}

// Run creates a new server and runs it in a new goroutine.
func Run(addr string, dict *dictionary.Dictionary, opts ...Option) (*Server, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("starting HTTP server: %v", err)
	}

	h := NewHandler(dict, opts...)
	s := &Server{
		http: &http.Server{
			Handler: h,
		},
		handler: h,
		addr:    l.Addr(),
		errc:    make(chan error, 1),
	}

	go func() {
		defer close(s.errc)
		if err := s.http.Serve(l); !errors.Is(err, http.ErrServerClosed) {
			s.errc <- err
		}
	}()

	return s, nil
}

// Addr returns the address the server listens on.
func (s *Server) Addr() net.Addr { return s.addr }

// ReplaceDictionary replaces the dictionary new games are played with. Running games keep the
// dictionary they were started with.
func (s *Server) ReplaceDictionary(dict *dictionary.Dictionary) {
	s.handler.ReplaceDictionary(dict)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %v", err)
	}
	return nil
}

// Error returns a channel to listen to errors while serving. It's closed when the server stops.
func (s *Server) Error() <-chan error {
	return s.errc
}
