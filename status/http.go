package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// NewRouter exposes the registry read-only over HTTP
//
//	GET /status         all metrics
//	GET /status/{name}  one metric
func NewRouter(r *Registry) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/status", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, r.Snapshot())
	}).Methods(http.MethodGet)
	router.HandleFunc("/status/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := mux.Vars(req)["name"]
		v, ok := r.Value(name)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown metric " + name})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{name: v})
	}).Methods(http.MethodGet)
	return router
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("status: encode response: %v", err)
	}
}

// Server serves the status router until stopped
type Server struct {
	srv *http.Server
	ln  net.Listener
}

// Serve starts listening on addr in a background goroutine
func Serve(addr string, r *Registry) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("status listen %s: %w", addr, err)
	}
	s := &Server{
		srv: &http.Server{
			Handler:           NewRouter(r),
			ReadHeaderTimeout: 5 * time.Second,
		},
		ln: ln,
	}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("status: serve: %v", err)
		}
	}()
	log.Printf("status: listening on %s", ln.Addr())
	return s, nil
}

// Addr returns the bound listen address
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Stop shuts the server down, waiting at most for ctx
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Endpoint runs the status server as a host service
type Endpoint struct {
	addr     string
	registry *Registry
	srv      *Server
}

func NewEndpoint(addr string, r *Registry) *Endpoint {
	return &Endpoint{addr: addr, registry: r}
}

func (e *Endpoint) Name() string { return "status" }

func (e *Endpoint) Start() error {
	srv, err := Serve(e.addr, e.registry)
	if err != nil {
		return err
	}
	e.srv = srv
	return nil
}

// Stop shuts the server down, waiting up to a second for open requests
func (e *Endpoint) Stop() error {
	if e.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := e.srv.Stop(ctx)
	e.srv = nil
	return err
}

// Addr returns the bound address while running, or the configured one
func (e *Endpoint) Addr() string {
	if e.srv != nil {
		return e.srv.Addr()
	}
	return e.addr
}
