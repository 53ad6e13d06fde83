package sheet

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/hunter-sheet/internal/platform/timeouts"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/app"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/platform/httpx"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/platform/observability"
)

// Config defines the inputs for the sheet web server.
type Config struct {
	HTTPAddr string
	Service  *app.Service
	// Logger receives request logs; nil uses the standard logger.
	Logger *log.Logger
	// TracerProvider overrides the global provider for request spans.
	TracerProvider trace.TracerProvider
}

// Server hosts the sheet web UI.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.Service == nil {
		return nil, errors.New("sheet service is required")
	}
	handler := httpx.Chain(
		NewHandler(config.Service),
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Trace(config.TracerProvider),
		observability.RequestLogger(config.Logger),
	)
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Handler returns the server's full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return nil
	}
	return s.httpServer.Handler
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("sheet server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve runs the HTTP server on listener until the context ends.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("sheet server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("sheet listening on %s", listener.Addr())
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
