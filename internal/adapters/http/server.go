// Package http is the gin transport of the board.
package http

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/quoteboard/internal/platform/config"
)

// Server serves one gin engine over plain HTTP and, when a certificate pair
// is configured and present, HTTPS at the same time.
type Server struct {
	engine    *gin.Engine
	config    *config.ServerConfig
	logger    *slog.Logger
	endpoints []*endpoint

	mu        sync.Mutex
	listeners []net.Listener
}

type endpoint struct {
	scheme string
	srv    *http.Server
}

// New creates the server. Routes are registered on Engine before Run.
func New(cfg *config.ServerConfig, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(maxBodySize(cfg.MaxRequestSize))

	s := &Server{engine: engine, config: cfg, logger: logger}
	s.endpoints = append(s.endpoints, &endpoint{scheme: "http", srv: s.newHTTPServer(cfg.Port)})

	if cfg.TLS.Available() {
		srv := s.newHTTPServer(cfg.TLS.Port)
		srv.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		s.endpoints = append(s.endpoints, &endpoint{scheme: "https", srv: srv})
	} else if cfg.TLS.CertFile != "" {
		logger.Info("certificate pair not found, serving plain HTTP only",
			slog.String("cert_file", cfg.TLS.CertFile),
			slog.String("key_file", cfg.TLS.KeyFile),
		)
	}

	return s
}

func (s *Server) newHTTPServer(port int) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Host, port),
		Handler:      s.engine,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}
}

// Engine returns the underlying Gin engine for route registration.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// TLSEnabled reports whether an HTTPS endpoint will be served.
func (s *Server) TLSEnabled() bool {
	return len(s.endpoints) > 1
}

// Listen binds every endpoint. Run calls it when it has not been called yet.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listeners != nil {
		return nil
	}

	listeners := make([]net.Listener, 0, len(s.endpoints))

	for _, ep := range s.endpoints {
		ln, err := net.Listen("tcp", ep.srv.Addr)
		if err != nil {
			for _, l := range listeners {
				_ = l.Close()
			}

			return fmt.Errorf("listening on %s: %w", ep.srv.Addr, err)
		}

		listeners = append(listeners, ln)
	}

	s.listeners = listeners

	return nil
}

// Addrs returns the bound addresses, plain HTTP first. Empty before Listen.
func (s *Server) Addrs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	addrs := make([]string, 0, len(s.listeners))
	for _, ln := range s.listeners {
		addrs = append(addrs, ln.Addr().String())
	}

	return addrs
}

// Run serves until ctx is cancelled or an endpoint fails, then shuts every
// endpoint down within ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	s.mu.Lock()
	listeners := s.listeners
	s.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)

	for i, ep := range s.endpoints {
		ln := listeners[i]

		g.Go(func() error {
			s.logger.Info("starting server",
				slog.String("scheme", ep.scheme),
				slog.String("addr", ln.Addr().String()),
			)

			var err error
			if ep.scheme == "https" {
				err = ep.srv.ServeTLS(ln, s.config.TLS.CertFile, s.config.TLS.KeyFile)
			} else {
				err = ep.srv.Serve(ln)
			}

			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("%s server error: %w", ep.scheme, err)
			}

			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.ShutdownTimeout)
		defer cancel()

		return s.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Shutdown gracefully stops every endpoint.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down servers")

	var errs []error

	for _, ep := range s.endpoints {
		if err := ep.srv.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s server shutdown: %w", ep.scheme, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	s.logger.Info("servers stopped")

	return nil
}

// maxBodySize limits request bodies.
func maxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
