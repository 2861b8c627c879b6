package app

import (
	"area-api/internal/app/config"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

// listener pairs an http.Server with the socket it serves on.
type listener struct {
	kind   string
	addr   string
	server *http.Server
	ln     net.Listener
}

// MultiHTTPServer serves one handler on a TCP address, a Unix socket, or both.
type MultiHTTPServer struct {
	cfg       config.HttpServerConfig
	handler   http.Handler
	listeners []*listener
	serveErr  chan error
}

func NewMultiHTTPServer(cfg config.HttpServerConfig, handler http.Handler) (*MultiHTTPServer, error) {
	s := &MultiHTTPServer{
		cfg:     cfg,
		handler: handler,
	}
	if cfg.ListenAddress != "" {
		ln, err := net.Listen("tcp", cfg.ListenAddress)
		if err != nil {
			return nil, fmt.Errorf("listen tcp %s: %w", cfg.ListenAddress, err)
		}
		s.listeners = append(s.listeners, &listener{kind: "tcp", addr: ln.Addr().String(), server: s.newServer(), ln: ln})
	}
	if cfg.UnixSocketPath != "" {
		ln, err := listenUnix(cfg.UnixSocketPath)
		if err != nil {
			s.closeListeners()
			return nil, err
		}
		s.listeners = append(s.listeners, &listener{kind: "unix", addr: cfg.UnixSocketPath, server: s.newServer(), ln: ln})
	}
	if len(s.listeners) == 0 {
		return nil, errors.New("no listeners configured: set listen_address or unix_socket_path")
	}
	s.serveErr = make(chan error, len(s.listeners))
	return s, nil
}

// Addrs returns the bound address of every listener, in configuration order.
func (s *MultiHTTPServer) Addrs() []string {
	out := make([]string, 0, len(s.listeners))
	for _, l := range s.listeners {
		out = append(out, l.addr)
	}
	return out
}

// newServer derives write and idle timeouts from the per-request timeout so
// that the router's Timeout middleware always fires before the connection is cut.
func (s *MultiHTTPServer) newServer() *http.Server {
	reqTimeout := s.cfg.RequestTimeout
	if reqTimeout <= 0 {
		reqTimeout = 60 * time.Second
	}
	return &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       reqTimeout,
		WriteTimeout:      reqTimeout + 5*time.Second,
		IdleTimeout:       90 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}
}

func listenUnix(p string) (net.Listener, error) {
	if err := os.MkdirAll(filepath.Dir(p), 0o775); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", filepath.Dir(p), err)
	}
	// stale socket from a previous run
	_ = os.Remove(p)

	ln, err := net.ListenUnix("unix", &net.UnixAddr{Name: p, Net: "unix"})
	if err != nil {
		return nil, fmt.Errorf("listen unix %s: %w", p, err)
	}
	ln.SetUnlinkOnClose(true)

	if err := os.Chmod(p, 0o660); err != nil {
		_ = ln.Close()
		return nil, fmt.Errorf("chmod %s: %w", p, err)
	}
	if fi, err := os.Lstat(p); err != nil {
		_ = ln.Close()
		return nil, fmt.Errorf("stat %s: %w", p, err)
	} else if fi.Mode()&os.ModeSocket == 0 {
		_ = ln.Close()
		return nil, fmt.Errorf("%s exists but is not a socket (mode=%v)", p, fi.Mode())
	}
	return ln, nil
}

// Start serves every listener in its own goroutine. Use WaitAndShutdown to block.
func (s *MultiHTTPServer) Start() {
	log.Info().Str("banner", s.cfg.Banner).Int("listeners", len(s.listeners)).Msg("starting HTTP server")
	for _, l := range s.listeners {
		go func(l *listener) {
			log.Info().Str("kind", l.kind).Str("address", l.addr).Msg("listening")
			if err := l.server.Serve(l.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.serveErr <- fmt.Errorf("%s %s: %w", l.kind, l.addr, err)
			}
		}(l)
	}
}

// WaitAndShutdown blocks until ctx is done, SIGINT/SIGTERM arrives or a listener
// fails, then drains every listener within the configured grace period.
// It returns the serve error that triggered the shutdown, if any.
func (s *MultiHTTPServer) WaitAndShutdown(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cause error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown requested")
	case cause = <-s.serveErr:
		log.Error().Err(cause).Msg("server error")
	}

	grace := s.cfg.ShutdownGrace
	if grace <= 0 {
		grace = 15 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	for _, l := range s.listeners {
		if err := l.server.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Str("kind", l.kind).Msg("shutdown error")
		} else {
			log.Info().Str("kind", l.kind).Str("address", l.addr).Msg("listener drained")
		}
	}
	s.closeListeners()
	log.Info().Str("banner", s.cfg.Banner).Msg("HTTP server shut down")
	return cause
}

func (s *MultiHTTPServer) closeListeners() {
	for _, l := range s.listeners {
		_ = l.ln.Close()
		if l.kind == "unix" {
			_ = os.Remove(l.addr)
		}
	}
}
