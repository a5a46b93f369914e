package mockapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/authdeck/internal/discovery"
	"github.com/muurk/authdeck/internal/logging"
	"github.com/muurk/authdeck/internal/version"
)

// DefaultInstanceName is the mDNS instance name used when none is configured.
const DefaultInstanceName = "authdeck-mockapi"

// shutdownTimeout bounds how long in-flight requests get on shutdown.
const shutdownTimeout = 10 * time.Second

// Config holds the server configuration
type Config struct {
	Host string
	Port int

	// Advertise announces the server over mDNS as InstanceName.
	Advertise    bool
	InstanceName string

	// BcryptCost for password hashes; 0 uses bcrypt's default.
	BcryptCost int
}

// Server is a development stand-in for the auth API.
type Server struct {
	config     *Config
	store      *Store
	httpServer *http.Server
	advertiser *discovery.Advertiser

	mu       sync.Mutex
	listener net.Listener
}

// New creates a new Server instance
func New(config *Config) *Server {
	store := NewStore(config.BcryptCost)
	return &Server{
		config: config,
		store:  store,
		httpServer: &http.Server{
			Handler:           NewRouter(store),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Store returns the account store.
func (s *Server) Store() *Store {
	return s.store
}

// Addr returns the bound listen address, or "" before Run has bound it.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Start runs the server until SIGINT or SIGTERM.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.Host, fmt.Sprint(s.config.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	logging.Info("Starting mock auth API",
		zap.String("addr", listener.Addr().String()),
		zap.String("version", version.Version),
	)

	if s.config.Advertise {
		name := s.config.InstanceName
		if name == "" {
			name = DefaultInstanceName
		}
		port := listener.Addr().(*net.TCPAddr).Port
		adv, err := discovery.Advertise(name, port, map[string]string{
			"version": version.Version,
			"path":    "/api/users",
		})
		if err != nil {
			logging.Warn("mDNS advertisement failed, continuing without it", zap.Error(err))
		} else {
			s.advertiser = adv
			logging.Info("Advertising over mDNS",
				zap.String("instance", name),
				zap.String("service", discovery.ServiceType),
			)
		}
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		logging.Info("Shutdown signal received, stopping server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-errChan:
		s.advertiser.Shutdown()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	s.advertiser.Shutdown()

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		logging.Warn("Shutdown timeout, forcing close", zap.Error(err))
		_ = s.httpServer.Close()
	} else {
		logging.Info("All connections closed gracefully")
	}

	logging.Sync()
	return err
}
