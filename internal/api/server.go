package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nerrad567/lexi-control/internal/eeg"
	"github.com/nerrad567/lexi-control/internal/infrastructure/config"
	"github.com/nerrad567/lexi-control/internal/infrastructure/logging"
	"github.com/nerrad567/lexi-control/internal/panel"
	"github.com/nerrad567/lexi-control/internal/schedule"
	"github.com/nerrad567/lexi-control/internal/session"
)

// gracefulShutdownTimeout is the maximum time to wait for in-flight requests
// to complete during shutdown.
const gracefulShutdownTimeout = 10 * time.Second

// Deps holds the dependencies required by the API server.
type Deps struct {
	Config    config.APIConfig
	Site      config.SiteConfig
	Vendor    config.VendorConfig
	Logger    *logging.Logger
	Gate      *session.Gate
	Client    *eeg.Client
	Directory *eeg.Directory
	Schedule  *schedule.Service
	Pages     *panel.Renderer
	Version   string
}

// Server is the HTTP server for the Lexi control panel.
//
// It manages the HTTP listener, routes, and middleware. The server is
// created with New() and started with Start().
type Server struct {
	cfg       config.APIConfig
	site      config.SiteConfig
	vendor    config.VendorConfig
	logger    *logging.Logger
	gate      *session.Gate
	client    *eeg.Client
	directory *eeg.Directory
	schedule  *schedule.Service
	pages     *panel.Renderer
	version   string
	server    *http.Server
}

// New creates a new API server with the given dependencies.
//
// The server is not started until Start() is called.
//
// Parameters:
//   - deps: Required dependencies (config, logger, gate, vendor clients, renderer)
//
// Returns:
//   - *Server: Configured server ready to start
//   - error: If required dependencies are missing
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.Gate == nil {
		return nil, fmt.Errorf("session gate is required")
	}
	if deps.Client == nil {
		return nil, fmt.Errorf("eeg client is required")
	}
	if deps.Directory == nil {
		return nil, fmt.Errorf("instance directory is required")
	}
	if deps.Schedule == nil {
		return nil, fmt.Errorf("schedule service is required")
	}
	if deps.Pages == nil {
		return nil, fmt.Errorf("page renderer is required")
	}

	return &Server{
		cfg:       deps.Config,
		site:      deps.Site,
		vendor:    deps.Vendor,
		logger:    deps.Logger,
		gate:      deps.Gate,
		client:    deps.Client,
		directory: deps.Directory,
		schedule:  deps.Schedule,
		pages:     deps.Pages,
		version:   deps.Version,
	}, nil
}

// Start begins listening for HTTP connections.
//
// It builds the router and launches the HTTP listener in a background
// goroutine. The server can be stopped with Close().
//
// Parameters:
//   - ctx: Context for cancellation (not used for listener lifetime)
//
// Returns:
//   - error: If the server fails to start (port in use, etc.)
func (s *Server) Start(_ context.Context) error {
	router := s.buildRouter()

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:           router,
		ReadTimeout:       time.Duration(s.cfg.Timeouts.Read) * time.Second,
		ReadHeaderTimeout: time.Duration(s.cfg.Timeouts.Read) * time.Second,
		WriteTimeout:      time.Duration(s.cfg.Timeouts.Write) * time.Second,
		IdleTimeout:       time.Duration(s.cfg.Timeouts.Idle) * time.Second,
	}

	go func() {
		s.logger.Info("API server starting", "address", s.server.Addr)
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server error", "error", err)
		}
	}()

	return nil
}

// Close gracefully shuts down the API server.
//
// It waits up to 10 seconds for in-flight requests to complete,
// then forcefully closes remaining connections.
//
// Returns:
//   - error: If shutdown encounters an error
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down API server: %w", err)
	}
	return nil
}
