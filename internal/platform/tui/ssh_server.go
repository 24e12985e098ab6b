package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// SeedFunc returns a fresh seeder for one run and a description of it for
// the run history, such as "random:42" or "pattern:glider".
type SeedFunc func() (life.Seeder, string)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.life/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Rate, FrameInterval and Theme apply to every session.
	Rate          int
	FrameInterval time.Duration
	Theme         Theme

	// Seed creates the seeder of each session. Nil means empty grids.
	Seed SeedFunc

	// Store records finished runs. May be nil.
	Store *storage.Store

	// Logger receives server events. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Rate:        life.DefaultRate,
		Theme:       DefaultTheme(),
	}
}

// SSHServer serves one independent simulation per SSH session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "life-ssh",
		})
	}
	if cfg.Seed == nil {
		cfg.Seed = func() (life.Seeder, string) { return life.EmptySeeder, "empty" }
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".life", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// sessionOptions sizes a run to the client's terminal.
func (s *SSHServer) sessionOptions(user string, width, height int) (Options, string) {
	rows, cols := core.Viewport{Width: width, Height: height}.GridSize(HUDRows)
	seeder, seeding := s.config.Seed()
	return Options{
		Rows:          rows,
		Cols:          cols,
		Rate:          s.config.Rate,
		Seeder:        seeder,
		FrameInterval: s.config.FrameInterval,
		Theme:         s.config.Theme,
		Logger:        s.logger.With("user", user),
	}, seeding
}

// teaHandler starts a simulation for each SSH session.
// The grid is sized from the PTY once; later window changes only affect the HUD.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	opts, seeding := s.sessionOptions(sshSession.User(), pty.Window.Width, pty.Window.Height)

	runner := Start(opts)
	started := time.Now()

	go func() {
		<-sshSession.Context().Done()
		summary, err := runner.Wait()
		if err != nil {
			s.logger.Error("simulation failed", "user", sshSession.User(), "error", err)
		}
		s.saveRun(sshSession.User(), seeding, summary, time.Since(started))
	}()

	return runner.Model(), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// saveRun records a finished session run. Failures are logged only.
func (s *SSHServer) saveRun(user, seeding string, summary life.Summary, elapsed time.Duration) {
	if s.config.Store == nil {
		return
	}
	_, err := s.config.Store.SaveRun(storage.Run{
		Mode:            storage.ModeSSH,
		User:            user,
		Rows:            summary.Height,
		Cols:            summary.Width,
		Seeding:         seeding,
		Generations:     int64(summary.Generations),
		PeakPopulation:  summary.PeakPopulation,
		FinalPopulation: summary.Population,
		Duration:        elapsed,
	})
	if err != nil {
		s.logger.Warn("could not save run", "user", user, "error", err)
		return
	}
	s.logger.Info("run saved", "user", user, "generations", summary.Generations)
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
