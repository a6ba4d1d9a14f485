package session

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tutu-network/salesdesk/internal/app/sales"
	"github.com/tutu-network/salesdesk/internal/health"
)

// Session is one salesdesk run: configuration, logger, service and health
// checker wired together.
type Session struct {
	ID      uuid.UUID
	Config  Config
	Log     zerolog.Logger
	Service *sales.Service
	Health  *health.Checker
}

// New loads .env and config.toml, applies overrides in order, then wires a
// session logging to stderr.
func New(overrides ...func(*Config)) (*Session, error) {
	LoadEnv()
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	for _, o := range overrides {
		o(&cfg)
	}
	return NewWithConfig(cfg, os.Stderr)
}

// NewWithConfig wires a session from cfg, logging to logOut.
func NewWithConfig(cfg Config, logOut io.Writer) (*Session, error) {
	opts, err := cfg.ServiceOptions()
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	log := NewLogger(cfg.Logging, logOut).With().Str("session", id.String()).Logger()

	svc, err := sales.New(opts, log)
	if err != nil {
		return nil, fmt.Errorf("build service: %w", err)
	}

	log.Debug().
		Str("kind", string(opts.Kind)).
		Int("capacity", opts.Capacity).
		Bool("preload", opts.Preload).
		Msg("session started")

	return &Session{
		ID:      id,
		Config:  cfg,
		Log:     log,
		Service: svc,
		Health:  health.NewChecker(svc),
	}, nil
}
