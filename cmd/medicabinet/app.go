package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/medicabinet/medicabinet/internal/config"
	"github.com/medicabinet/medicabinet/internal/domain/appointment"
	"github.com/medicabinet/medicabinet/internal/domain/consultation"
	"github.com/medicabinet/medicabinet/internal/domain/medication"
	"github.com/medicabinet/medicabinet/internal/domain/patient"
	"github.com/medicabinet/medicabinet/internal/domain/practitioner"
	"github.com/medicabinet/medicabinet/internal/domain/prescription"
	"github.com/medicabinet/medicabinet/internal/platform/auth"
	"github.com/medicabinet/medicabinet/internal/store"
)

// app wires the configuration, the file store and the session manager for
// one command invocation.
type app struct {
	cfg      *config.Config
	logger   zerolog.Logger
	store    store.Store
	sessions *auth.SessionManager
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		store:    store.NewFileStore(cfg.StorePath()),
		sessions: auth.NewSessionManager(cfg.KeyPath(), cfg.SessionPath()),
	}, nil
}

func (a *app) patients() *patient.Service { return patient.NewService(a.store) }

func (a *app) appointments() *appointment.Service { return appointment.NewService(a.store) }

func (a *app) consultations() *consultation.Service { return consultation.NewService(a.store) }

func (a *app) prescriptions() *prescription.Service { return prescription.NewService(a.store) }

func (a *app) medications() *medication.Service { return medication.NewService(a.store) }

func (a *app) practitioner() *practitioner.Service { return practitioner.NewService(a.store) }

// requireSession gates data commands behind a valid login.
func (a *app) requireSession() error {
	if _, err := a.sessions.Verify(); err != nil {
		return fmt.Errorf("run 'medicabinet login' first: %w", err)
	}
	return nil
}

// parseDate accepts "2006-01-02 15:04" or a bare "2006-01-02" in the local
// zone.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or \"YYYY-MM-DD HH:MM\"", s)
	}
	return t, nil
}

// promptLine reads one line from stdin after printing the prompt.
func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
