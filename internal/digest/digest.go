package digest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gemstore/analytics-manager/internal/dependency"
	"github.com/gemstore/analytics-manager/internal/entity"
)

// Config holds configuration for the report digest worker.
type Config struct {
	Enabled        bool          `mapstructure:"enabled"`
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
	Kind           string        `mapstructure:"kind"`
	Recipients     []string      `mapstructure:"recipients"`
	Archive        bool          `mapstructure:"archive"`
	RetentionDays  int           `mapstructure:"retention_days"` // archived exports older than this are pruned, 0 keeps everything
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: time.Hour,
		Kind:           string(entity.ReportMonthly),
		Archive:        true,
		RetentionDays:  365,
	}
}

// Worker mails the report of the last complete period once that period has
// ended and archives its export when a file store is configured.
type Worker struct {
	analytics dependency.Analytics
	files     dependency.FileStore
	mailer    dependency.Mailer
	c         *Config
	kind      entity.ReportKind
	loc       *time.Location
	now       func() time.Time

	mu       sync.Mutex
	lastSent string

	ctx  context.Context
	stop context.CancelFunc
}

// New creates a new digest worker. files and mailer may be nil.
func New(c *Config, analytics dependency.Analytics, files dependency.FileStore, mailer dependency.Mailer, loc *time.Location) (*Worker, error) {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval == 0 {
		c.WorkerInterval = time.Hour
	}
	if c.Kind == "" {
		c.Kind = string(entity.ReportMonthly)
	}
	kind := entity.ReportKind(c.Kind)
	if !entity.ValidReportKinds[kind] || kind == entity.ReportCustom {
		return nil, fmt.Errorf("unsupported digest kind %q", c.Kind)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Worker{
		analytics: analytics,
		files:     files,
		mailer:    mailer,
		c:         c,
		kind:      kind,
		loc:       loc,
		now:       time.Now,
	}, nil
}

// Start starts the worker.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("digest worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("digest worker already stopped or not started")
	}
	w.stop()
	w.stop = nil
	return nil
}

// LastSent returns the anchor of the last delivered digest.
func (w *Worker) LastSent() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSent
}
