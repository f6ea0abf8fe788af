package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gemstore/analytics-manager/config"
	httpapi "github.com/gemstore/analytics-manager/internal/api/http"
	"github.com/gemstore/analytics-manager/internal/bucket"
	"github.com/gemstore/analytics-manager/internal/dependency"
	"github.com/gemstore/analytics-manager/internal/digest"
	"github.com/gemstore/analytics-manager/internal/mail"
	"github.com/gemstore/analytics-manager/internal/ratelimit"
	"github.com/gemstore/analytics-manager/internal/report"
	"github.com/gemstore/analytics-manager/internal/store"
)

const shutdownTimeout = 10 * time.Second

// App is the main application
type App struct {
	c      *config.Config
	db     dependency.Repository
	hs     *httpapi.Server
	digest *digest.Worker
	cancel context.CancelFunc

	done     chan struct{}
	doneOnce sync.Once
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Services are the collaborators built from the configuration. Files and
// Mailer are nil when their section is not configured.
type Services struct {
	Repo   dependency.Repository
	Report *report.Service
	Files  dependency.FileStore
	Mailer dependency.Mailer
}

// NewServices connects to the database and builds the report service and
// optional archive and mail backends.
func NewServices(ctx context.Context, c *config.Config) (*Services, error) {
	db, err := store.New(ctx, c.DB)
	if err != nil {
		return nil, fmt.Errorf("couldn't connect to mysql: %w", err)
	}

	svc, err := report.New(&c.Report, db)
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &Services{Repo: db, Report: svc}

	if c.Bucket.Enabled() {
		b, err := bucket.New(&c.Bucket)
		if err != nil {
			db.Close()
			return nil, err
		}
		s.Files = b
	} else {
		slog.Default().InfoContext(ctx, "bucket is not configured, report archive disabled")
	}

	if c.Mailer.Enabled() {
		m, err := mail.New(&c.Mailer, svc.StoreName(), svc.Currency())
		if err != nil {
			db.Close()
			return nil, err
		}
		s.Mailer = m
	}

	return s, nil
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	slog.Default().InfoContext(ctx, "starting analytics manager")

	if a.c.HTTP.JWTSecret == "" {
		return errors.New("http.jwt_secret must be set")
	}

	ctx, a.cancel = context.WithCancel(ctx)

	s, err := NewServices(ctx, a.c)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't build services", slog.String("err", err.Error()))
		return err
	}
	a.db = s.Repo

	limiter := ratelimit.NewMultiKeyLimiter(ctx, a.c.RateLimit)

	a.hs, err = httpapi.New(&a.c.HTTP, s.Report, s.Repo, s.Files, limiter, s.Report.Currency())
	if err != nil {
		a.db.Close()
		return err
	}
	if err := a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		a.db.Close()
		return err
	}

	if a.c.Digest.Enabled {
		if s.Mailer == nil && s.Files == nil {
			slog.Default().WarnContext(ctx, "digest enabled without mailer or bucket, it will only compute reports")
		}
		a.digest, err = digest.New(&a.c.Digest, s.Report, s.Files, s.Mailer, s.Report.Location())
		if err != nil {
			return err
		}
		if err := a.digest.Start(ctx); err != nil {
			return err
		}
	}

	go func() {
		<-a.hs.Done()
		a.doneOnce.Do(func() { close(a.done) })
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.digest != nil {
		if err := a.digest.Stop(); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop digest worker", slog.String("err", err.Error()))
		}
	}

	if a.hs != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		if err := a.hs.Stop(shutdownCtx); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop http server", slog.String("err", err.Error()))
		}
	}

	if a.cancel != nil {
		a.cancel()
	}
	if a.db != nil {
		a.db.Close()
	}
	a.doneOnce.Do(func() { close(a.done) })
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() <-chan struct{} {
	return a.done
}
