package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/gemstore/analytics-manager/internal/auth/jwt"
	"github.com/gemstore/analytics-manager/internal/dependency"
	"github.com/gemstore/analytics-manager/internal/middleware"
	"github.com/gemstore/analytics-manager/internal/ratelimit"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	JWTSecret      string   `mapstructure:"jwt_secret"`
	// TrustedProxies lists the IPs or CIDRs whose forwarding headers name the
	// client. Empty means the peer address is always the client.
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

// Server is the http server
type Server struct {
	hs        *http.Server
	c         *Config
	analytics dependency.Analytics
	repo      dependency.Repository
	files     dependency.FileStore
	limiter   *ratelimit.MultiKeyLimiter
	jwtAuth   *jwtauth.JWTAuth
	proxies   []netip.Prefix
	currency  string
	done      chan struct{}
}

// New creates a new server. files and limiter are optional: without files the
// archive endpoint fails with gerr.ArchiveNotConfigured, without limiter
// exports are not rate limited.
func New(
	config *Config,
	analytics dependency.Analytics,
	repo dependency.Repository,
	files dependency.FileStore,
	limiter *ratelimit.MultiKeyLimiter,
	currency string,
) (*Server, error) {
	proxies, err := middleware.ParseTrustedProxies(config.TrustedProxies)
	if err != nil {
		return nil, err
	}
	return &Server{
		c:         config,
		analytics: analytics,
		repo:      repo,
		files:     files,
		limiter:   limiter,
		jwtAuth:   jwt.New(config.JWTSecret),
		proxies:   proxies,
		currency:  currency,
		done:      make(chan struct{}),
	}, nil
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.ClientIP(s.proxies),
		middleware.Logger,
		chimw.Recoverer,
		cors.Handler(cors.Options{
			AllowOriginFunc: func(_ *http.Request, origin string) bool {
				return isOriginAllowed(origin, s.c.AllowedOrigins)
			},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", jwt.AuthMetadataKey},
			ExposedHeaders: []string{"Content-Disposition", middleware.RequestIDHeader},
			MaxAge:         300,
		}),
	)

	r.Get("/health", s.health)

	r.Route("/api/admin/analytics", func(r chi.Router) {
		r.Use(jwt.WithAuth(s.jwtAuth))
		r.Get("/report", s.getReport)
		r.With(s.limit(exportLimit)).Get("/export", s.getExport)
		r.With(s.limit(archiveLimit)).Post("/export/archive", s.archiveExport)
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	ln, err := net.Listen("tcp", listenerAddr)
	if err != nil {
		return fmt.Errorf("can't listen on %s: %w", listenerAddr, err)
	}

	s.hs = &http.Server{
		Handler:           h2c.NewHandler(s.Handler(), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, "analytics-manager new listener",
			slog.String("addr", "http://"+listenerAddr),
		)
		err := s.hs.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}
	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin {
			return true
		}
	}
	return false
}
