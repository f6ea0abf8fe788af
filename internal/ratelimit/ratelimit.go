package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Config sets per client IP limits for the export endpoints.
type Config struct {
	Window       time.Duration `mapstructure:"window"`
	ExportMax    int           `mapstructure:"export_max"`
	ArchiveMax   int           `mapstructure:"archive_max"`
	ArchiveEvery time.Duration `mapstructure:"archive_window"`
}

// DefaultConfig returns the default rate limit configuration.
func DefaultConfig() Config {
	return Config{
		Window:       time.Minute,
		ExportMax:    30,
		ArchiveMax:   10,
		ArchiveEvery: time.Hour,
	}
}

// Limiter implements a simple in-memory fixed window rate limiter
type Limiter struct {
	mu       sync.RWMutex
	counters map[string]*counter
	window   time.Duration
	max      int
	now      func() time.Time
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a new rate limiter with the specified window and max
// requests. Expired counters are dropped until ctx is done.
func NewLimiter(ctx context.Context, window time.Duration, max int) *Limiter {
	l := &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
		now:      time.Now,
	}
	go l.cleanup(ctx)
	return l
}

// Allow checks if a request for the given key is allowed
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}

	if c.count >= l.max {
		return false
	}

	c.count++
	return true
}

// GetRemaining returns the number of remaining requests for the given key
func (l *Limiter) GetRemaining(key string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	c, exists := l.counters[key]
	if !exists || l.now().After(c.expiresAt) {
		return l.max
	}

	remaining := l.max - c.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// cleanup periodically removes expired counters
func (l *Limiter) cleanup(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.sweep()
		}
	}
}

func (l *Limiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	for key, c := range l.counters {
		if now.After(c.expiresAt) {
			delete(l.counters, key)
		}
	}
}

const (
	keyExport  = "ip_export"
	keyArchive = "ip_archive"
)

// MultiKeyLimiter manages multiple rate limiters for different types of operations
type MultiKeyLimiter struct {
	limiters map[string]*Limiter
}

// NewMultiKeyLimiter creates the export and archive limiters. Zero values in c
// fall back to DefaultConfig.
func NewMultiKeyLimiter(ctx context.Context, c Config) *MultiKeyLimiter {
	def := DefaultConfig()
	if c.Window <= 0 {
		c.Window = def.Window
	}
	if c.ExportMax <= 0 {
		c.ExportMax = def.ExportMax
	}
	if c.ArchiveEvery <= 0 {
		c.ArchiveEvery = def.ArchiveEvery
	}
	if c.ArchiveMax <= 0 {
		c.ArchiveMax = def.ArchiveMax
	}
	return &MultiKeyLimiter{
		limiters: map[string]*Limiter{
			keyExport:  NewLimiter(ctx, c.Window, c.ExportMax),
			keyArchive: NewLimiter(ctx, c.ArchiveEvery, c.ArchiveMax),
		},
	}
}

// CheckExport verifies if a CSV download is allowed from the given IP
func (m *MultiKeyLimiter) CheckExport(ip string) error {
	if !m.limiters[keyExport].Allow(ip) {
		return fmt.Errorf("too many export requests, please slow down")
	}
	return nil
}

// CheckArchive verifies if an archive upload is allowed from the given IP
func (m *MultiKeyLimiter) CheckArchive(ip string) error {
	if !m.limiters[keyArchive].Allow(ip) {
		return fmt.Errorf("too many archive requests from this IP address, please try again later")
	}
	return nil
}

// GetExportLimits returns remaining export and archive attempts for IP
func (m *MultiKeyLimiter) GetExportLimits(ip string) (exportRemaining, archiveRemaining int) {
	return m.limiters[keyExport].GetRemaining(ip), m.limiters[keyArchive].GetRemaining(ip)
}
