package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gemstore/analytics-manager/internal/dependency"
	"github.com/gemstore/analytics-manager/internal/entity"
	gerr "github.com/gemstore/analytics-manager/internal/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	StoreName        string        `mapstructure:"store_name"`
	Currency         string        `mapstructure:"currency"`
	Timezone         string        `mapstructure:"timezone"`
	TopProductsLimit int           `mapstructure:"top_products_limit"`
	FetchTimeout     time.Duration `mapstructure:"fetch_timeout"`
}

// DefaultConfig returns the default report configuration.
func DefaultConfig() Config {
	return Config{
		StoreName:        "store",
		Currency:         "EUR",
		Timezone:         "UTC",
		TopProductsLimit: 5,
		FetchTimeout:     30 * time.Second,
	}
}

// Service computes reports from the order, user and product collections.
type Service struct {
	c    *Config
	repo dependency.Repository
	loc  *time.Location
	now  func() time.Time
}

// New creates a report service. Zero config values fall back to DefaultConfig.
func New(c *Config, repo dependency.Repository) (*Service, error) {
	def := DefaultConfig()
	cfg := *c
	if cfg.StoreName == "" {
		cfg.StoreName = def.StoreName
	}
	if cfg.Currency == "" {
		cfg.Currency = def.Currency
	}
	if cfg.Timezone == "" {
		cfg.Timezone = def.Timezone
	}
	if cfg.TopProductsLimit <= 0 {
		cfg.TopProductsLimit = def.TopProductsLimit
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("can't load report timezone %q: %w", cfg.Timezone, err)
	}

	return &Service{
		c:    &cfg,
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}, nil
}

// WithClock replaces the clock used for default anchors and report timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Location returns the location report windows are resolved in.
func (s *Service) Location() *time.Location {
	return s.loc
}

// StoreName returns the store name used in export filenames.
func (s *Service) StoreName() string {
	return s.c.StoreName
}

// Currency returns the ISO code monetary values are rounded for.
func (s *Service) Currency() string {
	return s.c.Currency
}

// Compute builds the report for the requested period. A period without orders
// yields a zeroed report, not an error.
func (s *Service) Compute(ctx context.Context, req entity.ReportRequest) (*entity.Report, error) {
	period, ds, err := s.resolveAndLoad(ctx, req)
	if err != nil {
		return nil, err
	}
	rep, _ := s.build(ctx, ds, period)
	return rep, nil
}

// Export serializes the orders of the requested period's current window.
// It returns gerr.NoDataForPeriod when the window has no orders.
func (s *Service) Export(ctx context.Context, req entity.ReportRequest) (*entity.ReportExport, error) {
	period, ds, err := s.resolveAndLoad(ctx, req)
	if err != nil {
		return nil, err
	}
	_, orders := s.build(ctx, ds, period)
	return s.export(period, orders)
}

// ComputeWithExport builds the report and its export from a single fetch, so
// both describe the same data. The export is nil when the period has no
// orders.
func (s *Service) ComputeWithExport(ctx context.Context, req entity.ReportRequest) (*entity.Report, *entity.ReportExport, error) {
	period, ds, err := s.resolveAndLoad(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	rep, orders := s.build(ctx, ds, period)
	if len(orders) == 0 {
		return rep, nil, nil
	}
	exp, err := s.export(period, orders)
	if err != nil {
		return nil, nil, err
	}
	return rep, exp, nil
}

// ExportFrom is Export over an already loaded dataset. No fetch happens.
func (s *Service) ExportFrom(ctx context.Context, ds *Dataset, req entity.ReportRequest) (*entity.ReportExport, error) {
	period, err := ResolvePeriod(req.Kind, req.Anchor, req.EndAnchor, s.now(), s.loc)
	if err != nil {
		return nil, err
	}
	_, orders := s.build(ctx, ds, period)
	return s.export(period, orders)
}

func (s *Service) export(period entity.Period, orders []entity.Order) (*entity.ReportExport, error) {
	content, err := ExportCSV(orders, s.c.Currency, s.loc)
	if err != nil {
		return nil, err
	}
	return &entity.ReportExport{
		Filename:    ExportFilename(s.c.StoreName, period.Anchor, period.Kind),
		ContentType: exportContentType,
		Content:     content,
		Rows:        len(orders),
	}, nil
}

// resolveAndLoad rejects a bad anchor before anything is fetched.
func (s *Service) resolveAndLoad(ctx context.Context, req entity.ReportRequest) (entity.Period, *Dataset, error) {
	period, err := ResolvePeriod(req.Kind, req.Anchor, req.EndAnchor, s.now(), s.loc)
	if err != nil {
		return entity.Period{}, nil, err
	}

	ds, err := s.Load(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't fetch report data",
			slog.String("kind", string(period.Kind)),
			slog.String("anchor", period.Anchor),
			slog.String("err", err.Error()),
		)
		return entity.Period{}, nil, err
	}
	return period, ds, nil
}

// build computes the report of period and returns it with the current
// window's orders. Timestamps keep the location they were stored in, so the
// peak hour is measured in that location.
func (s *Service) build(ctx context.Context, ds *Dataset, period entity.Period) (*entity.Report, []entity.Order) {
	parts := Partition(period, ds.orders, ds.users)
	rep := Build(period, parts, ds.catalog, s.c.TopProductsLimit)
	rep.GeneratedAt = s.now()

	if rep.UnresolvedLineItems > 0 {
		slog.Default().DebugContext(ctx, "line items reference unknown products",
			slog.String("anchor", period.Anchor),
			slog.Int("count", rep.UnresolvedLineItems),
		)
	}
	if rep.FilteredOrderCount == 0 {
		slog.Default().InfoContext(ctx, "no orders for period",
			slog.String("kind", string(period.Kind)),
			slog.String("anchor", period.Anchor),
		)
	}

	return rep, parts.CurrentOrders
}

// Build merges the per-window computations into a report.
func Build(period entity.Period, parts Partitioned, catalog entity.Catalog, topLimit int) *entity.Report {
	cur := Aggregate(parts.CurrentOrders)
	prev := Aggregate(parts.PreviousOrders)
	top, unresolved := TopProducts(parts.CurrentOrders, catalog, topLimit)

	newCur, newPrev := len(parts.CurrentUsers), len(parts.PreviousUsers)

	return &entity.Report{
		Period:   period,
		Current:  cur,
		Previous: prev,
		Growth: entity.SalesGrowth{
			Revenue:           Growth(cur.Revenue, prev.Revenue),
			OrderCount:        GrowthInt(cur.OrderCount, prev.OrderCount),
			AverageOrderValue: Growth(cur.AverageOrderValue, prev.AverageOrderValue),
			CompletedCount:    GrowthInt(cur.CompletedCount, prev.CompletedCount),
			CancelledCount:    GrowthInt(cur.CancelledCount, prev.CancelledCount),
		},
		NewCustomers: entity.MetricWithComparison{
			Value:        decimal.NewFromInt(int64(newCur)),
			CompareValue: decimal.NewFromInt(int64(newPrev)),
			Growth:       GrowthInt(newCur, newPrev),
		},
		TopProducts:         top,
		Series:              BuildSeries(parts.CurrentOrders, period.Current, period.Kind),
		OrdersByStatus:      CountByStatus(parts.CurrentOrders),
		FilteredOrderCount:  len(parts.CurrentOrders),
		UnresolvedLineItems: unresolved,
	}
}

// Dataset is one normalized snapshot of the order, user and product
// collections. Reports built from the same Dataset agree with each other.
type Dataset struct {
	orders  []entity.Order
	users   []entity.User
	catalog entity.Catalog
}

// Load fetches the three collections concurrently and normalizes the orders.
// Any failure aborts the whole fetch with gerr.DataFetchFailure.
func (s *Service) Load(ctx context.Context) (*Dataset, error) {
	if s.c.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.c.FetchTimeout)
		defer cancel()
	}

	var (
		records  []entity.OrderRecord
		users    []entity.User
		products []entity.Product
	)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		orders, err := s.repo.Orders().ListOrders(ctx)
		if err != nil {
			return fmt.Errorf("can't list orders: %w", err)
		}
		records = orders
		return nil
	})
	g.Go(func() error {
		list, err := s.repo.Users().ListUsers(ctx, entity.RoleCustomer)
		if err != nil {
			return fmt.Errorf("can't list users: %w", err)
		}
		users = list
		return nil
	})
	g.Go(func() error {
		list, err := s.repo.Products().ListProducts(ctx)
		if err != nil {
			return fmt.Errorf("can't list products: %w", err)
		}
		products = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", gerr.DataFetchFailure, err)
	}

	return &Dataset{
		orders:  NormalizeOrders(records, users),
		users:   users,
		catalog: entity.NewCatalog(products),
	}, nil
}
