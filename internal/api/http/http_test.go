package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gemstore/analytics-manager/internal/auth/jwt"
	"github.com/gemstore/analytics-manager/internal/dependency"
	"github.com/gemstore/analytics-manager/internal/dependency/mocks"
	"github.com/gemstore/analytics-manager/internal/dto"
	"github.com/gemstore/analytics-manager/internal/entity"
	gerr "github.com/gemstore/analytics-manager/internal/errors"
	"github.com/gemstore/analytics-manager/internal/ratelimit"
)

const testSecret = "test-secret"

type serverMocks struct {
	analytics *mocks.Analytics
	repo      *mocks.Repository
	files     *mocks.FileStore
}

func newTestServer(t *testing.T, withFiles bool, limits *ratelimit.Config) (http.Handler, *serverMocks) {
	t.Helper()
	m := &serverMocks{
		analytics: mocks.NewAnalytics(t),
		repo:      mocks.NewRepository(t),
		files:     mocks.NewFileStore(t),
	}

	var limiter *ratelimit.MultiKeyLimiter
	if limits != nil {
		ctx, cancel := context.WithCancel(context.Background())
		t.Cleanup(cancel)
		limiter = ratelimit.NewMultiKeyLimiter(ctx, *limits)
	}

	var files dependency.FileStore
	if withFiles {
		files = m.files
	}
	cfg := &Config{
		Port:           "0",
		JWTSecret:      testSecret,
		AllowedOrigins: []string{"https://admin.gemstore.example"},
		TrustedProxies: []string{"10.0.0.0/8"},
	}
	s, err := New(cfg, m.analytics, m.repo, files, limiter, "EUR")
	require.NoError(t, err)
	return s.Handler(), m
}

func authorized(t *testing.T, method, target string) *http.Request {
	t.Helper()
	tok, err := jwt.NewToken(jwt.New(testSecret), time.Hour, "admin@gemstore.example")
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(jwt.AuthHeader, "Bearer "+tok)
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func testReport() *entity.Report {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &entity.Report{
		Period: entity.Period{
			Kind:     entity.ReportMonthly,
			Anchor:   "2024-03",
			Current:  entity.TimeRange{From: from, To: from.AddDate(0, 1, 0)},
			Previous: entity.TimeRange{From: from.AddDate(0, -1, 0), To: from},
		},
		Current: entity.SalesMetrics{
			Revenue:    decimal.NewFromInt(6000),
			OrderCount: 3,
			PeakHour:   10,
		},
		Previous: entity.SalesMetrics{
			Revenue:    decimal.NewFromInt(4000),
			OrderCount: 1,
			PeakHour:   entity.NoPeakHour,
		},
		Growth: entity.SalesGrowth{
			Revenue: entity.Growth{Pct: decimal.NewFromInt(50), IsUp: true},
		},
	}
}

func testExport() *entity.ReportExport {
	return &entity.ReportExport{
		Filename:    "gem_store_analytics_2024-03_monthly.csv",
		ContentType: "text/csv",
		Content:     []byte("Order ID,Date\n"),
		Rows:        1,
	}
}

func TestUnauthorized(t *testing.T) {
	h, _ := newTestServer(t, true, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/admin/analytics/report?kind=monthly", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/analytics/report?kind=monthly", nil)
	req.Header.Set(jwt.AuthHeader, "Bearer garbage")
	rec = serve(h, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetReport(t *testing.T) {
	h, m := newTestServer(t, true, nil)

	m.analytics.EXPECT().
		Compute(mock.Anything, entity.ReportRequest{Kind: entity.ReportMonthly, Anchor: "2024-03"}).
		Return(testReport(), nil)

	rec := serve(h, authorized(t, http.MethodGet, "/api/admin/analytics/report?kind=Monthly&anchor=2024-03"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got dto.Report
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "monthly", got.Kind)
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, "6000.00", got.Revenue.Value)
	assert.Equal(t, "4000.00", got.Revenue.CompareValue)
	assert.Equal(t, "50.0", got.Revenue.ChangePct)
	assert.True(t, got.Revenue.IsUp)
	require.NotNil(t, got.PeakHour)
	assert.Equal(t, 10, *got.PeakHour)
	assert.NotNil(t, got.TopProducts)
}

func TestGetReportValidation(t *testing.T) {
	h, _ := newTestServer(t, true, nil)

	rec := serve(h, authorized(t, http.MethodGet, "/api/admin/analytics/report?kind=weekly&anchor=2024-03"))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeError(t, rec)
	assert.Equal(t, "InvalidArgument", resp.Code)
	require.Len(t, resp.Violations, 1)
	assert.Equal(t, "kind", resp.Violations[0].Field)
	assert.NotEmpty(t, resp.RequestID)
}

func TestGetReportErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "bad anchor", err: gerr.InvalidPeriodAnchor, status: http.StatusBadRequest, code: "InvalidArgument"},
		{name: "fetch failure", err: errors.Join(gerr.DataFetchFailure, errors.New("dial tcp")), status: http.StatusServiceUnavailable, code: "Unavailable"},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, code: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestServer(t, true, nil)
			m.analytics.EXPECT().Compute(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(h, authorized(t, http.MethodGet, "/api/admin/analytics/report?kind=daily&anchor=2024-02-30"))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestGetExport(t *testing.T) {
	h, m := newTestServer(t, true, nil)

	m.analytics.EXPECT().
		Export(mock.Anything, entity.ReportRequest{Kind: entity.ReportCustom, Anchor: "2024-03-01", EndAnchor: "2024-03-15"}).
		Return(testExport(), nil)

	rec := serve(h, authorized(t, http.MethodGet, "/api/admin/analytics/export?kind=custom&anchor=2024-03-01&end=2024-03-15"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="gem_store_analytics_2024-03_monthly.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "Order ID,Date\n", rec.Body.String())
}

func TestGetExportNoData(t *testing.T) {
	h, m := newTestServer(t, true, nil)
	m.analytics.EXPECT().Export(mock.Anything, mock.Anything).Return(nil, gerr.NoDataForPeriod)

	rec := serve(h, authorized(t, http.MethodGet, "/api/admin/analytics/export?kind=monthly&anchor=2024-03"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NotFound", decodeError(t, rec).Code)
}

func TestGetExportRateLimited(t *testing.T) {
	h, m := newTestServer(t, true, &ratelimit.Config{Window: time.Minute, ExportMax: 2})
	m.analytics.EXPECT().Export(mock.Anything, mock.Anything).Return(testExport(), nil).Times(2)

	target := "/api/admin/analytics/export?kind=monthly&anchor=2024-03"
	rec := serve(h, authorized(t, http.MethodGet, target))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get(rateLimitRemainingHeader))

	rec = serve(h, authorized(t, http.MethodGet, target))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get(rateLimitRemainingHeader))

	rec = serve(h, authorized(t, http.MethodGet, target))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "ResourceExhausted", decodeError(t, rec).Code)
}

func TestGetExportRateLimitIgnoresSpoofedForwarding(t *testing.T) {
	h, m := newTestServer(t, true, &ratelimit.Config{Window: time.Minute, ExportMax: 1})
	m.analytics.EXPECT().Export(mock.Anything, mock.Anything).Return(testExport(), nil).Once()

	target := "/api/admin/analytics/export?kind=monthly&anchor=2024-03"
	for i, xff := range []string{"203.0.113.1", "203.0.113.2"} {
		req := authorized(t, http.MethodGet, target)
		req.RemoteAddr = "198.51.100.4:5000"
		req.Header.Set("X-Forwarded-For", xff)
		rec := serve(h, req)
		if i == 0 {
			require.Equal(t, http.StatusOK, rec.Code)
			continue
		}
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	}
}

func TestGetExportRateLimitPerForwardedClient(t *testing.T) {
	h, m := newTestServer(t, true, &ratelimit.Config{Window: time.Minute, ExportMax: 1})
	m.analytics.EXPECT().Export(mock.Anything, mock.Anything).Return(testExport(), nil).Twice()

	target := "/api/admin/analytics/export?kind=monthly&anchor=2024-03"
	for _, xff := range []string{"203.0.113.1", "203.0.113.2"} {
		req := authorized(t, http.MethodGet, target)
		req.RemoteAddr = "10.0.0.3:5000"
		req.Header.Set("X-Forwarded-For", xff)
		assert.Equal(t, http.StatusOK, serve(h, req).Code)
	}
}

func TestNewRejectsBadTrustedProxy(t *testing.T) {
	_, err := New(&Config{JWTSecret: testSecret, TrustedProxies: []string{"lb.internal"}}, nil, nil, nil, nil, "EUR")
	assert.Error(t, err)
}

func TestArchiveExport(t *testing.T) {
	h, m := newTestServer(t, true, nil)

	exp := testExport()
	m.analytics.EXPECT().Export(mock.Anything, mock.Anything).Return(exp, nil)
	m.files.EXPECT().UploadReport(mock.Anything, exp).Return("https://files.gemstore.example/reports/"+exp.Filename, nil)

	rec := serve(h, authorized(t, http.MethodPost, "/api/admin/analytics/export/archive?kind=monthly&anchor=2024-03"))
	require.Equal(t, http.StatusOK, rec.Code)

	var got archiveResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "https://files.gemstore.example/reports/gem_store_analytics_2024-03_monthly.csv", got.URL)
	assert.Equal(t, exp.Filename, got.Filename)
	assert.Equal(t, 1, got.Rows)
}

func TestArchiveExportNotConfigured(t *testing.T) {
	h, _ := newTestServer(t, false, nil)

	rec := serve(h, authorized(t, http.MethodPost, "/api/admin/analytics/export/archive?kind=monthly&anchor=2024-03"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "FailedPrecondition", decodeError(t, rec).Code)
}

func TestArchiveExportUploadFailure(t *testing.T) {
	h, m := newTestServer(t, true, nil)
	m.analytics.EXPECT().Export(mock.Anything, mock.Anything).Return(testExport(), nil)
	m.files.EXPECT().UploadReport(mock.Anything, mock.Anything).Return("", errors.New("bucket unreachable"))

	rec := serve(h, authorized(t, http.MethodPost, "/api/admin/analytics/export/archive?kind=monthly&anchor=2024-03"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealth(t *testing.T) {
	h, m := newTestServer(t, true, nil)
	m.repo.EXPECT().Ping(mock.Anything).Return(nil).Once()
	m.repo.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused")).Once()

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCORS(t *testing.T) {
	h, _ := newTestServer(t, true, nil)

	for origin, allowed := range map[string]bool{
		"https://admin.gemstore.example": true,
		"http://localhost:3000":          true,
		"https://evil.example":           false,
	} {
		req := httptest.NewRequest(http.MethodOptions, "/api/admin/analytics/report", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := serve(h, req)

		if allowed {
			assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"), origin)
		} else {
			assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"), origin)
		}
	}
}
