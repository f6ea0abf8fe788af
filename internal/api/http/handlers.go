package httpapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gemstore/analytics-manager/internal/auth/jwt"
	"github.com/gemstore/analytics-manager/internal/dto"
	"github.com/gemstore/analytics-manager/internal/entity"
	gerr "github.com/gemstore/analytics-manager/internal/errors"
	"github.com/gemstore/analytics-manager/internal/form"
	"github.com/gemstore/analytics-manager/internal/middleware"
)

const rateLimitRemainingHeader = "X-RateLimit-Remaining"

type limitKind int

const (
	exportLimit limitKind = iota
	archiveLimit
)

type errorResponse struct {
	Code       string           `json:"code"`
	Message    string           `json:"message"`
	RequestID  string           `json:"request_id,omitempty"`
	Violations []fieldViolation `json:"violations,omitempty"`
}

type fieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

type archiveResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Rows     int    `json:"rows"`
}

func parseReportRequest(r *http.Request) (entity.ReportRequest, error) {
	q := r.URL.Query()
	f := form.ReportRequest{
		Kind:      q.Get("kind"),
		Anchor:    q.Get("anchor"),
		EndAnchor: q.Get("end"),
	}
	if err := f.Validate(); err != nil {
		return entity.ReportRequest{}, err
	}
	return f.ToEntity(), nil
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	req, err := parseReportRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rep, err := s.analytics.Compute(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ConvertEntityReportToDto(rep, s.currency))
}

func (s *Server) getExport(w http.ResponseWriter, r *http.Request) {
	req, err := parseReportRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	exp, err := s.analytics.Export(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", exp.ContentType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exp.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(exp.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(exp.Content); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't write export",
			slog.String("filename", exp.Filename),
			slog.String("err", err.Error()),
		)
	}
}

func (s *Server) archiveExport(w http.ResponseWriter, r *http.Request) {
	if s.files == nil {
		writeError(w, r, gerr.ArchiveNotConfigured)
		return
	}
	req, err := parseReportRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	exp, err := s.analytics.Export(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	url, err := s.files.UploadReport(r.Context(), exp)
	if err != nil {
		writeError(w, r, fmt.Errorf("can't upload report: %w", err))
		return
	}

	slog.Default().InfoContext(r.Context(), "report archived",
		slog.String("filename", exp.Filename),
		slog.String("url", url),
		slog.String("admin", jwt.Subject(r.Context())),
	)
	writeJSON(w, http.StatusOK, archiveResponse{URL: url, Filename: exp.Filename, Rows: exp.Rows})
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.Ping(r.Context()); err != nil {
		slog.Default().ErrorContext(r.Context(), "health check failed",
			slog.String("err", err.Error()),
		)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (s *Server) limit(kind limitKind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s.limiter == nil {
				next.ServeHTTP(w, r)
				return
			}
			ip := middleware.GetClientIP(r.Context())
			check := s.limiter.CheckExport
			if kind == archiveLimit {
				check = s.limiter.CheckArchive
			}
			if err := check(ip); err != nil {
				writeError(w, r, status.Error(codes.ResourceExhausted, err.Error()))
				return
			}
			exportRemaining, archiveRemaining := s.limiter.GetExportLimits(ip)
			remaining := exportRemaining
			if kind == archiveLimit {
				remaining = archiveRemaining
			}
			w.Header().Set(rateLimitRemainingHeader, strconv.Itoa(remaining))
			next.ServeHTTP(w, r)
		})
	}
}

// writeError maps the status code carried by err to an HTTP status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	st := status.Convert(err)
	code := runtime.HTTPStatusFromCode(st.Code())

	if code >= http.StatusInternalServerError {
		slog.Default().ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
	}

	resp := errorResponse{
		Code:      st.Code().String(),
		Message:   st.Message(),
		RequestID: middleware.GetRequestID(r.Context()),
	}
	for _, fv := range form.FieldViolations(err) {
		resp.Violations = append(resp.Violations, fieldViolation{Field: fv.GetField(), Description: fv.GetDescription()})
	}
	writeJSON(w, code, resp)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("can't encode response", slog.String("err", err.Error()))
	}
}
