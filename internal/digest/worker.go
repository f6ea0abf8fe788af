package digest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gemstore/analytics-manager/internal/entity"
	"github.com/gemstore/analytics-manager/internal/report"
)

func (w *Worker) worker(ctx context.Context) {
	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	w.tick(ctx)
	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) tick(ctx context.Context) {
	if _, err := w.RunOnce(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "can't deliver report digest",
			slog.String("kind", string(w.kind)),
			slog.String("err", err.Error()),
		)
	}
}

// RunOnce delivers the digest of the last complete period unless it was
// already delivered. It reports whether a digest was sent.
func (w *Worker) RunOnce(ctx context.Context) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now().In(w.loc)
	anchor := report.PreviousAnchor(w.kind, now)
	if anchor == w.lastSent {
		return false, nil
	}

	archived, err := w.isArchived(ctx, anchor)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't list archived reports",
			slog.String("err", err.Error()),
		)
	}
	if archived {
		w.lastSent = anchor
		return false, nil
	}

	req := entity.ReportRequest{Kind: w.kind, Anchor: anchor}
	rep, export, err := w.analytics.ComputeWithExport(ctx, req)
	if err != nil {
		return false, fmt.Errorf("can't compute %s report %s: %w", w.kind, anchor, err)
	}

	if export != nil && w.archiveEnabled() {
		url, err := w.files.UploadReport(ctx, export)
		if err != nil {
			return false, fmt.Errorf("can't archive report %s: %w", export.Filename, err)
		}
		slog.Default().InfoContext(ctx, "report archived",
			slog.String("url", url),
		)
		w.prune(ctx, now)
	}

	if w.mailer != nil && len(w.c.Recipients) > 0 {
		if err := w.mailer.SendReport(ctx, w.c.Recipients, rep, export); err != nil {
			return false, fmt.Errorf("can't mail report %s: %w", anchor, err)
		}
	}

	w.lastSent = anchor
	slog.Default().InfoContext(ctx, "report digest delivered",
		slog.String("kind", string(w.kind)),
		slog.String("anchor", anchor),
		slog.Int("recipients", len(w.c.Recipients)),
		slog.Bool("attachment", export != nil),
	)
	return true, nil
}

func (w *Worker) archiveEnabled() bool {
	return w.files != nil && w.c.Archive
}

// isArchived looks for an export of the period in the file store, so a
// restart does not deliver the same digest twice.
func (w *Worker) isArchived(ctx context.Context, anchor string) (bool, error) {
	if !w.archiveEnabled() {
		return false, nil
	}
	reports, err := w.files.ListReports(ctx)
	if err != nil {
		return false, err
	}
	suffix := fmt.Sprintf("_analytics_%s_%s.csv", anchor, w.kind)
	for _, r := range reports {
		if strings.HasSuffix(r.Key, suffix) {
			return true, nil
		}
	}
	return false, nil
}

func (w *Worker) prune(ctx context.Context, now time.Time) {
	if w.c.RetentionDays <= 0 {
		return
	}
	n, err := w.files.PruneReports(ctx, now.AddDate(0, 0, -w.c.RetentionDays))
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't prune archived reports",
			slog.String("err", err.Error()),
		)
		return
	}
	if n > 0 {
		slog.Default().InfoContext(ctx, "pruned archived reports",
			slog.Int("count", n),
		)
	}
}
