package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gemstore/analytics-manager/internal/entity"
	gerr "github.com/gemstore/analytics-manager/internal/errors"
	"github.com/gemstore/analytics-manager/internal/report"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var (
		kind    string
		from    string
		to      string
		outDir  string
		archive bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write CSV exports for a range of daily, monthly or yearly periods",
		Example: "  analytics-manager export --kind monthly --from 2024-01 --to 2024-06 --out ./reports\n" +
			"  analytics-manager export --kind yearly --from 2023 --to 2023 --archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			if to == "" {
				to = from
			}
			anchors, err := report.AnchorRange(entity.ReportKind(kind), from, to)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			s, err := loadServices(ctx)
			if err != nil {
				return err
			}
			defer s.Repo.Close()

			if archive && s.Files == nil {
				return gerr.ArchiveNotConfigured
			}
			if outDir != "" {
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return fmt.Errorf("can't create output directory: %w", err)
				}
			}

			ds, err := s.Report.Load(ctx)
			if err != nil {
				return err
			}

			bar := progressbar.Default(int64(len(anchors)), "exporting")
			written, empty := 0, 0
			for _, anchor := range anchors {
				exp, err := s.Report.ExportFrom(ctx, ds, entity.ReportRequest{Kind: entity.ReportKind(kind), Anchor: anchor})
				switch {
				case errors.Is(err, gerr.NoDataForPeriod):
					empty++
				case err != nil:
					_ = bar.Finish()
					return fmt.Errorf("can't export %s: %w", anchor, err)
				default:
					if outDir != "" {
						if err := os.WriteFile(filepath.Join(outDir, exp.Filename), exp.Content, 0o644); err != nil {
							_ = bar.Finish()
							return fmt.Errorf("can't write %s: %w", exp.Filename, err)
						}
					}
					if archive {
						if _, err := s.Files.UploadReport(ctx, exp); err != nil {
							_ = bar.Finish()
							return fmt.Errorf("can't archive %s: %w", exp.Filename, err)
						}
					}
					written++
				}
				_ = bar.Add(1)
			}
			_ = bar.Finish()

			fmt.Fprintf(cmd.OutOrStdout(), "\n%d exported, %d periods without orders\n", written, empty)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(entity.ReportMonthly), "period kind: daily, monthly or yearly")
	cmd.Flags().StringVar(&from, "from", "", "first period anchor")
	cmd.Flags().StringVar(&to, "to", "", "last period anchor (defaults to --from)")
	cmd.Flags().StringVar(&outDir, "out", ".", "directory for CSV files, empty to skip writing")
	cmd.Flags().BoolVar(&archive, "archive", false, "upload every export to the bucket")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
