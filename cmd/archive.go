package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	gerr "github.com/gemstore/analytics-manager/internal/errors"
	"github.com/spf13/cobra"
)

func archiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Inspect and prune archived CSV exports",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List archived exports, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := loadServices(ctx)
			if err != nil {
				return err
			}
			defer s.Repo.Close()
			if s.Files == nil {
				return gerr.ArchiveNotConfigured
			}

			reports, err := s.Files.ListReports(ctx)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MODIFIED\tSIZE\tURL")
			for _, r := range reports {
				fmt.Fprintf(w, "%s\t%d\t%s\n", r.LastModified.Format(time.RFC3339), r.Size, r.URL)
			}
			return w.Flush()
		},
	}

	var days int
	prune := &cobra.Command{
		Use:   "prune",
		Short: "Delete archived exports older than --days",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return fmt.Errorf("--days must be positive")
			}
			ctx := cmd.Context()
			s, err := loadServices(ctx)
			if err != nil {
				return err
			}
			defer s.Repo.Close()
			if s.Files == nil {
				return gerr.ArchiveNotConfigured
			}

			n, err := s.Files.PruneReports(ctx, time.Now().AddDate(0, 0, -days))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d archived exports removed\n", n)
			return nil
		},
	}
	prune.Flags().IntVar(&days, "days", 365, "retention in days")

	cmd.AddCommand(list, prune)
	return cmd
}
