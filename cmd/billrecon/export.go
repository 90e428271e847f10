package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/utility-bills/internal/export"
	"github.com/joseph-ayodele/utility-bills/internal/repository"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		out   string
		since time.Duration
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a report of stored reconciliation jobs (.xlsx or .pdf)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, err := a.openDatabase(ctx, false)
			if err != nil {
				return err
			}
			defer db.Close(a.logger)

			svc := export.NewService(
				repository.NewBillFileRepository(db.Client, a.logger),
				repository.NewReconcileJobRepository(db.Client, a.logger),
				a.logger,
			)
			var from time.Time
			if since > 0 {
				from = time.Now().Add(-since)
			}

			var b []byte
			switch strings.ToLower(filepath.Ext(out)) {
			case ".pdf":
				b, err = svc.ExportPDF(ctx, from)
			default:
				b, err = svc.ExportXLSX(ctx, from)
			}
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, b, 0o644); err != nil {
				return err
			}
			pterm.Success.Printfln("report written to %s", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "bills-report.xlsx", "output path; the extension selects XLSX or PDF")
	cmd.Flags().DurationVar(&since, "since", 0, "only jobs finished within this window, e.g. 720h")
	return cmd
}
