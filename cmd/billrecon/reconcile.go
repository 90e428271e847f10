package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/utility-bills/internal/export"
	"github.com/joseph-ayodele/utility-bills/internal/pipeline"
)

func newReconcileCmd(a *app) *cobra.Command {
	var (
		route   bool
		asJSON  bool
		xlsxOut string
	)
	cmd := &cobra.Command{
		Use:   "reconcile <bill.json>...",
		Short: "Reconcile already-extracted JSON bills",
		Long: "Reconcile already-extracted JSON bills. The provider is read from the\n" +
			"document or, when absent, from the parent folder name. Exits with status 1\n" +
			"when any bill fails the validation gate.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			engine := a.engine()
			router := a.router()

			var rows []export.Row
			var failed, errs int
			for _, path := range args {
				rep, err := pipeline.ReconcileFile(ctx, engine, path)
				if err != nil {
					pterm.Error.Printfln("%s: %v", path, err)
					errs++
					continue
				}
				row := export.RowFromResult(filepath.Base(path), rep.Result)
				rows = append(rows, row)
				if !row.Passed {
					failed++
				}

				if asJSON {
					enc := json.NewEncoder(os.Stdout)
					enc.SetIndent("", "  ")
					if err := enc.Encode(rep.Annotated); err != nil {
						return err
					}
				} else {
					printRow(row)
				}
				if route {
					dest, err := router.RouteJSON(path, rep.Provider, row.Passed, rep.Annotated)
					if err != nil {
						return err
					}
					a.logger.Debug("reconcile.routed", "path", path, "dest", dest)
				}
			}

			if xlsxOut != "" {
				b, err := export.XLSXReport(rows)
				if err != nil {
					return err
				}
				if err := os.WriteFile(xlsxOut, b, 0o644); err != nil {
					return err
				}
				pterm.Success.Printfln("report written to %s", xlsxOut)
			}
			if !asJSON && len(rows) > 1 {
				printSummary(rows)
			}
			if errs > 0 {
				return fmt.Errorf("%d of %d bills could not be reconciled", errs, len(args))
			}
			if failed > 0 {
				return errGateFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&route, "route", false, "write annotated JSON into the processed/unprocessed directories")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the annotated bills as JSON")
	cmd.Flags().StringVar(&xlsxOut, "xlsx", "", "also write an XLSX report to this path")
	return cmd
}
