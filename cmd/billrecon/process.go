package main

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pterm/pterm"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/utility-bills/internal/async"
	"github.com/joseph-ayodele/utility-bills/internal/export"
	"github.com/joseph-ayodele/utility-bills/internal/ingest"
	"github.com/joseph-ayodele/utility-bills/internal/pipeline"
	"github.com/joseph-ayodele/utility-bills/internal/repository"
)

func newProcessCmd(a *app) *cobra.Command {
	var (
		dir    string
		inmem  bool
		force  bool
		out    string
		pdfOut string
	)
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Ingest, extract and reconcile every bill PDF under a directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			started := time.Now()

			db, err := a.openDatabase(ctx, inmem)
			if err != nil {
				return err
			}
			defer db.Close(a.logger)
			files := repository.NewBillFileRepository(db.Client, a.logger)
			jobs := repository.NewReconcileJobRepository(db.Client, a.logger)

			proc, err := a.processor(files, jobs)
			if err != nil {
				return err
			}

			ing := ingest.NewFSIngestor(files, a.logger, a.cfg.Routing.ProcessedDir, a.cfg.Routing.UnprocessedDir)
			results, stats, err := ing.IngestDirectory(ctx, dir)
			if err != nil {
				return err
			}
			pterm.Info.Printfln("scanned %d, matched %d, registered %d, deduplicated %d, failed %d",
				stats.Scanned, stats.Matched, stats.Registered, stats.Deduplicated, stats.Failed)

			var todo []ingest.IngestionResult
			for _, r := range results {
				if r.Err == "" && (!r.Deduplicated || force) {
					todo = append(todo, r)
				}
			}
			if len(todo) == 0 {
				pterm.Info.Println("nothing to process")
				return nil
			}

			bar := progressbar.NewOptions(len(todo),
				progressbar.OptionSetDescription("Reconciling bills"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "=",
					SaucerHead:    ">",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
			)
			var (
				mu       sync.Mutex
				failures int
			)
			queue := async.NewProcessorQueue(proc, a.logger,
				async.WithWorkers(a.cfg.Queue.Workers),
				async.WithQueueSize(a.cfg.Queue.Size),
				async.WithProcessTimeout(a.cfg.Queue.JobTimeout),
				async.WithResultFunc(func(_ async.Job, _ pipeline.Outcome, err error) {
					mu.Lock()
					defer mu.Unlock()
					if err != nil && !errors.Is(err, pipeline.ErrSkipped) {
						failures++
					}
					_ = bar.Add(1)
				}),
			)
			for _, r := range todo {
				if err := queue.Enqueue(ctx, async.Job{FileID: r.FileID, Force: force}); err != nil {
					a.logger.Error("process.enqueue.failed", "file_id", r.FileID, "error", err)
				}
			}
			queue.Shutdown(ctx)
			_ = bar.Finish()

			svc := export.NewService(files, jobs, a.logger)
			rows, err := svc.Rows(ctx, started)
			if err != nil {
				return err
			}
			for _, r := range rows {
				if !r.Passed {
					printRow(r)
				}
			}
			printSummary(rows)

			if out == "" {
				out = filepath.Join(filepath.Dir(filepath.Clean(dir)), "bills-report.xlsx")
			}
			b, err := export.XLSXReport(rows)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, b, 0o644); err != nil {
				return err
			}
			pterm.Success.Printfln("report written to %s", out)
			if pdfOut != "" {
				b, err := export.PDFSummary(rows, time.Now().UTC())
				if err != nil {
					return err
				}
				if err := os.WriteFile(pdfOut, b, 0o644); err != nil {
					return err
				}
				pterm.Success.Printfln("summary written to %s", pdfOut)
			}
			if failures > 0 {
				pterm.Warning.Printfln("%d bills failed to process; see logs", failures)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory of bill PDFs (provider folders are recognized)")
	cmd.Flags().BoolVar(&inmem, "inmem", false, "use a throwaway in-memory SQLite database")
	cmd.Flags().BoolVar(&force, "force", false, "reprocess bills that were already processed")
	cmd.Flags().StringVarP(&out, "out", "o", "", "XLSX report path (default: bills-report.xlsx next to --dir)")
	cmd.Flags().StringVar(&pdfOut, "pdf", "", "also write a PDF summary to this path")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}
