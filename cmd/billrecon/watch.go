package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/utility-bills/internal/async"
	"github.com/joseph-ayodele/utility-bills/internal/common"
	"github.com/joseph-ayodele/utility-bills/internal/ingest"
	"github.com/joseph-ayodele/utility-bills/internal/pipeline"
	"github.com/joseph-ayodele/utility-bills/internal/repository"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		dirs        []string
		initialScan bool
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Process bill PDFs as they appear in inbox directories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, err := a.openDatabase(ctx, false)
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

			queue := async.NewProcessorQueue(proc, a.logger,
				async.WithWorkers(a.cfg.Queue.Workers),
				async.WithQueueSize(a.cfg.Queue.Size),
				async.WithProcessTimeout(a.cfg.Queue.JobTimeout),
				async.WithResultFunc(func(_ async.Job, out pipeline.Outcome, err error) {
					if err == nil {
						pterm.Printf("%s  %s  %s\n", statusText(out.Passed, string(out.Status)), out.Provider, out.RoutedPath)
					}
				}),
			)
			defer func() {
				sctx, cancel := context.WithTimeout(context.Background(), a.cfg.Queue.JobTimeout)
				defer cancel()
				queue.Shutdown(sctx)
			}()

			exclude := []string{a.cfg.Routing.ProcessedDir, a.cfg.Routing.UnprocessedDir}
			ing := ingest.NewFSIngestor(files, a.logger, exclude...)
			paths, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
				Roots:       dirs,
				InitialScan: initialScan,
				SkipHidden:  true,
				ExcludeDirs: exclude,
				Logger:      a.logger,
			})
			if err != nil {
				return err
			}
			pterm.Info.Printfln("watching %v", dirs)

			for {
				select {
				case path, ok := <-paths:
					if !ok {
						return nil
					}
					reqCtx, _ := common.EnsureRequestID(ctx)
					r, err := ing.IngestPath(reqCtx, path)
					if err != nil {
						a.logger.Error("watch.ingest.failed", "path", path, "error", err)
						continue
					}
					if r.Deduplicated {
						a.logger.Info("watch.duplicate", "path", path, "file_id", r.FileID)
						continue
					}
					if err := queue.Enqueue(reqCtx, async.Job{FileID: r.FileID}); err != nil {
						a.logger.Error("watch.enqueue.failed", "path", path, "error", err)
					}
				case err, ok := <-errs:
					if !ok {
						return nil
					}
					a.logger.Warn("watch.error", "error", err)
				case <-ctx.Done():
					return nil
				}
			}
		},
	}
	cmd.Flags().StringSliceVarP(&dirs, "dir", "d", nil, "inbox directories to watch (recursive)")
	cmd.Flags().BoolVar(&initialScan, "initial-scan", true, "process PDFs already present at startup")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}
