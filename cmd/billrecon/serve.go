package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/utility-bills/internal/async"
	"github.com/joseph-ayodele/utility-bills/internal/ingest"
	"github.com/joseph-ayodele/utility-bills/internal/observability/metrics"
	"github.com/joseph-ayodele/utility-bills/internal/repository"
	"github.com/joseph-ayodele/utility-bills/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var reconcileOnly bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gRPC reconciler and Prometheus metrics",
		Long: "Serve the gRPC reconciler and Prometheus metrics. With a database and an\n" +
			"OpenAI key configured, Submit ingests and queues PDFs; otherwise only the\n" +
			"pure Reconcile and ListProviders methods are available.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			logger := a.logger

			var (
				ing   ingest.Ingestor
				queue *async.ProcessorQueue
			)
			if !reconcileOnly && a.cfg.RequireDatabase() == nil && a.cfg.RequireLLM() == nil {
				db, err := a.openDatabase(ctx, false)
				if err != nil {
					return err
				}
				defer db.Close(logger)
				if err := repository.HealthCheck(ctx, db, 3*time.Second, logger); err != nil {
					return err
				}
				files := repository.NewBillFileRepository(db.Client, logger)
				jobs := repository.NewReconcileJobRepository(db.Client, logger)
				proc, err := a.processor(files, jobs)
				if err != nil {
					return err
				}
				ing = ingest.NewFSIngestor(files, logger, a.cfg.Routing.ProcessedDir, a.cfg.Routing.UnprocessedDir)
				queue = async.NewProcessorQueue(proc, logger,
					async.WithWorkers(a.cfg.Queue.Workers),
					async.WithQueueSize(a.cfg.Queue.Size),
					async.WithProcessTimeout(a.cfg.Queue.JobTimeout),
				)
			} else {
				logger.Info("serve.reconcile_only")
			}

			var q async.Queue
			if queue != nil {
				q = queue
			}
			svc := server.NewReconcilerService(a.engine(), ing, q, logger)
			grpcServer, healthServer := server.NewGRPCServer(svc, logger)

			lis, err := net.Listen("tcp", a.cfg.Server.GRPCAddr)
			if err != nil {
				return err
			}
			metricsServer := &http.Server{
				Addr:              a.cfg.Server.MetricsAddr,
				Handler:           metricsMux(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 2)
			go func() {
				logger.Info("serve.grpc.listening", "addr", a.cfg.Server.GRPCAddr)
				errCh <- grpcServer.Serve(lis)
			}()
			go func() {
				logger.Info("serve.metrics.listening", "addr", a.cfg.Server.MetricsAddr)
				if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case <-ctx.Done():
			case err = <-errCh:
				logger.Error("serve.failed", "error", err)
			}

			logger.Info("serve.shutdown")
			healthServer.Shutdown()
			grpcServer.GracefulStop()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Queue.JobTimeout)
			defer cancel()
			_ = metricsServer.Shutdown(shutdownCtx)
			if queue != nil {
				queue.Shutdown(shutdownCtx)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&reconcileOnly, "reconcile-only", false, "do not open the database or the model client")
	return cmd
}

func metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}
