package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/utility-bills/internal/common"
	"github.com/joseph-ayodele/utility-bills/internal/llm/openai"
	"github.com/joseph-ayodele/utility-bills/internal/observability/metrics"
	"github.com/joseph-ayodele/utility-bills/internal/pipeline"
	"github.com/joseph-ayodele/utility-bills/internal/reconcile"
	"github.com/joseph-ayodele/utility-bills/internal/render"
	"github.com/joseph-ayodele/utility-bills/internal/repository"
)

// errGateFailed makes the process exit with status 1.
var errGateFailed = errors.New("one or more bills failed reconciliation")

var version = "dev"

type app struct {
	configPath string
	verbose    bool
	jsonLogs   bool

	cfg    *common.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "billrecon",
		Short:         "Utility bill extraction and reconciliation",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "C", "", "path to a YAML, TOML or JSON config file (default $"+common.ConfigFileEnv+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&a.jsonLogs, "log-json", false, "log as JSON")

	root.AddCommand(
		newReconcileCmd(a),
		newProcessCmd(a),
		newWatchCmd(a),
		newServeCmd(a),
		newExportCmd(a),
		newProvidersCmd(a),
	)
	return root
}

func (a *app) init() error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	if a.jsonLogs {
		a.logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	} else {
		a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
				if attr.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return attr
			},
		}))
	}
	slog.SetDefault(a.logger)

	var err error
	if a.configPath != "" {
		a.cfg, err = common.LoadConfigFile(a.configPath)
	} else {
		a.cfg, err = common.LoadConfig()
	}
	if err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	metrics.Init()
	return nil
}

func (a *app) engine() *reconcile.Engine {
	return reconcile.NewEngine(a.logger,
		reconcile.WithTolerance(decimal.NewFromFloat(a.cfg.Reconcile.Tolerance)))
}

func (a *app) router() *pipeline.Router {
	r := a.cfg.Routing
	return pipeline.NewRouter(r.ProcessedDir, r.UnprocessedDir, r.Move, a.logger)
}

// openDatabase connects and migrates. inmem forces a throwaway SQLite database.
func (a *app) openDatabase(ctx context.Context, inmem bool) (*repository.Database, error) {
	d := a.cfg.Database
	if inmem {
		d.DSN, d.SQLitePath = "", ":memory:"
	}
	if d.DSN == "" && d.SQLitePath == "" {
		return nil, a.cfg.RequireDatabase()
	}
	db, err := repository.Connect(ctx, repository.Config{
		DSN:              d.DSN,
		SQLitePath:       d.SQLitePath,
		MaxConns:         d.MaxConns,
		MinConns:         d.MinConns,
		MaxConnLifetime:  d.MaxConnLifetime,
		MaxConnIdleTime:  d.MaxConnIdleTime,
		DialTimeout:      d.DialTimeout,
		StatementTimeout: d.StatementTimeout,
	}, a.logger)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close(a.logger)
		return nil, err
	}
	return db, nil
}

// processor wires the PDF pipeline on top of the given stores.
func (a *app) processor(files repository.BillFileRepository, jobs repository.ReconcileJobRepository) (*pipeline.Processor, error) {
	if err := a.cfg.RequireLLM(); err != nil {
		return nil, err
	}
	rc := a.cfg.Render
	renderer := render.NewRenderer(render.Config{
		Pdftoppm: rc.PdftoppmPath,
		DPI:      rc.DPI,
		MaxPages: rc.MaxPages,
		CacheDir: rc.CacheDir,
	}, render.ExecRunner{Logger: a.logger}, a.logger)

	lc := a.cfg.LLM
	extractor := openai.NewClient(openai.Config{
		APIKey:          lc.APIKey,
		BaseURL:         lc.BaseURL,
		Model:           lc.Model,
		Temperature:     lc.Temperature,
		Timeout:         lc.Timeout,
		LenientOptional: lc.Lenient,
		MaxImageMB:      lc.MaxImageMB,
	}, a.logger)

	return pipeline.NewProcessor(a.logger, renderer, extractor, a.engine(), a.router(), files, jobs), nil
}
