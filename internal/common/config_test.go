package common

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfigFile_Formats(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{
			name: "yaml",
			file: "bills.yaml",
			body: "reconcile:\n  tolerance: 0.05\nqueue:\n  workers: 7\n  job_timeout: 45s\nrouting:\n  processed_dir: out/ok\n  move: true\n",
		},
		{
			name: "toml",
			file: "bills.toml",
			body: "[reconcile]\ntolerance = 0.05\n\n[queue]\nworkers = 7\njob_timeout = \"45s\"\n\n[routing]\nprocessed_dir = \"out/ok\"\nmove = true\n",
		},
		{
			name: "json",
			file: "bills.json",
			body: `{"reconcile":{"tolerance":0.05},"queue":{"workers":7,"job_timeout":"45s"},"routing":{"processed_dir":"out/ok","move":true}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfigFile(writeFile(t, tt.file, tt.body))
			if err != nil {
				t.Fatalf("LoadConfigFile: %v", err)
			}
			if cfg.Reconcile.Tolerance != 0.05 {
				t.Errorf("tolerance = %v, want 0.05", cfg.Reconcile.Tolerance)
			}
			if cfg.Queue.Workers != 7 {
				t.Errorf("workers = %d, want 7", cfg.Queue.Workers)
			}
			if cfg.Queue.JobTimeout != 45*time.Second {
				t.Errorf("job timeout = %v, want 45s", cfg.Queue.JobTimeout)
			}
			if cfg.Routing.ProcessedDir != "out/ok" || !cfg.Routing.Move {
				t.Errorf("routing = %+v", cfg.Routing)
			}
			// untouched sections keep their defaults
			if cfg.Queue.Size != 256 {
				t.Errorf("queue size = %d, want default 256", cfg.Queue.Size)
			}
		})
	}
}

func TestLoadConfigFile_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "bills.yaml", "queue:\n  workers: 7\nserver:\n  grpc_addr: \":7000\"\n")
	t.Setenv("QUEUE_WORKERS", "2")

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.Queue.Workers != 2 {
		t.Errorf("workers = %d, want env value 2", cfg.Queue.Workers)
	}
	if cfg.Server.GRPCAddr != ":7000" {
		t.Errorf("grpc addr = %q, want :7000", cfg.Server.GRPCAddr)
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }},
		{"directory", func(t *testing.T) string { return t.TempDir() }},
		{"unknown extension", func(t *testing.T) string { return writeFile(t, "bills.ini", "a=b") }},
		{"bad duration", func(t *testing.T) string { return writeFile(t, "bills.json", `{"llm":{"timeout":"soon"}}`) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfigFile(tt.path(t))
			var appErr *AppError
			if !errors.As(err, &appErr) || appErr.Code != "CONFIG_ERROR" {
				t.Fatalf("err = %v, want CONFIG_ERROR", err)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	cfg.Queue.Workers = 0
	cfg.Routing.UnprocessedDir = cfg.Routing.ProcessedDir
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want wrapping ErrInvalidInput", err)
	}
}

func TestConfigRequire(t *testing.T) {
	cfg := defaultConfig()
	cfg.Database.SQLitePath = ""
	if err := cfg.RequireDatabase(); err == nil {
		t.Error("RequireDatabase with no DSN and no sqlite path should fail")
	}
	cfg.Database.DSN = "postgres://localhost/bills"
	if err := cfg.RequireDatabase(); err != nil {
		t.Errorf("RequireDatabase: %v", err)
	}

	if err := cfg.RequireLLM(); err == nil {
		t.Error("RequireLLM without api key should fail")
	}
	cfg.LLM.APIKey = "sk-test"
	if err := cfg.RequireLLM(); err != nil {
		t.Errorf("RequireLLM: %v", err)
	}
}
