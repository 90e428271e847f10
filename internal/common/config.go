package common

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/joseph-ayodele/utility-bills/constants"
)

// ConfigFileEnv names the environment variable pointing at an optional config file.
const ConfigFileEnv = "BILLS_CONFIG"

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Render    RenderConfig
	LLM       LLMConfig
	Reconcile ReconcileConfig
	Routing   RoutingConfig
	Queue     QueueConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	SQLitePath       string // used when DSN is empty; ":memory:" for throwaway runs
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr    string
	MetricsAddr string
}

// RenderConfig controls PDF page rasterization.
type RenderConfig struct {
	PdftoppmPath string
	DPI          int
	MaxPages     int
	CacheDir     string
}

// LLMConfig holds LLM-related configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
	Lenient     bool
	MaxImageMB  int
}

type ReconcileConfig struct {
	Tolerance float64
}

// RoutingConfig names the two destinations of the validation gate.
type RoutingConfig struct {
	ProcessedDir   string
	UnprocessedDir string
	Move           bool
}

type QueueConfig struct {
	Workers    int
	Size       int
	JobTimeout time.Duration
}

// fileConfig mirrors Config for YAML, TOML and JSON files. Durations are
// strings ("30s"); zero values leave the default in place.
type fileConfig struct {
	Database struct {
		DSN              string `json:"dsn" yaml:"dsn" toml:"dsn"`
		SQLitePath       string `json:"sqlite_path" yaml:"sqlite_path" toml:"sqlite_path"`
		MaxConns         int32  `json:"max_conns" yaml:"max_conns" toml:"max_conns"`
		MinConns         int32  `json:"min_conns" yaml:"min_conns" toml:"min_conns"`
		MaxConnLifetime  string `json:"max_conn_lifetime" yaml:"max_conn_lifetime" toml:"max_conn_lifetime"`
		MaxConnIdleTime  string `json:"max_conn_idle_time" yaml:"max_conn_idle_time" toml:"max_conn_idle_time"`
		DialTimeout      string `json:"dial_timeout" yaml:"dial_timeout" toml:"dial_timeout"`
		StatementTimeout string `json:"statement_timeout" yaml:"statement_timeout" toml:"statement_timeout"`
	} `json:"database" yaml:"database" toml:"database"`
	Server struct {
		GRPCAddr    string `json:"grpc_addr" yaml:"grpc_addr" toml:"grpc_addr"`
		MetricsAddr string `json:"metrics_addr" yaml:"metrics_addr" toml:"metrics_addr"`
	} `json:"server" yaml:"server" toml:"server"`
	Render struct {
		PdftoppmPath string `json:"pdftoppm_path" yaml:"pdftoppm_path" toml:"pdftoppm_path"`
		DPI          int    `json:"dpi" yaml:"dpi" toml:"dpi"`
		MaxPages     int    `json:"max_pages" yaml:"max_pages" toml:"max_pages"`
		CacheDir     string `json:"cache_dir" yaml:"cache_dir" toml:"cache_dir"`
	} `json:"render" yaml:"render" toml:"render"`
	LLM struct {
		Model       string  `json:"model" yaml:"model" toml:"model"`
		APIKey      string  `json:"api_key" yaml:"api_key" toml:"api_key"`
		BaseURL     string  `json:"base_url" yaml:"base_url" toml:"base_url"`
		Temperature float64 `json:"temperature" yaml:"temperature" toml:"temperature"`
		Timeout     string  `json:"timeout" yaml:"timeout" toml:"timeout"`
		Lenient     *bool   `json:"lenient" yaml:"lenient" toml:"lenient"`
		MaxImageMB  int     `json:"max_image_mb" yaml:"max_image_mb" toml:"max_image_mb"`
	} `json:"llm" yaml:"llm" toml:"llm"`
	Reconcile struct {
		Tolerance float64 `json:"tolerance" yaml:"tolerance" toml:"tolerance"`
	} `json:"reconcile" yaml:"reconcile" toml:"reconcile"`
	Routing struct {
		ProcessedDir   string `json:"processed_dir" yaml:"processed_dir" toml:"processed_dir"`
		UnprocessedDir string `json:"unprocessed_dir" yaml:"unprocessed_dir" toml:"unprocessed_dir"`
		Move           *bool  `json:"move" yaml:"move" toml:"move"`
	} `json:"routing" yaml:"routing" toml:"routing"`
	Queue struct {
		Workers    int    `json:"workers" yaml:"workers" toml:"workers"`
		Size       int    `json:"size" yaml:"size" toml:"size"`
		JobTimeout string `json:"job_timeout" yaml:"job_timeout" toml:"job_timeout"`
	} `json:"queue" yaml:"queue" toml:"queue"`
}

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			SQLitePath:      "bills.db",
			MaxConns:        20,
			MinConns:        5,
			MaxConnLifetime: 30 * time.Minute,
			MaxConnIdleTime: 5 * time.Minute,
			DialTimeout:     3 * time.Second,
		},
		Server: ServerConfig{
			GRPCAddr:    ":8080",
			MetricsAddr: ":9090",
		},
		Render: RenderConfig{
			PdftoppmPath: "pdftoppm",
			DPI:          constants.RenderDPIDefault,
			MaxPages:     constants.MaxRenderPagesDefault,
			CacheDir:     "./tmp",
		},
		LLM: LLMConfig{
			Model:      "gpt-4o",
			Timeout:    90 * time.Second,
			Lenient:    true,
			MaxImageMB: constants.MaxVisionMBDefault,
		},
		Reconcile: ReconcileConfig{Tolerance: 0.01},
		Routing: RoutingConfig{
			ProcessedDir:   constants.ProcessedDirName,
			UnprocessedDir: constants.UnprocessedDirName,
		},
		Queue: QueueConfig{
			Workers:    4,
			Size:       256,
			JobTimeout: 5 * time.Minute,
		},
	}
}

// LoadConfig loads configuration from the file named by BILLS_CONFIG, if any,
// then from environment variables, which take precedence.
func LoadConfig() (*Config, error) {
	return LoadConfigFile(os.Getenv(ConfigFileEnv))
}

// LoadConfigFile is LoadConfig with an explicit file path. An empty path skips the file.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		fc, err := readConfigFile(path)
		if err != nil {
			return nil, NewAppError("CONFIG_ERROR", "cannot load config file", err)
		}
		if err := fc.applyTo(cfg); err != nil {
			return nil, NewAppError("CONFIG_ERROR", "invalid config file", err)
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func readConfigFile(path string) (*fileConfig, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}
	return &fc, nil
}

func (fc *fileConfig) applyTo(cfg *Config) error {
	setString(&cfg.Database.DSN, fc.Database.DSN)
	setString(&cfg.Database.SQLitePath, fc.Database.SQLitePath)
	if fc.Database.MaxConns > 0 {
		cfg.Database.MaxConns = fc.Database.MaxConns
	}
	if fc.Database.MinConns > 0 {
		cfg.Database.MinConns = fc.Database.MinConns
	}
	durations := []struct {
		key string
		raw string
		dst *time.Duration
	}{
		{"database.max_conn_lifetime", fc.Database.MaxConnLifetime, &cfg.Database.MaxConnLifetime},
		{"database.max_conn_idle_time", fc.Database.MaxConnIdleTime, &cfg.Database.MaxConnIdleTime},
		{"database.dial_timeout", fc.Database.DialTimeout, &cfg.Database.DialTimeout},
		{"database.statement_timeout", fc.Database.StatementTimeout, &cfg.Database.StatementTimeout},
		{"llm.timeout", fc.LLM.Timeout, &cfg.LLM.Timeout},
		{"queue.job_timeout", fc.Queue.JobTimeout, &cfg.Queue.JobTimeout},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = v
	}

	setString(&cfg.Server.GRPCAddr, fc.Server.GRPCAddr)
	setString(&cfg.Server.MetricsAddr, fc.Server.MetricsAddr)

	setString(&cfg.Render.PdftoppmPath, fc.Render.PdftoppmPath)
	setString(&cfg.Render.CacheDir, fc.Render.CacheDir)
	if fc.Render.DPI > 0 {
		cfg.Render.DPI = fc.Render.DPI
	}
	if fc.Render.MaxPages > 0 {
		cfg.Render.MaxPages = fc.Render.MaxPages
	}

	setString(&cfg.LLM.Model, fc.LLM.Model)
	setString(&cfg.LLM.APIKey, fc.LLM.APIKey)
	setString(&cfg.LLM.BaseURL, fc.LLM.BaseURL)
	if fc.LLM.Temperature > 0 {
		cfg.LLM.Temperature = float32(fc.LLM.Temperature)
	}
	if fc.LLM.Lenient != nil {
		cfg.LLM.Lenient = *fc.LLM.Lenient
	}
	if fc.LLM.MaxImageMB > 0 {
		cfg.LLM.MaxImageMB = fc.LLM.MaxImageMB
	}

	if fc.Reconcile.Tolerance > 0 {
		cfg.Reconcile.Tolerance = fc.Reconcile.Tolerance
	}

	setString(&cfg.Routing.ProcessedDir, fc.Routing.ProcessedDir)
	setString(&cfg.Routing.UnprocessedDir, fc.Routing.UnprocessedDir)
	if fc.Routing.Move != nil {
		cfg.Routing.Move = *fc.Routing.Move
	}

	if fc.Queue.Workers > 0 {
		cfg.Queue.Workers = fc.Queue.Workers
	}
	if fc.Queue.Size > 0 {
		cfg.Queue.Size = fc.Queue.Size
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Database.DSN = getEnv("DB_URL", cfg.Database.DSN)
	cfg.Database.SQLitePath = getEnv("SQLITE_PATH", cfg.Database.SQLitePath)
	cfg.Database.MaxConns = getEnvAsInt32("DB_MAX_CONNS", cfg.Database.MaxConns)
	cfg.Database.MinConns = getEnvAsInt32("DB_MIN_CONNS", cfg.Database.MinConns)
	cfg.Database.MaxConnLifetime = getEnvAsDuration("DB_MAX_CONN_LIFETIME", cfg.Database.MaxConnLifetime)
	cfg.Database.MaxConnIdleTime = getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", cfg.Database.MaxConnIdleTime)
	cfg.Database.DialTimeout = getEnvAsDuration("DB_DIAL_TIMEOUT", cfg.Database.DialTimeout)
	cfg.Database.StatementTimeout = getEnvAsDuration("DB_STATEMENT_TIMEOUT", cfg.Database.StatementTimeout)

	cfg.Server.GRPCAddr = getEnv("GRPC_ADDR", cfg.Server.GRPCAddr)
	cfg.Server.MetricsAddr = getEnv("METRICS_ADDR", cfg.Server.MetricsAddr)

	cfg.Render.PdftoppmPath = getEnv("PDFTOPPM_PATH", cfg.Render.PdftoppmPath)
	cfg.Render.DPI = getEnvAsInt("RENDER_DPI", cfg.Render.DPI)
	cfg.Render.MaxPages = getEnvAsInt("RENDER_MAX_PAGES", cfg.Render.MaxPages)
	cfg.Render.CacheDir = getEnv("ARTIFACT_CACHE_DIR", cfg.Render.CacheDir)

	cfg.LLM.Model = getEnv("OPENAI_MODEL", cfg.LLM.Model)
	cfg.LLM.APIKey = getEnv("OPENAI_API_KEY", cfg.LLM.APIKey)
	cfg.LLM.BaseURL = getEnv("OPENAI_BASE_URL", cfg.LLM.BaseURL)
	cfg.LLM.Temperature = getEnvAsFloat32("OPENAI_TEMPERATURE", cfg.LLM.Temperature)
	cfg.LLM.Timeout = getEnvAsDuration("OPENAI_TIMEOUT", cfg.LLM.Timeout)
	cfg.LLM.Lenient = getEnvAsBool("OPENAI_LENIENT", cfg.LLM.Lenient)
	cfg.LLM.MaxImageMB = getEnvAsInt("OPENAI_MAX_IMAGE_MB", cfg.LLM.MaxImageMB)

	cfg.Reconcile.Tolerance = getEnvAsFloat64("RECONCILE_TOLERANCE", cfg.Reconcile.Tolerance)

	cfg.Routing.ProcessedDir = getEnv("PROCESSED_DIR", cfg.Routing.ProcessedDir)
	cfg.Routing.UnprocessedDir = getEnv("UNPROCESSED_DIR", cfg.Routing.UnprocessedDir)
	cfg.Routing.Move = getEnvAsBool("ROUTE_MOVE", cfg.Routing.Move)

	cfg.Queue.Workers = getEnvAsInt("QUEUE_WORKERS", cfg.Queue.Workers)
	cfg.Queue.Size = getEnvAsInt("QUEUE_SIZE", cfg.Queue.Size)
	cfg.Queue.JobTimeout = getEnvAsDuration("JOB_TIMEOUT", cfg.Queue.JobTimeout)
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate checks values every command relies on.
func (c *Config) Validate() error {
	v := NewValidator().
		Field("reconcile.tolerance", c.Reconcile.Tolerance, NonNegative).
		Field("queue.workers", c.Queue.Workers, Positive).
		Field("queue.size", c.Queue.Size, Positive).
		Field("render.dpi", c.Render.DPI, Positive).
		Field("render.max_pages", c.Render.MaxPages, Positive).
		Field("routing.processed_dir", c.Routing.ProcessedDir, Required).
		Field("routing.unprocessed_dir", c.Routing.UnprocessedDir, Required)
	if c.Routing.ProcessedDir != "" && filepath.Clean(c.Routing.ProcessedDir) == filepath.Clean(c.Routing.UnprocessedDir) {
		v.Field("routing.unprocessed_dir", c.Routing.UnprocessedDir, func(name string, value interface{}) *ValidationError {
			return &ValidationError{Field: name, Value: value, Message: "must differ from routing.processed_dir"}
		})
	}
	if v.HasErrors() {
		return NewAppError("CONFIG_ERROR", v.ErrorMessage(), ErrInvalidInput)
	}
	return nil
}

// RequireDatabase checks that some database is configured.
func (c *Config) RequireDatabase() error {
	if c.Database.DSN == "" && c.Database.SQLitePath == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL or SQLITE_PATH is required", ErrInvalidInput)
	}
	return nil
}

// RequireLLM checks the settings needed to call the extraction model.
func (c *Config) RequireLLM() error {
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.LLM.Timeout <= 0 {
		return NewAppError("CONFIG_ERROR", "OPENAI_TIMEOUT must be positive", ErrInvalidInput)
	}
	return nil
}
