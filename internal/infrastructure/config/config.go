package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// DefaultFile is where deployments drop the key=value configuration file.
// Every key in the file carries the DWH_ prefix, same as the environment.
const DefaultFile = "/etc/init/dwh.conf"

// Config holds all application configuration.
type Config struct {
	// Storage
	PrimaryStoragePath   string `env:"PRIMARY_STORAGE"   envDefault:"/data"`
	SecondaryStoragePath string `env:"SECONDARY_STORAGE" envDefault:"/data/dwh.json"`

	// Sync
	SyncInterval      time.Duration `env:"SYNC_INTERVAL"       envDefault:"1m"`
	AssumeDenseEvents bool          `env:"ASSUME_DENSE_EVENTS" envDefault:"false"`

	// Optional sinks (leave empty to disable)
	PostgresURL string `env:"POSTGRES_URL" envDefault:""`
	RedisURL    string `env:"REDIS_URL"    envDefault:""`
	MetricsURL  string `env:"METRICS_URL"  envDefault:""`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load loads configuration from the config file and the environment. A real
// environment variable always wins over the same key from the file. The file
// path itself comes from DWH_CONFIG; a missing file is not an error.
func Load() (*Config, error) {
	path := os.Getenv("DWH_CONFIG")
	if path == "" {
		path = DefaultFile
	}

	environment, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	for key, value := range env.ToMap(os.Environ()) {
		environment[key] = value
	}

	cfg := &Config{}
	err = env.ParseWithOptions(cfg, env.Options{
		Prefix:      "DWH_",
		Environment: environment,
	})
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile parses a key=value file. Blank lines and lines starting with '#'
// are skipped.
func loadFile(path string) (map[string]string, error) {
	out := make(map[string]string)

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return out, nil
}
