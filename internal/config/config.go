// Package config reads server settings from flags, falling back to
// environment variables and then to local development defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	defaultHTTPAddr        = ":8080"
	defaultGRPCAddr        = ":50051"
	defaultMySQLDSN        = "root:root@tcp(localhost:3306)/tickets?parseTime=true"
	defaultRedisAddr       = "localhost:6379"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultShutdownTimeout = 5 * time.Second
)

type Config struct {
	HTTPAddr        string
	GRPCAddr        string
	MySQLDSN        string
	RedisAddr       string
	LogLevel        logrus.Level
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load parses args (without the program name). getenv is usually os.Getenv.
func Load(args []string, getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	envOr := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	shutdownDefault := defaultShutdownTimeout
	if v := getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		shutdownDefault = d
	}

	var cfg Config
	var level string

	flags := pflag.NewFlagSet("ticket-server", pflag.ContinueOnError)
	flags.StringVar(&cfg.HTTPAddr, "http-addr", envOr("HTTP_ADDR", defaultHTTPAddr), "HTTP listen address")
	flags.StringVar(&cfg.GRPCAddr, "grpc-addr", envOr("GRPC_ADDR", defaultGRPCAddr), "gRPC listen address")
	flags.StringVar(&cfg.MySQLDSN, "mysql-dsn", envOr("MYSQL_DSN", defaultMySQLDSN), "MySQL DSN for the payments ledger")
	flags.StringVar(&cfg.RedisAddr, "redis-addr", envOr("REDIS_ADDR", defaultRedisAddr), "Redis address for seat reservations")
	flags.StringVar(&level, "log-level", envOr("LOG_LEVEL", defaultLogLevel), "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFormat, "log-format", envOr("LOG_FORMAT", defaultLogFormat), "log format (text or json)")
	flags.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", shutdownDefault, "graceful shutdown timeout")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return Config{}, fmt.Errorf("log level: %w", err)
	}
	cfg.LogLevel = lvl

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("log format %q: must be text or json", cfg.LogFormat)
	}

	return cfg, nil
}

// NewLogger builds a logger configured from cfg.
func (c Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
