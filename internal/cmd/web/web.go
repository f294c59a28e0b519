// Package web parses web command configuration and runs the server.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/closealead/internal/platform/cmd"
	"github.com/louisbranch/closealead/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"CLOSEALEAD_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	BackendURL          string        `env:"CLOSEALEAD_WEB_BACKEND_URL" envDefault:"http://localhost:8000/api/v1"`
	DBPath              string        `env:"CLOSEALEAD_WEB_DB_PATH" envDefault:"data/web.db"`
	SessionSecret       string        `env:"CLOSEALEAD_WEB_SESSION_SECRET"`
	SessionTTL          time.Duration `env:"CLOSEALEAD_WEB_SESSION_TTL" envDefault:"24h"`
	TrustForwardedProto bool          `env:"CLOSEALEAD_WEB_TRUST_FORWARDED_PROTO"`
}

// ParseConfig loads env defaults and then applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "Offers backend base URL")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite path for sessions and drafts")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Browser session lifetime")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honor X-Forwarded-Proto from a proxy")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			BackendURL:          cfg.BackendURL,
			DBPath:              cfg.DBPath,
			SessionSecret:       cfg.SessionSecret,
			SessionTTL:          cfg.SessionTTL,
			TrustForwardedProto: cfg.TrustForwardedProto,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
