package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/autosales/api/internal/auth"
	"github.com/autosales/api/internal/data"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const version = "v1.0.0"

// Server configuration settings
type config struct {
	port int
	env  string
	db   struct {
		dsn          string
		maxOpenConns int
		maxIdleConns int
		maxIdleTime  time.Duration
	}
	jwt struct {
		secret string
	}
	cors struct {
		trustedOrigins []string
	}
}

type app struct {
	config config
	logger *slog.Logger
	db     *sql.DB
	models data.Models
	auth   *auth.Authenticator
}

func main() {
	cfg := loadConfig()

	logger := setupLogger(cfg)

	if cfg.jwt.secret == "" {
		// Deployment risk, not a correctness issue: tokens stay valid but
		// are forgeable by anyone who knows the fallback key.
		cfg.jwt.secret = "dev-secret"
		logger.Warn("JWT_SECRET not set, using insecure development key")
	}

	db, err := openDB(cfg)
	if err != nil {
		logger.Error("Error opening database connection", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	logger.Info("Database connection pool established")

	app := &app{
		config: cfg,
		logger: logger,
		db:     db,
		models: data.NewModels(db),
		auth:   auth.New(cfg.jwt.secret),
	}

	err = app.serve()
	if err != nil {
		logger.Error("Error starting server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func loadConfig() config {
	var cfg config

	// Mirror the original deployment: a .env file in the working directory
	// feeds the environment before flags are read.
	_ = godotenv.Load()

	flag.IntVar(&cfg.port, "port", envInt("PORT", 4000), "API server port")
	flag.StringVar(&cfg.env, "env", envString("ENV", "development"), "Environment (development|staging|production)")
	flag.StringVar(&cfg.db.dsn, "db-dsn", os.Getenv("DB_DSN"), "PostgreSQL database connection string")
	flag.IntVar(&cfg.db.maxOpenConns, "db-max-open-conns", envInt("DB_MAX_OPEN_CONNS", 25), "PostgreSQL max open connections")
	flag.IntVar(&cfg.db.maxIdleConns, "db-max-idle-conns", envInt("DB_MAX_IDLE_CONNS", 25), "PostgreSQL max idle connections")
	flag.DurationVar(&cfg.db.maxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max connection idle time")
	flag.StringVar(&cfg.jwt.secret, "jwt-secret", os.Getenv("JWT_SECRET"), "JWT signing secret")

	cfg.cors.trustedOrigins = strings.Fields(os.Getenv("CORS_TRUSTED_ORIGINS"))
	flag.Func("cors-trusted-origins", "Trusted CORS origins (space separated)", func(val string) error {
		cfg.cors.trustedOrigins = strings.Fields(val)
		return nil
	})
	flag.Parse()

	return cfg
}

func envString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func setupLogger(cfg config) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	// Output loaded configuration settings
	logger.Info("Starting server",
		slog.String("version", version),
		slog.String("env", cfg.env),
		slog.Int("port", cfg.port),
		slog.Int("dbMaxOpenConns", cfg.db.maxOpenConns),
		slog.Int("dbMaxIdleConns", cfg.db.maxIdleConns),
	)

	return logger
}

func openDB(cfg config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.db.dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.db.maxOpenConns)
	db.SetMaxIdleConns(cfg.db.maxIdleConns)
	db.SetConnMaxIdleTime(cfg.db.maxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
