package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type PostgresService struct {
	db     *sql.DB
	logger *zap.Logger
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

func NewPostgresService(cfg PostgresConfig, logger *zap.Logger) (*PostgresService, error) {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, sslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
	)

	return &PostgresService{
		db:     db,
		logger: logger,
	}, nil
}

func (ps *PostgresService) GetDB() *sql.DB {
	return ps.db
}

func (ps *PostgresService) Ping(ctx context.Context) error {
	return ps.db.PingContext(ctx)
}

func (ps *PostgresService) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}

// InitSchema creates the tables on first start. Idempotent.
func (ps *PostgresService) InitSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			phone TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS majors (
			id TEXT PRIMARY KEY,
			code TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			career_prospects JSONB NOT NULL DEFAULT '[]',
			required_skills JSONB NOT NULL DEFAULT '[]',
			subjects JSONB NOT NULL DEFAULT '[]',
			tuition_info TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS surveys (
			id TEXT PRIMARY KEY,
			user_id TEXT,
			name TEXT NOT NULL,
			age INT NOT NULL,
			current_grade TEXT NOT NULL DEFAULT '',
			gender TEXT NOT NULL DEFAULT '',
			interests JSONB NOT NULL DEFAULT '[]',
			skills JSONB NOT NULL DEFAULT '[]',
			academic_scores JSONB NOT NULL DEFAULT '{}',
			career_goals TEXT NOT NULL DEFAULT '',
			learning_style TEXT NOT NULL DEFAULT '',
			work_environment_preference TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS consultation_results (
			id TEXT PRIMARY KEY,
			survey_id TEXT NOT NULL REFERENCES surveys(id),
			recommended_fields JSONB NOT NULL DEFAULT '[]',
			analysis_summary TEXT NOT NULL DEFAULT '',
			strengths JSONB NOT NULL DEFAULT '[]',
			advice JSONB NOT NULL DEFAULT '[]',
			confidence_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			provider TEXT NOT NULL DEFAULT '',
			used_fallback BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS chat_messages (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_surveys_user_id ON surveys(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_results_survey_id ON consultation_results(survey_id)`,
		`CREATE INDEX IF NOT EXISTS idx_chat_messages_session ON chat_messages(session_id, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := ps.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	ps.logger.Info("Database schema initialized")
	return nil
}
