package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/ai4life/career-advisor-go/internal/domain"
	"github.com/ai4life/career-advisor-go/pkg/errors"
)

type ResultRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewResultRepository(postgres *PostgresService, logger *zap.Logger) *ResultRepository {
	return &ResultRepository{
		db:     postgres.GetDB(),
		logger: logger,
	}
}

func (r *ResultRepository) Save(ctx context.Context, result *domain.AnalysisResult) error {
	fields, _ := json.Marshal(result.RecommendedFields)
	strengths, _ := json.Marshal(result.Strengths)
	advice, _ := json.Marshal(result.Advice)

	query := `
		INSERT INTO consultation_results (
			id, survey_id, recommended_fields, analysis_summary,
			strengths, advice, confidence_score, provider, used_fallback, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		result.ID, result.SurveyID, fields, result.AnalysisSummary,
		strengths, advice, result.ConfidenceScore,
		result.Provider, result.UsedFallback, result.CreatedAt,
	)
	if err != nil {
		return errors.NewDatabaseError("failed to save analysis result", "insert", "consultation_results", err)
	}
	return nil
}

func (r *ResultRepository) FindBySurveyID(ctx context.Context, surveyID string) (*domain.AnalysisResult, error) {
	query := `
		SELECT id, survey_id, recommended_fields, analysis_summary,
		       strengths, advice, confidence_score, provider, used_fallback, created_at
		FROM consultation_results
		WHERE survey_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, surveyID))
}

func (r *ResultRepository) FindByID(ctx context.Context, id string) (*domain.AnalysisResult, error) {
	query := `
		SELECT id, survey_id, recommended_fields, analysis_summary,
		       strengths, advice, confidence_score, provider, used_fallback, created_at
		FROM consultation_results
		WHERE id = $1
		LIMIT 1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *ResultRepository) ListRecent(ctx context.Context, limit int) ([]domain.AnalysisResult, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, survey_id, recommended_fields, analysis_summary,
		       strengths, advice, confidence_score, provider, used_fallback, created_at
		FROM consultation_results
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list results", "select", "consultation_results", err)
	}
	defer rows.Close()

	var results []domain.AnalysisResult
	for rows.Next() {
		result, err := scanResult(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError("failed to iterate results", "select", "consultation_results", err)
	}
	return results, nil
}

func (r *ResultRepository) scanOne(row *sql.Row) (*domain.AnalysisResult, error) {
	result, err := scanResult(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return result, err
}

func scanResult(scan func(dest ...any) error) (*domain.AnalysisResult, error) {
	var (
		result    domain.AnalysisResult
		fields    []byte
		strengths []byte
		advice    []byte
	)

	err := scan(
		&result.ID, &result.SurveyID, &fields, &result.AnalysisSummary,
		&strengths, &advice, &result.ConfidenceScore,
		&result.Provider, &result.UsedFallback, &result.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, errors.NewDatabaseError("failed to scan analysis result", "scan", "consultation_results", err)
	}

	if err := unmarshalRow(fields, &result.RecommendedFields); err != nil {
		return nil, err
	}
	if err := unmarshalRow(strengths, &result.Strengths); err != nil {
		return nil, err
	}
	if err := unmarshalRow(advice, &result.Advice); err != nil {
		return nil, err
	}
	return &result, nil
}
