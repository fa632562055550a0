package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/ai4life/career-advisor-go/internal/domain"
	"github.com/ai4life/career-advisor-go/pkg/errors"
)

type SurveyRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewSurveyRepository(postgres *PostgresService, logger *zap.Logger) *SurveyRepository {
	return &SurveyRepository{
		db:     postgres.GetDB(),
		logger: logger,
	}
}

func (r *SurveyRepository) Save(ctx context.Context, s *domain.Survey) error {
	interests, _ := json.Marshal(s.Interests)
	skills, _ := json.Marshal(s.Skills)
	scores, _ := json.Marshal(s.AcademicScores)

	query := `
		INSERT INTO surveys (
			id, user_id, name, age, current_grade, gender,
			interests, skills, academic_scores,
			career_goals, learning_style, work_environment_preference, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, nullableString(s.UserID), s.Name, s.Age, s.CurrentGrade, s.Gender,
		interests, skills, scores,
		s.CareerGoals, s.LearningStyle, s.WorkEnvironmentPreference, s.CreatedAt,
	)
	if err != nil {
		return errors.NewDatabaseError("failed to save survey", "insert", "surveys", err)
	}
	return nil
}

func (r *SurveyRepository) FindByID(ctx context.Context, id string) (*domain.Survey, error) {
	query := `
		SELECT id, user_id, name, age, current_grade, gender,
		       interests, skills, academic_scores,
		       career_goals, learning_style, work_environment_preference, created_at
		FROM surveys
		WHERE id = $1
		LIMIT 1
	`

	var (
		s         domain.Survey
		userID    sql.NullString
		interests []byte
		skills    []byte
		scores    []byte
	)

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &userID, &s.Name, &s.Age, &s.CurrentGrade, &s.Gender,
		&interests, &skills, &scores,
		&s.CareerGoals, &s.LearningStyle, &s.WorkEnvironmentPreference, &s.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewDatabaseError("failed to query survey", "select", "surveys", err)
	}

	s.UserID = userID.String
	if err := unmarshalRow(interests, &s.Interests); err != nil {
		return nil, err
	}
	if err := unmarshalRow(skills, &s.Skills); err != nil {
		return nil, err
	}
	if err := unmarshalRow(scores, &s.AcademicScores); err != nil {
		return nil, err
	}
	return &s, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func unmarshalRow(data []byte, dest any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return errors.NewDatabaseError(fmt.Sprintf("corrupt JSON column: %v", err), "scan", "", err)
	}
	return nil
}
