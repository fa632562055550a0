package database

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/ai4life/career-advisor-go/internal/domain"
	"github.com/ai4life/career-advisor-go/pkg/errors"
)

type UserRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewUserRepository(postgres *PostgresService, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     postgres.GetDB(),
		logger: logger,
	}
}

func (r *UserRepository) Save(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (id, name, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, phone = EXCLUDED.phone
	`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Name, u.Email, u.Phone, u.CreatedAt)
	if err != nil {
		return errors.NewDatabaseError("failed to save user", "insert", "users", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = $1", email)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *UserRepository) findOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `
		SELECT id, name, email, phone, created_at
		FROM users
		WHERE ` + where + `
		LIMIT 1
	`

	var u domain.User
	var phone sql.NullString
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &phone, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewDatabaseError("failed to query user", "select", "users", err)
	}
	u.Phone = phone.String
	return &u, nil
}
