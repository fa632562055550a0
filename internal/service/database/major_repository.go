package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/ai4life/career-advisor-go/internal/domain"
	"github.com/ai4life/career-advisor-go/pkg/errors"
)

type MajorRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewMajorRepository(postgres *PostgresService, logger *zap.Logger) *MajorRepository {
	return &MajorRepository{
		db:     postgres.GetDB(),
		logger: logger,
	}
}

func (r *MajorRepository) List(ctx context.Context) ([]domain.Major, error) {
	query := `
		SELECT id, code, name, description, career_prospects,
		       required_skills, subjects, tuition_info, updated_at
		FROM majors
		ORDER BY code
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list majors", "select", "majors", err)
	}
	defer rows.Close()

	var majors []domain.Major
	for rows.Next() {
		var (
			m         domain.Major
			prospects []byte
			skills    []byte
			subjects  []byte
		)
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.Description,
			&prospects, &skills, &subjects, &m.TuitionInfo, &m.UpdatedAt); err != nil {
			return nil, errors.NewDatabaseError("failed to scan major", "scan", "majors", err)
		}
		if err := unmarshalRow(prospects, &m.CareerProspects); err != nil {
			return nil, err
		}
		if err := unmarshalRow(skills, &m.RequiredSkills); err != nil {
			return nil, err
		}
		if err := unmarshalRow(subjects, &m.Subjects); err != nil {
			return nil, err
		}
		majors = append(majors, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError("failed to iterate majors", "select", "majors", err)
	}
	return majors, nil
}

func (r *MajorRepository) FindByCode(ctx context.Context, code string) (*domain.Major, error) {
	query := `
		SELECT id, code, name, description, career_prospects,
		       required_skills, subjects, tuition_info, updated_at
		FROM majors
		WHERE code = $1
		LIMIT 1
	`

	var (
		m         domain.Major
		prospects []byte
		skills    []byte
		subjects  []byte
	)
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&m.ID, &m.Code, &m.Name, &m.Description,
		&prospects, &skills, &subjects, &m.TuitionInfo, &m.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewDatabaseError("failed to query major", "select", "majors", err)
	}

	if err := unmarshalRow(prospects, &m.CareerProspects); err != nil {
		return nil, err
	}
	if err := unmarshalRow(skills, &m.RequiredSkills); err != nil {
		return nil, err
	}
	if err := unmarshalRow(subjects, &m.Subjects); err != nil {
		return nil, err
	}
	return &m, nil
}

// SeedDefaults inserts the built-in majors on an empty table so a
// fresh install can answer immediately.
func (r *MajorRepository) SeedDefaults(ctx context.Context) error {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM majors`).Scan(&count); err != nil {
		return errors.NewDatabaseError("failed to count majors", "select", "majors", err)
	}
	if count > 0 {
		return nil
	}

	for _, m := range defaultMajors() {
		prospects, _ := json.Marshal(m.CareerProspects)
		skills, _ := json.Marshal(m.RequiredSkills)
		subjects, _ := json.Marshal(m.Subjects)

		_, err := r.db.ExecContext(ctx, `
			INSERT INTO majors (id, code, name, description, career_prospects,
			                    required_skills, subjects, tuition_info, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (code) DO NOTHING
		`, m.ID, m.Code, m.Name, m.Description, prospects, skills, subjects, m.TuitionInfo, m.UpdatedAt)
		if err != nil {
			return errors.NewDatabaseError("failed to seed major", "insert", "majors", err)
		}
	}

	r.logger.Info("Seeded default majors", zap.Int("count", len(defaultMajors())))
	return nil
}

func defaultMajors() []domain.Major {
	now := time.Now()
	return []domain.Major{
		{
			ID:          "1",
			Code:        "IT",
			Name:        "Công nghệ thông tin",
			Description: "Đào tạo lập trình viên web, mobile và phần mềm với 70% thời lượng thực hành.",
			CareerProspects: []string{
				"Lập trình viên Web/Mobile", "Tester/QA", "DevOps Engineer", "Data Analyst",
			},
			RequiredSkills: []string{"Tư duy logic", "Lập trình", "Tiếng Anh đọc hiểu"},
			Subjects:       []string{"Cơ sở lập trình", "Cấu trúc dữ liệu", "Phát triển web", "Cơ sở dữ liệu"},
			UpdatedAt:      now,
		},
		{
			ID:          "2",
			Code:        "GD",
			Name:        "Thiết kế đồ họa",
			Description: "Đào tạo designer đa phương tiện: nhận diện thương hiệu, UI/UX và motion graphics.",
			CareerProspects: []string{
				"Graphic Designer", "UI/UX Designer", "Motion Designer", "Art Director",
			},
			RequiredSkills: []string{"Sáng tạo", "Cảm thẩm mỹ", "Photoshop/Illustrator"},
			Subjects:       []string{"Nguyên lý thiết kế", "Thiết kế nhận diện", "UI/UX", "Dựng hình 2D/3D"},
			UpdatedAt:      now,
		},
		{
			ID:          "3",
			Code:        "MKT",
			Name:        "Marketing",
			Description: "Đào tạo chuyên viên marketing số: nghiên cứu thị trường, nội dung và quảng cáo.",
			CareerProspects: []string{
				"Digital Marketer", "Content Creator", "Brand Executive", "Sales Executive",
			},
			RequiredSkills: []string{"Giao tiếp", "Thuyết trình", "Sáng tạo nội dung"},
			Subjects:       []string{"Nguyên lý marketing", "Digital Marketing", "Hành vi khách hàng", "Truyền thông"},
			UpdatedAt:      now,
		},
	}
}
