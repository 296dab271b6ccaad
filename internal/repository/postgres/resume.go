package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/326-T/nft-service/internal/model"
)

var _ model.ResumeStore = (*ResumeRepository)(nil)

type ResumeRepository struct {
	db *Connection
}

func NewResumeRepository(db *Connection) *ResumeRepository {
	return &ResumeRepository{
		db: db,
	}
}

const resumeColumns = `id, applicant_id, education, experience, skills, interests, urls, picture, mint_status_id, minimum_price, created_at, updated_at`

func (r *ResumeRepository) GetAll(ctx context.Context) ([]model.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	return collectResumes(rows)
}

func (r *ResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1`

	resume, err := scanResume(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Resume{}, model.ErrNotFound
		}
		return model.Resume{}, fmt.Errorf("failed to get resume by id: %w", err)
	}

	return resume, nil
}

func (r *ResumeRepository) GetByApplicantID(ctx context.Context, applicantID uuid.UUID) ([]model.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE applicant_id = $1 ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes by applicant: %w", err)
	}
	defer rows.Close()

	return collectResumes(rows)
}

func (r *ResumeRepository) GetByMintStatus(ctx context.Context, status model.MintStatus) ([]model.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE mint_status_id = $1 ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query, status.Code())
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes by mint status: %w", err)
	}
	defer rows.Close()

	return collectResumes(rows)
}

func (r *ResumeRepository) Create(ctx context.Context, resume model.Resume) (model.Resume, error) {
	query := `INSERT INTO resumes (id, applicant_id, education, experience, skills, interests, urls, picture, mint_status_id, minimum_price, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING ` + resumeColumns

	saved, err := scanResume(r.db.QueryRow(ctx, query,
		resume.ID, resume.ApplicantID, resume.Education, resume.Experience,
		resume.Skills, resume.Interests, resume.URLs, resume.Picture,
		resume.MintStatus.Code(), resume.MinimumPrice, resume.CreatedAt, resume.UpdatedAt,
	))
	if err != nil {
		return model.Resume{}, fmt.Errorf("failed to create resume: %w", err)
	}

	return saved, nil
}

// Update replaces the whole row. Status transitions are deliberately
// unguarded at this layer; concurrent writers resolve last-write-wins.
func (r *ResumeRepository) Update(ctx context.Context, resume model.Resume) (model.Resume, error) {
	query := `UPDATE resumes
			  SET education = $2, experience = $3, skills = $4, interests = $5, urls = $6, picture = $7, mint_status_id = $8, minimum_price = $9, updated_at = $10
			  WHERE id = $1
			  RETURNING ` + resumeColumns

	saved, err := scanResume(r.db.QueryRow(ctx, query,
		resume.ID, resume.Education, resume.Experience, resume.Skills,
		resume.Interests, resume.URLs, resume.Picture,
		resume.MintStatus.Code(), resume.MinimumPrice, resume.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Resume{}, model.ErrNotFound
		}
		return model.Resume{}, fmt.Errorf("failed to update resume: %w", err)
	}

	return saved, nil
}

func (r *ResumeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	return nil
}

func scanResume(row pgx.Row) (model.Resume, error) {
	var resume model.Resume
	var statusCode int
	err := row.Scan(
		&resume.ID, &resume.ApplicantID, &resume.Education, &resume.Experience,
		&resume.Skills, &resume.Interests, &resume.URLs, &resume.Picture,
		&statusCode, &resume.MinimumPrice, &resume.CreatedAt, &resume.UpdatedAt,
	)
	if err != nil {
		return model.Resume{}, err
	}
	resume.MintStatus = model.MintStatusFromCode(statusCode)
	return resume, nil
}

func collectResumes(rows pgx.Rows) ([]model.Resume, error) {
	var resumes []model.Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, resume)
	}
	return resumes, rows.Err()
}
