package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/326-T/nft-service/internal/model"
)

var _ model.ApplicantStore = (*ApplicantRepository)(nil)

type ApplicantRepository struct {
	db *Connection
}

func NewApplicantRepository(db *Connection) *ApplicantRepository {
	return &ApplicantRepository{
		db: db,
	}
}

const applicantColumns = `id, first_name, last_name, email, phone, address, password_digest, created_at, updated_at, version`

func (r *ApplicantRepository) GetAll(ctx context.Context) ([]model.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}
	defer rows.Close()

	var applicants []model.Applicant
	for rows.Next() {
		applicant, err := scanApplicant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan applicant: %w", err)
		}
		applicants = append(applicants, applicant)
	}

	return applicants, rows.Err()
}

func (r *ApplicantRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE id = $1`

	applicant, err := scanApplicant(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Applicant{}, model.ErrNotFound
		}
		return model.Applicant{}, fmt.Errorf("failed to get applicant by id: %w", err)
	}

	return applicant, nil
}

func (r *ApplicantRepository) GetByEmail(ctx context.Context, email string) (model.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE email = $1`

	applicant, err := scanApplicant(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Applicant{}, model.ErrNotFound
		}
		return model.Applicant{}, fmt.Errorf("failed to get applicant by email: %w", err)
	}

	return applicant, nil
}

func (r *ApplicantRepository) Create(ctx context.Context, applicant model.Applicant) (model.Applicant, error) {
	query := `INSERT INTO applicants (id, first_name, last_name, email, phone, address, password_digest, created_at, updated_at, version)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING ` + applicantColumns

	saved, err := scanApplicant(r.db.QueryRow(ctx, query,
		applicant.ID, applicant.FirstName, applicant.LastName, applicant.Email,
		applicant.Phone, applicant.Address, applicant.PasswordDigest,
		applicant.CreatedAt, applicant.UpdatedAt, applicant.Version,
	))
	if err != nil {
		return model.Applicant{}, fmt.Errorf("failed to create applicant: %w", err)
	}

	return saved, nil
}

// Update replaces profile fields. The write is guarded by the revision
// counter: a concurrent update between read and write surfaces as
// ErrVersionConflict.
func (r *ApplicantRepository) Update(ctx context.Context, applicant model.Applicant) (model.Applicant, error) {
	query := `UPDATE applicants
			  SET first_name = $2, last_name = $3, email = $4, phone = $5, address = $6, updated_at = $7, version = version + 1
			  WHERE id = $1 AND version = $8
			  RETURNING ` + applicantColumns

	saved, err := scanApplicant(r.db.QueryRow(ctx, query,
		applicant.ID, applicant.FirstName, applicant.LastName, applicant.Email,
		applicant.Phone, applicant.Address, applicant.UpdatedAt, applicant.Version,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Applicant{}, model.ErrVersionConflict
		}
		return model.Applicant{}, fmt.Errorf("failed to update applicant: %w", err)
	}

	return saved, nil
}

func (r *ApplicantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM applicants WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete applicant: %w", err)
	}
	return nil
}

func scanApplicant(row pgx.Row) (model.Applicant, error) {
	var applicant model.Applicant
	err := row.Scan(
		&applicant.ID, &applicant.FirstName, &applicant.LastName, &applicant.Email,
		&applicant.Phone, &applicant.Address, &applicant.PasswordDigest,
		&applicant.CreatedAt, &applicant.UpdatedAt, &applicant.Version,
	)
	return applicant, err
}
