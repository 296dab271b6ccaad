package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/326-T/nft-service/internal/model"
)

var _ model.CompanyStore = (*CompanyRepository)(nil)

type CompanyRepository struct {
	db *Connection
}

func NewCompanyRepository(db *Connection) *CompanyRepository {
	return &CompanyRepository{
		db: db,
	}
}

const companyColumns = `id, name, email, phone, address, password_digest, created_at, updated_at, version`

func (r *CompanyRepository) GetAll(ctx context.Context) ([]model.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []model.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, company)
	}

	return companies, rows.Err()
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

	company, err := scanCompany(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Company{}, model.ErrNotFound
		}
		return model.Company{}, fmt.Errorf("failed to get company by id: %w", err)
	}

	return company, nil
}

func (r *CompanyRepository) GetByEmail(ctx context.Context, email string) (model.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE email = $1`

	company, err := scanCompany(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Company{}, model.ErrNotFound
		}
		return model.Company{}, fmt.Errorf("failed to get company by email: %w", err)
	}

	return company, nil
}

func (r *CompanyRepository) Create(ctx context.Context, company model.Company) (model.Company, error) {
	query := `INSERT INTO companies (id, name, email, phone, address, password_digest, created_at, updated_at, version)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + companyColumns

	saved, err := scanCompany(r.db.QueryRow(ctx, query,
		company.ID, company.Name, company.Email, company.Phone, company.Address,
		company.PasswordDigest, company.CreatedAt, company.UpdatedAt, company.Version,
	))
	if err != nil {
		return model.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	return saved, nil
}

// Update replaces profile fields, guarded by the revision counter.
func (r *CompanyRepository) Update(ctx context.Context, company model.Company) (model.Company, error) {
	query := `UPDATE companies
			  SET name = $2, email = $3, phone = $4, address = $5, updated_at = $6, version = version + 1
			  WHERE id = $1 AND version = $7
			  RETURNING ` + companyColumns

	saved, err := scanCompany(r.db.QueryRow(ctx, query,
		company.ID, company.Name, company.Email, company.Phone, company.Address,
		company.UpdatedAt, company.Version,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Company{}, model.ErrVersionConflict
		}
		return model.Company{}, fmt.Errorf("failed to update company: %w", err)
	}

	return saved, nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

func scanCompany(row pgx.Row) (model.Company, error) {
	var company model.Company
	err := row.Scan(
		&company.ID, &company.Name, &company.Email, &company.Phone, &company.Address,
		&company.PasswordDigest, &company.CreatedAt, &company.UpdatedAt, &company.Version,
	)
	return company, err
}
