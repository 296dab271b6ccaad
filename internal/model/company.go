package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CompanyStore defines persistence operations for companies.
type CompanyStore interface {
	GetAll(ctx context.Context) ([]Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (Company, error)
	GetByEmail(ctx context.Context, email string) (Company, error)
	Create(ctx context.Context, company Company) (Company, error)
	Update(ctx context.Context, company Company) (Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Company is a principal who submits priced offers against published resumes.
type Company struct {
	ID             uuid.UUID
	Name           string
	Email          string
	Phone          string
	Address        string
	PasswordDigest string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int64
}
