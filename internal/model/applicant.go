package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ApplicantStore defines persistence operations for applicants.
type ApplicantStore interface {
	GetAll(ctx context.Context) ([]Applicant, error)
	GetByID(ctx context.Context, id uuid.UUID) (Applicant, error)
	GetByEmail(ctx context.Context, email string) (Applicant, error)
	Create(ctx context.Context, applicant Applicant) (Applicant, error)
	Update(ctx context.Context, applicant Applicant) (Applicant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Applicant is a principal who owns resumes and arbitrates offers
// submitted against them.
type Applicant struct {
	ID             uuid.UUID
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Address        string
	PasswordDigest string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int64
}
