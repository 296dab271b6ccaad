package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/326-T/nft-service/internal/logger"
	"github.com/326-T/nft-service/internal/model"
)

// RegisterApplicantParams carries the fields needed to register an applicant.
type RegisterApplicantParams struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Password  string
}

// UpdateApplicantParams carries the mutable profile fields of an applicant.
type UpdateApplicantParams struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}

type Applicant struct {
	store  model.ApplicantStore
	hasher model.PasswordHasher
	logger *logger.Logger
}

func NewApplicant(store model.ApplicantStore, hasher model.PasswordHasher, logger *logger.Logger) *Applicant {
	return &Applicant{
		store:  store,
		hasher: hasher,
		logger: logger,
	}
}

func (s *Applicant) FindAll(ctx context.Context) ([]model.Applicant, error) {
	applicants, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}

	return applicants, nil
}

func (s *Applicant) FindByID(ctx context.Context, id uuid.UUID) (model.Applicant, error) {
	applicant, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Applicant{}, fmt.Errorf("failed to get applicant by id: %w", err)
	}

	return applicant, nil
}

func (s *Applicant) FindByEmail(ctx context.Context, email string) (model.Applicant, error) {
	applicant, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return model.Applicant{}, fmt.Errorf("failed to get applicant by email: %w", err)
	}

	return applicant, nil
}

// Register creates an applicant with a freshly hashed credential digest.
func (s *Applicant) Register(ctx context.Context, params RegisterApplicantParams) (model.Applicant, error) {
	s.logger.Debug("Applicant service: registering applicant", "email", params.Email)

	existing, err := s.store.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.Applicant{}, fmt.Errorf("failed to get applicant by email: %w", err)
	}
	if existing.ID != uuid.Nil {
		s.logger.Info("Applicant service: email already registered", "email", params.Email)
		return model.Applicant{}, model.ErrEmailTaken
	}

	digest, err := s.hasher.Hash(params.Password)
	if err != nil {
		return model.Applicant{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	applicant := model.Applicant{
		ID:             uuid.New(),
		FirstName:      params.FirstName,
		LastName:       params.LastName,
		Email:          params.Email,
		Phone:          params.Phone,
		Address:        params.Address,
		PasswordDigest: digest,
		CreatedAt:      now,
		UpdatedAt:      now,
		Version:        1,
	}

	saved, err := s.store.Create(ctx, applicant)
	if err != nil {
		s.logger.Error("Applicant service: failed to create applicant",
			"email", params.Email,
			"error", err.Error())
		return model.Applicant{}, fmt.Errorf("failed to create applicant: %w", err)
	}

	s.logger.Info("Applicant service: applicant registered", "id", saved.ID)
	return saved, nil
}

// Update replaces profile fields, preserving the credential digest and
// creation time. The store's version check guards concurrent updates.
func (s *Applicant) Update(ctx context.Context, id uuid.UUID, params UpdateApplicantParams) (model.Applicant, error) {
	old, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Applicant{}, fmt.Errorf("failed to get applicant by id: %w", err)
	}

	updated := model.Applicant{
		ID:             old.ID,
		FirstName:      params.FirstName,
		LastName:       params.LastName,
		Email:          params.Email,
		Phone:          params.Phone,
		Address:        params.Address,
		PasswordDigest: old.PasswordDigest,
		CreatedAt:      old.CreatedAt,
		UpdatedAt:      time.Now(),
		Version:        old.Version,
	}

	saved, err := s.store.Update(ctx, updated)
	if err != nil {
		return model.Applicant{}, fmt.Errorf("failed to update applicant: %w", err)
	}

	return saved, nil
}

// Login verifies the email/password pair. A missing account and a wrong
// password are indistinguishable to the caller.
func (s *Applicant) Login(ctx context.Context, email, password string) (model.Applicant, error) {
	applicant, err := s.store.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.Applicant{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.Applicant{}, fmt.Errorf("failed to get applicant by email: %w", err)
	}

	if !s.hasher.Verify(password, applicant.PasswordDigest) {
		s.logger.Info("Applicant service: password mismatch", "email", email)
		return model.Applicant{}, model.ErrInvalidCredentials
	}

	return applicant, nil
}

func (s *Applicant) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete applicant: %w", err)
	}
	return nil
}
