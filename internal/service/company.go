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

// RegisterCompanyParams carries the fields needed to register a company.
type RegisterCompanyParams struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Password string
}

// UpdateCompanyParams carries the mutable profile fields of a company.
type UpdateCompanyParams struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

type Company struct {
	store  model.CompanyStore
	hasher model.PasswordHasher
	logger *logger.Logger
}

func NewCompany(store model.CompanyStore, hasher model.PasswordHasher, logger *logger.Logger) *Company {
	return &Company{
		store:  store,
		hasher: hasher,
		logger: logger,
	}
}

func (s *Company) FindAll(ctx context.Context) ([]model.Company, error) {
	companies, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return companies, nil
}

func (s *Company) FindByID(ctx context.Context, id uuid.UUID) (model.Company, error) {
	company, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Company{}, fmt.Errorf("failed to get company by id: %w", err)
	}

	return company, nil
}

func (s *Company) FindByEmail(ctx context.Context, email string) (model.Company, error) {
	company, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return model.Company{}, fmt.Errorf("failed to get company by email: %w", err)
	}

	return company, nil
}

// Register creates a company with a freshly hashed credential digest.
func (s *Company) Register(ctx context.Context, params RegisterCompanyParams) (model.Company, error) {
	s.logger.Debug("Company service: registering company", "email", params.Email)

	existing, err := s.store.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.Company{}, fmt.Errorf("failed to get company by email: %w", err)
	}
	if existing.ID != uuid.Nil {
		s.logger.Info("Company service: email already registered", "email", params.Email)
		return model.Company{}, model.ErrEmailTaken
	}

	digest, err := s.hasher.Hash(params.Password)
	if err != nil {
		return model.Company{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	company := model.Company{
		ID:             uuid.New(),
		Name:           params.Name,
		Email:          params.Email,
		Phone:          params.Phone,
		Address:        params.Address,
		PasswordDigest: digest,
		CreatedAt:      now,
		UpdatedAt:      now,
		Version:        1,
	}

	saved, err := s.store.Create(ctx, company)
	if err != nil {
		s.logger.Error("Company service: failed to create company",
			"email", params.Email,
			"error", err.Error())
		return model.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	s.logger.Info("Company service: company registered", "id", saved.ID)
	return saved, nil
}

// Update replaces profile fields, preserving the credential digest and
// creation time. The store's version check guards concurrent updates.
func (s *Company) Update(ctx context.Context, id uuid.UUID, params UpdateCompanyParams) (model.Company, error) {
	old, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Company{}, fmt.Errorf("failed to get company by id: %w", err)
	}

	updated := model.Company{
		ID:             old.ID,
		Name:           params.Name,
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
		return model.Company{}, fmt.Errorf("failed to update company: %w", err)
	}

	return saved, nil
}

// Login verifies the email/password pair. A missing account and a wrong
// password are indistinguishable to the caller.
func (s *Company) Login(ctx context.Context, email, password string) (model.Company, error) {
	company, err := s.store.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.Company{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.Company{}, fmt.Errorf("failed to get company by email: %w", err)
	}

	if !s.hasher.Verify(password, company.PasswordDigest) {
		s.logger.Info("Company service: password mismatch", "email", email)
		return model.Company{}, model.ErrInvalidCredentials
	}

	return company, nil
}

func (s *Company) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}
