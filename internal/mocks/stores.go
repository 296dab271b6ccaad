// Package mocks provides hand-written testify mocks for the interfaces
// declared in internal/model.
package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/326-T/nft-service/internal/model"
)

type ApplicantStore struct {
	mock.Mock
}

func (m *ApplicantStore) GetAll(ctx context.Context) ([]model.Applicant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Applicant), args.Error(1)
}

func (m *ApplicantStore) GetByID(ctx context.Context, id uuid.UUID) (model.Applicant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Applicant), args.Error(1)
}

func (m *ApplicantStore) GetByEmail(ctx context.Context, email string) (model.Applicant, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Applicant), args.Error(1)
}

func (m *ApplicantStore) Create(ctx context.Context, applicant model.Applicant) (model.Applicant, error) {
	args := m.Called(ctx, applicant)
	return args.Get(0).(model.Applicant), args.Error(1)
}

func (m *ApplicantStore) Update(ctx context.Context, applicant model.Applicant) (model.Applicant, error) {
	args := m.Called(ctx, applicant)
	return args.Get(0).(model.Applicant), args.Error(1)
}

func (m *ApplicantStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CompanyStore struct {
	mock.Mock
}

func (m *CompanyStore) GetAll(ctx context.Context) ([]model.Company, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Company), args.Error(1)
}

func (m *CompanyStore) GetByID(ctx context.Context, id uuid.UUID) (model.Company, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Company), args.Error(1)
}

func (m *CompanyStore) GetByEmail(ctx context.Context, email string) (model.Company, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Company), args.Error(1)
}

func (m *CompanyStore) Create(ctx context.Context, company model.Company) (model.Company, error) {
	args := m.Called(ctx, company)
	return args.Get(0).(model.Company), args.Error(1)
}

func (m *CompanyStore) Update(ctx context.Context, company model.Company) (model.Company, error) {
	args := m.Called(ctx, company)
	return args.Get(0).(model.Company), args.Error(1)
}

func (m *CompanyStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ResumeStore struct {
	mock.Mock
}

func (m *ResumeStore) GetAll(ctx context.Context) ([]model.Resume, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Resume), args.Error(1)
}

func (m *ResumeStore) GetByID(ctx context.Context, id uuid.UUID) (model.Resume, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Resume), args.Error(1)
}

func (m *ResumeStore) GetByApplicantID(ctx context.Context, applicantID uuid.UUID) ([]model.Resume, error) {
	args := m.Called(ctx, applicantID)
	return args.Get(0).([]model.Resume), args.Error(1)
}

func (m *ResumeStore) GetByMintStatus(ctx context.Context, status model.MintStatus) ([]model.Resume, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]model.Resume), args.Error(1)
}

func (m *ResumeStore) Create(ctx context.Context, resume model.Resume) (model.Resume, error) {
	args := m.Called(ctx, resume)
	return args.Get(0).(model.Resume), args.Error(1)
}

func (m *ResumeStore) Update(ctx context.Context, resume model.Resume) (model.Resume, error) {
	args := m.Called(ctx, resume)
	return args.Get(0).(model.Resume), args.Error(1)
}

func (m *ResumeStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type OfferStore struct {
	mock.Mock
}

func (m *OfferStore) GetAll(ctx context.Context) ([]model.Offer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Offer), args.Error(1)
}

func (m *OfferStore) GetByID(ctx context.Context, id uuid.UUID) (model.Offer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Offer), args.Error(1)
}

func (m *OfferStore) GetByResumeID(ctx context.Context, resumeID uuid.UUID) ([]model.Offer, error) {
	args := m.Called(ctx, resumeID)
	return args.Get(0).([]model.Offer), args.Error(1)
}

func (m *OfferStore) GetDetailsByResumeID(ctx context.Context, resumeID uuid.UUID) ([]model.OfferDetail, error) {
	args := m.Called(ctx, resumeID)
	return args.Get(0).([]model.OfferDetail), args.Error(1)
}

func (m *OfferStore) Create(ctx context.Context, offer model.Offer) (model.Offer, error) {
	args := m.Called(ctx, offer)
	return args.Get(0).(model.Offer), args.Error(1)
}

func (m *OfferStore) Update(ctx context.Context, offer model.Offer) (model.Offer, error) {
	args := m.Called(ctx, offer)
	return args.Get(0).(model.Offer), args.Error(1)
}

func (m *OfferStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Verify(plaintext, digest string) bool {
	args := m.Called(plaintext, digest)
	return args.Bool(0)
}

type Storage struct {
	mock.Mock
}

func (m *Storage) Upload(ctx context.Context, key string, reader io.Reader) error {
	args := m.Called(ctx, key, reader)
	return args.Error(0)
}

func (m *Storage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if rc, ok := args.Get(0).(io.ReadCloser); ok {
		return rc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Storage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *Storage) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type TokenCodec struct {
	mock.Mock
}

func (m *TokenCodec) IssueApplicant(applicant model.Applicant) (string, error) {
	args := m.Called(applicant)
	return args.String(0), args.Error(1)
}

func (m *TokenCodec) IssueCompany(company model.Company) (string, error) {
	args := m.Called(company)
	return args.String(0), args.Error(1)
}

func (m *TokenCodec) DecodeApplicant(token string) (model.Applicant, error) {
	args := m.Called(token)
	return args.Get(0).(model.Applicant), args.Error(1)
}

func (m *TokenCodec) DecodeCompany(token string) (model.Company, error) {
	args := m.Called(token)
	return args.Get(0).(model.Company), args.Error(1)
}
