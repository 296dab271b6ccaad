package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/326-T/nft-service/internal/model"
	"github.com/326-T/nft-service/internal/service"
)

type ApplicantService struct {
	mock.Mock
}

func (m *ApplicantService) FindAll(ctx context.Context) ([]model.Applicant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Applicant), args.Error(1)
}

func (m *ApplicantService) FindByID(ctx context.Context, id uuid.UUID) (model.Applicant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Applicant), args.Error(1)
}

func (m *ApplicantService) Register(ctx context.Context, params service.RegisterApplicantParams) (model.Applicant, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Applicant), args.Error(1)
}

func (m *ApplicantService) Update(ctx context.Context, id uuid.UUID, params service.UpdateApplicantParams) (model.Applicant, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.Applicant), args.Error(1)
}

func (m *ApplicantService) Login(ctx context.Context, email, password string) (model.Applicant, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.Applicant), args.Error(1)
}

func (m *ApplicantService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CompanyService struct {
	mock.Mock
}

func (m *CompanyService) FindAll(ctx context.Context) ([]model.Company, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Company), args.Error(1)
}

func (m *CompanyService) FindByID(ctx context.Context, id uuid.UUID) (model.Company, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Company), args.Error(1)
}

func (m *CompanyService) Register(ctx context.Context, params service.RegisterCompanyParams) (model.Company, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Company), args.Error(1)
}

func (m *CompanyService) Update(ctx context.Context, id uuid.UUID, params service.UpdateCompanyParams) (model.Company, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.Company), args.Error(1)
}

func (m *CompanyService) Login(ctx context.Context, email, password string) (model.Company, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.Company), args.Error(1)
}

func (m *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ResumeService struct {
	mock.Mock
}

func (m *ResumeService) FindAll(ctx context.Context) ([]model.Resume, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Resume), args.Error(1)
}

func (m *ResumeService) FindByID(ctx context.Context, id uuid.UUID) (model.Resume, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Resume), args.Error(1)
}

func (m *ResumeService) FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Resume, error) {
	args := m.Called(ctx, applicantID)
	return args.Get(0).([]model.Resume), args.Error(1)
}

func (m *ResumeService) FindByMintStatus(ctx context.Context, status model.MintStatus) ([]model.Resume, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]model.Resume), args.Error(1)
}

func (m *ResumeService) Create(ctx context.Context, applicantID uuid.UUID, params service.ResumeContentParams) (model.Resume, error) {
	args := m.Called(ctx, applicantID, params)
	return args.Get(0).(model.Resume), args.Error(1)
}

func (m *ResumeService) Update(ctx context.Context, id uuid.UUID, params service.ResumeContentParams) (model.Resume, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.Resume), args.Error(1)
}

func (m *ResumeService) Mint(ctx context.Context, id uuid.UUID, minimumPrice float32) (model.Resume, error) {
	args := m.Called(ctx, id, minimumPrice)
	return args.Get(0).(model.Resume), args.Error(1)
}

func (m *ResumeService) Expire(ctx context.Context, id uuid.UUID) (model.Resume, []model.OfferOutcome, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Resume), args.Get(1).([]model.OfferOutcome), args.Error(2)
}

func (m *ResumeService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ResumeService) UploadPicture(ctx context.Context, id uuid.UUID, reader io.Reader) (model.Resume, error) {
	args := m.Called(ctx, id, reader)
	return args.Get(0).(model.Resume), args.Error(1)
}

func (m *ResumeService) PictureStream(ctx context.Context, id uuid.UUID) (io.ReadCloser, error) {
	args := m.Called(ctx, id)
	if rc, ok := args.Get(0).(io.ReadCloser); ok {
		return rc, args.Error(1)
	}
	return nil, args.Error(1)
}

type OfferService struct {
	mock.Mock
}

func (m *OfferService) FindAll(ctx context.Context) ([]model.Offer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Offer), args.Error(1)
}

func (m *OfferService) FindByID(ctx context.Context, id uuid.UUID) (model.Offer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Offer), args.Error(1)
}

func (m *OfferService) DetailsByResume(ctx context.Context, resumeID uuid.UUID) ([]model.OfferDetail, error) {
	args := m.Called(ctx, resumeID)
	return args.Get(0).([]model.OfferDetail), args.Error(1)
}

func (m *OfferService) Create(ctx context.Context, resumeID, companyID uuid.UUID, price float32, message string) (model.Offer, error) {
	args := m.Called(ctx, resumeID, companyID, price, message)
	return args.Get(0).(model.Offer), args.Error(1)
}

func (m *OfferService) Update(ctx context.Context, id uuid.UUID, price float32, message string, status model.OfferStatus) (model.Offer, error) {
	args := m.Called(ctx, id, price, message, status)
	return args.Get(0).(model.Offer), args.Error(1)
}

func (m *OfferService) SetStatus(ctx context.Context, id uuid.UUID, status model.OfferStatus) (model.Offer, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(model.Offer), args.Error(1)
}

func (m *OfferService) Accept(ctx context.Context, id uuid.UUID) (model.Offer, []model.OfferOutcome, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Offer), args.Get(1).([]model.OfferOutcome), args.Error(2)
}

func (m *OfferService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
