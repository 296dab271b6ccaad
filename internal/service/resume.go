package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/326-T/nft-service/internal/logger"
	"github.com/326-T/nft-service/internal/model"
)

// ResumeContentParams carries the free-form content fields of a resume.
// Mint status, minimum price and picture are managed by their own operations.
type ResumeContentParams struct {
	Education  string
	Experience string
	Skills     string
	Interests  string
	URLs       string
}

type Resume struct {
	resumes model.ResumeStore
	offers  model.OfferStore
	storage model.Storage
	logger  *logger.Logger
}

func NewResume(resumes model.ResumeStore, offers model.OfferStore, storage model.Storage, logger *logger.Logger) *Resume {
	return &Resume{
		resumes: resumes,
		offers:  offers,
		storage: storage,
		logger:  logger,
	}
}

func (s *Resume) FindAll(ctx context.Context) ([]model.Resume, error) {
	resumes, err := s.resumes.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	return resumes, nil
}

func (s *Resume) FindByID(ctx context.Context, id uuid.UUID) (model.Resume, error) {
	resume, err := s.resumes.GetByID(ctx, id)
	if err != nil {
		return model.Resume{}, fmt.Errorf("failed to get resume by id: %w", err)
	}

	return resume, nil
}

func (s *Resume) FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Resume, error) {
	resumes, err := s.resumes.GetByApplicantID(ctx, applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes by applicant: %w", err)
	}

	return resumes, nil
}

func (s *Resume) FindByMintStatus(ctx context.Context, status model.MintStatus) ([]model.Resume, error) {
	resumes, err := s.resumes.GetByMintStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes by mint status: %w", err)
	}

	return resumes, nil
}

// Create mints nothing: a new resume starts pending, closed to offers.
func (s *Resume) Create(ctx context.Context, applicantID uuid.UUID, params ResumeContentParams) (model.Resume, error) {
	now := time.Now()
	resume := model.Resume{
		ID:          uuid.New(),
		ApplicantID: applicantID,
		Education:   params.Education,
		Experience:  params.Experience,
		Skills:      params.Skills,
		Interests:   params.Interests,
		URLs:        params.URLs,
		MintStatus:  model.MintStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	saved, err := s.resumes.Create(ctx, resume)
	if err != nil {
		return model.Resume{}, fmt.Errorf("failed to create resume: %w", err)
	}

	s.logger.Info("Resume service: resume created", "id", saved.ID, "applicant_id", applicantID)
	return saved, nil
}

// Update replaces content fields only; owner, mint state, minimum price
// and picture carry over from the stored row.
func (s *Resume) Update(ctx context.Context, id uuid.UUID, params ResumeContentParams) (model.Resume, error) {
	old, err := s.resumes.GetByID(ctx, id)
	if err != nil {
		return model.Resume{}, fmt.Errorf("failed to get resume by id: %w", err)
	}

	updated := model.Resume{
		ID:           old.ID,
		ApplicantID:  old.ApplicantID,
		Education:    params.Education,
		Experience:   params.Experience,
		Skills:       params.Skills,
		Interests:    params.Interests,
		URLs:         params.URLs,
		Picture:      old.Picture,
		MintStatus:   old.MintStatus,
		MinimumPrice: old.MinimumPrice,
		CreatedAt:    old.CreatedAt,
		UpdatedAt:    time.Now(),
	}

	saved, err := s.resumes.Update(ctx, updated)
	if err != nil {
		return model.Resume{}, fmt.Errorf("failed to update resume: %w", err)
	}

	return saved, nil
}

// Mint publishes the resume with a floor price, opening it to offers.
// TODO: confirm with product whether re-minting a published or expired
// resume should be rejected; today only existence is required.
func (s *Resume) Mint(ctx context.Context, id uuid.UUID, minimumPrice float32) (model.Resume, error) {
	resume, err := s.resumes.GetByID(ctx, id)
	if err != nil {
		return model.Resume{}, fmt.Errorf("failed to get resume by id: %w", err)
	}

	resume.MinimumPrice = &minimumPrice
	resume.MintStatus = model.MintStatusPublished
	resume.UpdatedAt = time.Now()

	saved, err := s.resumes.Update(ctx, resume)
	if err != nil {
		return model.Resume{}, fmt.Errorf("failed to mint resume: %w", err)
	}

	s.logger.Info("Resume service: resume minted", "id", id, "minimum_price", minimumPrice)
	return saved, nil
}

// Expire closes the resume to further negotiation. Every offer still
// pending against it is rejected first, as a best-effort fan-out: each
// rejection is independent and a failure on one neither blocks the
// others nor the resume's own transition. The returned outcomes report
// the per-offer results.
func (s *Resume) Expire(ctx context.Context, id uuid.UUID) (model.Resume, []model.OfferOutcome, error) {
	resume, err := s.resumes.GetByID(ctx, id)
	if err != nil {
		return model.Resume{}, nil, fmt.Errorf("failed to get resume by id: %w", err)
	}

	offers, err := s.offers.GetByResumeID(ctx, id)
	if err != nil {
		return model.Resume{}, nil, fmt.Errorf("failed to list offers by resume: %w", err)
	}

	var outcomes []model.OfferOutcome
	for _, offer := range offers {
		if offer.Status != model.OfferStatusPending {
			continue
		}

		offer.Status = model.OfferStatusRejected
		offer.UpdatedAt = time.Now()
		_, err := s.offers.Update(ctx, offer)
		if err != nil {
			s.logger.Error("Resume service: failed to reject offer on expiry",
				"resume_id", id,
				"offer_id", offer.ID,
				"error", err.Error())
		}
		outcomes = append(outcomes, model.OfferOutcome{OfferID: offer.ID, Err: err})
	}

	resume.MintStatus = model.MintStatusExpired
	resume.UpdatedAt = time.Now()
	saved, err := s.resumes.Update(ctx, resume)
	if err != nil {
		return model.Resume{}, outcomes, fmt.Errorf("failed to expire resume: %w", err)
	}

	s.logger.Info("Resume service: resume expired", "id", id, "rejected_offers", len(outcomes))
	return saved, outcomes, nil
}

// Delete removes the resume regardless of status. Offers referencing it
// are left untouched. The stored picture is cleaned up best-effort.
func (s *Resume) Delete(ctx context.Context, id uuid.UUID) error {
	resume, err := s.resumes.GetByID(ctx, id)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get resume by id: %w", err)
	}

	if resume.Picture != "" {
		if err := s.storage.Delete(ctx, resume.Picture); err != nil {
			s.logger.Error("Resume service: failed to delete picture",
				"resume_id", id,
				"key", resume.Picture,
				"error", err.Error())
		}
	}

	if err := s.resumes.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	return nil
}

// UploadPicture stores the picture bytes and records the object key on
// the resume.
func (s *Resume) UploadPicture(ctx context.Context, id uuid.UUID, reader io.Reader) (model.Resume, error) {
	resume, err := s.resumes.GetByID(ctx, id)
	if err != nil {
		return model.Resume{}, fmt.Errorf("failed to get resume by id: %w", err)
	}

	key := pictureKey(id)
	if err := s.storage.Upload(ctx, key, reader); err != nil {
		return model.Resume{}, fmt.Errorf("failed to upload picture: %w", err)
	}

	resume.Picture = key
	resume.UpdatedAt = time.Now()
	saved, err := s.resumes.Update(ctx, resume)
	if err != nil {
		return model.Resume{}, fmt.Errorf("failed to record picture key: %w", err)
	}

	return saved, nil
}

// PictureStream returns the stored picture bytes as a stream. The caller
// owns closing it.
func (s *Resume) PictureStream(ctx context.Context, id uuid.UUID) (io.ReadCloser, error) {
	resume, err := s.resumes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get resume by id: %w", err)
	}

	if resume.Picture == "" {
		return nil, model.ErrNotFound
	}

	// The key can outlive the object, e.g. after a partial cleanup.
	exists, err := s.storage.Exists(ctx, resume.Picture)
	if err != nil {
		return nil, fmt.Errorf("failed to check picture existence: %w", err)
	}
	if !exists {
		return nil, model.ErrNotFound
	}

	reader, err := s.storage.Download(ctx, resume.Picture)
	if err != nil {
		return nil, fmt.Errorf("failed to download picture: %w", err)
	}

	return reader, nil
}

func pictureKey(resumeID uuid.UUID) string {
	return fmt.Sprintf("resumes/%s/picture", resumeID)
}
