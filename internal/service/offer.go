package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/326-T/nft-service/internal/logger"
	"github.com/326-T/nft-service/internal/model"
)

type Offer struct {
	offers model.OfferStore
	logger *logger.Logger
}

func NewOffer(offers model.OfferStore, logger *logger.Logger) *Offer {
	return &Offer{
		offers: offers,
		logger: logger,
	}
}

func (s *Offer) FindAll(ctx context.Context) ([]model.Offer, error) {
	offers, err := s.offers.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	return offers, nil
}

func (s *Offer) FindByID(ctx context.Context, id uuid.UUID) (model.Offer, error) {
	offer, err := s.offers.GetByID(ctx, id)
	if err != nil {
		return model.Offer{}, fmt.Errorf("failed to get offer by id: %w", err)
	}

	return offer, nil
}

// DetailsByResume lists offers against a resume joined with the
// offering company's display name.
func (s *Offer) DetailsByResume(ctx context.Context, resumeID uuid.UUID) ([]model.OfferDetail, error) {
	details, err := s.offers.GetDetailsByResumeID(ctx, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list offer details by resume: %w", err)
	}

	return details, nil
}

// Create records a new pending offer.
// TODO: validate the price against the resume's minimum price once the
// floor is agreed to be binding rather than informational.
func (s *Offer) Create(ctx context.Context, resumeID, companyID uuid.UUID, price float32, message string) (model.Offer, error) {
	now := time.Now()
	offer := model.Offer{
		ID:        uuid.New(),
		ResumeID:  resumeID,
		CompanyID: companyID,
		Price:     price,
		Message:   message,
		Status:    model.OfferStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := s.offers.Create(ctx, offer)
	if err != nil {
		return model.Offer{}, fmt.Errorf("failed to create offer: %w", err)
	}

	s.logger.Info("Offer service: offer created", "id", saved.ID, "resume_id", resumeID, "company_id", companyID)
	return saved, nil
}

// Update rewrites the price, message and status of a pending offer.
// An offer that was already accepted or rejected is settled and cannot
// be reopened.
func (s *Offer) Update(ctx context.Context, id uuid.UUID, price float32, message string, status model.OfferStatus) (model.Offer, error) {
	old, err := s.offers.GetByID(ctx, id)
	if err != nil {
		return model.Offer{}, fmt.Errorf("failed to get offer by id: %w", err)
	}

	if old.Status != model.OfferStatusPending {
		return model.Offer{}, model.ErrOfferNotPending
	}

	updated := model.Offer{
		ID:        old.ID,
		ResumeID:  old.ResumeID,
		CompanyID: old.CompanyID,
		Price:     price,
		Message:   message,
		Status:    status,
		CreatedAt: old.CreatedAt,
		UpdatedAt: time.Now(),
	}

	saved, err := s.offers.Update(ctx, updated)
	if err != nil {
		return model.Offer{}, fmt.Errorf("failed to update offer: %w", err)
	}

	return saved, nil
}

// SetStatus moves a pending offer to the given status.
func (s *Offer) SetStatus(ctx context.Context, id uuid.UUID, status model.OfferStatus) (model.Offer, error) {
	offer, err := s.offers.GetByID(ctx, id)
	if err != nil {
		return model.Offer{}, fmt.Errorf("failed to get offer by id: %w", err)
	}

	if offer.Status != model.OfferStatusPending {
		return model.Offer{}, model.ErrOfferNotPending
	}

	offer.Status = status
	offer.UpdatedAt = time.Now()

	saved, err := s.offers.Update(ctx, offer)
	if err != nil {
		return model.Offer{}, fmt.Errorf("failed to set offer status: %w", err)
	}

	return saved, nil
}

// Accept settles the offer in the company's favour and then rejects
// every strictly cheaper pending offer on the same resume. The
// rejections are best-effort and reported per offer; a failed rejection
// does not undo the acceptance.
func (s *Offer) Accept(ctx context.Context, id uuid.UUID) (model.Offer, []model.OfferOutcome, error) {
	accepted, err := s.SetStatus(ctx, id, model.OfferStatusAccepted)
	if err != nil {
		return model.Offer{}, nil, err
	}

	outcomes, err := s.RejectCheaper(ctx, accepted.ResumeID, accepted.ID, accepted.Price)
	if err != nil {
		return model.Offer{}, nil, err
	}

	s.logger.Info("Offer service: offer accepted", "id", id, "rejected_offers", len(outcomes))
	return accepted, outcomes, nil
}

// RejectCheaper rejects every pending offer on the resume whose price is
// strictly below the given price, skipping the winner. Equal-priced
// offers stay pending.
func (s *Offer) RejectCheaper(ctx context.Context, resumeID, winnerID uuid.UUID, price float32) ([]model.OfferOutcome, error) {
	offers, err := s.offers.GetByResumeID(ctx, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers by resume: %w", err)
	}

	var outcomes []model.OfferOutcome
	for _, offer := range offers {
		if offer.ID == winnerID || offer.Status != model.OfferStatusPending || offer.Price >= price {
			continue
		}

		offer.Status = model.OfferStatusRejected
		offer.UpdatedAt = time.Now()
		_, err := s.offers.Update(ctx, offer)
		if err != nil {
			s.logger.Error("Offer service: failed to reject cheaper offer",
				"resume_id", resumeID,
				"offer_id", offer.ID,
				"error", err.Error())
		}
		outcomes = append(outcomes, model.OfferOutcome{OfferID: offer.ID, Err: err})
	}

	return outcomes, nil
}

func (s *Offer) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.offers.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	return nil
}
