package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/326-T/nft-service/internal/api/http/reqctx"
	"github.com/326-T/nft-service/internal/logger"
	"github.com/326-T/nft-service/internal/model"
)

// OfferService defines business operations for offer negotiation.
type OfferService interface {
	FindAll(ctx context.Context) ([]model.Offer, error)
	FindByID(ctx context.Context, id uuid.UUID) (model.Offer, error)
	DetailsByResume(ctx context.Context, resumeID uuid.UUID) ([]model.OfferDetail, error)
	Create(ctx context.Context, resumeID, companyID uuid.UUID, price float32, message string) (model.Offer, error)
	Update(ctx context.Context, id uuid.UUID, price float32, message string, status model.OfferStatus) (model.Offer, error)
	SetStatus(ctx context.Context, id uuid.UUID, status model.OfferStatus) (model.Offer, error)
	Accept(ctx context.Context, id uuid.UUID) (model.Offer, []model.OfferOutcome, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Offer handles the /api/v1/offers routes.
type Offer struct {
	service OfferService
	logger  *logger.Logger
}

func NewOffer(service OfferService, logger *logger.Logger) *Offer {
	return &Offer{
		service: service,
		logger:  logger,
	}
}

type offerResponse struct {
	ID        uuid.UUID `json:"id"`
	ResumeID  uuid.UUID `json:"resumeId"`
	CompanyID uuid.UUID `json:"companyId"`
	Price     float32   `json:"price"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toOfferResponse(o model.Offer) offerResponse {
	return offerResponse{
		ID:        o.ID,
		ResumeID:  o.ResumeID,
		CompanyID: o.CompanyID,
		Price:     o.Price,
		Message:   o.Message,
		Status:    o.Status.String(),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func toOfferResponses(offers []model.Offer) []offerResponse {
	out := make([]offerResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, toOfferResponse(o))
	}
	return out
}

type offerDetailResponse struct {
	offerResponse
	CompanyName string `json:"companyName"`
}

func toOfferDetailResponses(details []model.OfferDetail) []offerDetailResponse {
	out := make([]offerDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, offerDetailResponse{
			offerResponse: toOfferResponse(d.Offer),
			CompanyName:   d.CompanyName,
		})
	}
	return out
}

type createOfferRequest struct {
	ResumeID uuid.UUID `json:"resumeId"`
	Price    float32   `json:"price"`
	Message  string    `json:"message"`
}

type updateOfferRequest struct {
	Price   float32 `json:"price"`
	Message string  `json:"message"`
	Status  int     `json:"status"`
}

func (h *Offer) List(c *fiber.Ctx) error {
	offers, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(toOfferResponses(offers))
}

// ListByResume returns the offers against a resume, with the bidding
// company's name joined in.
func (h *Offer) ListByResume(c *fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid resume id")
	}

	details, err := h.service.DetailsByResume(c.UserContext(), resumeID)
	if err != nil {
		return err
	}
	return c.JSON(toOfferDetailResponses(details))
}

func (h *Offer) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid offer id")
	}

	offer, err := h.service.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(toOfferResponse(offer))
}

// Create records a new offer by the company identity on the request.
func (h *Offer) Create(c *fiber.Ctx) error {
	identities := reqctx.Get(c)
	if !identities.HasCompany() {
		return model.ErrUnauthenticated
	}

	var req createOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if req.ResumeID == uuid.Nil {
		return fiber.NewError(fiber.StatusBadRequest, "resumeId is required")
	}

	offer, err := h.service.Create(c.UserContext(), req.ResumeID, identities.Company.ID, req.Price, req.Message)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toOfferResponse(offer))
}

func (h *Offer) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid offer id")
	}

	var req updateOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	offer, err := h.service.Update(c.UserContext(), id, req.Price, req.Message, model.OfferStatusFromCode(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(toOfferResponse(offer))
}

// Accept settles the offer and reports the cheaper competitors rejected
// alongside it.
func (h *Offer) Accept(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid offer id")
	}

	offer, outcomes, err := h.service.Accept(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"offer":          toOfferResponse(offer),
		"rejectedOffers": toRejectionOutcomes(outcomes),
	})
}

func (h *Offer) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid offer id")
	}

	offer, err := h.service.SetStatus(c.UserContext(), id, model.OfferStatusRejected)
	if err != nil {
		return err
	}
	return c.JSON(toOfferResponse(offer))
}

func (h *Offer) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid offer id")
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
