package handler

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/326-T/nft-service/internal/api/http/reqctx"
	"github.com/326-T/nft-service/internal/logger"
	"github.com/326-T/nft-service/internal/model"
	"github.com/326-T/nft-service/internal/service"
)

// ResumeService defines business operations for the resume lifecycle.
type ResumeService interface {
	FindAll(ctx context.Context) ([]model.Resume, error)
	FindByID(ctx context.Context, id uuid.UUID) (model.Resume, error)
	FindByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Resume, error)
	FindByMintStatus(ctx context.Context, status model.MintStatus) ([]model.Resume, error)
	Create(ctx context.Context, applicantID uuid.UUID, params service.ResumeContentParams) (model.Resume, error)
	Update(ctx context.Context, id uuid.UUID, params service.ResumeContentParams) (model.Resume, error)
	Mint(ctx context.Context, id uuid.UUID, minimumPrice float32) (model.Resume, error)
	Expire(ctx context.Context, id uuid.UUID) (model.Resume, []model.OfferOutcome, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UploadPicture(ctx context.Context, id uuid.UUID, reader io.Reader) (model.Resume, error)
	PictureStream(ctx context.Context, id uuid.UUID) (io.ReadCloser, error)
}

// Resume handles the /api/v1/resumes routes.
type Resume struct {
	service ResumeService
	logger  *logger.Logger
}

func NewResume(service ResumeService, logger *logger.Logger) *Resume {
	return &Resume{
		service: service,
		logger:  logger,
	}
}

type resumeResponse struct {
	ID           uuid.UUID `json:"id"`
	ApplicantID  uuid.UUID `json:"applicantId"`
	Education    string    `json:"education"`
	Experience   string    `json:"experience"`
	Skills       string    `json:"skills"`
	Interests    string    `json:"interests"`
	URLs         string    `json:"urls"`
	Picture      string    `json:"picture,omitempty"`
	MintStatus   string    `json:"mintStatus"`
	MinimumPrice *float32  `json:"minimumPrice,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toResumeResponse(r model.Resume) resumeResponse {
	return resumeResponse{
		ID:           r.ID,
		ApplicantID:  r.ApplicantID,
		Education:    r.Education,
		Experience:   r.Experience,
		Skills:       r.Skills,
		Interests:    r.Interests,
		URLs:         r.URLs,
		Picture:      r.Picture,
		MintStatus:   r.MintStatus.String(),
		MinimumPrice: r.MinimumPrice,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toResumeResponses(resumes []model.Resume) []resumeResponse {
	out := make([]resumeResponse, 0, len(resumes))
	for _, r := range resumes {
		out = append(out, toResumeResponse(r))
	}
	return out
}

// rejectionOutcome reports one best-effort offer rejection in an expiry
// response.
type rejectionOutcome struct {
	OfferID uuid.UUID `json:"offerId"`
	Error   string    `json:"error,omitempty"`
}

func toRejectionOutcomes(outcomes []model.OfferOutcome) []rejectionOutcome {
	out := make([]rejectionOutcome, 0, len(outcomes))
	for _, o := range outcomes {
		ro := rejectionOutcome{OfferID: o.OfferID}
		if o.Err != nil {
			ro.Error = "rejection failed"
		}
		out = append(out, ro)
	}
	return out
}

type resumeContentRequest struct {
	Education  string `json:"education"`
	Experience string `json:"experience"`
	Skills     string `json:"skills"`
	Interests  string `json:"interests"`
	URLs       string `json:"urls"`
}

func (r resumeContentRequest) toParams() service.ResumeContentParams {
	return service.ResumeContentParams{
		Education:  r.Education,
		Experience: r.Experience,
		Skills:     r.Skills,
		Interests:  r.Interests,
		URLs:       r.URLs,
	}
}

type mintRequest struct {
	MinimumPrice float32 `json:"minimumPrice"`
}

func (h *Resume) List(c *fiber.Ctx) error {
	resumes, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(toResumeResponses(resumes))
}

// ListOwn lists the resumes owned by the applicant identity on the
// request.
func (h *Resume) ListOwn(c *fiber.Ctx) error {
	identities := reqctx.Get(c)
	if !identities.HasApplicant() {
		return model.ErrUnauthenticated
	}

	resumes, err := h.service.FindByApplicant(c.UserContext(), identities.Applicant.ID)
	if err != nil {
		return err
	}
	return c.JSON(toResumeResponses(resumes))
}

func (h *Resume) ListByMintStatus(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid mint status code")
	}

	resumes, err := h.service.FindByMintStatus(c.UserContext(), model.MintStatusFromCode(code))
	if err != nil {
		return err
	}
	return c.JSON(toResumeResponses(resumes))
}

func (h *Resume) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid resume id")
	}

	resume, err := h.service.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(toResumeResponse(resume))
}

func (h *Resume) Create(c *fiber.Ctx) error {
	identities := reqctx.Get(c)
	if !identities.HasApplicant() {
		return model.ErrUnauthenticated
	}

	var req resumeContentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	resume, err := h.service.Create(c.UserContext(), identities.Applicant.ID, req.toParams())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toResumeResponse(resume))
}

func (h *Resume) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid resume id")
	}

	var req resumeContentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	resume, err := h.service.Update(c.UserContext(), id, req.toParams())
	if err != nil {
		return err
	}
	return c.JSON(toResumeResponse(resume))
}

func (h *Resume) Mint(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid resume id")
	}

	var req mintRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	resume, err := h.service.Mint(c.UserContext(), id, req.MinimumPrice)
	if err != nil {
		return err
	}
	return c.JSON(toResumeResponse(resume))
}

func (h *Resume) Expire(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid resume id")
	}

	resume, outcomes, err := h.service.Expire(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"resume":         toResumeResponse(resume),
		"rejectedOffers": toRejectionOutcomes(outcomes),
	})
}

func (h *Resume) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid resume id")
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Resume) UploadPicture(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid resume id")
	}
	if len(c.Body()) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "empty picture body")
	}

	resume, err := h.service.UploadPicture(c.UserContext(), id, bytes.NewReader(c.Body()))
	if err != nil {
		return err
	}
	return c.JSON(toResumeResponse(resume))
}

func (h *Resume) Picture(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid resume id")
	}

	stream, err := h.service.PictureStream(c.UserContext(), id)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.SendStream(stream)
}
