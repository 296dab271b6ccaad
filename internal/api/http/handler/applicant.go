package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/326-T/nft-service/internal/api/http/reqctx"
	"github.com/326-T/nft-service/internal/logger"
	"github.com/326-T/nft-service/internal/model"
	"github.com/326-T/nft-service/internal/service"
)

// ApplicantService defines business operations for applicant accounts.
type ApplicantService interface {
	FindAll(ctx context.Context) ([]model.Applicant, error)
	FindByID(ctx context.Context, id uuid.UUID) (model.Applicant, error)
	Register(ctx context.Context, params service.RegisterApplicantParams) (model.Applicant, error)
	Update(ctx context.Context, id uuid.UUID, params service.UpdateApplicantParams) (model.Applicant, error)
	Login(ctx context.Context, email, password string) (model.Applicant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Applicant handles the /api/v1/applicants routes.
type Applicant struct {
	service ApplicantService
	codec   model.TokenCodec
	logger  *logger.Logger
}

func NewApplicant(service ApplicantService, codec model.TokenCodec, logger *logger.Logger) *Applicant {
	return &Applicant{
		service: service,
		codec:   codec,
		logger:  logger,
	}
}

// applicantResponse is the public view of an applicant. The credential
// digest never leaves the server.
type applicantResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Version   int64     `json:"version"`
}

func toApplicantResponse(a model.Applicant) applicantResponse {
	return applicantResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Phone:     a.Phone,
		Address:   a.Address,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		Version:   a.Version,
	}
}

func toApplicantResponses(applicants []model.Applicant) []applicantResponse {
	out := make([]applicantResponse, 0, len(applicants))
	for _, a := range applicants {
		out = append(out, toApplicantResponse(a))
	}
	return out
}

type registerApplicantRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Applicant) List(c *fiber.Ctx) error {
	applicants, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(toApplicantResponses(applicants))
}

// Current returns the applicant identity resolved from the request
// cookie.
func (h *Applicant) Current(c *fiber.Ctx) error {
	identities := reqctx.Get(c)
	if !identities.HasApplicant() {
		return model.ErrUnauthenticated
	}
	return c.JSON(toApplicantResponse(*identities.Applicant))
}

func (h *Applicant) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid applicant id")
	}

	applicant, err := h.service.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(toApplicantResponse(applicant))
}

func (h *Applicant) Register(c *fiber.Ctx) error {
	var req registerApplicantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password are required")
	}

	applicant, err := h.service.Register(c.UserContext(), service.RegisterApplicantParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}

	if err := h.setTokenCookie(c, applicant); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toApplicantResponse(applicant))
}

func (h *Applicant) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	applicant, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	if err := h.setTokenCookie(c, applicant); err != nil {
		return err
	}
	return c.JSON(toApplicantResponse(applicant))
}

func (h *Applicant) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid applicant id")
	}

	var req registerApplicantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	applicant, err := h.service.Update(c.UserContext(), id, service.UpdateApplicantParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(toApplicantResponse(applicant))
}

func (h *Applicant) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid applicant id")
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Applicant) setTokenCookie(c *fiber.Ctx, applicant model.Applicant) error {
	token, err := h.codec.IssueApplicant(applicant)
	if err != nil {
		h.logger.Error("Applicant handler: failed to issue token",
			"id", applicant.ID,
			"error", err.Error())
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     reqctx.CookieApplicantToken,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
	})
	return nil
}
