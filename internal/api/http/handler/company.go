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

// CompanyService defines business operations for company accounts.
type CompanyService interface {
	FindAll(ctx context.Context) ([]model.Company, error)
	FindByID(ctx context.Context, id uuid.UUID) (model.Company, error)
	Register(ctx context.Context, params service.RegisterCompanyParams) (model.Company, error)
	Update(ctx context.Context, id uuid.UUID, params service.UpdateCompanyParams) (model.Company, error)
	Login(ctx context.Context, email, password string) (model.Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Company handles the /api/v1/companies routes.
type Company struct {
	service CompanyService
	codec   model.TokenCodec
	logger  *logger.Logger
}

func NewCompany(service CompanyService, codec model.TokenCodec, logger *logger.Logger) *Company {
	return &Company{
		service: service,
		codec:   codec,
		logger:  logger,
	}
}

type companyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Version   int64     `json:"version"`
}

func toCompanyResponse(c model.Company) companyResponse {
	return companyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Version:   c.Version,
	}
}

func toCompanyResponses(companies []model.Company) []companyResponse {
	out := make([]companyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, toCompanyResponse(c))
	}
	return out
}

type registerCompanyRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

func (h *Company) List(c *fiber.Ctx) error {
	companies, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(toCompanyResponses(companies))
}

func (h *Company) Current(c *fiber.Ctx) error {
	identities := reqctx.Get(c)
	if !identities.HasCompany() {
		return model.ErrUnauthenticated
	}
	return c.JSON(toCompanyResponse(*identities.Company))
}

func (h *Company) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid company id")
	}

	company, err := h.service.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(toCompanyResponse(company))
}

func (h *Company) Register(c *fiber.Ctx) error {
	var req registerCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password are required")
	}

	company, err := h.service.Register(c.UserContext(), service.RegisterCompanyParams{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	if err := h.setTokenCookie(c, company); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toCompanyResponse(company))
}

func (h *Company) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	company, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	if err := h.setTokenCookie(c, company); err != nil {
		return err
	}
	return c.JSON(toCompanyResponse(company))
}

func (h *Company) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid company id")
	}

	var req registerCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	company, err := h.service.Update(c.UserContext(), id, service.UpdateCompanyParams{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(toCompanyResponse(company))
}

func (h *Company) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid company id")
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Company) setTokenCookie(c *fiber.Ctx, company model.Company) error {
	token, err := h.codec.IssueCompany(company)
	if err != nil {
		h.logger.Error("Company handler: failed to issue token",
			"id", company.ID,
			"error", err.Error())
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     reqctx.CookieCompanyToken,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
	})
	return nil
}
