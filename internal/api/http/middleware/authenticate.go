package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/326-T/nft-service/internal/api/http/reqctx"
	"github.com/326-T/nft-service/internal/logger"
	"github.com/326-T/nft-service/internal/model"
)

// ApplicantResolver re-resolves a decoded applicant snapshot against
// the store.
type ApplicantResolver interface {
	FindByEmail(ctx context.Context, email string) (model.Applicant, error)
}

// CompanyResolver re-resolves a decoded company snapshot against the
// store.
type CompanyResolver interface {
	FindByEmail(ctx context.Context, email string) (model.Company, error)
}

// Authenticate resolves the per-kind token cookies into request
// identities. Decode or lookup failures never fail the request: the
// identity is simply absent and the authorization layer decides what
// that means for the route.
type Authenticate struct {
	codec      model.TokenCodec
	applicants ApplicantResolver
	companies  CompanyResolver
	logger     *logger.Logger
}

func NewAuthenticate(codec model.TokenCodec, applicants ApplicantResolver, companies CompanyResolver, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		codec:      codec,
		applicants: applicants,
		companies:  companies,
		logger:     logger,
	}
}

// Handle decodes both cookies, re-resolves the principals and stores
// the identities on the request.
func (m *Authenticate) Handle(c *fiber.Ctx) error {
	var identities reqctx.Identities

	if token := c.Cookies(reqctx.CookieApplicantToken); token != "" {
		if applicant, ok := m.resolveApplicant(c, token); ok {
			identities.Applicant = &applicant
		}
	}

	if token := c.Cookies(reqctx.CookieCompanyToken); token != "" {
		if company, ok := m.resolveCompany(c, token); ok {
			identities.Company = &company
		}
	}

	reqctx.Set(c, identities)
	return c.Next()
}

func (m *Authenticate) resolveApplicant(c *fiber.Ctx, token string) (model.Applicant, bool) {
	snapshot, err := m.codec.DecodeApplicant(token)
	if err != nil {
		m.logger.Debug("Authenticate middleware: applicant token rejected", "error", err.Error())
		return model.Applicant{}, false
	}

	// The token carries a profile snapshot; trust only the stored row.
	applicant, err := m.applicants.FindByEmail(c.UserContext(), snapshot.Email)
	if err != nil {
		m.logger.Debug("Authenticate middleware: applicant lookup failed",
			"email", snapshot.Email,
			"error", err.Error())
		return model.Applicant{}, false
	}

	return applicant, true
}

func (m *Authenticate) resolveCompany(c *fiber.Ctx, token string) (model.Company, bool) {
	snapshot, err := m.codec.DecodeCompany(token)
	if err != nil {
		m.logger.Debug("Authenticate middleware: company token rejected", "error", err.Error())
		return model.Company{}, false
	}

	company, err := m.companies.FindByEmail(c.UserContext(), snapshot.Email)
	if err != nil {
		m.logger.Debug("Authenticate middleware: company lookup failed",
			"email", snapshot.Email,
			"error", err.Error())
		return model.Company{}, false
	}

	return company, true
}
