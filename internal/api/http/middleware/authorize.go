package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/326-T/nft-service/internal/api/http/policy"
	"github.com/326-T/nft-service/internal/api/http/reqctx"
	"github.com/326-T/nft-service/internal/logger"
	"github.com/326-T/nft-service/internal/model"
)

// Authorize applies the access policy to every request after
// authentication has resolved the identities.
type Authorize struct {
	logger *logger.Logger
}

func NewAuthorize(logger *logger.Logger) *Authorize {
	return &Authorize{logger: logger}
}

func (m *Authorize) Handle(c *fiber.Ctx) error {
	identities := reqctx.Get(c)

	switch policy.Decide(c.Method(), c.Path(), identities) {
	case policy.Allow:
		return c.Next()
	case policy.DenyUnauthenticated:
		return model.ErrUnauthenticated
	default:
		m.logger.Info("Authorize middleware: denied",
			"method", c.Method(),
			"path", c.Path(),
			"applicant", identities.HasApplicant(),
			"company", identities.HasCompany())
		return model.ErrForbidden
	}
}
