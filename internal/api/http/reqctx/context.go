// Package reqctx carries the authenticated principals of a request
// through fiber's per-request locals.
package reqctx

import (
	"github.com/gofiber/fiber/v2"

	"github.com/326-T/nft-service/internal/model"
)

// Cookie names carrying the signed tokens, one per principal kind. A
// request may present both.
const (
	CookieApplicantToken = "applicant_token"
	CookieCompanyToken   = "company_token"
)

type localsKey struct{}

// Identities holds the principals resolved for the current request.
// Nil fields mean the request carried no valid token of that kind.
// The struct is written once by the authentication middleware and read
// everywhere downstream.
type Identities struct {
	Applicant *model.Applicant
	Company   *model.Company
}

func (i Identities) HasApplicant() bool { return i.Applicant != nil }

func (i Identities) HasCompany() bool { return i.Company != nil }

func (i Identities) HasAny() bool { return i.Applicant != nil || i.Company != nil }

// Set stores the resolved identities on the request.
func Set(c *fiber.Ctx, identities Identities) {
	c.Locals(localsKey{}, identities)
}

// Get returns the identities resolved for the request. A request that
// never went through the authentication middleware yields the zero
// value, which has no identity.
func Get(c *fiber.Ctx) Identities {
	if v, ok := c.Locals(localsKey{}).(Identities); ok {
		return v
	}
	return Identities{}
}
