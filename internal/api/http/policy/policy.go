// Package policy decides whether a request may proceed, given the
// method, the path and the identities resolved for it. The decision is
// a pure function of its inputs so the full matrix is testable without
// a server.
package policy

import (
	"net/http"
	"strings"
)

// Decision is the outcome of an access check.
type Decision int

const (
	Allow Decision = iota
	// DenyUnauthenticated means no identity was presented at all.
	DenyUnauthenticated
	// DenyForbidden means an identity was presented but it may not
	// perform this operation.
	DenyForbidden
)

// Identities is the subset of request identity the policy needs.
type Identities interface {
	HasApplicant() bool
	HasCompany() bool
	HasAny() bool
}

// Paths open to anonymous POSTs: registration and login for both kinds.
var publicPostPaths = map[string]struct{}{
	"/api/v1/applicants":       {},
	"/api/v1/applicants/login": {},
	"/api/v1/companies":        {},
	"/api/v1/companies/login":  {},
}

// Decide evaluates the access rules for one request.
//
// Preflight requests always pass. Registration and login are open.
// Reads are open to any authenticated principal. Writes split by kind:
// applicants manage their own profile and resumes and arbitrate offers
// through the accepted/rejected sub-routes; companies manage their own
// profile and their offers, but may not arbitrate.
func Decide(method, path string, identities Identities) Decision {
	if method == http.MethodOptions {
		return Allow
	}

	if method == http.MethodPost {
		if _, ok := publicPostPaths[path]; ok {
			return Allow
		}
	}

	if !identities.HasAny() {
		return DenyUnauthenticated
	}

	if method == http.MethodGet {
		return Allow
	}

	if identities.HasApplicant() && applicantAllowed(path) {
		return Allow
	}
	if identities.HasCompany() && companyAllowed(path) {
		return Allow
	}

	return DenyForbidden
}

func applicantAllowed(path string) bool {
	return strings.HasPrefix(path, "/api/v1/resumes") ||
		strings.HasPrefix(path, "/api/v1/applicants") ||
		strings.HasPrefix(path, "/api/v1/offers/accepted/") ||
		strings.HasPrefix(path, "/api/v1/offers/rejected/")
}

func companyAllowed(path string) bool {
	if strings.HasPrefix(path, "/api/v1/offers/accepted/") ||
		strings.HasPrefix(path, "/api/v1/offers/rejected/") {
		return false
	}
	return strings.HasPrefix(path, "/api/v1/companies") ||
		strings.HasPrefix(path, "/api/v1/offers")
}
