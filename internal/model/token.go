package model

import "errors"

// TokenCodec issues and decodes the signed bearer tokens carried in the
// principal-kind cookies. A decoded principal is the profile snapshot at
// issuance time; callers must re-resolve it against the store before
// trusting it.
type TokenCodec interface {
	IssueApplicant(applicant Applicant) (string, error)
	IssueCompany(company Company) (string, error)
	DecodeApplicant(token string) (Applicant, error)
	DecodeCompany(token string) (Company, error)
}

// Decode failure kinds. All of them mean "no identity"; they are
// distinguished for logging only.
var (
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenMalformed        = errors.New("token malformed")
)
