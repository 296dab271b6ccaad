package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ResumeStore defines persistence operations for resumes.
type ResumeStore interface {
	GetAll(ctx context.Context) ([]Resume, error)
	GetByID(ctx context.Context, id uuid.UUID) (Resume, error)
	GetByApplicantID(ctx context.Context, applicantID uuid.UUID) ([]Resume, error)
	GetByMintStatus(ctx context.Context, status MintStatus) ([]Resume, error)
	Create(ctx context.Context, resume Resume) (Resume, error)
	Update(ctx context.Context, resume Resume) (Resume, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Resume is an applicant-owned document that companies bid on once minted.
// Content fields are opaque strings; Picture holds an object storage key.
type Resume struct {
	ID           uuid.UUID
	ApplicantID  uuid.UUID
	Education    string
	Experience   string
	Skills       string
	Interests    string
	URLs         string
	Picture      string
	MintStatus   MintStatus
	MinimumPrice *float32
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MintStatus is the publication state of a resume. It moves strictly
// forward: pending -> published -> expired.
type MintStatus int

const (
	MintStatusPending MintStatus = iota
	MintStatusPublished
	MintStatusExpired
)

// Stored rows use small integer codes. The mapping is load-bearing for
// data written by earlier versions of the platform and must not change.
var mintStatusToCode = map[MintStatus]int{
	MintStatusPending:   0,
	MintStatusPublished: 1,
	MintStatusExpired:   2,
}

var mintStatusFromCode = map[int]MintStatus{
	0: MintStatusPending,
	1: MintStatusPublished,
	2: MintStatusExpired,
}

// Code returns the legacy integer code for s.
func (s MintStatus) Code() int {
	return mintStatusToCode[s]
}

func (s MintStatus) String() string {
	switch s {
	case MintStatusPublished:
		return "published"
	case MintStatusExpired:
		return "expired"
	default:
		return "pending"
	}
}

// MintStatusFromCode maps a stored integer code back to a status.
// Unknown codes decode to pending, matching historical reads.
func MintStatusFromCode(code int) MintStatus {
	if s, ok := mintStatusFromCode[code]; ok {
		return s
	}
	return MintStatusPending
}
