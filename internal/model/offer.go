package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OfferStore defines persistence operations for offers.
type OfferStore interface {
	GetAll(ctx context.Context) ([]Offer, error)
	GetByID(ctx context.Context, id uuid.UUID) (Offer, error)
	GetByResumeID(ctx context.Context, resumeID uuid.UUID) ([]Offer, error)
	GetDetailsByResumeID(ctx context.Context, resumeID uuid.UUID) ([]OfferDetail, error)
	Create(ctx context.Context, offer Offer) (Offer, error)
	Update(ctx context.Context, offer Offer) (Offer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Offer is a priced bid by a company against a single resume.
type Offer struct {
	ID        uuid.UUID
	ResumeID  uuid.UUID
	CompanyID uuid.UUID
	Price     float32
	Message   string
	Status    OfferStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OfferDetail is the read model backed by offer_detail_view: an offer
// joined with the bidding company's display name.
type OfferDetail struct {
	Offer
	CompanyName string
}

// OfferOutcome reports the result of one item in a best-effort batch
// update (resume expiry, cheaper-offer rejection). A nil Err means the
// offer was transitioned.
type OfferOutcome struct {
	OfferID uuid.UUID
	Err     error
}

// OfferStatus is the negotiation state of an offer. Pending is the only
// mutable state; accepted and rejected are terminal.
type OfferStatus int

const (
	OfferStatusPending OfferStatus = iota
	OfferStatusAccepted
	OfferStatusRejected
)

// Stored rows use small integer codes, shared with existing data.
var offerStatusToCode = map[OfferStatus]int{
	OfferStatusPending:  0,
	OfferStatusAccepted: 1,
	OfferStatusRejected: 2,
}

var offerStatusFromCode = map[int]OfferStatus{
	0: OfferStatusPending,
	1: OfferStatusAccepted,
	2: OfferStatusRejected,
}

// Code returns the legacy integer code for s.
func (s OfferStatus) Code() int {
	return offerStatusToCode[s]
}

func (s OfferStatus) String() string {
	switch s {
	case OfferStatusAccepted:
		return "accepted"
	case OfferStatusRejected:
		return "rejected"
	default:
		return "pending"
	}
}

// OfferStatusFromCode maps a stored integer code back to a status.
// Unknown codes decode to pending, matching historical reads.
func OfferStatusFromCode(code int) OfferStatus {
	if s, ok := offerStatusFromCode[code]; ok {
		return s
	}
	return OfferStatusPending
}
