package models

import (
	"time"

	"github.com/address-parser-ar/pkg/addr"
)

// Review status values.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// ReviewEntry queues an address line whose parse resolved to unknown
// (kind == "") for a human to supply the correct structured breakdown.
type ReviewEntry struct {
	ID           string             `json:"id"`
	RawInput     string             `json:"raw_input"`
	Status       string             `json:"status"`
	ManualResult *addr.AddressResult `json:"manual_result,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	ResolvedAt   *time.Time         `json:"resolved_at,omitempty"`
}

// NewReviewEntry queues a raw address line that failed to parse.
func NewReviewEntry(id, rawInput string) *ReviewEntry {
	return &ReviewEntry{
		ID:        id,
		RawInput:  rawInput,
		Status:    ReviewStatusPending,
		CreatedAt: time.Now(),
	}
}

// Approve marks the automatic (empty) result as correct, i.e. the address
// genuinely has no recoverable structure.
func (r *ReviewEntry) Approve() {
	r.Status = ReviewStatusApproved
	now := time.Now()
	r.ResolvedAt = &now
}

// Reject marks the automatic result as wrong without supplying a replacement.
func (r *ReviewEntry) Reject() {
	r.Status = ReviewStatusRejected
	now := time.Now()
	r.ResolvedAt = &now
}

// SetManualResult records the structured breakdown a reviewer supplied by hand.
func (r *ReviewEntry) SetManualResult(result addr.AddressResult) {
	r.ManualResult = &result
	r.Status = ReviewStatusApproved
	now := time.Now()
	r.ResolvedAt = &now
}
