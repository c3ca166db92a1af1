package shared

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/pkg/errs"
)

// Error taxonomy surfaced by the usecase layer. Validation failures are
// rejected before touching the store; conflicts tell the caller to re-query
// availability; policy violations carry the computed fee/reason so the caller
// can re-confirm; unknown or cross-tenant ids are NotFound (never Forbidden,
// to avoid existence leakage); transient storage failures surface as
// ErrUnavailable after internal retries.
var (
	ErrValidation      = errs.New("validation failed")
	ErrBookingNotFound = errs.New("booking not found")
	ErrSeriesNotFound  = errs.New("series not found")
	ErrServiceNotFound = errs.New("service not found")
	ErrUnavailable     = errs.New("storage unavailable, try again")
	ErrQueryTimeout    = errs.New("query deadline exceeded")
)

// ConflictError reports that the requested slot is no longer free. The
// conflicting booking id is included when the detector saw it; a conflict
// surfaced by the storage constraint during a race carries no id.
type ConflictError struct {
	ConflictingBookingID uuid.UUID
	Reason               string
}

func (e *ConflictError) Error() string {
	if e.ConflictingBookingID != uuid.Nil {
		return fmt.Sprintf("slot conflicts with booking %s", e.ConflictingBookingID)
	}
	if e.Reason != "" {
		return "slot is not available: " + e.Reason
	}
	return "slot is not available"
}

// PolicyViolationError reports a state-machine or cancellation-policy guard
// failure together with the fee the caller would have to acknowledge.
type PolicyViolationError struct {
	Reason   string
	FeeCents int64
}

func (e *PolicyViolationError) Error() string {
	return "policy violation: " + e.Reason
}
