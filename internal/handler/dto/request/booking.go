package request

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/commands"
)

type CreateBookingRequest struct {
	ServiceID     uuid.UUID  `json:"service_id" binding:"required"`
	StaffID       *uuid.UUID `json:"staff_id,omitempty"`
	CustomerName  string     `json:"customer_name" binding:"required"`
	CustomerEmail string     `json:"customer_email" binding:"required"`
	CustomerPhone string     `json:"customer_phone,omitempty"`
	StartsAt      time.Time  `json:"starts_at" binding:"required"`
	Note          string     `json:"note,omitempty"`
}

func (r CreateBookingRequest) ToParams(providerID uuid.UUID) commands.CreateBookingParams {
	return commands.CreateBookingParams{
		ProviderID:    providerID,
		StaffID:       r.StaffID,
		ServiceID:     r.ServiceID,
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerEmail: strings.TrimSpace(r.CustomerEmail),
		CustomerPhone: strings.TrimSpace(r.CustomerPhone),
		StartsAt:      r.StartsAt,
		Note:          strings.TrimSpace(r.Note),
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

func (r CancelBookingRequest) GetReason() string {
	reason := strings.TrimSpace(r.Reason)
	if reason == "" {
		return "cancelled by provider"
	}
	return reason
}

type RescheduleBookingRequest struct {
	NewStartAt time.Time `json:"new_start_at" binding:"required"`
}
