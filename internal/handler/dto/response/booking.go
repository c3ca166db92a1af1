package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/queries"
)

type BookingResponse struct {
	ID                   uuid.UUID  `json:"id"`
	ProviderID           uuid.UUID  `json:"providerId"`
	StaffID              *uuid.UUID `json:"staffId,omitempty"`
	ServiceID            uuid.UUID  `json:"serviceId"`
	CustomerName         string     `json:"customerName"`
	CustomerEmail        string     `json:"customerEmail"`
	CustomerPhone        string     `json:"customerPhone,omitempty"`
	StartsAt             time.Time  `json:"startsAt"`
	EndsAt               time.Time  `json:"endsAt"`
	Status               string     `json:"status"`
	Note                 string     `json:"note,omitempty"`
	SeriesID             *uuid.UUID `json:"seriesId,omitempty"`
	CancelledAt          *time.Time `json:"cancelledAt,omitempty"`
	CancellationReason   *string    `json:"cancellationReason,omitempty"`
	CancellationFeeCents int64      `json:"cancellationFeeCents"`
	CreatedAt            time.Time  `json:"createdAt"`
}

type BookingListResponse struct {
	ID        uuid.UUID  `json:"id"`
	StaffID   *uuid.UUID `json:"staffId,omitempty"`
	ServiceID uuid.UUID  `json:"serviceId"`
	StartsAt  time.Time  `json:"startsAt"`
	EndsAt    time.Time  `json:"endsAt"`
	Status    string     `json:"status"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	var resp BookingListResponse
	_ = copier.Copy(&resp, item)
	return &resp
}
