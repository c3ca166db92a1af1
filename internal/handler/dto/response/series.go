package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/queries"
)

type SeriesResponse struct {
	ID             uuid.UUID  `json:"id"`
	ProviderID     uuid.UUID  `json:"providerId"`
	ServiceID      uuid.UUID  `json:"serviceId"`
	CustomerName   string     `json:"customerName"`
	CustomerEmail  string     `json:"customerEmail"`
	StartDate      time.Time  `json:"startDate"`
	StartTime      string     `json:"startTime"`
	Interval       string     `json:"interval"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	Status         string     `json:"status"`
	NextOccurrence *time.Time `json:"nextOccurrence,omitempty"`
	Note           string     `json:"note,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func FromSeriesView(view *queries.SeriesView) *SeriesResponse {
	var resp SeriesResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
