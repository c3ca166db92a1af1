package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/commands"
)

var errInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

type CreateSeriesRequest struct {
	ServiceID     uuid.UUID `json:"service_id" binding:"required"`
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerEmail string    `json:"customer_email" binding:"required"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	StartDate     string    `json:"start_date" binding:"required"`
	StartTime     string    `json:"start_time" binding:"required"`
	Interval      string    `json:"interval" binding:"required"`
	EndDate       *string   `json:"end_date,omitempty"`
	Note          string    `json:"note,omitempty"`
}

func (r CreateSeriesRequest) ToParams(providerID uuid.UUID) (commands.CreateSeriesParams, error) {
	startDate, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return commands.CreateSeriesParams{}, errInvalidDate
	}

	var endDate *time.Time
	if r.EndDate != nil && strings.TrimSpace(*r.EndDate) != "" {
		parsed, err := time.Parse("2006-01-02", *r.EndDate)
		if err != nil {
			return commands.CreateSeriesParams{}, errInvalidDate
		}
		endDate = &parsed
	}

	return commands.CreateSeriesParams{
		ProviderID:    providerID,
		ServiceID:     r.ServiceID,
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerEmail: strings.TrimSpace(r.CustomerEmail),
		CustomerPhone: strings.TrimSpace(r.CustomerPhone),
		StartDate:     startDate,
		StartTime:     strings.TrimSpace(r.StartTime),
		Interval:      strings.TrimSpace(r.Interval),
		EndDate:       endDate,
		Note:          strings.TrimSpace(r.Note),
	}, nil
}
