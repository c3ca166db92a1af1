package response

import (
	"time"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/queries"
)

type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AvailabilityResponse struct {
	Slots []SlotResponse `json:"slots"`
}

func FromSlots(slots []queries.SlotView) *AvailabilityResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{Start: s.Start, End: s.End}
	}
	return &AvailabilityResponse{Slots: out}
}
