package response

import "tablebook/internal/usecase/queries"

type AvailabilityResponse struct {
	Available      bool     `json:"available"`
	Reason         string   `json:"reason,omitempty"`
	SuggestedTimes []string `json:"suggestedTimes,omitempty"`
}

func FromVerdict(v *queries.Verdict) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available:      v.Available,
		Reason:         v.Reason,
		SuggestedTimes: v.SuggestedTimes,
	}
}
