package reservation

import "tablebook/internal/domain/schedule"

// MaxSuggestions caps how many alternative times are offered after a
// capacity rejection.
const MaxSuggestions = 3

// suggestionOffsets are probed in order: earlier before later at each
// magnitude, so the closest workable time is offered first.
var suggestionOffsets = []int{-30, 30, -60, 60, -90, 90, -120, 120}

// SuggestTimes probes fixed offsets around a rejected time and returns up to
// MaxSuggestions "HH:mm" candidates inside [openMin, lastMin] for which fits
// reports capacity. It varies neither the date nor the duration.
func SuggestTimes(requestedMin, openMin, lastMin int, fits func(candidateMin int) bool) []string {
	var out []string
	for _, offset := range suggestionOffsets {
		candidate := requestedMin + offset
		if candidate < openMin || candidate > lastMin {
			continue
		}
		if !fits(candidate) {
			continue
		}
		out = append(out, schedule.FormatMinutes(candidate))
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}
