package restaurant

import "tablebook/internal/domain/schedule"

// Defaults applied when a restaurant has not configured the corresponding
// setting yet.
const (
	DefaultMaxTables           = 20
	DefaultSeatsPerTable       = 4
	DefaultReservationDuration = 90
	DefaultMonthlyMessageLimit = 500
)

// RawSettings mirrors the settings document as stored: every field optional.
// It exists only at the persistence boundary; call Resolve once at load time
// and pass Settings around.
type RawSettings struct {
	Capacity *struct {
		MaxTables                  *int                 `json:"maxTables"`
		SeatsPerTable              *int                 `json:"seatsPerTable"`
		DefaultReservationDuration *int                 `json:"defaultReservationDuration"`
		OperatingHours             schedule.WeeklyHours `json:"operatingHours"`
	} `json:"capacity"`
	Assistant *struct {
		Personality         *string  `json:"personality"`
		Capabilities        []string `json:"capabilities"`
		CustomInstructions  *string  `json:"customInstructions"`
		MonthlyMessageLimit *int     `json:"monthlyMessageLimit"`
	} `json:"assistant"`
}

// Settings is the fully resolved configuration the core reads. No call site
// re-derives a default.
type Settings struct {
	Capacity  CapacitySettings
	Assistant AssistantSettings
}

type CapacitySettings struct {
	MaxTables                  int
	SeatsPerTable              int
	DefaultReservationDuration int
	// OperatingHours is nil when the restaurant never configured hours,
	// which means bookings are accepted at any time.
	OperatingHours schedule.WeeklyHours
}

type AssistantSettings struct {
	Personality         string
	Capabilities        []string
	CustomInstructions  string
	MonthlyMessageLimit int
}

func (c CapacitySettings) MaxCapacity() int {
	return c.MaxTables * c.SeatsPerTable
}

// Resolve collapses the optional settings document into concrete values.
func Resolve(raw RawSettings) Settings {
	s := Settings{
		Capacity: CapacitySettings{
			MaxTables:                  DefaultMaxTables,
			SeatsPerTable:              DefaultSeatsPerTable,
			DefaultReservationDuration: DefaultReservationDuration,
		},
		Assistant: AssistantSettings{
			Personality:         "friendly",
			MonthlyMessageLimit: DefaultMonthlyMessageLimit,
		},
	}

	if raw.Capacity != nil {
		if v := raw.Capacity.MaxTables; v != nil && *v > 0 {
			s.Capacity.MaxTables = *v
		}
		if v := raw.Capacity.SeatsPerTable; v != nil && *v > 0 {
			s.Capacity.SeatsPerTable = *v
		}
		if v := raw.Capacity.DefaultReservationDuration; v != nil && *v > 0 {
			s.Capacity.DefaultReservationDuration = *v
		}
		s.Capacity.OperatingHours = raw.Capacity.OperatingHours
	}

	if raw.Assistant != nil {
		if v := raw.Assistant.Personality; v != nil && *v != "" {
			s.Assistant.Personality = *v
		}
		if v := raw.Assistant.CustomInstructions; v != nil {
			s.Assistant.CustomInstructions = *v
		}
		if v := raw.Assistant.MonthlyMessageLimit; v != nil && *v > 0 {
			s.Assistant.MonthlyMessageLimit = *v
		}
		s.Assistant.Capabilities = raw.Assistant.Capabilities
	}

	return s
}
