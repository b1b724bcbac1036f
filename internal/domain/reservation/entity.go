package reservation

import (
	"errors"
	"strings"
	"time"

	"tablebook/internal/domain/schedule"

	"github.com/google/uuid"
)

const (
	MinPartySize = 1
	MaxPartySize = 50
)

var (
	ErrInvalidPartySize = errors.New("party size out of range")
	ErrEmptyCustomer    = errors.New("customer name and phone are required")
	ErrInvalidDate      = errors.New("invalid reservation date")
	ErrInvalidTime      = errors.New("invalid reservation time")
	ErrInvalidDuration  = errors.New("invalid reservation duration")
	ErrInvalidStatus    = errors.New("invalid reservation status")
	ErrInvalidSource    = errors.New("invalid reservation source")
)

// Reservation is one booked table. Date is a restaurant-local calendar day
// ("YYYY-MM-DD") and Time a restaurant-local clock time ("HH:mm"); the two
// are never combined into a single instant because capacity math runs on
// clock minutes within one day.
type Reservation struct {
	id              uuid.UUID
	restaurantID    uuid.UUID
	customerName    string
	customerPhone   string
	customerEmail   *string
	partySize       int
	date            string
	time            string
	durationMin     int
	status          Status
	source          Source
	specialRequests *string
	createdAt       time.Time
	updatedAt       time.Time
}

type NewReservationInput struct {
	RestaurantID    uuid.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   *string
	PartySize       int
	Date            string
	Time            string
	DurationMin     int
	Source          Source
	SpecialRequests *string
}

func NewReservation(in NewReservationInput, now time.Time) (*Reservation, error) {
	name := strings.TrimSpace(in.CustomerName)
	phone := strings.TrimSpace(in.CustomerPhone)
	if name == "" || phone == "" {
		return nil, ErrEmptyCustomer
	}
	if in.PartySize < MinPartySize || in.PartySize > MaxPartySize {
		return nil, ErrInvalidPartySize
	}
	if _, err := schedule.ParseDate(in.Date, time.UTC); err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := schedule.MinutesOfDay(in.Time); err != nil {
		return nil, ErrInvalidTime
	}
	if in.DurationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	source := in.Source
	if source == "" {
		source = SourceWebsite
	}
	if !source.IsValid() {
		return nil, ErrInvalidSource
	}

	return &Reservation{
		id:              uuid.New(),
		restaurantID:    in.RestaurantID,
		customerName:    name,
		customerPhone:   phone,
		customerEmail:   in.CustomerEmail,
		partySize:       in.PartySize,
		date:            in.Date,
		time:            in.Time,
		durationMin:     in.DurationMin,
		status:          StatusConfirmed,
		source:          source,
		specialRequests: in.SpecialRequests,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructReservation(
	id, restaurantID uuid.UUID,
	customerName, customerPhone string,
	customerEmail *string,
	partySize int,
	date, timeStr string,
	durationMin int,
	status Status,
	source Source,
	specialRequests *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		restaurantID:    restaurantID,
		customerName:    customerName,
		customerPhone:   customerPhone,
		customerEmail:   customerEmail,
		partySize:       partySize,
		date:            date,
		time:            timeStr,
		durationMin:     durationMin,
		status:          status,
		source:          source,
		specialRequests: specialRequests,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID            { return r.id }
func (r *Reservation) RestaurantID() uuid.UUID  { return r.restaurantID }
func (r *Reservation) CustomerName() string     { return r.customerName }
func (r *Reservation) CustomerPhone() string    { return r.customerPhone }
func (r *Reservation) CustomerEmail() *string   { return r.customerEmail }
func (r *Reservation) PartySize() int           { return r.partySize }
func (r *Reservation) Date() string             { return r.date }
func (r *Reservation) Time() string             { return r.time }
func (r *Reservation) DurationMin() int         { return r.durationMin }
func (r *Reservation) Status() Status           { return r.status }
func (r *Reservation) Source() Source           { return r.source }
func (r *Reservation) SpecialRequests() *string { return r.specialRequests }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time     { return r.updatedAt }
