package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentFilter is a domain-level filter for querying appointments.
// All fields are optional and combined with AND by the repository layer.
// Nil/empty fields are no-ops. The filter is already fully resolved: period
// keywords and lenient parsing happen before this struct is built.
type AppointmentFilter struct {
	ProfessionalID   *uuid.UUID
	ProfessionalName string // substring match on professional name (ILIKE)

	Date    *time.Time // exact calendar-date match on scheduled_at
	DateMin *time.Time // inclusive calendar-date lower bound
	DateMax *time.Time // inclusive calendar-date upper bound

	// Period keyword bounds live apart from the explicit date params so both
	// families combine with AND instead of one overwriting the other.
	PeriodDate    *time.Time // exact calendar-date match from today/tomorrow
	PeriodDateMin *time.Time // inclusive lower bound from week/month
	PeriodDateMax *time.Time // inclusive upper bound from week/month

	From *time.Time // inclusive timestamp lower bound
	To   *time.Time // inclusive timestamp upper bound

	After  *time.Time // strict timestamp lower bound (future/past keywords)
	Before *time.Time // strict timestamp upper bound

	TimeMin string // inclusive time-of-day lower bound, HH:MM:SS
	TimeMax string // inclusive time-of-day upper bound, HH:MM:SS

	Search string // substring match on professional name OR occupation

	OrderBy string // validated ORDER BY clause, empty means default
}

// AppointmentSummary holds the counts returned by the summary endpoint.
type AppointmentSummary struct {
	Total  int64
	Future int64
	Past   int64
}

// ProfessionalFilter is a domain-level filter for querying professionals.
type ProfessionalFilter struct {
	Name       string // substring match (ILIKE)
	Occupation string // substring match (ILIKE)
	Address    string // substring match (ILIKE)
	Search     string // substring match on name OR occupation
}
