package usecase

import (
	"net/url"
	"strings"
	"time"

	"consulta-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Ordering keys accepted on list endpoints, mapped to safe ORDER BY columns.
// Anything else falls back to the repository default (scheduled_at DESC).
var appointmentOrderColumns = map[string]string{
	"scheduled_at":      "appointments.scheduled_at",
	"professional_name": "professionals.name",
	"created_at":        "appointments.created_at",
}

// ResolveAppointmentFilter translates raw query parameters into a typed
// AppointmentFilter. Parsing is deliberately lenient: a malformed date, time
// or id value drops that single filter instead of failing the request, and
// unknown period/status/ordering values are no-ops. now anchors all
// calendar-relative keywords so the whole resolution is a pure function.
func ResolveAppointmentFilter(query url.Values, now time.Time) *entity.AppointmentFilter {
	filter := &entity.AppointmentFilter{}

	if v := query.Get("professional_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filter.ProfessionalID = &id
		}
	}
	filter.ProfessionalName = strings.TrimSpace(query.Get("professional_name"))
	filter.Search = strings.TrimSpace(query.Get("search"))

	filter.Date = parseDate(query.Get("date"))
	filter.DateMin = parseDate(query.Get("date_min"))
	filter.DateMax = parseDate(query.Get("date_max"))

	// date_from/date_to bound the raw timestamp at midnight of the given day.
	filter.From = parseDate(query.Get("date_from"))
	filter.To = parseDate(query.Get("date_to"))

	filter.TimeMin = parseClock(query.Get("time_min"))
	filter.TimeMax = parseClock(query.Get("time_max"))

	applyPeriod(filter, query.Get("period"), now)
	applyStatus(filter, query.Get("status"), now)

	filter.OrderBy = resolveOrdering(query.Get("ordering"))

	return filter
}

// applyPeriod expands a period keyword into concrete bounds. Unknown values
// leave the filter untouched. The bounds go into the dedicated Period fields
// so an explicit date/date_min/date_max in the same query still applies.
func applyPeriod(filter *entity.AppointmentFilter, period string, now time.Time) {
	today := startOfDay(now)

	switch period {
	case "today":
		filter.PeriodDate = &today
	case "tomorrow":
		tomorrow := today.AddDate(0, 0, 1)
		filter.PeriodDate = &tomorrow
	case "week":
		// Monday through Sunday of the week containing today.
		offset := (int(today.Weekday()) + 6) % 7
		monday := today.AddDate(0, 0, -offset)
		sunday := monday.AddDate(0, 0, 6)
		filter.PeriodDateMin = &monday
		filter.PeriodDateMax = &sunday
	case "month":
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		last := first.AddDate(0, 1, -1)
		filter.PeriodDateMin = &first
		filter.PeriodDateMax = &last
	case "future":
		filter.After = timePtr(now)
	case "past":
		filter.Before = timePtr(now)
	}
}

// applyStatus is the coarser future/past alias comparing the full timestamp
// against the current instant.
func applyStatus(filter *entity.AppointmentFilter, status string, now time.Time) {
	switch status {
	case "future":
		filter.After = timePtr(now)
	case "past":
		filter.Before = timePtr(now)
	}
}

func resolveOrdering(ordering string) string {
	if ordering == "" {
		return ""
	}

	direction := "ASC"
	key := ordering
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		key = ordering[1:]
	}

	column, ok := appointmentOrderColumns[key]
	if !ok {
		return ""
	}
	return column + " " + direction
}

// parseDate parses YYYY-MM-DD, returning nil on any malformed value.
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}

// parseClock parses HH:MM or HH:MM:SS into a normalized HH:MM:SS string,
// returning "" on any malformed value.
func parseClock(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("15:04:05")
		}
	}
	return ""
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func timePtr(t time.Time) *time.Time {
	return &t
}
