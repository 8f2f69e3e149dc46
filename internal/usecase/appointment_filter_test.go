package usecase

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
)

// fixedNow is a Wednesday: 2024-01-17 10:30 UTC.
var fixedNow = time.Date(2024, time.January, 17, 10, 30, 0, 0, time.UTC)

func TestResolveAppointmentFilterPeriods(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		period      string
		wantDate    *time.Time
		wantDateMin *time.Time
		wantDateMax *time.Time
	}{
		{period: "today", wantDate: timePtr(day(17))},
		{period: "tomorrow", wantDate: timePtr(day(18))},
		{period: "week", wantDateMin: timePtr(day(15)), wantDateMax: timePtr(day(21))},
		{period: "month", wantDateMin: timePtr(day(1)), wantDateMax: timePtr(day(31))},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			query := url.Values{"period": {tt.period}}
			filter := ResolveAppointmentFilter(query, fixedNow)

			assertDateEqual(t, "PeriodDate", filter.PeriodDate, tt.wantDate)
			assertDateEqual(t, "PeriodDateMin", filter.PeriodDateMin, tt.wantDateMin)
			assertDateEqual(t, "PeriodDateMax", filter.PeriodDateMax, tt.wantDateMax)
		})
	}
}

// A period keyword narrows the result set alongside the explicit date params;
// it must never replace them.
func TestResolveAppointmentFilterPeriodCombinesWithExplicitDates(t *testing.T) {
	query := url.Values{
		"date":   {"2024-01-15"},
		"period": {"today"},
	}
	filter := ResolveAppointmentFilter(query, fixedNow)

	if filter.Date == nil || filter.Date.Format("2006-01-02") != "2024-01-15" {
		t.Errorf("explicit date lost when combined with period=today: Date = %v", filter.Date)
	}
	if filter.PeriodDate == nil || filter.PeriodDate.Day() != 17 {
		t.Errorf("period=today bound missing: PeriodDate = %v", filter.PeriodDate)
	}

	query = url.Values{
		"date_min": {"2024-02-01"},
		"date_max": {"2024-02-29"},
		"period":   {"week"},
	}
	filter = ResolveAppointmentFilter(query, fixedNow)

	if filter.DateMin == nil || filter.DateMin.Format("2006-01-02") != "2024-02-01" {
		t.Errorf("explicit date_min lost when combined with period=week: DateMin = %v", filter.DateMin)
	}
	if filter.DateMax == nil || filter.DateMax.Format("2006-01-02") != "2024-02-29" {
		t.Errorf("explicit date_max lost when combined with period=week: DateMax = %v", filter.DateMax)
	}
	if filter.PeriodDateMin == nil || filter.PeriodDateMin.Day() != 15 {
		t.Errorf("week start missing: PeriodDateMin = %v", filter.PeriodDateMin)
	}
	if filter.PeriodDateMax == nil || filter.PeriodDateMax.Day() != 21 {
		t.Errorf("week end missing: PeriodDateMax = %v", filter.PeriodDateMax)
	}
}

func TestResolveAppointmentFilterFutureAndPast(t *testing.T) {
	filter := ResolveAppointmentFilter(url.Values{"period": {"future"}}, fixedNow)
	if filter.After == nil || !filter.After.Equal(fixedNow) {
		t.Errorf("period=future: After = %v, want %v", filter.After, fixedNow)
	}
	if filter.Before != nil {
		t.Errorf("period=future: Before = %v, want nil", filter.Before)
	}

	filter = ResolveAppointmentFilter(url.Values{"period": {"past"}}, fixedNow)
	if filter.Before == nil || !filter.Before.Equal(fixedNow) {
		t.Errorf("period=past: Before = %v, want %v", filter.Before, fixedNow)
	}

	filter = ResolveAppointmentFilter(url.Values{"status": {"future"}}, fixedNow)
	if filter.After == nil || !filter.After.Equal(fixedNow) {
		t.Errorf("status=future: After = %v, want %v", filter.After, fixedNow)
	}
}

func TestResolveAppointmentFilterUnknownPeriodIsNoOp(t *testing.T) {
	filter := ResolveAppointmentFilter(url.Values{"period": {"next-year"}}, fixedNow)

	if filter.Date != nil || filter.DateMin != nil || filter.DateMax != nil ||
		filter.PeriodDate != nil || filter.PeriodDateMin != nil || filter.PeriodDateMax != nil ||
		filter.After != nil || filter.Before != nil {
		t.Errorf("unknown period applied a filter: %+v", filter)
	}
}

func TestResolveAppointmentFilterLenientParsing(t *testing.T) {
	query := url.Values{
		"date":            {"15/01/2024"},
		"date_min":        {"not-a-date"},
		"time_min":        {"not-a-time"},
		"time_max":        {"25:99"},
		"professional_id": {"not-a-uuid"},
	}

	filter := ResolveAppointmentFilter(query, fixedNow)

	if filter.Date != nil {
		t.Errorf("malformed date was not dropped: %v", filter.Date)
	}
	if filter.DateMin != nil {
		t.Errorf("malformed date_min was not dropped: %v", filter.DateMin)
	}
	if filter.TimeMin != "" {
		t.Errorf("malformed time_min was not dropped: %q", filter.TimeMin)
	}
	if filter.TimeMax != "" {
		t.Errorf("malformed time_max was not dropped: %q", filter.TimeMax)
	}
	if filter.ProfessionalID != nil {
		t.Errorf("malformed professional_id was not dropped: %v", filter.ProfessionalID)
	}
}

func TestResolveAppointmentFilterMalformedEqualsOmitted(t *testing.T) {
	withBad := ResolveAppointmentFilter(url.Values{"time_min": {"not-a-time"}}, fixedNow)
	without := ResolveAppointmentFilter(url.Values{}, fixedNow)

	if *withBad != *without {
		t.Errorf("malformed time_min filter differs from omitted: %+v vs %+v", withBad, without)
	}
}

func TestResolveAppointmentFilterValidValues(t *testing.T) {
	professionalID := uuid.New()
	query := url.Values{
		"professional_id":   {professionalID.String()},
		"professional_name": {"Carla"},
		"date_min":          {"2024-01-10"},
		"date_max":          {"2024-01-16"},
		"time_min":          {"08:00"},
		"time_max":          {"17:30:15"},
		"search":            {"cardio"},
	}

	filter := ResolveAppointmentFilter(query, fixedNow)

	if filter.ProfessionalID == nil || *filter.ProfessionalID != professionalID {
		t.Errorf("ProfessionalID = %v, want %s", filter.ProfessionalID, professionalID)
	}
	if filter.ProfessionalName != "Carla" {
		t.Errorf("ProfessionalName = %q", filter.ProfessionalName)
	}
	if filter.DateMin == nil || filter.DateMin.Format("2006-01-02") != "2024-01-10" {
		t.Errorf("DateMin = %v", filter.DateMin)
	}
	if filter.DateMax == nil || filter.DateMax.Format("2006-01-02") != "2024-01-16" {
		t.Errorf("DateMax = %v", filter.DateMax)
	}
	if filter.TimeMin != "08:00:00" {
		t.Errorf("TimeMin = %q, want 08:00:00", filter.TimeMin)
	}
	if filter.TimeMax != "17:30:15" {
		t.Errorf("TimeMax = %q, want 17:30:15", filter.TimeMax)
	}
	if filter.Search != "cardio" {
		t.Errorf("Search = %q", filter.Search)
	}
}

func TestResolveOrdering(t *testing.T) {
	tests := []struct {
		ordering string
		want     string
	}{
		{"", ""},
		{"scheduled_at", "appointments.scheduled_at ASC"},
		{"-scheduled_at", "appointments.scheduled_at DESC"},
		{"professional_name", "professionals.name ASC"},
		{"-created_at", "appointments.created_at DESC"},
		{"password", ""},
		{"-drop table", ""},
	}

	for _, tt := range tests {
		if got := resolveOrdering(tt.ordering); got != tt.want {
			t.Errorf("resolveOrdering(%q) = %q, want %q", tt.ordering, got, tt.want)
		}
	}
}

func TestWeekStartsOnMondayAcrossWeekdays(t *testing.T) {
	// The Monday-Sunday window must be stable for every day of that week,
	// including Sunday, which Go counts as weekday zero.
	for d := 15; d <= 21; d++ {
		now := time.Date(2024, time.January, d, 12, 0, 0, 0, time.UTC)
		filter := ResolveAppointmentFilter(url.Values{"period": {"week"}}, now)

		if filter.PeriodDateMin == nil || filter.PeriodDateMin.Day() != 15 {
			t.Errorf("day %d: week start = %v, want Jan 15", d, filter.PeriodDateMin)
		}
		if filter.PeriodDateMax == nil || filter.PeriodDateMax.Day() != 21 {
			t.Errorf("day %d: week end = %v, want Jan 21", d, filter.PeriodDateMax)
		}
	}
}

func assertDateEqual(t *testing.T, name string, got, want *time.Time) {
	t.Helper()
	if (got == nil) != (want == nil) {
		t.Errorf("%s = %v, want %v", name, got, want)
		return
	}
	if got != nil && !got.Equal(*want) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
