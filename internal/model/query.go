package model

import (
	"strings"
	"time"
)

// Query is the caller-facing request for a series or fan-out.
// Dates are YYYY-MM-DD; empty dates default to today.
type Query struct {
	Start  string
	End    string
	Entity string
	Period string
	Volume string
	Extra  map[string]string
}

// istanbul is the market's local time zone; "today" is evaluated there.
var istanbul = time.FixedZone("TRT", 3*60*60)

// Today returns the current market date.
func Today(now time.Time) string {
	return now.In(istanbul).Format(DateLayout)
}

// ShiftDays moves a YYYY-MM-DD date by n days. Malformed input is returned
// unchanged so validation can report it.
func ShiftDays(date string, n int) string {
	t, err := ParseDate(date)
	if err != nil || n == 0 {
		return date
	}
	return t.AddDate(0, 0, n).Format(DateLayout)
}

// WithDefaults fills empty dates with today.
func (q Query) WithDefaults(today string) Query {
	if q.Start == "" {
		q.Start = today
	}
	if q.End == "" {
		q.End = today
	}
	return q
}

// Period is the aggregation period accepted by period-aware endpoints.
type Period string

const (
	PeriodHourly  Period = "hourly"
	PeriodDaily   Period = "daily"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

var periodAliases = map[string]Period{
	"hourly":  PeriodHourly,
	"saatlik": PeriodHourly,
	"daily":   PeriodDaily,
	"gunluk":  PeriodDaily,
	"günlük":  PeriodDaily,
	"monthly": PeriodMonthly,
	"aylik":   PeriodMonthly,
	"aylık":   PeriodMonthly,
	"yearly":  PeriodYearly,
	"yillik":  PeriodYearly,
	"yıllık":  PeriodYearly,
}

// ParsePeriod matches English and Turkish period names case-insensitively.
func ParsePeriod(s string) (Period, bool) {
	p, ok := periodAliases[strings.ToLower(strings.TrimSpace(s))]
	return p, ok
}

// APIValue is the wire value for the period query parameter. Hourly has
// none; hourly figures are assembled from the hourly series instead.
func (p Period) APIValue() string {
	switch p {
	case PeriodDaily:
		return "DAILY"
	case PeriodMonthly:
		return "MONTHLY"
	case PeriodYearly:
		return "YEAR"
	default:
		return ""
	}
}

// VolumeType selects which side of a market an all-organizations volume covers.
type VolumeType string

const (
	VolumeNet    VolumeType = "NET"
	VolumeSupply VolumeType = "ARZ"
	VolumeDemand VolumeType = "TALEP"
)

// ParseVolumeType accepts NET/ARZ/TALEP and the English supply/demand aliases.
// An empty string means NET.
func ParseVolumeType(s string) (VolumeType, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NET":
		return VolumeNet, true
	case "ARZ", "SUPPLY":
		return VolumeSupply, true
	case "TALEP", "DEMAND":
		return VolumeDemand, true
	default:
		return "", false
	}
}
