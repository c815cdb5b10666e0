package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/grupobu/tabelao/pkg/textutil"
)

// Day-first layouts tried in order. The spreadsheet is Brazilian, so
// ambiguous numeric dates are always read day first.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/06",
	"02-01-06",
	time.RFC3339,
}

var ptMonths = map[string]time.Month{
	"jan": time.January, "fev": time.February, "mar": time.March,
	"abr": time.April, "mai": time.May, "jun": time.June,
	"jul": time.July, "ago": time.August, "set": time.September,
	"out": time.October, "nov": time.November, "dez": time.December,
	// English abbreviations show up when the sheet was edited abroad
	"feb": time.February, "apr": time.April, "may": time.May,
	"aug": time.August, "sep": time.September, "oct": time.October,
	"dec": time.December,
}

// Matches the compact cotação style "7-jan" / "07/mar" that carries no year.
var compactDateRe = regexp.MustCompile(`^(\d{1,2})[-/]([a-z]{3})\.?$`)

// IsAbsent reports whether a raw cell is one of the blank sentinels the
// source spreadsheet uses for "no value".
func IsAbsent(raw string) bool {
	s := strings.TrimSpace(raw)
	return s == "" || s == "-" || strings.EqualFold(s, "nan")
}

// ParseDate reads a day-first date from a raw cell. Compact values like
// "7-jan" carry no year and are completed with defaultYear, which must
// come from configuration (the source sheets leave the year implicit in
// the cotação column). Unparseable input returns ok=false, never an
// error: bad dates are a data-quality matter for the caller.
func ParseDate(raw string, defaultYear int) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if IsAbsent(s) {
		return time.Time{}, false
	}

	if m := compactDateRe.FindStringSubmatch(textutil.Normalize(s)); m != nil {
		month, known := ptMonths[m[2]]
		if !known {
			return time.Time{}, false
		}
		day, err := strconv.Atoi(m[1])
		if err != nil || day < 1 || day > 31 {
			return time.Time{}, false
		}
		t := time.Date(defaultYear, month, day, 0, 0, 0, 0, time.UTC)
		if t.Day() != day {
			// day overflowed the month, e.g. "31-fev"
			return time.Time{}, false
		}
		return t, true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DisplayDate renders a parsed date in the dd/mm/yyyy form the
// dashboard shows.
func DisplayDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// MonthKey derives the YYYY-MM partition key. It must always be fed the
// same parsed value as DisplayDate so display and partition never drift.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}
