package parser

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in      string
		wantOK  bool
		display string
		month   string
	}{
		{"05/01/2026", true, "05/01/2026", "2026-01"},
		{"15/02/2026", true, "15/02/2026", "2026-02"},
		{"5/1/2026", true, "05/01/2026", "2026-01"},
		{"2026-01-05", true, "05/01/2026", "2026-01"},
		{"31/12/2025", true, "31/12/2025", "2025-12"},
		{"abc", false, "", ""},
		{"", false, "", ""},
		{"-", false, "", ""},
		{"nan", false, "", ""},
		{"NaN", false, "", ""},
		{"32/01/2026", false, "", ""},
	}

	for _, c := range cases {
		got, ok := ParseDate(c.in, 2026)
		if ok != c.wantOK {
			t.Errorf("ParseDate(%q): ok = %v, want %v", c.in, ok, c.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if DisplayDate(got) != c.display {
			t.Errorf("ParseDate(%q): display = %q, want %q", c.in, DisplayDate(got), c.display)
		}
		if MonthKey(got) != c.month {
			t.Errorf("ParseDate(%q): month = %q, want %q", c.in, MonthKey(got), c.month)
		}
	}
}

func TestParseDateCompact(t *testing.T) {
	cases := []struct {
		in     string
		year   int
		wantOK bool
		want   time.Time
	}{
		{"7-jan", 2026, true, time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)},
		{"07-jan", 2026, true, time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)},
		{"15/mar", 2025, true, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"3-dez", 2026, true, time.Date(2026, 12, 3, 0, 0, 0, 0, time.UTC)},
		{"7-Jan", 2026, true, time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)},
		{"31-fev", 2026, false, time.Time{}},
		{"7-xyz", 2026, false, time.Time{}},
	}

	for _, c := range cases {
		got, ok := ParseDate(c.in, c.year)
		if ok != c.wantOK {
			t.Errorf("ParseDate(%q, %d): ok = %v, want %v", c.in, c.year, ok, c.wantOK)
			continue
		}
		if ok && !got.Equal(c.want) {
			t.Errorf("ParseDate(%q, %d) = %v, want %v", c.in, c.year, got, c.want)
		}
	}
}

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in     string
		wantOK bool
		want   string
	}{
		{"1.234.567,89", true, "1234567.89"},
		{"1234567.89", true, "1234567.89"},
		{"R$ 1.234.567,89", true, "1234567.89"},
		{"r$ 12,50", true, "12.5"},
		{"1234,5", true, "1234.5"},
		{"1500", true, "1500"},
		{"-2327,00", true, "-2327"},
		{"5182575.239999999", true, "5182575.24"},
		{"0,005", true, "0.01"},
		{"", false, ""},
		{"-", false, ""},
		{"nan", false, ""},
		{"abc", false, ""},
	}

	for _, c := range cases {
		got, ok := ParseMoney(c.in)
		if ok != c.wantOK {
			t.Errorf("ParseMoney(%q): ok = %v, want %v", c.in, ok, c.wantOK)
			continue
		}
		if ok && got.String() != c.want {
			t.Errorf("ParseMoney(%q) = %s, want %s", c.in, got.String(), c.want)
		}
	}
}

func TestParseMoneyExactCents(t *testing.T) {
	// Drifted float text must round to exact cents, not re-drift.
	got, ok := ParseMoney("5182575.239999999")
	if !ok {
		t.Fatal("ParseMoney failed on drifted input")
	}
	if got.StringFixed(2) != "5182575.24" {
		t.Errorf("got %s, want 5182575.24", got.StringFixed(2))
	}
}

func TestParseRatio(t *testing.T) {
	cases := []struct {
		in      string
		wantOK  bool
		display string
	}{
		{"0.3333", true, "33,33%"},
		{"33.33", true, "33,33%"},
		{"33,33", true, "33,33%"},
		{"33,33%", true, "33,33%"},
		{"0", true, "0,00%"},
		{"100", true, "100,00%"},
		{"100,00", true, "100,00%"},
		{"1", true, "100,00%"},
		{"1.0000001", true, "1,00%"},
		{"65.3", true, "65,30%"},
		{"", false, ""},
		{"-", false, ""},
		{"abc", false, ""},
	}

	for _, c := range cases {
		got, ok := ParseRatio(c.in)
		if ok != c.wantOK {
			t.Errorf("ParseRatio(%q): ok = %v, want %v", c.in, ok, c.wantOK)
			continue
		}
		if ok && FormatRatio(got) != c.display {
			t.Errorf("ParseRatio(%q) displays %q, want %q", c.in, FormatRatio(got), c.display)
		}
	}
}
