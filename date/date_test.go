package date

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2031-07-01", want: New(2031, time.July, 1)},
		{in: "2031-7-1", want: New(2031, time.July, 1)},
		{in: "not-a-date", wantErr: true},
		{in: "2031/07/01", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equal(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2040, time.March, 15)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `"2040-03-15"` {
		t.Errorf("Marshal() = %s, want %q", b, `"2040-03-15"`)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestYearsBetween(t *testing.T) {
	from := New(2026, time.January, 1)
	tests := []struct {
		to   Date
		want float64
	}{
		{to: New(2031, time.January, 1), want: 5.0},
		{to: New(2027, time.January, 1), want: 1.0},
		{to: New(2026, time.January, 1), want: 0},
		{to: New(2020, time.January, 1), want: 0}, // past dates floor at 0
	}
	for _, tt := range tests {
		got := YearsBetween(from, tt.to)
		if math.Abs(got-tt.want) > 0.01 {
			t.Errorf("YearsBetween(%v, %v) = %v, want %v", from, tt.to, got, tt.want)
		}
	}
}

func TestMonthsBetween(t *testing.T) {
	from := New(2026, time.January, 15)
	tests := []struct {
		to   Date
		want int
	}{
		{to: New(2026, time.February, 15), want: 1},
		{to: New(2026, time.February, 14), want: 0},
		{to: New(2027, time.January, 15), want: 12},
		{to: New(2028, time.July, 20), want: 30},
		{to: New(2025, time.January, 15), want: 0}, // past dates floor at 0
	}
	for _, tt := range tests {
		if got := MonthsBetween(from, tt.to); got != tt.want {
			t.Errorf("MonthsBetween(%v, %v) = %d, want %d", from, tt.to, got, tt.want)
		}
	}
}

func TestAdd(t *testing.T) {
	d := New(2026, time.January, 31)
	if got := d.Add(1); !got.Equal(New(2026, time.February, 1)) {
		t.Errorf("Add(1) = %v", got)
	}
	if got := d.AddYears(5); !got.Equal(New(2031, time.January, 31)) {
		t.Errorf("AddYears(5) = %v", got)
	}
	if got := d.AddMonths(13); !got.Equal(New(2027, time.March, 3)) {
		// time.Date normalizes Feb 31 to Mar 3.
		t.Errorf("AddMonths(13) = %v", got)
	}
}
