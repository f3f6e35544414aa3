package sellbook

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{" 2024-06-01 ", NewDate(2024, time.June, 1), false},
		{"2024-06-01 13:37:00", NewDate(2024, time.June, 1), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseUSDate(t *testing.T) {
	got, err := parseUSDate("01/22/2012")
	if err != nil {
		t.Fatalf("parseUSDate() error = %v", err)
	}
	if want := NewDate(2012, time.January, 22); got != want {
		t.Errorf("parseUSDate() = %v, want %v", got, want)
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		date       Date
		start, end Date
	}{
		{NewDate(2024, time.March, 15), NewDate(2024, time.March, 1), NewDate(2024, time.March, 31)},
		{NewDate(2024, time.February, 1), NewDate(2024, time.February, 1), NewDate(2024, time.February, 29)}, // leap year
		{NewDate(2023, time.February, 28), NewDate(2023, time.February, 1), NewDate(2023, time.February, 28)},
		{NewDate(2024, time.December, 31), NewDate(2024, time.December, 1), NewDate(2024, time.December, 31)},
	}
	for _, tt := range tests {
		if got := tt.date.StartOfMonth(); got != tt.start {
			t.Errorf("%v.StartOfMonth() = %v, want %v", tt.date, got, tt.start)
		}
		if got := tt.date.EndOfMonth(); got != tt.end {
			t.Errorf("%v.EndOfMonth() = %v, want %v", tt.date, got, tt.end)
		}
	}
}

func TestRangeContains(t *testing.T) {
	window := NewRange(NewDate(2024, time.March, 1), NewDate(2024, time.March, 31))

	tests := []struct {
		date Date
		want bool
	}{
		{NewDate(2024, time.March, 1), true},      // start boundary included
		{NewDate(2024, time.March, 31), true},     // end boundary included
		{NewDate(2024, time.February, 29), false}, // one day before
		{NewDate(2024, time.April, 1), false},     // one day after
		{NewDate(2024, time.March, 15), true},
	}
	for _, tt := range tests {
		if got := window.Contains(tt.date); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestDateJSON(t *testing.T) {
	on := NewDate(2024, time.June, 1)
	data, err := json.Marshal(on)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got, want := string(data), `"2024-06-01"`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != on {
		t.Errorf("round trip = %v, want %v", back, on)
	}

	if err := json.Unmarshal([]byte(`"garbage"`), &back); err == nil {
		t.Error("Unmarshal of a garbage date returned nil error")
	}
}

func TestRangeIdentifier(t *testing.T) {
	month := MonthOf(NewDate(2024, time.March, 15))
	if got, want := month.Identifier(), "2024-03"; got != want {
		t.Errorf("Identifier() = %q, want %q", got, want)
	}

	custom := NewRange(NewDate(2024, time.March, 2), NewDate(2024, time.April, 5))
	if got, want := custom.Identifier(), "2024-03-02_2024-04-05"; got != want {
		t.Errorf("Identifier() = %q, want %q", got, want)
	}
}
