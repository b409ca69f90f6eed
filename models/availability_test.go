package models

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"17:30", 1050, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"9am", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(540); got != "09:00" {
		t.Errorf("FormatClock(540) = %q, want 09:00", got)
	}
	if got := FormatClock(1050); got != "17:30" {
		t.Errorf("FormatClock(1050) = %q, want 17:30", got)
	}
}

func TestProfileSetDayReplaces(t *testing.T) {
	p := &AvailabilityProfile{CreativeID: "c1"}
	p.SetDay(WeeklyAvailability{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"})
	p.SetDay(WeeklyAvailability{DayOfWeek: 1, StartTime: "10:00", EndTime: "18:00", IsAvailable: true})

	if len(p.Days) != 1 {
		t.Fatalf("expected one entry for Monday, got %d", len(p.Days))
	}
	day := p.Day(1)
	if day == nil || day.StartTime != "10:00" || !day.IsAvailable {
		t.Fatalf("SetDay did not replace the Monday entry: %+v", day)
	}
	if p.Day(2) != nil {
		t.Fatal("Day(2) should be nil for an unset weekday")
	}
}
