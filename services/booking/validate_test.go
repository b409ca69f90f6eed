package booking

import (
	"errors"
	"testing"

	"brandconnect/models"
	"brandconnect/utils"
)

func weekdayProfile(buffer int) *models.AvailabilityProfile {
	p := &models.AvailabilityProfile{CreativeID: "c1", BufferTime: buffer}
	// Monday through Friday, 09:00-17:00.
	for dow := 1; dow <= 5; dow++ {
		p.SetDay(models.WeeklyAvailability{
			DayOfWeek:   dow,
			StartTime:   "09:00",
			EndTime:     "17:00",
			IsAvailable: true,
		})
	}
	return p
}

func TestValidateBookingTime(t *testing.T) {
	// 2026-03-09 is a Monday, 2026-03-08 a Sunday.
	taken := []models.Booking{
		{StartTime: "12:00", EndTime: "13:00", Status: models.BookingStatusConfirmed},
	}

	cases := []struct {
		name    string
		profile *models.AvailabilityProfile
		existng []models.Booking
		date    string
		start   string
		end     string
		wantOK  bool
	}{
		{"fits an open weekday", weekdayProfile(0), nil, "2026-03-09", "10:00", "11:00", true},
		{"whole working day", weekdayProfile(0), nil, "2026-03-09", "09:00", "17:00", true},
		{"unavailable day", weekdayProfile(0), nil, "2026-03-08", "10:00", "11:00", false},
		{"starts before opening", weekdayProfile(0), nil, "2026-03-09", "08:30", "10:00", false},
		{"ends after closing", weekdayProfile(0), nil, "2026-03-09", "16:00", "17:30", false},
		{"inverted window", weekdayProfile(0), nil, "2026-03-09", "14:00", "13:00", false},
		{"zero-length window", weekdayProfile(0), nil, "2026-03-09", "14:00", "14:00", false},
		{"malformed date", weekdayProfile(0), nil, "next tuesday", "10:00", "11:00", false},
		{"malformed time", weekdayProfile(0), nil, "2026-03-09", "ten", "11:00", false},

		{"overlaps an existing booking", weekdayProfile(0), taken, "2026-03-09", "12:30", "13:30", false},
		{"back to back, no buffer", weekdayProfile(0), taken, "2026-03-09", "13:00", "14:00", true},
		{"back to back blocked by buffer", weekdayProfile(30), taken, "2026-03-09", "13:00", "14:00", false},
		{"clears the buffer after", weekdayProfile(30), taken, "2026-03-09", "13:30", "14:30", true},
		{"clears the buffer before", weekdayProfile(30), taken, "2026-03-09", "10:30", "11:30", true},
		{"buffer before blocks", weekdayProfile(30), taken, "2026-03-09", "10:45", "11:45", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateBookingTime(tc.profile, tc.existng, tc.date, tc.start, tc.end)
			if tc.wantOK {
				if err != nil {
					t.Fatalf("expected the window to be accepted, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected the window to be rejected")
			}
			var ve *utils.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected a validation error, got %v", err)
			}
		})
	}
}
