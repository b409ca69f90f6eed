package booking

import (
	"fmt"
	"time"

	"brandconnect/models"
	"brandconnect/utils"
)

// ValidateBookingTime checks a requested window against the creative's
// weekly schedule and their existing active bookings on that date.
// The buffer applies on both sides of every existing booking.
func ValidateBookingTime(profile *models.AvailabilityProfile, existing []models.Booking, date, start, end string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return utils.Invalid("date", fmt.Sprintf("%q is not a valid date", date))
	}

	entry := profile.Day(int(day.Weekday()))
	if entry == nil || !entry.IsAvailable {
		return utils.Invalid("date", "the creative is not available on this day")
	}

	startMin, err := models.ParseClock(start)
	if err != nil {
		return utils.Invalid("startTime", err.Error())
	}
	endMin, err := models.ParseClock(end)
	if err != nil {
		return utils.Invalid("endTime", err.Error())
	}
	if endMin <= startMin {
		return utils.Invalid("endTime", "end time must be after start time")
	}

	dayStart, err := models.ParseClock(entry.StartTime)
	if err != nil {
		return fmt.Errorf("stored schedule has invalid start time: %w", err)
	}
	dayEnd, err := models.ParseClock(entry.EndTime)
	if err != nil {
		return fmt.Errorf("stored schedule has invalid end time: %w", err)
	}
	if startMin < dayStart || endMin > dayEnd {
		return utils.Invalid("startTime", fmt.Sprintf(
			"requested window must fall within %s-%s", entry.StartTime, entry.EndTime))
	}

	for _, b := range existing {
		bStart, err := models.ParseClock(b.StartTime)
		if err != nil {
			continue
		}
		bEnd, err := models.ParseClock(b.EndTime)
		if err != nil {
			continue
		}
		if startMin < bEnd+profile.BufferTime && endMin > bStart-profile.BufferTime {
			return utils.Invalid("startTime", fmt.Sprintf(
				"the window collides with an existing booking (%s-%s, %d min buffer)",
				b.StartTime, b.EndTime, profile.BufferTime))
		}
	}
	return nil
}
