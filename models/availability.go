package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WeeklyAvailability describes one weekday of a creative's recurring
// schedule. Times are clock values ("HH:MM", 24-hour). When IsAvailable
// is false the day is not bookable regardless of the stored times.
type WeeklyAvailability struct {
	DayOfWeek   int    `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	StartTime   string `bson:"startTime" json:"startTime"`
	EndTime     string `bson:"endTime" json:"endTime"`
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
}

// AvailabilityProfile is a creative's full weekly schedule plus the
// buffer enforced between consecutive bookings. It is persisted
// wholesale: a save replaces the stored document, never patches it.
type AvailabilityProfile struct {
	CreativeID string               `bson:"creativeId" json:"creativeId"`
	Days       []WeeklyAvailability `bson:"days" json:"days"` // at most one entry per weekday
	BufferTime int                  `bson:"bufferTime" json:"bufferTime"` // minutes
	UpdatedAt  time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// Day returns the entry for the given weekday, or nil if none is set.
func (p *AvailabilityProfile) Day(dow int) *WeeklyAvailability {
	for i := range p.Days {
		if p.Days[i].DayOfWeek == dow {
			return &p.Days[i]
		}
	}
	return nil
}

// SetDay inserts or replaces the entry for its weekday.
func (p *AvailabilityProfile) SetDay(day WeeklyAvailability) {
	for i := range p.Days {
		if p.Days[i].DayOfWeek == day.DayOfWeek {
			p.Days[i] = day
			return
		}
	}
	p.Days = append(p.Days, day)
}

// ParseClock converts an "HH:MM" clock value to minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in clock value %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in clock value %q", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes from midnight as an "HH:MM" clock value.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
