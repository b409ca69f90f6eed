package availability

import (
	"errors"
	"fmt"
	"time"

	availabilityRepo "brandconnect/database/repository/availability"
	creativeRepo "brandconnect/database/repository/creative"
	"brandconnect/models"
	"brandconnect/utils"
)

// AvailabilityService manages weekly recurring schedules for creatives.
type AvailabilityService interface {
	// GetSchedule returns the creative's saved schedule, or a default
	// one (all days off, standard hours, zero buffer) when nothing has
	// been saved yet. An unknown creative is ErrNotFound.
	GetSchedule(creativeID string) (*models.AvailabilityProfile, error)
	// SaveSchedule validates the profile and replaces the stored one
	// wholesale. A failed save leaves the stored schedule untouched.
	SaveSchedule(profile *models.AvailabilityProfile) error
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Repo      availabilityRepo.AvailabilityRepository
	Creatives creativeRepo.CreativeRepository
	Locker    SaveLocker

	// Defaults for a creative with no saved schedule. Zero values fall
	// back to 09:00-17:00 with no buffer.
	DefaultStart  string
	DefaultEnd    string
	DefaultBuffer int
}

func (s *DefaultAvailabilityService) defaults() (string, string) {
	start, end := s.DefaultStart, s.DefaultEnd
	if start == "" {
		start = "09:00"
	}
	if end == "" {
		end = "17:00"
	}
	return start, end
}

// DefaultSchedule builds the schedule handed out before a creative has
// saved anything: every weekday present but unavailable, with the
// standard hours pre-filled so enabling a day needs no typing.
func (s *DefaultAvailabilityService) DefaultSchedule(creativeID string) *models.AvailabilityProfile {
	start, end := s.defaults()
	profile := &models.AvailabilityProfile{
		CreativeID: creativeID,
		BufferTime: s.DefaultBuffer,
	}
	for dow := 0; dow < 7; dow++ {
		profile.Days = append(profile.Days, models.WeeklyAvailability{
			DayOfWeek:   dow,
			StartTime:   start,
			EndTime:     end,
			IsAvailable: false,
		})
	}
	return profile
}

func (s *DefaultAvailabilityService) GetSchedule(creativeID string) (*models.AvailabilityProfile, error) {
	if creativeID == "" {
		return nil, utils.Invalid("creativeId", "must not be empty")
	}
	if _, err := s.Creatives.GetByID(creativeID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, fmt.Errorf("creative %s: %w", creativeID, utils.ErrNotFound)
		}
		return nil, utils.Transport("availability.GetSchedule", err)
	}

	profile, err := s.Repo.Get(creativeID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			// No schedule yet is not an error.
			return s.DefaultSchedule(creativeID), nil
		}
		return nil, utils.Transport("availability.GetSchedule", err)
	}
	return profile, nil
}

func (s *DefaultAvailabilityService) SaveSchedule(profile *models.AvailabilityProfile) error {
	if err := ValidateProfile(profile); err != nil {
		return err
	}

	if s.Locker != nil {
		ok, err := s.Locker.Acquire(profile.CreativeID)
		if err != nil {
			return utils.Transport("availability.SaveSchedule", err)
		}
		if !ok {
			return utils.ErrSaveInFlight
		}
		defer s.Locker.Release(profile.CreativeID)
	}

	profile.UpdatedAt = time.Now()
	if err := s.Repo.Replace(profile); err != nil {
		return utils.Transport("availability.SaveSchedule", err)
	}
	return nil
}

// ValidateProfile checks the whole schedule: a sane buffer, weekdays in
// range with no duplicates, and end after start on every available day.
// Days toggled off keep whatever times they hold; those are not checked.
func ValidateProfile(p *models.AvailabilityProfile) error {
	if p == nil || p.CreativeID == "" {
		return utils.Invalid("creativeId", "must not be empty")
	}
	if p.BufferTime < 0 {
		return utils.Invalid("bufferTime", "must not be negative")
	}
	seen := make(map[int]bool, len(p.Days))
	for _, day := range p.Days {
		if day.DayOfWeek < 0 || day.DayOfWeek > 6 {
			return utils.Invalid("dayOfWeek", fmt.Sprintf("%d is out of range 0-6", day.DayOfWeek))
		}
		if seen[day.DayOfWeek] {
			return utils.Invalid("dayOfWeek", fmt.Sprintf("day %d appears more than once", day.DayOfWeek))
		}
		seen[day.DayOfWeek] = true
		if !day.IsAvailable {
			continue
		}
		start, err := models.ParseClock(day.StartTime)
		if err != nil {
			return utils.Invalid("startTime", err.Error())
		}
		end, err := models.ParseClock(day.EndTime)
		if err != nil {
			return utils.Invalid("endTime", err.Error())
		}
		if end <= start {
			return utils.Invalid("endTime", fmt.Sprintf("day %d: end time must be after start time", day.DayOfWeek))
		}
	}
	return nil
}
