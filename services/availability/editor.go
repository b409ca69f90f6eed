package availability

import (
	"fmt"

	"brandconnect/models"
	"brandconnect/utils"
)

// Editor accumulates schedule edits in memory and submits them as one
// wholesale save. Edits survive a failed save so nothing has to be
// re-entered before a retry.
type Editor struct {
	svc     AvailabilityService
	profile *models.AvailabilityProfile
}

// NewEditor creates an editor bound to the given service.
func NewEditor(svc AvailabilityService) *Editor {
	return &Editor{svc: svc}
}

// Load pulls the creative's schedule into the editor, falling back to
// the default schedule when none has been saved yet.
func (e *Editor) Load(creativeID string) error {
	profile, err := e.svc.GetSchedule(creativeID)
	if err != nil {
		return err
	}
	e.profile = profile
	return nil
}

// Profile exposes the current edit state.
func (e *Editor) Profile() *models.AvailabilityProfile {
	return e.profile
}

func (e *Editor) day(dow int) (*models.WeeklyAvailability, error) {
	if e.profile == nil {
		return nil, fmt.Errorf("editor: no schedule loaded")
	}
	if dow < 0 || dow > 6 {
		return nil, utils.Invalid("dayOfWeek", fmt.Sprintf("%d is out of range 0-6", dow))
	}
	if day := e.profile.Day(dow); day != nil {
		return day, nil
	}
	// Days absent from an older saved document are materialized off.
	e.profile.SetDay(models.WeeklyAvailability{DayOfWeek: dow, StartTime: "09:00", EndTime: "17:00"})
	return e.profile.Day(dow), nil
}

// ToggleDay flips a day's availability. The stored times are kept, so
// toggling a day off and back on restores them untouched.
func (e *Editor) ToggleDay(dow int) error {
	day, err := e.day(dow)
	if err != nil {
		return err
	}
	day.IsAvailable = !day.IsAvailable
	return nil
}

// SetTimes updates a day's window. An end at or before the start is
// rejected and the day keeps its previous times.
func (e *Editor) SetTimes(dow int, start, end string) error {
	day, err := e.day(dow)
	if err != nil {
		return err
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
	day.StartTime = start
	day.EndTime = end
	return nil
}

// SetBufferTime updates the gap enforced between consecutive bookings.
func (e *Editor) SetBufferTime(minutes int) error {
	if e.profile == nil {
		return fmt.Errorf("editor: no schedule loaded")
	}
	if minutes < 0 {
		return utils.Invalid("bufferTime", "must not be negative")
	}
	e.profile.BufferTime = minutes
	return nil
}

// Save validates every available day and replaces the stored schedule.
// On failure the in-memory edits are left as they are.
func (e *Editor) Save() error {
	if e.profile == nil {
		return fmt.Errorf("editor: no schedule loaded")
	}
	return e.svc.SaveSchedule(e.profile)
}
