package availabilityRepo

import "brandconnect/models"

// AvailabilityRepository persists weekly schedules. Saves replace the
// whole stored document; there is no partial patch.
type AvailabilityRepository interface {
	// Get returns the stored profile, or ErrNotFound when the creative
	// has never saved one.
	Get(creativeID string) (*models.AvailabilityProfile, error)
	// Replace stores the profile wholesale, creating it if absent.
	Replace(profile *models.AvailabilityProfile) error
}
