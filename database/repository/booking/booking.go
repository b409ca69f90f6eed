package bookingRepo

import "brandconnect/models"

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	GetByID(id string) (*models.Booking, error)
	Create(booking *models.Booking) error
	Update(booking *models.Booking) error
	ListByClient(clientID string) ([]models.Booking, error)
	ListByCreative(creativeID string) ([]models.Booking, error)
	// ListActiveForDate returns a creative's pending and confirmed
	// bookings on a date, used for overlap checks.
	ListActiveForDate(creativeID, date string) ([]models.Booking, error)
}
