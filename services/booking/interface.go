package booking

import "brandconnect/models"

// BookingService manages the booking lifecycle between clients and
// creatives.
type BookingService interface {
	// Request creates a pending booking after validating the window
	// against the creative's schedule and existing bookings.
	Request(clientID string, req models.BookingRequest) (*models.Booking, error)
	// Respond lets the booked creative confirm or decline.
	Respond(creativeID, bookingID string, accept bool) (*models.Booking, error)
	// Cancel lets either party withdraw a pending or confirmed booking.
	Cancel(accountID, bookingID string) (*models.Booking, error)
	// Complete closes out a confirmed booking after the engagement.
	Complete(creativeID, bookingID string) (*models.Booking, error)
	// Rate records the client's score for a completed booking.
	Rate(clientID, bookingID string, score float64) error

	ListForClient(clientID string) ([]models.Booking, error)
	ListForCreative(creativeID string) ([]models.Booking, error)
}
