package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "brandconnect/database/repository/booking"
	creativeRepo "brandconnect/database/repository/creative"
	"brandconnect/models"
	"brandconnect/services/availability"
	"brandconnect/services/notification"
	"brandconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	Creatives    creativeRepo.CreativeRepository
	Availability availability.AvailabilityService
	Notifier     notification.NotificationService
	Reminders    *ReminderScheduler
}

func (s *DefaultBookingService) Request(clientID string, req models.BookingRequest) (*models.Booking, error) {
	creative, err := s.Creatives.GetByID(req.CreativeID)
	if err != nil {
		return nil, err
	}
	if creative.Status != models.CreativeStatusApproved {
		return nil, utils.Invalid("creativeId", "this creative is not accepting bookings")
	}

	profile, err := s.Availability.GetSchedule(req.CreativeID)
	if err != nil {
		return nil, err
	}
	existing, err := s.Repo.ListActiveForDate(req.CreativeID, req.Date)
	if err != nil {
		return nil, utils.Transport("booking.Request", err)
	}
	if err := ValidateBookingTime(profile, existing, req.Date, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	now := time.Now()
	b := &models.Booking{
		ID:         uuid.NewString(),
		ClientID:   clientID,
		CreativeID: req.CreativeID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Brief:      req.Brief,
		Status:     models.BookingStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, utils.Transport("booking.Request", err)
	}

	s.push(b.CreativeID, models.RoleCreative, "New booking request",
		fmt.Sprintf("You have a new request for %s %s-%s.", b.Date, b.StartTime, b.EndTime), b.ID)
	return b, nil
}

func (s *DefaultBookingService) Respond(creativeID, bookingID string, accept bool) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.CreativeID != creativeID {
		return nil, utils.ErrNotFound
	}
	if b.Status != models.BookingStatusPending {
		return nil, utils.Invalid("status", "only pending bookings can be responded to")
	}

	if accept {
		b.Status = models.BookingStatusConfirmed
	} else {
		b.Status = models.BookingStatusDeclined
	}
	b.UpdatedAt = time.Now()
	if err := s.Repo.Update(b); err != nil {
		return nil, utils.Transport("booking.Respond", err)
	}

	if accept {
		s.push(b.ClientID, models.RoleClient, "Booking confirmed",
			fmt.Sprintf("Your booking on %s at %s was confirmed.", b.Date, b.StartTime), b.ID)
		s.scheduleReminder(b)
	} else {
		s.push(b.ClientID, models.RoleClient, "Booking declined",
			fmt.Sprintf("Your booking request for %s was declined.", b.Date), b.ID)
	}
	return b, nil
}

func (s *DefaultBookingService) Cancel(accountID, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.ClientID != accountID && b.CreativeID != accountID {
		return nil, utils.ErrNotFound
	}
	if b.Status != models.BookingStatusPending && b.Status != models.BookingStatusConfirmed {
		return nil, utils.Invalid("status", "this booking can no longer be cancelled")
	}

	b.Status = models.BookingStatusCancelled
	b.UpdatedAt = time.Now()
	if err := s.Repo.Update(b); err != nil {
		return nil, utils.Transport("booking.Cancel", err)
	}

	// Tell the other party.
	if accountID == b.ClientID {
		s.push(b.CreativeID, models.RoleCreative, "Booking cancelled",
			fmt.Sprintf("The booking on %s at %s was cancelled by the client.", b.Date, b.StartTime), b.ID)
	} else {
		s.push(b.ClientID, models.RoleClient, "Booking cancelled",
			fmt.Sprintf("The booking on %s at %s was cancelled by the creative.", b.Date, b.StartTime), b.ID)
	}
	return b, nil
}

func (s *DefaultBookingService) Complete(creativeID, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.CreativeID != creativeID {
		return nil, utils.ErrNotFound
	}
	if b.Status != models.BookingStatusConfirmed {
		return nil, utils.Invalid("status", "only confirmed bookings can be completed")
	}
	b.Status = models.BookingStatusCompleted
	b.UpdatedAt = time.Now()
	if err := s.Repo.Update(b); err != nil {
		return nil, utils.Transport("booking.Complete", err)
	}
	return b, nil
}

func (s *DefaultBookingService) Rate(clientID, bookingID string, score float64) error {
	if score < 1 || score > 5 {
		return utils.Invalid("score", "must be between 1 and 5")
	}
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if b.ClientID != clientID {
		return utils.ErrNotFound
	}
	if b.Status != models.BookingStatusCompleted {
		return utils.Invalid("status", "only completed bookings can be rated")
	}
	if err := s.Creatives.AddRating(b.CreativeID, score); err != nil {
		return utils.Transport("booking.Rate", err)
	}
	return nil
}

func (s *DefaultBookingService) ListForClient(clientID string) ([]models.Booking, error) {
	return s.Repo.ListByClient(clientID)
}

func (s *DefaultBookingService) ListForCreative(creativeID string) ([]models.Booking, error) {
	return s.Repo.ListByCreative(creativeID)
}

func (s *DefaultBookingService) scheduleReminder(b *models.Booking) {
	at, err := ReminderAt(b.Date, b.StartTime)
	if err != nil {
		utils.GetLogger().Warn("could not compute reminder time",
			zap.String("bookingId", b.ID), zap.Error(err))
		return
	}
	payload := models.ReminderPayload{
		BookingID:  b.ID,
		ClientID:   b.ClientID,
		CreativeID: b.CreativeID,
		Date:       b.Date,
		StartTime:  b.StartTime,
	}
	if err := s.Reminders.Schedule(payload, at); err != nil {
		utils.GetLogger().Warn("failed to schedule booking reminder",
			zap.String("bookingId", b.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) push(accountID, role, title, body, bookingID string) {
	if s.Notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data := map[string]string{"event": "booking", "bookingId": bookingID}
	var err error
	if role == models.RoleCreative {
		err = s.Notifier.PushToCreative(ctx, accountID, title, body, data)
	} else {
		err = s.Notifier.PushToUser(ctx, accountID, title, body, data)
	}
	if err != nil {
		utils.GetLogger().Debug("booking notice not delivered",
			zap.String("bookingId", bookingID), zap.Error(err))
	}
}
