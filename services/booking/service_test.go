package booking

import (
	"errors"
	"testing"

	"brandconnect/models"
	"brandconnect/utils"
)

type fakeCreatives struct {
	creatives map[string]*models.Creative
	ratings   []float64
}

func (f *fakeCreatives) GetByID(id string) (*models.Creative, error) {
	c, ok := f.creatives[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return c, nil
}

func (f *fakeCreatives) GetByEmail(string) (*models.Creative, error)     { return nil, utils.ErrNotFound }
func (f *fakeCreatives) GetByTokenHash(string) (*models.Creative, error) { return nil, utils.ErrNotFound }
func (f *fakeCreatives) Create(*models.Creative) error                   { return nil }
func (f *fakeCreatives) Update(*models.Creative) error                   { return nil }
func (f *fakeCreatives) Delete(string) error                             { return nil }
func (f *fakeCreatives) Search(models.CreativeSearchQuery) ([]models.Creative, error) {
	return nil, nil
}
func (f *fakeCreatives) ListByStatus(string) ([]models.Creative, error) { return nil, nil }
func (f *fakeCreatives) AddRating(_ string, score float64) error {
	f.ratings = append(f.ratings, score)
	return nil
}

type fakeBookings struct {
	bookings map[string]models.Booking
}

func newFakeBookings() *fakeBookings {
	return &fakeBookings{bookings: make(map[string]models.Booking)}
}

func (f *fakeBookings) GetByID(id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	copied := b
	return &copied, nil
}

func (f *fakeBookings) Create(b *models.Booking) error {
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeBookings) Update(b *models.Booking) error {
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeBookings) ListByClient(string) ([]models.Booking, error)   { return nil, nil }
func (f *fakeBookings) ListByCreative(string) ([]models.Booking, error) { return nil, nil }

func (f *fakeBookings) ListActiveForDate(creativeID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CreativeID != creativeID || b.Date != date {
			continue
		}
		if b.Status == models.BookingStatusPending || b.Status == models.BookingStatusConfirmed {
			out = append(out, b)
		}
	}
	return out, nil
}

// fakeSchedules hands out a fixed profile for every creative.
type fakeSchedules struct {
	profile *models.AvailabilityProfile
}

func (f *fakeSchedules) GetSchedule(creativeID string) (*models.AvailabilityProfile, error) {
	copied := *f.profile
	copied.CreativeID = creativeID
	return &copied, nil
}

func (f *fakeSchedules) SaveSchedule(*models.AvailabilityProfile) error { return nil }

func newBookingService(creativeStatus string) (*DefaultBookingService, *fakeBookings) {
	repo := newFakeBookings()
	svc := &DefaultBookingService{
		Repo: repo,
		Creatives: &fakeCreatives{creatives: map[string]*models.Creative{
			"c1": {ID: "c1", Status: creativeStatus},
		}},
		Availability: &fakeSchedules{profile: weekdayProfile(0)},
	}
	return svc, repo
}

func mondayRequest() models.BookingRequest {
	return models.BookingRequest{
		CreativeID: "c1",
		Date:       "2026-03-09",
		StartTime:  "10:00",
		EndTime:    "11:00",
		Brief:      "Logo refresh",
	}
}

func TestRequestRequiresApprovedCreative(t *testing.T) {
	for _, status := range []string{
		models.CreativeStatusPending,
		models.CreativeStatusRejected,
		models.CreativeStatusSuspended,
	} {
		svc, repo := newBookingService(status)
		_, err := svc.Request("client-1", mondayRequest())
		var ve *utils.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("status %q: expected a validation error, got %v", status, err)
		}
		if len(repo.bookings) != 0 {
			t.Errorf("status %q: no booking should be created", status)
		}
	}
}

func TestRequestCreatesPendingBooking(t *testing.T) {
	svc, repo := newBookingService(models.CreativeStatusApproved)
	b, err := svc.Request("client-1", mondayRequest())
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if b.Status != models.BookingStatusPending {
		t.Fatalf("new booking status = %q, want pending", b.Status)
	}
	if _, ok := repo.bookings[b.ID]; !ok {
		t.Fatal("booking was not persisted")
	}

	// A second request colliding with the pending one is refused.
	if _, err := svc.Request("client-2", mondayRequest()); err == nil {
		t.Fatal("overlapping request against a pending booking should be refused")
	}
}

func TestRespondLifecycle(t *testing.T) {
	svc, _ := newBookingService(models.CreativeStatusApproved)
	b, err := svc.Request("client-1", mondayRequest())
	if err != nil {
		t.Fatalf("Request: %v", err)
	}

	// Only the booked creative may respond.
	if _, err := svc.Respond("someone-else", b.ID, true); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("foreign creative should get ErrNotFound, got %v", err)
	}

	confirmed, err := svc.Respond("c1", b.ID, true)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if confirmed.Status != models.BookingStatusConfirmed {
		t.Fatalf("status = %q, want confirmed", confirmed.Status)
	}

	// A settled booking cannot be responded to again.
	if _, err := svc.Respond("c1", b.ID, false); err == nil {
		t.Fatal("responding twice should fail")
	}
}

func TestRateOnlyCompletedBookings(t *testing.T) {
	svc, _ := newBookingService(models.CreativeStatusApproved)
	b, err := svc.Request("client-1", mondayRequest())
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if _, err := svc.Respond("c1", b.ID, true); err != nil {
		t.Fatalf("Respond: %v", err)
	}

	if err := svc.Rate("client-1", b.ID, 5); err == nil {
		t.Fatal("rating a booking that is not completed should fail")
	}
	if _, err := svc.Complete("c1", b.ID); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if err := svc.Rate("client-1", b.ID, 6); err == nil {
		t.Fatal("score above 5 should be rejected")
	}
	if err := svc.Rate("client-1", b.ID, 5); err != nil {
		t.Fatalf("Rate: %v", err)
	}
	creatives := svc.Creatives.(*fakeCreatives)
	if len(creatives.ratings) != 1 || creatives.ratings[0] != 5 {
		t.Fatalf("rating was not folded in: %v", creatives.ratings)
	}
}
