package availability

import (
	"errors"
	"testing"

	"brandconnect/models"
	"brandconnect/utils"
)

// fakeRepo keeps profiles in memory and can be told to fail.
type fakeRepo struct {
	profiles map[string]models.AvailabilityProfile
	failNext error
	replaces int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{profiles: make(map[string]models.AvailabilityProfile)}
}

func (r *fakeRepo) Get(creativeID string) (*models.AvailabilityProfile, error) {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return nil, err
	}
	p, ok := r.profiles[creativeID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	copied := p
	return &copied, nil
}

func (r *fakeRepo) Replace(profile *models.AvailabilityProfile) error {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	r.replaces++
	r.profiles[profile.CreativeID] = *profile
	return nil
}

// fakeCreatives knows a fixed set of creative IDs.
type fakeCreatives struct {
	known map[string]bool
}

func (f *fakeCreatives) GetByID(id string) (*models.Creative, error) {
	if f.known[id] {
		return &models.Creative{ID: id, Status: models.CreativeStatusApproved}, nil
	}
	return nil, utils.ErrNotFound
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
func (f *fakeCreatives) AddRating(string, float64) error                { return nil }

// heldLocker refuses every acquisition, as if a save were in flight.
type heldLocker struct{}

func (heldLocker) Acquire(string) (bool, error) { return false, nil }
func (heldLocker) Release(string)               {}

func newService(repo *fakeRepo) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		Repo:      repo,
		Creatives: &fakeCreatives{known: map[string]bool{"c1": true}},
	}
}

func availableDay(dow int, start, end string) models.WeeklyAvailability {
	return models.WeeklyAvailability{DayOfWeek: dow, StartTime: start, EndTime: end, IsAvailable: true}
}

func TestGetScheduleUnknownCreative(t *testing.T) {
	svc := newService(newFakeRepo())
	if _, err := svc.GetSchedule("ghost"); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown creative, got %v", err)
	}
}

func TestGetScheduleDefaults(t *testing.T) {
	svc := newService(newFakeRepo())
	profile, err := svc.GetSchedule("c1")
	if err != nil {
		t.Fatalf("GetSchedule: %v", err)
	}
	if len(profile.Days) != 7 {
		t.Fatalf("default schedule should carry all 7 days, got %d", len(profile.Days))
	}
	for _, day := range profile.Days {
		if day.IsAvailable {
			t.Errorf("day %d should default to unavailable", day.DayOfWeek)
		}
		if day.StartTime != "09:00" || day.EndTime != "17:00" {
			t.Errorf("day %d should default to 09:00-17:00, got %s-%s",
				day.DayOfWeek, day.StartTime, day.EndTime)
		}
	}
	if profile.BufferTime != 0 {
		t.Errorf("default buffer should be 0, got %d", profile.BufferTime)
	}
}

func TestSaveAllDaysOffIsVacuouslyValid(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	profile, _ := svc.GetSchedule("c1")
	// Bad times on an off day must not matter.
	profile.SetDay(models.WeeklyAvailability{DayOfWeek: 2, StartTime: "17:00", EndTime: "09:00"})
	if err := svc.SaveSchedule(profile); err != nil {
		t.Fatalf("all-days-off schedule should save, got %v", err)
	}
	if repo.replaces != 1 {
		t.Fatalf("expected one replace, got %d", repo.replaces)
	}
}

func TestSaveRejectsInvertedWindow(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	profile, _ := svc.GetSchedule("c1")
	profile.SetDay(availableDay(1, "17:00", "09:00"))

	err := svc.SaveSchedule(profile)
	var ve *utils.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if repo.replaces != 0 {
		t.Fatal("a rejected schedule must never reach the store")
	}
}

func TestSaveBufferBounds(t *testing.T) {
	for _, tc := range []struct {
		buffer int
		ok     bool
	}{
		{-5, false},
		{0, true},
		{120, true},
	} {
		repo := newFakeRepo()
		svc := newService(repo)
		profile, _ := svc.GetSchedule("c1")
		profile.BufferTime = tc.buffer

		err := svc.SaveSchedule(profile)
		if tc.ok && err != nil {
			t.Errorf("buffer %d should be accepted, got %v", tc.buffer, err)
		}
		if !tc.ok {
			var ve *utils.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("buffer %d should be rejected with a validation error, got %v", tc.buffer, err)
			}
			if repo.replaces != 0 {
				t.Errorf("buffer %d: rejected schedule must not be persisted", tc.buffer)
			}
		}
	}
}

func TestSaveRefusedWhileAnotherIsInFlight(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	svc.Locker = heldLocker{}
	profile, _ := svc.GetSchedule("c1")

	if err := svc.SaveSchedule(profile); !errors.Is(err, utils.ErrSaveInFlight) {
		t.Fatalf("expected ErrSaveInFlight, got %v", err)
	}
	if repo.replaces != 0 {
		t.Fatal("a refused save must not reach the store")
	}
}

func TestSaveTransportFailureLeavesStoreUntouched(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	profile, _ := svc.GetSchedule("c1")
	profile.SetDay(availableDay(1, "09:00", "17:00"))
	if err := svc.SaveSchedule(profile); err != nil {
		t.Fatalf("initial save: %v", err)
	}

	profile.SetDay(availableDay(2, "10:00", "16:00"))
	repo.failNext = errors.New("connection reset")
	err := svc.SaveSchedule(profile)
	var te *utils.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected a transport error, got %v", err)
	}

	stored, _ := svc.GetSchedule("c1")
	if day := stored.Day(2); day != nil && day.IsAvailable {
		t.Fatal("failed save must leave the stored schedule unchanged")
	}
	// The caller's edits survive for a retry.
	if day := profile.Day(2); day == nil || !day.IsAvailable {
		t.Fatal("in-memory edits must survive a failed save")
	}
}
