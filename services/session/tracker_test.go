package session

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"brandconnect/models"
	"brandconnect/utils"
)

// memStore is an in-memory SessionStore.
type memStore struct {
	records  map[string]models.SessionRecord
	failPuts bool
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]models.SessionRecord)}
}

func (s *memStore) Get(id string) (*models.SessionRecord, error) {
	r, ok := s.records[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	copied := r
	return &copied, nil
}

func (s *memStore) Put(record *models.SessionRecord) error {
	if s.failPuts {
		return errors.New("store unavailable")
	}
	s.records[record.ID] = *record
	return nil
}

func (s *memStore) Delete(id string) error {
	delete(s.records, id)
	return nil
}

func (s *memStore) ListIDs() ([]string, error) {
	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// fakeNotifier records every push.
type fakeNotifier struct {
	pushes []pushCall
}

type pushCall struct {
	accountID string
	title     string
	data      map[string]string
}

func (n *fakeNotifier) PushToUser(_ context.Context, userID, title, _ string, data map[string]string) error {
	n.pushes = append(n.pushes, pushCall{accountID: userID, title: title, data: data})
	return nil
}

func (n *fakeNotifier) PushToCreative(_ context.Context, creativeID, title, _ string, data map[string]string) error {
	n.pushes = append(n.pushes, pushCall{accountID: creativeID, title: title, data: data})
	return nil
}

type fixture struct {
	store    *memStore
	notifier *fakeNotifier
	tracker  *Tracker
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:    newMemStore(),
		notifier: &fakeNotifier{},
		now:      time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	f.tracker = &Tracker{
		Store:         f.store,
		Notifier:      f.notifier,
		WarnThreshold: 5 * time.Minute,
		Interval:      time.Minute,
		Clock:         func() time.Time { return f.now },
	}
	return f
}

func (f *fixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func (f *fixture) startSession(t *testing.T, ttl time.Duration) *models.SessionRecord {
	t.Helper()
	record, err := f.tracker.Start("acct-1", models.RoleClient, ttl)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return record
}

func TestSweepIssuesWarningOnce(t *testing.T) {
	f := newFixture(t)
	record := f.startSession(t, 30*time.Minute)

	// Well before the threshold nothing fires.
	f.advance(20 * time.Minute)
	f.tracker.Sweep()
	if len(f.notifier.pushes) != 0 {
		t.Fatalf("no warning expected at 10 minutes remaining, got %d pushes", len(f.notifier.pushes))
	}

	// 4 minutes remaining: inside the 5-minute threshold.
	f.advance(6 * time.Minute)
	f.tracker.Sweep()
	if len(f.notifier.pushes) != 1 {
		t.Fatalf("expected exactly one warning push, got %d", len(f.notifier.pushes))
	}
	push := f.notifier.pushes[0]
	if push.data["event"] != "session_warning" {
		t.Errorf("push event = %q, want session_warning", push.data["event"])
	}
	if push.data["minutesLeft"] != "4" {
		t.Errorf("minutesLeft = %q, want 4", push.data["minutesLeft"])
	}

	stored, _ := f.store.Get(record.ID)
	if !stored.WarningIssued {
		t.Fatal("warning flag should be persisted with the record")
	}

	// Later sweeps within the same expiry stay quiet.
	f.advance(time.Minute)
	f.tracker.Sweep()
	f.advance(time.Minute)
	f.tracker.Sweep()
	if len(f.notifier.pushes) != 1 {
		t.Fatalf("warning must fire once per expiry, got %d pushes", len(f.notifier.pushes))
	}
}

func TestSweepUnpersistedWarningRetries(t *testing.T) {
	f := newFixture(t)
	f.startSession(t, 10*time.Minute)

	f.advance(6 * time.Minute)
	f.store.failPuts = true
	f.tracker.Sweep()
	if len(f.notifier.pushes) != 0 {
		t.Fatal("warning must not be sent when the flag cannot be stored")
	}

	f.store.failPuts = false
	f.tracker.Sweep()
	if len(f.notifier.pushes) != 1 {
		t.Fatalf("warning should go out on the next tick, got %d pushes", len(f.notifier.pushes))
	}
}

func TestSweepExpiresSession(t *testing.T) {
	f := newFixture(t)
	var revoked []string
	f.tracker.OnExpire = func(record *models.SessionRecord) {
		revoked = append(revoked, record.AccountID)
	}
	record := f.startSession(t, 30*time.Minute)

	f.advance(31 * time.Minute)
	f.tracker.Sweep()

	if len(revoked) != 1 || revoked[0] != "acct-1" {
		t.Fatalf("forced sign-out should revoke acct-1's credentials, got %v", revoked)
	}
	if _, err := f.store.Get(record.ID); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expired session should be deleted, got %v", err)
	}
	if len(f.notifier.pushes) != 1 || f.notifier.pushes[0].data["event"] != "session_expired" {
		t.Fatalf("expected one session_expired push, got %+v", f.notifier.pushes)
	}

	// The record is gone, so a second sweep does nothing.
	f.tracker.Sweep()
	if len(revoked) != 1 || len(f.notifier.pushes) != 1 {
		t.Fatal("a dead session must not be expired twice")
	}
}

func TestStatusStates(t *testing.T) {
	f := newFixture(t)
	record := f.startSession(t, 30*time.Minute)

	status, err := f.tracker.Status(record.ID)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.State != models.SessionStateActive {
		t.Fatalf("state = %q, want active", status.State)
	}
	if status.RemainingSeconds != 30*60 {
		t.Fatalf("remaining = %d, want %d", status.RemainingSeconds, 30*60)
	}

	f.advance(26 * time.Minute)
	status, err = f.tracker.Status(record.ID)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.State != models.SessionStateWarning {
		t.Fatalf("state = %q, want warning", status.State)
	}

	f.advance(4 * time.Minute)
	if _, err := f.tracker.Status(record.ID); !errors.Is(err, utils.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired at the expiry instant, got %v", err)
	}

	if status, err := f.tracker.Status("no-such-session"); err != nil || status.State != models.SessionStateInactive {
		t.Fatalf("unknown session should read as inactive, got %+v, %v", status, err)
	}
}

func TestExtendRenewsAndRearmsWarning(t *testing.T) {
	f := newFixture(t)
	renewer := &Renewer{Store: f.store, TTL: 30 * time.Minute, Clock: func() time.Time { return f.now }}
	record := f.startSession(t, 30*time.Minute)

	// Drive into warning so the flag is set.
	f.advance(26 * time.Minute)
	f.tracker.Sweep()
	if len(f.notifier.pushes) != 1 {
		t.Fatalf("expected a warning before renewal, got %d pushes", len(f.notifier.pushes))
	}

	renewed, err := renewer.Extend(record.ID)
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}
	if !renewed.ExpiresAt.After(record.ExpiresAt) {
		t.Fatal("renewal must strictly extend the expiry")
	}
	if renewed.WarningIssued {
		t.Fatal("renewal must clear the warning flag")
	}

	// The sweep right after renewal sees the fresh expiry and stays quiet.
	f.tracker.Sweep()
	if len(f.notifier.pushes) != 1 {
		t.Fatalf("no warning expected right after renewal, got %d pushes", len(f.notifier.pushes))
	}

	// Approaching the new expiry warns again.
	f.advance(27 * time.Minute)
	f.tracker.Sweep()
	if len(f.notifier.pushes) != 2 {
		t.Fatalf("warning should re-arm after renewal, got %d pushes", len(f.notifier.pushes))
	}
}

func TestExtendExpiredSession(t *testing.T) {
	f := newFixture(t)
	renewer := &Renewer{Store: f.store, TTL: 30 * time.Minute, Clock: func() time.Time { return f.now }}
	record := f.startSession(t, 10*time.Minute)

	f.advance(10 * time.Minute)
	if _, err := renewer.Extend(record.ID); !errors.Is(err, utils.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}

	if _, err := renewer.Extend("no-such-session"); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExtendFailureLeavesRecordUnchanged(t *testing.T) {
	f := newFixture(t)
	renewer := &Renewer{Store: f.store, TTL: 30 * time.Minute, Clock: func() time.Time { return f.now }}
	record := f.startSession(t, 10*time.Minute)

	f.advance(6 * time.Minute)
	f.tracker.Sweep() // sets WarningIssued

	f.store.failPuts = true
	_, err := renewer.Extend(record.ID)
	var te *utils.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected a transport error, got %v", err)
	}

	stored, _ := f.store.Get(record.ID)
	if !stored.ExpiresAt.Equal(record.ExpiresAt) {
		t.Fatal("failed renewal must not move the stored expiry")
	}
	if !stored.WarningIssued {
		t.Fatal("failed renewal must not clear the stored warning flag")
	}
}

func TestEndDeletesSession(t *testing.T) {
	f := newFixture(t)
	record := f.startSession(t, 30*time.Minute)
	if err := f.tracker.End(record.ID); err != nil {
		t.Fatalf("End: %v", err)
	}
	if _, err := f.store.Get(record.ID); !errors.Is(err, utils.ErrNotFound) {
		t.Fatal("ended session should be gone")
	}
}
