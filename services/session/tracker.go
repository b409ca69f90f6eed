package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"brandconnect/models"
	"brandconnect/services/notification"
	"brandconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SignOutFunc revokes whatever credentials back a session. Wired by
// the composition root so the tracker stays ignorant of account types.
type SignOutFunc func(record *models.SessionRecord)

// Tracker owns the session lifecycle: Inactive -> Active -> Warning ->
// Expired. A periodic sweep drives the Warning and Expired transitions;
// the warning fires at most once per issued expiry because
// WarningIssued travels with the record and is cleared on renewal.
type Tracker struct {
	Store    SessionStore
	Notifier notification.NotificationService
	OnExpire SignOutFunc

	// WarnThreshold is how long before expiry the renewal notice goes
	// out. Interval is the sweep cadence; expiry may be observed up to
	// one interval late, which the threshold already allows for.
	WarnThreshold time.Duration
	Interval      time.Duration

	// Clock is split out so the sweep can be driven in tests.
	Clock func() time.Time
}

func (t *Tracker) now() time.Time {
	if t.Clock == nil {
		return time.Now()
	}
	return t.Clock()
}

func (t *Tracker) warnThreshold() time.Duration {
	if t.WarnThreshold <= 0 {
		return 5 * time.Minute
	}
	return t.WarnThreshold
}

func (t *Tracker) interval() time.Duration {
	if t.Interval <= 0 {
		return time.Minute
	}
	return t.Interval
}

// Start creates an Active session for a freshly authenticated account.
func (t *Tracker) Start(accountID, role string, ttl time.Duration) (*models.SessionRecord, error) {
	now := t.now()
	record := &models.SessionRecord{
		ID:             uuid.NewString(),
		AccountID:      accountID,
		Role:           role,
		IsActive:       true,
		ExpiresAt:      now.Add(ttl),
		WarningIssued:  false,
		LastActivityAt: now,
		CreatedAt:      now,
	}
	if err := t.Store.Put(record); err != nil {
		return nil, utils.Transport("session.Start", err)
	}
	return record, nil
}

// End tears a session down on explicit sign-out.
func (t *Tracker) End(sessionID string) error {
	if err := t.Store.Delete(sessionID); err != nil {
		return utils.Transport("session.End", err)
	}
	return nil
}

// Touch records account activity on the session.
func (t *Tracker) Touch(sessionID string) {
	record, err := t.Store.Get(sessionID)
	if err != nil {
		return
	}
	record.LastActivityAt = t.now()
	if err := t.Store.Put(record); err != nil {
		utils.GetLogger().Warn("session touch failed",
			zap.String("sessionId", sessionID), zap.Error(err))
	}
}

// State derives the lifecycle state of a record at the given instant.
func (t *Tracker) State(record *models.SessionRecord, now time.Time) string {
	switch {
	case record == nil || !record.IsActive:
		return models.SessionStateInactive
	case !now.Before(record.ExpiresAt):
		return models.SessionStateExpired
	case record.ExpiresAt.Sub(now) <= t.warnThreshold():
		return models.SessionStateWarning
	default:
		return models.SessionStateActive
	}
}

// Status reports the session's state and time remaining. An expired
// session is surfaced as ErrSessionExpired; the next sweep runs the
// forced sign-out.
func (t *Tracker) Status(sessionID string) (*models.SessionStatus, error) {
	record, err := t.Store.Get(sessionID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return &models.SessionStatus{State: models.SessionStateInactive}, nil
		}
		return nil, utils.Transport("session.Status", err)
	}
	now := t.now()
	state := t.State(record, now)
	if state == models.SessionStateExpired {
		return nil, utils.ErrSessionExpired
	}
	return &models.SessionStatus{
		State:            state,
		ExpiresAt:        record.ExpiresAt,
		RemainingSeconds: int(record.Remaining(now).Seconds()),
	}, nil
}

// Run drives the sweep until the context is cancelled.
func (t *Tracker) Run(ctx context.Context) {
	logger := utils.GetLogger()
	ticker := time.NewTicker(t.interval())
	defer ticker.Stop()

	logger.Info("session tracker started",
		zap.Duration("interval", t.interval()),
		zap.Duration("warnThreshold", t.warnThreshold()))

	for {
		select {
		case <-ctx.Done():
			logger.Info("session tracker stopped")
			return
		case <-ticker.C:
			t.Sweep()
		}
	}
}

// Sweep evaluates every stored session once. Each record is re-read
// inside the tick, so a renewal landing just before the sweep wins: the
// fresh ExpiresAt is what gets judged, not a stale copy.
func (t *Tracker) Sweep() {
	ids, err := t.Store.ListIDs()
	if err != nil {
		utils.GetLogger().Warn("session sweep failed to list sessions", zap.Error(err))
		return
	}
	for _, id := range ids {
		record, err := t.Store.Get(id)
		if err != nil {
			continue
		}
		t.evaluate(record)
	}
}

func (t *Tracker) evaluate(record *models.SessionRecord) {
	logger := utils.GetLogger()
	now := t.now()

	switch t.State(record, now) {
	case models.SessionStateExpired:
		// Forced sign-out: revoke credentials, drop the record, tell
		// the account to sign in again.
		if t.OnExpire != nil {
			t.OnExpire(record)
		}
		if err := t.Store.Delete(record.ID); err != nil {
			logger.Warn("failed to delete expired session",
				zap.String("sessionId", record.ID), zap.Error(err))
		}
		t.notify(record, "Session expired", "You have been signed out. Please sign in again.",
			map[string]string{"event": "session_expired"})
		logger.Info("session expired",
			zap.String("sessionId", record.ID), zap.String("accountId", record.AccountID))

	case models.SessionStateWarning:
		if record.WarningIssued {
			return
		}
		record.WarningIssued = true
		if err := t.Store.Put(record); err != nil {
			// If the flag cannot be stored the warning is not sent
			// either, so the next tick retries both together.
			logger.Warn("failed to persist warning flag",
				zap.String("sessionId", record.ID), zap.Error(err))
			return
		}
		remaining := int(record.Remaining(now).Minutes())
		t.notify(record, "Session expiring soon",
			"Your session is about to expire. Extend it to stay signed in.",
			map[string]string{"event": "session_warning", "minutesLeft": strconv.Itoa(remaining)})
		logger.Info("session warning issued",
			zap.String("sessionId", record.ID), zap.String("accountId", record.AccountID))
	}
}

func (t *Tracker) notify(record *models.SessionRecord, title, body string, data map[string]string) {
	if t.Notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var err error
	if record.Role == models.RoleCreative {
		err = t.Notifier.PushToCreative(ctx, record.AccountID, title, body, data)
	} else {
		err = t.Notifier.PushToUser(ctx, record.AccountID, title, body, data)
	}
	if err != nil {
		utils.GetLogger().Debug("session notice not delivered",
			zap.String("sessionId", record.ID), zap.Error(err))
	}
}
