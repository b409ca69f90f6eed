package session

import (
	"errors"
	"time"

	"brandconnect/models"
	"brandconnect/utils"
)

// Renewer extends sessions on request. Renewal failure is not fatal:
// the record is left exactly as it was and keeps counting down, so
// expiry still governs.
type Renewer struct {
	Store SessionStore
	TTL   time.Duration
	Clock func() time.Time
}

func (r *Renewer) now() time.Time {
	if r.Clock == nil {
		return time.Now()
	}
	return r.Clock()
}

func (r *Renewer) ttl() time.Duration {
	if r.TTL <= 0 {
		return time.Hour
	}
	return r.TTL
}

// Extend pushes the session's expiry out by the configured TTL and
// clears the warning flag so the next approach to expiry warns again.
// The record is re-read here: the decision is made against the stored
// expiry at this instant, never a copy taken earlier.
func (r *Renewer) Extend(sessionID string) (*models.SessionRecord, error) {
	record, err := r.Store.Get(sessionID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, utils.Transport("session.Extend", err)
	}

	now := r.now()
	if !record.IsActive || !now.Before(record.ExpiresAt) {
		return nil, utils.ErrSessionExpired
	}

	renewed := *record
	renewed.ExpiresAt = now.Add(r.ttl())
	if !renewed.ExpiresAt.After(record.ExpiresAt) {
		// A renewal must strictly extend the session.
		renewed.ExpiresAt = record.ExpiresAt.Add(time.Minute)
	}
	renewed.WarningIssued = false
	renewed.LastActivityAt = now

	if err := r.Store.Put(&renewed); err != nil {
		// Stored state is unchanged; the caller may retry.
		return nil, utils.Transport("session.Extend", err)
	}
	return &renewed, nil
}
