package models

import "time"

// Session states as reported to clients and derived by the tracker.
const (
	SessionStateInactive = "inactive"
	SessionStateActive   = "active"
	SessionStateWarning  = "warning"
	SessionStateExpired  = "expired"
)

// Account roles carried in sessions and tokens.
const (
	RoleClient   = "client"
	RoleCreative = "creative"
	RoleAdmin    = "admin"
)

// SessionRecord is the server-held state of one signed-in session.
// WarningIssued is reset to false whenever ExpiresAt is refreshed, so
// the renewal warning fires at most once per issued expiry.
type SessionRecord struct {
	ID             string    `json:"id"`
	AccountID      string    `json:"accountId"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"isActive"`
	ExpiresAt      time.Time `json:"expiresAt"`
	WarningIssued  bool      `json:"warningIssued"`
	LastActivityAt time.Time `json:"lastActivityAt"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Remaining reports the time left before expiry, floored at zero.
func (s *SessionRecord) Remaining(now time.Time) time.Duration {
	if !s.IsActive || now.After(s.ExpiresAt) {
		return 0
	}
	return s.ExpiresAt.Sub(now)
}

// SessionStatus is the projection returned by GET /api/session.
type SessionStatus struct {
	State            string    `json:"state"`
	ExpiresAt        time.Time `json:"expiresAt,omitempty"`
	RemainingSeconds int       `json:"remainingSeconds"`
}
