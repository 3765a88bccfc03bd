package redis

import (
	"context"
	"time"
)

// LogoutMarkerTTL is how long a logout marker lives. The marker replaces
// the session token for its short lifetime so the transport layer sees
// "logged out" immediately after the call.
const LogoutMarkerTTL = 10 * time.Second

// SessionStore tracks logged-out customers in Redis
type SessionStore struct{}

var (
	setSessionValue    = Set
	existsSessionValue = Exists
	delSessionValue    = Del
)

// NewSessionStore creates a new session store
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// MarkLoggedOut writes a short-lived logout marker for the customer
func (s *SessionStore) MarkLoggedOut(ctx context.Context, customerID string) error {
	return setSessionValue(ctx, "logout:"+customerID, "none", LogoutMarkerTTL)
}

// IsLoggedOut reports whether a live logout marker exists for the customer
func (s *SessionStore) IsLoggedOut(ctx context.Context, customerID string) (bool, error) {
	return existsSessionValue(ctx, "logout:"+customerID)
}

// ClearLogout drops the logout marker, if any (a fresh login supersedes it)
func (s *SessionStore) ClearLogout(ctx context.Context, customerID string) error {
	return delSessionValue(ctx, "logout:"+customerID)
}
