package entity

import "time"

// Identity mirrors the external auth provider's user record. The portal never
// creates or mutates identities; it only reads them for display and joins.
type Identity struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
	CreatedAt       time.Time
}

// Session is an auth session issued by the external identity provider.
// The portal validates the session cookie against these records.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session has passed its expiry
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// UserAccount combines an identity with its portal profile for API responses
// and the admin user list.
type UserAccount struct {
	Identity Identity
	Profile  Profile
}
