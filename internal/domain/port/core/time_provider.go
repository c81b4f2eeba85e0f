package core

import "time"

// TimeProvider abstracts time operations so entities and repositories
// can be tested against a fixed clock.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
