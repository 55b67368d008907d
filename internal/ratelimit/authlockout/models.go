package authlockout

import "time"

// Record is the recent failure history of one username and client address.
type Record struct {
	Key          string
	Failures     int
	FirstFailure time.Time
	LockedUntil  *time.Time
}

// LockedAt reports whether the record blocks logins at now.
func (r *Record) LockedAt(now time.Time) bool {
	return r != nil && r.LockedUntil != nil && now.Before(*r.LockedUntil)
}

// Config tunes the lockout policy.
type Config struct {
	// AttemptsPerWindow failures inside Window lock the key.
	AttemptsPerWindow int
	Window            time.Duration
	LockDuration      time.Duration
}

func DefaultConfig() Config {
	return Config{
		AttemptsPerWindow: 5,
		Window:            15 * time.Minute,
		LockDuration:      15 * time.Minute,
	}
}
