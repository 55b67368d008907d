package domain

import "time"

// MaxPlausibleAge is the oldest age, in whole years, accepted for a living person.
const MaxPlausibleAge = 150

// AgeAt returns the age in whole years of a person born on birthDate at the
// reference time now. The year is not counted until the birthday has
// occurred. Both dates are compared as UTC calendar dates. A birth date in the
// future yields a negative age.
//
// Example:
//
//	birthDate := time.Date(2000, 1, 15, 0, 0, 0, 0, time.UTC)
//	now := time.Date(2018, 1, 14, 0, 0, 0, 0, time.UTC)
//	AgeAt(birthDate, now) // returns 17
func AgeAt(birthDate, now time.Time) int {
	birth := calendarDate(birthDate)
	today := calendarDate(now)
	age := today.Year() - birth.Year()
	if birth.After(today.AddDate(-age, 0, 0)) {
		age--
	}
	return age
}

// IsPlausibleBirthDate reports whether birthDate is not after now and AgeAt
// falls in [0, MaxPlausibleAge]. The future check uses the full timestamp, so
// a birth later today is rejected.
func IsPlausibleBirthDate(birthDate, now time.Time) bool {
	if birthDate.After(now) {
		return false
	}
	return AgeAt(birthDate, now) <= MaxPlausibleAge
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
