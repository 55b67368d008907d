package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// AgeSuite tests age calculation functions.
//
// Justification: Pure function with date arithmetic edge cases.
// The year must not count until the birthday itself has been reached.
type AgeSuite struct {
	suite.Suite
}

func TestAgeSuite(t *testing.T) {
	suite.Run(t, new(AgeSuite))
}

func (s *AgeSuite) TestAgeAt_BirthdayBoundaries() {
	birthDate := time.Date(2000, 1, 15, 0, 0, 0, 0, time.UTC)

	s.Run("on the birthday the year counts", func() {
		s.Equal(18, AgeAt(birthDate, time.Date(2018, 1, 15, 0, 0, 0, 0, time.UTC)))
	})

	s.Run("the day before it does not", func() {
		s.Equal(17, AgeAt(birthDate, time.Date(2018, 1, 14, 23, 59, 59, 0, time.UTC)))
	})

	s.Run("time of day is ignored", func() {
		s.Equal(18, AgeAt(birthDate.Add(20*time.Hour), time.Date(2018, 1, 15, 1, 0, 0, 0, time.UTC)))
	})
}

func (s *AgeSuite) TestAgeAt_LeapYear() {
	birthDate := time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)

	s.Run("Feb 28 of a common year is still before the birthday", func() {
		s.Equal(17, AgeAt(birthDate, time.Date(2018, 2, 28, 0, 0, 0, 0, time.UTC)))
	})

	s.Run("Mar 1 of a common year is past the birthday", func() {
		s.Equal(18, AgeAt(birthDate, time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC)))
	})

	s.Run("Feb 29 of a leap year is the birthday", func() {
		s.Equal(24, AgeAt(birthDate, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
	})
}

func (s *AgeSuite) TestAgeAt_TimezoneHandling() {
	pst := time.FixedZone("PST", -8*60*60)
	birthDate := time.Date(2000, 1, 15, 0, 0, 0, 0, pst)
	now := time.Date(2018, 1, 15, 8, 0, 0, 0, time.UTC)

	s.Equal(18, AgeAt(birthDate, now))
}

func (s *AgeSuite) TestIsPlausibleBirthDate() {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	s.Run("exactly 150 years ago is accepted", func() {
		s.True(IsPlausibleBirthDate(now.AddDate(-150, 0, 0), now))
	})

	s.Run("151 years ago is rejected", func() {
		s.False(IsPlausibleBirthDate(now.AddDate(-151, 0, 0), now))
	})

	s.Run("born today is accepted", func() {
		s.True(IsPlausibleBirthDate(now, now))
	})

	s.Run("tomorrow is rejected", func() {
		s.False(IsPlausibleBirthDate(now.AddDate(0, 0, 1), now))
	})

	s.Run("later today is rejected", func() {
		s.False(IsPlausibleBirthDate(now.Add(time.Hour), now))
	})

	s.Run("earlier today is accepted", func() {
		s.True(IsPlausibleBirthDate(now.Add(-time.Hour), now))
	})
}
