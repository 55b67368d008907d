package circuit

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// BreakerSuite walks the breaker through its transitions.
//
// Justification: callers choose between primary and fallback from the
// returned flags, so each threshold boundary must hold exactly.
type BreakerSuite struct {
	suite.Suite
	changes []bool
	breaker *Breaker
}

func TestBreakerSuite(t *testing.T) {
	suite.Run(t, new(BreakerSuite))
}

func (s *BreakerSuite) SetupTest() {
	s.changes = nil
	s.breaker = New("redis",
		WithFailureThreshold(3),
		WithSuccessThreshold(2),
		WithOnChange(func(name string, open bool) {
			s.Equal("redis", name)
			s.changes = append(s.changes, open)
		}),
	)
}

func (s *BreakerSuite) TestOpensOnThreshold() {
	for range 2 {
		useFallback, change := s.breaker.RecordFailure()
		s.False(useFallback)
		s.False(change.Opened)
	}
	useFallback, change := s.breaker.RecordFailure()
	s.True(useFallback)
	s.True(change.Opened)
	s.Equal(StateOpen, s.breaker.State())
	s.Equal("open", s.breaker.State().String())

	useFallback, change = s.breaker.RecordFailure()
	s.True(useFallback)
	s.False(change.Opened, "already open")
	s.Equal([]bool{true}, s.changes)
}

func (s *BreakerSuite) TestSuccessResetsFailureCount() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	usePrimary, _ := s.breaker.RecordSuccess()
	s.True(usePrimary)

	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.False(s.breaker.IsOpen())
}

func (s *BreakerSuite) TestClosesAfterConsecutiveSuccesses() {
	for range 3 {
		s.breaker.RecordFailure()
	}

	s.Run("a failure while recovering restarts the count", func() {
		usePrimary, _ := s.breaker.RecordSuccess()
		s.False(usePrimary)
		s.breaker.RecordFailure()
		usePrimary, _ = s.breaker.RecordSuccess()
		s.False(usePrimary)
	})

	s.Run("second success in a row closes", func() {
		usePrimary, change := s.breaker.RecordSuccess()
		s.True(usePrimary)
		s.True(change.Closed)
		s.False(s.breaker.IsOpen())
	})

	s.Equal([]bool{true, false}, s.changes)
}

func (s *BreakerSuite) TestReset() {
	for range 3 {
		s.breaker.RecordFailure()
	}
	s.breaker.Reset()
	s.False(s.breaker.IsOpen())
	s.Equal([]bool{true, false}, s.changes)

	s.breaker.Reset()
	s.Len(s.changes, 2, "resetting a closed breaker is silent")
}

func (s *BreakerSuite) TestDefaults() {
	b := New("default", WithFailureThreshold(0), nil)
	for range 4 {
		b.RecordFailure()
	}
	s.False(b.IsOpen())
	b.RecordFailure()
	s.True(b.IsOpen())
}
