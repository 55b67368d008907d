package validation

import (
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "welfare/pkg/domain-errors"
)

// NormalizeSuite covers digit stripping and display rendering.
//
// Justification: stored identifiers and phones are the canonical digit form,
// so every branch that produces or refuses a canonical form matters.
type NormalizeSuite struct {
	suite.Suite
}

func TestNormalizeSuite(t *testing.T) {
	suite.Run(t, new(NormalizeSuite))
}

func (s *NormalizeSuite) TestStripNonDigits() {
	s.Equal("", StripNonDigits(""))
	s.Equal("", StripNonDigits("no digits"))
	s.Equal("11223344595", StripNonDigits("112-233-445 95"))
	s.Equal("79991234567", StripNonDigits("+7 (999) 123-45-67"))
	s.Run("non-ASCII digits are dropped", func() {
		s.Equal("12", StripNonDigits("1٣2"))
	})
}

func (s *NormalizeSuite) TestFormatIdentifier() {
	s.Equal("112-233-445 95", FormatIdentifier("11223344595"))
	s.Equal("112-233-445 95", FormatIdentifier(" 112 233 445-95 "))
	s.Run("wrong length is returned unchanged", func() {
		s.Equal("1122-33", FormatIdentifier("1122-33"))
		s.Equal("", FormatIdentifier(""))
	})
}

func (s *NormalizeSuite) TestFormatPhone() {
	s.Equal("+7 (999) 123-45-67", FormatPhone("89991234567"))
	s.Equal("+7 (999) 123-45-67", FormatPhone("79991234567"))
	s.Equal("+7 (999) 123-45-67", FormatPhone("+7 999 123-45-67"))
	s.Run("eleven digits with another country code are unchanged", func() {
		s.Equal("19991234567", FormatPhone("19991234567"))
	})
	s.Run("short numbers are unchanged", func() {
		s.Equal("123-45-67", FormatPhone("123-45-67"))
	})
}

func (s *NormalizeSuite) TestCanonicalForms() {
	s.Run("identifier", func() {
		got, err := CanonicalIdentifier("112-233-445 95")
		s.Require().NoError(err)
		s.Equal("11223344595", got)

		_, err = CanonicalIdentifier("112-233")
		s.True(dErrors.HasCode(err, dErrors.CodeFormat))
	})

	s.Run("phone with trunk prefix", func() {
		got, err := CanonicalPhone("8 (999) 123-45-67")
		s.Require().NoError(err)
		s.Equal("79991234567", got)
	})

	s.Run("phone without canonical form", func() {
		_, err := CanonicalPhone("+1 999 123 45 67")
		s.True(dErrors.HasCode(err, dErrors.CodeFormat))
	})
}
