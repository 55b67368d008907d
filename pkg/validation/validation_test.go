package validation

import (
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "welfare/pkg/domain-errors"
)

// ValidatorSuite covers the struct validator and its custom tags.
//
// Justification: request DTOs rely on these tags at the trust boundary, and
// the message names the failing field in snake_case.
type ValidatorSuite struct {
	suite.Suite
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

type sampleRequest struct {
	LastName   string `validate:"required,notblank,letters,max=128"`
	Identifier string `validate:"required,identifier"`
	Phone      string `validate:"omitempty,phone"`
	Role       string `validate:"required,oneof=admin operator citizen"`
}

func validSample() sampleRequest {
	return sampleRequest{
		LastName:   "Иванова",
		Identifier: "112-233-445 95",
		Phone:      "+7 (999) 123-45-67",
		Role:       "operator",
	}
}

func (s *ValidatorSuite) TestValidRequestPasses() {
	s.NoError(Validate(validSample()))
}

func (s *ValidatorSuite) TestTagMessages() {
	cases := []struct {
		name   string
		mutate func(*sampleRequest)
		want   string
	}{
		{"missing last name", func(r *sampleRequest) { r.LastName = "" }, "last_name is required"},
		{"blank last name", func(r *sampleRequest) { r.LastName = "   " }, "last_name must not be blank"},
		{"digits in last name", func(r *sampleRequest) { r.LastName = "Ivanov2" }, "last_name must contain only letters, spaces and hyphens"},
		{"bad checksum", func(r *sampleRequest) { r.Identifier = "11223344596" }, "identifier must be a valid 11-digit identifier"},
		{"bad phone", func(r *sampleRequest) { r.Phone = "12345" }, "phone must be a valid phone number"},
		{"unknown role", func(r *sampleRequest) { r.Role = "root" }, "role must be one of [admin, operator, citizen]"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			req := validSample()
			tc.mutate(&req)
			err := Validate(req)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
			s.Equal(tc.want, err.Error())
		})
	}
}

func (s *ValidatorSuite) TestEmptyOptionalPhoneIsSkipped() {
	req := validSample()
	req.Phone = ""
	s.NoError(Validate(req))
}

type taggedRequest struct {
	BirthDate string `json:"birth_date" validate:"required"`
	Region    string `json:"region_name,omitempty" validate:"max=3"`
}

func (s *ValidatorSuite) TestJSONNamesAreReported() {
	s.Run("json key", func() {
		err := Validate(taggedRequest{Region: "ok"})
		s.Equal("birth_date is required", err.Error())
	})

	s.Run("json key differs from the Go name", func() {
		err := Validate(taggedRequest{BirthDate: "2000-01-01", Region: "Северный"})
		s.Equal("region_name must be at most 3 characters", err.Error())
	})
}
