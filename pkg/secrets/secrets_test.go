package secrets

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	dErrors "welfare/pkg/domain-errors"
)

// SecretsSuite covers password hashing and legacy digest verification.
//
// Justification: login depends on both hash formats verifying, and a legacy
// match must be reported so the caller can upgrade it.
type SecretsSuite struct {
	suite.Suite
	hasher *Hasher
}

func TestSecretsSuite(t *testing.T) {
	suite.Run(t, new(SecretsSuite))
}

func (s *SecretsSuite) SetupTest() {
	s.hasher = NewHasher(bcrypt.MinCost)
}

func legacy(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (s *SecretsSuite) TestHash() {
	s.Run("blank password is rejected", func() {
		_, err := s.hasher.Hash("   ")
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("hash verifies", func() {
		hash, err := s.hasher.Hash("пароль1")
		s.Require().NoError(err)
		s.False(IsLegacyHash(hash))

		rehash, err := s.hasher.Verify("пароль1", hash)
		s.NoError(err)
		s.False(rehash)
	})

	s.Run("over-long password is a validation error", func() {
		_, err := s.hasher.Hash(strings.Repeat("x", 73))
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *SecretsSuite) TestVerify() {
	s.Run("wrong password", func() {
		hash, err := s.hasher.Hash("secret")
		s.Require().NoError(err)
		_, err = s.hasher.Verify("Secret", hash)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("legacy digest matches and asks for rehash", func() {
		rehash, err := s.hasher.Verify("admin", legacy("admin"))
		s.NoError(err)
		s.True(rehash)
	})

	s.Run("legacy digest is case-insensitive", func() {
		_, err := s.hasher.Verify("admin", strings.ToUpper(legacy("admin")))
		s.NoError(err)
	})

	s.Run("legacy digest mismatch", func() {
		_, err := s.hasher.Verify("admin1", legacy("admin"))
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("empty password never verifies", func() {
		_, err := s.hasher.Verify("", legacy(""))
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("garbage hash is internal", func() {
		_, err := s.hasher.Verify("x", "not-a-hash")
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func (s *SecretsSuite) TestGenerate() {
	a, err := Generate()
	s.Require().NoError(err)
	b, err := Generate()
	s.Require().NoError(err)
	s.NotEqual(a, b)
	s.Len(a, 43)
}
