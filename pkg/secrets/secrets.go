// Package secrets hashes and verifies user passwords.
//
// New hashes are bcrypt. Accounts imported from the previous system carry an
// unsalted SHA-256 hex digest; those still verify, and Verify reports that the
// caller should replace them with a bcrypt hash.
package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	dErrors "welfare/pkg/domain-errors"
)

const legacyHashLength = sha256.Size * 2

// Hasher hashes passwords at a fixed bcrypt cost.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher. A cost of 0 selects bcrypt.DefaultCost; tests
// use bcrypt.MinCost.
func NewHasher(cost int) *Hasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Generate creates a random URL-safe secret, used for signing keys and
// one-off bootstrap passwords.
func Generate() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not generate secret")
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Hash creates a bcrypt hash of password. Blank passwords are rejected.
func (h *Hasher) Hash(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeValidation, "password is too long")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not hash password")
	}
	return string(hashed), nil
}

// Verify checks password against a stored hash. needsRehash is true when the
// stored hash is a legacy digest that matched.
func (h *Hasher) Verify(password, hash string) (needsRehash bool, err error) {
	if password == "" {
		return false, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}
	if IsLegacyHash(hash) {
		sum := sha256.Sum256([]byte(password))
		if subtle.ConstantTimeCompare([]byte(hex.EncodeToString(sum[:])), []byte(strings.ToLower(hash))) != 1 {
			return false, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
		}
		return true, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
		}
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "could not verify password")
	}
	return false, nil
}

// IsLegacyHash reports whether hash looks like a SHA-256 hex digest.
func IsLegacyHash(hash string) bool {
	if len(hash) != legacyHashLength {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}
