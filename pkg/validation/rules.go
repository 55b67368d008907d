package validation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"welfare/pkg/domain"
	pstrings "welfare/pkg/platform/strings"
)

// UniquenessLookup answers whether a value is already held by another record.
// excludeID is the record being edited; uuid.Nil means nothing is excluded.
type UniquenessLookup interface {
	Exists(ctx context.Context, value string, excludeID uuid.UUID) (bool, error)
}

// LookupFunc adapts a plain function to UniquenessLookup.
type LookupFunc func(ctx context.Context, value string, excludeID uuid.UUID) (bool, error)

func (f LookupFunc) Exists(ctx context.Context, value string, excludeID uuid.UUID) (bool, error) {
	return f(ctx, value, excludeID)
}

// ActiveCategoryLookup answers whether a citizen already holds an active grant
// in a category.
type ActiveCategoryLookup interface {
	HasActiveCategory(ctx context.Context, citizenID domain.CitizenID, categoryID domain.CategoryID) (bool, error)
}

// CheckIdentifierUnique fails when another citizen already holds the identifier.
// The identifier is compared in canonical form; one that cannot be canonicalized
// yields a format failure without consulting the lookup.
func CheckIdentifierUnique(ctx context.Context, lookup UniquenessLookup, identifier string, self domain.CitizenID) (Outcome, error) {
	canonical, err := CanonicalIdentifier(identifier)
	if err != nil {
		return Fail(KindFormat, "identifier must contain 11 digits"), nil
	}
	exists, err := lookup.Exists(ctx, canonical, uuid.UUID(self))
	if err != nil {
		return Outcome{}, fmt.Errorf("check identifier uniqueness: %w", err)
	}
	if exists {
		return Fail(KindConstraint, fmt.Sprintf("a citizen with identifier %s is already registered", FormatIdentifier(canonical))), nil
	}
	return Pass(), nil
}

// CheckUsernameUnique fails when another user holds the username under Unicode
// case folding. The lookup receives the folded key.
func CheckUsernameUnique(ctx context.Context, lookup UniquenessLookup, username string, self domain.UserID) (Outcome, error) {
	key := pstrings.FoldKey(username)
	if key == "" {
		return Fail(KindValidation, "username is required"), nil
	}
	exists, err := lookup.Exists(ctx, key, uuid.UUID(self))
	if err != nil {
		return Outcome{}, fmt.Errorf("check username uniqueness: %w", err)
	}
	if exists {
		return Fail(KindConstraint, fmt.Sprintf("username %q is already taken", username)), nil
	}
	return Pass(), nil
}

// CheckBenefitPeriod fails when an end date is present and falls before start.
// Equal dates are a valid one-day period.
func CheckBenefitPeriod(start time.Time, end *time.Time) Outcome {
	if end == nil {
		return Pass()
	}
	if end.Before(start) {
		return Fail(KindValidation, "benefit end date must not be before the start date")
	}
	return Pass()
}

// CheckNoDuplicateActiveCategory fails when the citizen already holds an active
// grant in the category. It guards new grants and active grants moved to
// another category; in-place edits skip it.
func CheckNoDuplicateActiveCategory(ctx context.Context, lookup ActiveCategoryLookup, citizenID domain.CitizenID, categoryID domain.CategoryID) (Outcome, error) {
	active, err := lookup.HasActiveCategory(ctx, citizenID, categoryID)
	if err != nil {
		return Outcome{}, fmt.Errorf("check active category: %w", err)
	}
	if active {
		return Fail(KindConstraint, "citizen already has an active benefit in this category"), nil
	}
	return Pass(), nil
}

// CheckCertificateIssueDate fails when the issue date is after now.
func CheckCertificateIssueDate(issueDate, now time.Time) Outcome {
	if !IsNotFutureDate(issueDate, now) {
		return Fail(KindValidation, "certificate issue date must not be in the future")
	}
	return Pass()
}
