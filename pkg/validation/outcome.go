package validation

import (
	dErrors "welfare/pkg/domain-errors"
)

// Kind classifies why a check failed.
type Kind string

const (
	KindNone       Kind = ""
	KindFormat     Kind = "format"
	KindValidation Kind = "validation"
	KindConstraint Kind = "constraint"
)

// Outcome is the result of a single business-rule check. A failing outcome
// always carries a Reason suitable for showing to the person who entered the data.
type Outcome struct {
	Valid  bool
	Reason string
	Kind   Kind
}

// Pass returns a successful outcome.
func Pass() Outcome {
	return Outcome{Valid: true}
}

// Fail returns a failing outcome of the given kind.
func Fail(kind Kind, reason string) Outcome {
	return Outcome{Valid: false, Reason: reason, Kind: kind}
}

// Err converts a failing outcome into a coded domain error and returns nil
// for a passing one.
func (o Outcome) Err() error {
	if o.Valid {
		return nil
	}
	switch o.Kind {
	case KindFormat:
		return dErrors.New(dErrors.CodeFormat, o.Reason)
	case KindConstraint:
		return dErrors.New(dErrors.CodeConstraintViolation, o.Reason)
	default:
		return dErrors.New(dErrors.CodeValidation, o.Reason)
	}
}

// FirstFailure returns the first failing outcome, or a passing one when all pass.
func FirstFailure(outcomes ...Outcome) Outcome {
	for _, o := range outcomes {
		if !o.Valid {
			return o
		}
	}
	return Pass()
}
