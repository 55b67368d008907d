package eventlog

import (
	"context"

	dErrors "welfare/pkg/domain-errors"
	"welfare/pkg/platform/validation"
)

// Service answers event log queries.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Filter returns entries matching f, newest first.
func (s *Service) Filter(ctx context.Context, f Filter) ([]*Entry, error) {
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return nil, dErrors.New(dErrors.CodeValidation, "from must not be after to")
	}
	if f.Limit <= 0 || f.Limit > validation.MaxListLimit {
		f.Limit = validation.MaxListLimit
	}
	entries, err := s.store.Filter(ctx, f)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load event log")
	}
	return entries, nil
}

// Latest returns the n most recent entries; n <= 0 means the default of 100.
func (s *Service) Latest(ctx context.Context, n int) ([]*Entry, error) {
	if n <= 0 {
		n = validation.DefaultLatestEvents
	}
	return s.Filter(ctx, Filter{Limit: n})
}
