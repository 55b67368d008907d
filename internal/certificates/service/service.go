package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"welfare/internal/certificates/models"
	citizenmodels "welfare/internal/citizens/models"
	"welfare/internal/eventlog"
	"welfare/internal/platform/metrics"
	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	"welfare/pkg/platform/tx"
	limits "welfare/pkg/platform/validation"
	"welfare/pkg/requestcontext"
	"welfare/pkg/validation"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,CitizenDirectory,EventLogger

type Store interface {
	Create(ctx context.Context, c *models.Certificate) error
	Update(ctx context.Context, c *models.Certificate) error
	FindByID(ctx context.Context, certificateID id.CertificateID) (*models.Certificate, error)
	List(ctx context.Context, f models.Filter) ([]*models.Certificate, error)
	CountByType(ctx context.Context) (map[models.Type]int, error)
	CountInRange(ctx context.Context, from, to time.Time) (int, error)
	Count(ctx context.Context) (int, error)
}

// CitizenDirectory resolves certificate holders and name searches.
type CitizenDirectory interface {
	FindByID(ctx context.Context, citizenID id.CitizenID) (*citizenmodels.Citizen, error)
	SearchByName(ctx context.Context, text string) ([]*citizenmodels.Citizen, error)
}

type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventLogger interface {
	Log(ctx context.Context, e eventlog.Event)
}

type Service struct {
	store    Store
	citizens CitizenDirectory
	logger   *slog.Logger
	metrics  *metrics.Metrics
	events   EventLogger
	tx       StoreTx
}

func New(store Store, citizens CitizenDirectory, opts ...Option) *Service {
	s := &Service{store: store, citizens: citizens}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tx == nil {
		s.tx = tx.NewMemory()
	}
	return s
}

// Issue registers a certificate for an existing citizen. The issue date may
// not lie in the future.
func (s *Service) Issue(ctx context.Context, cmd *CertificateCommand) (*models.Certificate, error) {
	var certificate *models.Certificate
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		fields, err := s.prepare(txCtx, cmd)
		if err != nil {
			return err
		}
		now := requestcontext.Now(txCtx)
		c := &models.Certificate{
			ID:        id.CertificateID(uuid.New()),
			CitizenID: fields.CitizenID,
			Type:      fields.Type,
			IssueDate: fields.IssueDate,
			Notes:     fields.Notes,
			IssuedBy:  requestcontext.UserID(txCtx),
			Status:    models.StatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.store.Create(txCtx, c); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue certificate")
		}
		certificate = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncRecordCreated("certificate")
	s.logEvent(ctx, eventlog.TypeCertificateIssued, certificate,
		fmt.Sprintf("%s issued to citizen %s", certificate.Type.Title(), certificate.CitizenID))
	return certificate, nil
}

// Update corrects an existing certificate. Annulled certificates are frozen.
func (s *Service) Update(ctx context.Context, certificateID id.CertificateID, cmd *CertificateCommand) (*models.Certificate, error) {
	if err := requireCertificateID(certificateID); err != nil {
		return nil, err
	}
	var certificate *models.Certificate
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.store.FindByID(txCtx, certificateID)
		if err != nil {
			return wrapCertificateErr(err, "failed to load certificate")
		}
		if c.IsAnnulled() {
			return dErrors.New(dErrors.CodeConflict, "an annulled certificate cannot be changed")
		}
		fields, err := s.prepare(txCtx, cmd)
		if err != nil {
			return err
		}
		c.CitizenID = fields.CitizenID
		c.Type = fields.Type
		c.IssueDate = fields.IssueDate
		c.Notes = fields.Notes
		c.UpdatedAt = requestcontext.Now(txCtx)
		if err := s.store.Update(txCtx, c); err != nil {
			return wrapCertificateErr(err, "failed to update certificate")
		}
		certificate = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logEvent(ctx, eventlog.TypeCertificateUpdated, certificate,
		fmt.Sprintf("%s of citizen %s updated", certificate.Type.Title(), certificate.CitizenID))
	return certificate, nil
}

func (s *Service) Get(ctx context.Context, certificateID id.CertificateID) (*models.Certificate, error) {
	if err := requireCertificateID(certificateID); err != nil {
		return nil, err
	}
	c, err := s.store.FindByID(ctx, certificateID)
	if err != nil {
		return nil, wrapCertificateErr(err, "failed to load certificate")
	}
	return c, nil
}

// List returns certificates matching q, latest issue date first.
func (s *Service) List(ctx context.Context, q ListQuery) ([]*models.Certificate, error) {
	f := models.Filter{
		Type:            q.Type,
		IncludeAnnulled: q.IncludeAnnulled,
	}
	if f.Type != "" && !f.Type.IsValid() {
		return nil, dErrors.Newf(dErrors.CodeValidation, "unknown certificate type %q", q.Type)
	}
	from, to := dayPtr(q.From), dayPtr(q.To)
	if from != nil && to != nil && from.After(*to) {
		return nil, dErrors.New(dErrors.CodeValidation, "start date must not be after end date")
	}
	f.From, f.To = from, to

	if q.CitizenID != nil {
		f.CitizenIDs = []id.CitizenID{*q.CitizenID}
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		ids, err := s.holdersMatching(ctx, search)
		if err != nil {
			return nil, err
		}
		f.CitizenIDs = intersect(f.CitizenIDs, ids)
	}

	cs, err := s.store.List(ctx, f)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list certificates")
	}
	return cs, nil
}

// Annul marks a certificate as void. It stays listed in audit views.
func (s *Service) Annul(ctx context.Context, certificateID id.CertificateID) (*models.Certificate, error) {
	if err := requireCertificateID(certificateID); err != nil {
		return nil, err
	}
	var certificate *models.Certificate
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.store.FindByID(txCtx, certificateID)
		if err != nil {
			return wrapCertificateErr(err, "failed to load certificate")
		}
		if err := c.Annul(requestcontext.Now(txCtx)); err != nil {
			return dErrors.New(dErrors.CodeConflict, err.Error())
		}
		if err := s.store.Update(txCtx, c); err != nil {
			return wrapCertificateErr(err, "failed to annul certificate")
		}
		certificate = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncStatusChange("certificate", string(certificate.Status))
	s.logEvent(ctx, eventlog.TypeCertificateAnnulled, certificate,
		fmt.Sprintf("%s of citizen %s annulled", certificate.Type.Title(), certificate.CitizenID))
	return certificate, nil
}

// Statistics counts certificates per type in display order. Types with no
// certificates are omitted.
func (s *Service) Statistics(ctx context.Context) ([]models.TypeCount, error) {
	counts, err := s.store.CountByType(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count certificates")
	}
	out := make([]models.TypeCount, 0, len(counts))
	for _, typ := range models.Types {
		if n := counts[typ]; n > 0 {
			out = append(out, models.TypeCount{Type: typ, Count: n})
		}
	}
	return out, nil
}

// CountInRange counts certificates issued between start and end inclusive.
func (s *Service) CountInRange(ctx context.Context, start, end time.Time) (int, error) {
	start, end = dayOf(start), dayOf(end)
	if start.After(end) {
		return 0, dErrors.New(dErrors.CodeValidation, "start date must not be after end date")
	}
	n, err := s.store.CountInRange(ctx, start, end)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count certificates")
	}
	return n, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count certificates")
	}
	return n, nil
}

// prepare validates cmd and returns a normalized copy.
func (s *Service) prepare(ctx context.Context, cmd *CertificateCommand) (*CertificateCommand, error) {
	if cmd == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "certificate is required")
	}
	if cmd.CitizenID.IsNil() {
		return nil, s.reject(validation.Fail(validation.KindValidation, "citizen is required"))
	}
	if !cmd.Type.IsValid() {
		return nil, s.reject(validation.Fail(validation.KindValidation, "certificate type is required"))
	}
	if cmd.IssueDate.IsZero() {
		return nil, s.reject(validation.Fail(validation.KindValidation, "issue date is required"))
	}
	out := &CertificateCommand{
		CitizenID: cmd.CitizenID,
		Type:      cmd.Type,
		IssueDate: dayOf(cmd.IssueDate),
		Notes:     strings.TrimSpace(cmd.Notes),
	}
	if outcome := validation.CheckCertificateIssueDate(out.IssueDate, requestcontext.Now(ctx)); !outcome.Valid {
		return nil, s.reject(outcome)
	}
	if err := limits.CheckStringLength("notes", out.Notes, limits.MaxTextLength); err != nil {
		return nil, err
	}
	if _, err := s.citizens.FindByID(ctx, out.CitizenID); err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) || isNotFound(err) {
			return nil, dErrors.New(dErrors.CodeNotFound, "citizen not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load citizen")
	}
	return out, nil
}

func (s *Service) holdersMatching(ctx context.Context, search string) ([]id.CitizenID, error) {
	if err := limits.CheckStringLength("search text", search, limits.MaxSearchLength); err != nil {
		return nil, err
	}
	citizens, err := s.citizens.SearchByName(ctx, search)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search citizens")
	}
	ids := make([]id.CitizenID, 0, len(citizens))
	for _, c := range citizens {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func (s *Service) reject(outcome validation.Outcome) error {
	s.metrics.IncValidationFailure(string(outcome.Kind))
	return outcome.Err()
}

func (s *Service) logEvent(ctx context.Context, typ eventlog.Type, c *models.Certificate, description string) {
	s.logger.InfoContext(ctx, string(typ),
		"certificate_id", c.ID,
		"citizen_id", c.CitizenID,
		"request_id", requestcontext.RequestID(ctx),
		"log_type", "audit",
	)
	if s.events == nil {
		return
	}
	s.events.Log(ctx, eventlog.Event{
		Type:        typ,
		Description: description,
		EntityType:  eventlog.EntityCertificate,
		EntityID:    uuid.UUID(c.ID),
	})
}

// intersect keeps the ids of b that also appear in a. A nil a means no
// restriction.
func intersect(a, b []id.CitizenID) []id.CitizenID {
	if a == nil {
		return b
	}
	keep := make(map[id.CitizenID]struct{}, len(a))
	for _, v := range a {
		keep[v] = struct{}{}
	}
	out := make([]id.CitizenID, 0, len(b))
	for _, v := range b {
		if _, ok := keep[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := dayOf(*t)
	return &d
}
