package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	benefitmodels "welfare/internal/benefits/models"
	certmodels "welfare/internal/certificates/models"
	certservice "welfare/internal/certificates/service"
	citizenmodels "welfare/internal/citizens/models"
	"welfare/internal/eventlog"
	"welfare/internal/platform/metrics"
	"welfare/internal/reports/models"
	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	"welfare/pkg/platform/tracing"
	"welfare/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks CitizenSource,BenefitSource,CertificateSource,EventSource

type CitizenSource interface {
	Count(ctx context.Context) (int, error)
	FindByIDs(ctx context.Context, ids []id.CitizenID) ([]*citizenmodels.Citizen, error)
}

type BenefitSource interface {
	ListCurrent(ctx context.Context, categoryID *id.CategoryID) ([]*benefitmodels.Grant, error)
	ListCategories(ctx context.Context, activeOnly bool) ([]*benefitmodels.Category, error)
	CountBeneficiaries(ctx context.Context) (int, error)
	CategoryCitizenCounts(ctx context.Context) ([]benefitmodels.CategoryCount, error)
}

type CertificateSource interface {
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, q certservice.ListQuery) ([]*certmodels.Certificate, error)
}

type EventSource interface {
	Filter(ctx context.Context, f eventlog.Filter) ([]*eventlog.Entry, error)
}

type EventLogger interface {
	Log(ctx context.Context, e eventlog.Event)
}

// Service assembles read-only reports from the registry services. It never
// writes registry data; the only side effect is the report_generated event.
type Service struct {
	citizens     CitizenSource
	benefits     BenefitSource
	certificates CertificateSource
	eventLog     EventSource
	logger       *slog.Logger
	metrics      *metrics.Metrics
	events       EventLogger
	tracer       tracing.Tracer
}

func New(citizens CitizenSource, benefits BenefitSource, certificates CertificateSource, eventLog EventSource, opts ...Option) *Service {
	s := &Service{
		citizens:     citizens,
		benefits:     benefits,
		certificates: certificates,
		eventLog:     eventLog,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = tracing.NewNoop()
	}
	return s
}

// Summary gathers the three registry totals concurrently.
func (s *Service) Summary(ctx context.Context) (summary *models.Summary, err error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanReportSummary)
	defer func() { span.End(err) }()

	var out models.Summary
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.citizens.Count(gctx)
		out.Citizens = n
		return err
	})
	g.Go(func() error {
		n, err := s.benefits.CountBeneficiaries(gctx)
		out.Beneficiaries = n
		return err
	})
	g.Go(func() error {
		n, err := s.certificates.Count(gctx)
		out.Certificates = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build summary")
	}

	s.generated(ctx, models.ReportSummary, "Summary statistics viewed")
	return &out, nil
}

// BenefitsReport lists current grants, optionally narrowed to one category
// and to citizens of one region. Rows are ordered by holder name, then
// category.
func (s *Service) BenefitsReport(ctx context.Context, categoryID *id.CategoryID, regionID *id.RegionID) (rows []models.BenefitRow, err error) {
	attrs := make([]tracing.Attribute, 0, 2)
	if categoryID != nil {
		attrs = append(attrs, tracing.String(tracing.AttrCategoryID, categoryID.String()))
	}
	if regionID != nil {
		attrs = append(attrs, tracing.String(tracing.AttrRegionID, regionID.String()))
	}
	ctx, span := s.tracer.Start(ctx, tracing.SpanReportBenefits, attrs...)
	defer func() { span.End(err) }()

	categories, err := s.categoryIndex(ctx)
	if err != nil {
		return nil, err
	}
	if categoryID != nil {
		if _, ok := categories[*categoryID]; !ok {
			return nil, dErrors.New(dErrors.CodeNotFound, "benefit category not found")
		}
	}

	grants, err := s.benefits.ListCurrent(ctx, categoryID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load current benefits")
	}
	holders, err := s.holders(ctx, grantHolders(grants))
	if err != nil {
		return nil, err
	}

	rows = make([]models.BenefitRow, 0, len(grants))
	for _, g := range grants {
		c, ok := holders[g.CitizenID]
		if !ok {
			continue
		}
		if regionID != nil && (c.RegionID == nil || *c.RegionID != *regionID) {
			continue
		}
		row := models.BenefitRow{
			FullName:  c.FullName(),
			BirthDate: c.BirthDate,
			Address:   c.Address,
			Notes:     g.Description,
		}
		if cat, ok := categories[g.CategoryID]; ok {
			row.Category = cat.Name
			row.LegalBasis = cat.LegalBasis
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].FullName != rows[j].FullName {
			return rows[i].FullName < rows[j].FullName
		}
		return rows[i].Category < rows[j].Category
	})

	span.SetAttributes(tracing.Int(tracing.AttrRowCount, len(rows)))
	s.generated(ctx, models.ReportBenefits, fmt.Sprintf("Benefits report generated with %d rows", len(rows)))
	return rows, nil
}

// CertificatesReport lists non-annulled certificates issued in [from, to]
// together with their count.
func (s *Service) CertificatesReport(ctx context.Context, from, to time.Time) (report *models.CertificatesReport, err error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanReportCertificates)
	defer func() { span.End(err) }()

	if from.After(to) {
		return nil, dErrors.New(dErrors.CodeValidation, "start date must not be after end date")
	}
	certificates, err := s.certificates.List(ctx, certservice.ListQuery{From: &from, To: &to})
	if err != nil {
		return nil, err
	}

	ids := make([]id.CitizenID, 0, len(certificates))
	for _, c := range certificates {
		ids = append(ids, c.CitizenID)
	}
	holders, err := s.holders(ctx, ids)
	if err != nil {
		return nil, err
	}

	report = &models.CertificatesReport{From: from, To: to, Rows: make([]models.CertificateRow, 0, len(certificates))}
	for _, c := range certificates {
		row := models.CertificateRow{
			IssueDate: c.IssueDate,
			Type:      c.Type.Title(),
			Notes:     c.Notes,
			Annulled:  c.IsAnnulled(),
		}
		if holder, ok := holders[c.CitizenID]; ok {
			row.FullName = holder.FullName()
		}
		report.Rows = append(report.Rows, row)
	}
	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].IssueDate.Before(report.Rows[j].IssueDate)
	})
	report.Count = len(report.Rows)

	span.SetAttributes(tracing.Int(tracing.AttrRowCount, report.Count))
	s.generated(ctx, models.ReportCertificates, fmt.Sprintf("Certificates report generated for %s to %s with %d rows",
		from.Format(time.DateOnly), to.Format(time.DateOnly), report.Count))
	return report, nil
}

// CategoryChart returns one bar per active category, empty categories
// included.
func (s *Service) CategoryChart(ctx context.Context) (bars []models.CategoryBar, err error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanReportCategories)
	defer func() { span.End(err) }()

	counts, err := s.benefits.CategoryCitizenCounts(ctx)
	if err != nil {
		return nil, err
	}
	bars = make([]models.CategoryBar, 0, len(counts))
	for _, c := range counts {
		bars = append(bars, models.CategoryBar{Category: c.CategoryName, Citizens: c.Count})
	}
	span.SetAttributes(tracing.Int(tracing.AttrRowCount, len(bars)))
	s.generated(ctx, models.ReportCategories, "Category chart viewed")
	return bars, nil
}

// EventLog loads entries for export, newest first.
func (s *Service) EventLog(ctx context.Context, f eventlog.Filter) (entries []*eventlog.Entry, err error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanReportEventExport)
	defer func() { span.End(err) }()

	entries, err = s.eventLog.Filter(ctx, f)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(tracing.Int(tracing.AttrRowCount, len(entries)))
	s.generated(ctx, models.ReportEventLog, fmt.Sprintf("Event log exported with %d entries", len(entries)))
	return entries, nil
}

func (s *Service) categoryIndex(ctx context.Context) (map[id.CategoryID]*benefitmodels.Category, error) {
	categories, err := s.benefits.ListCategories(ctx, false)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load benefit categories")
	}
	out := make(map[id.CategoryID]*benefitmodels.Category, len(categories))
	for _, c := range categories {
		out[c.ID] = c
	}
	return out, nil
}

func (s *Service) holders(ctx context.Context, ids []id.CitizenID) (map[id.CitizenID]*citizenmodels.Citizen, error) {
	out := make(map[id.CitizenID]*citizenmodels.Citizen, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	citizens, err := s.citizens.FindByIDs(ctx, unique(ids))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load citizens")
	}
	for _, c := range citizens {
		out[c.ID] = c
	}
	return out, nil
}

// generated records that a report was produced.
func (s *Service) generated(ctx context.Context, report, description string) {
	s.metrics.IncReport(report)
	s.logger.InfoContext(ctx, string(eventlog.TypeReportGenerated),
		"report", report,
		"request_id", requestcontext.RequestID(ctx),
		"log_type", "audit",
	)
	if s.events == nil {
		return
	}
	s.events.Log(ctx, eventlog.Event{
		Type:        eventlog.TypeReportGenerated,
		Description: description,
	})
}

func grantHolders(grants []*benefitmodels.Grant) []id.CitizenID {
	ids := make([]id.CitizenID, 0, len(grants))
	for _, g := range grants {
		ids = append(ids, g.CitizenID)
	}
	return ids
}

func unique(ids []id.CitizenID) []id.CitizenID {
	seen := make(map[id.CitizenID]struct{}, len(ids))
	out := make([]id.CitizenID, 0, len(ids))
	for _, v := range ids {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
