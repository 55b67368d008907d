package handler

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"welfare/internal/eventlog"
	"welfare/internal/reports/export"
	"welfare/internal/reports/models"
	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	"welfare/pkg/platform/httputil"
	"welfare/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

type Service interface {
	Summary(ctx context.Context) (*models.Summary, error)
	BenefitsReport(ctx context.Context, categoryID *id.CategoryID, regionID *id.RegionID) ([]models.BenefitRow, error)
	CertificatesReport(ctx context.Context, from, to time.Time) (*models.CertificatesReport, error)
	CategoryChart(ctx context.Context) ([]models.CategoryBar, error)
	EventLog(ctx context.Context, f eventlog.Filter) ([]*eventlog.Entry, error)
}

const (
	formatJSON = "json"
	formatCSV  = "csv"
	formatXLSX = "xlsx"

	csvContentType = "text/csv; charset=utf-8"
)

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/reports/summary", h.HandleSummary)
	r.Get("/reports/benefits", h.HandleBenefits)
	r.Get("/reports/certificates", h.HandleCertificates)
	r.Get("/reports/categories", h.HandleCategories)
}

// RegisterAdmin mounts the event log export, which exposes client
// addresses of every user.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/reports/events.xlsx", h.HandleEventLogExport)
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	summary, err := h.service.Summary(ctx)
	if err != nil {
		h.fail(ctx, w, "summary report failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SummaryResponse{
		Citizens:      summary.Citizens,
		Beneficiaries: summary.Beneficiaries,
		Certificates:  summary.Certificates,
	})
}

// HandleBenefits serves GET /reports/benefits. Optional category_id and
// region_id narrow the rows; format is json (default), csv or xlsx.
func (h *Handler) HandleBenefits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	format, err := queryFormat(r, formatJSON, formatCSV, formatXLSX)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	categoryID, err := httputil.QueryOptionalID(r, "category_id", id.ParseCategoryID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	regionID, err := httputil.QueryOptionalID(r, "region_id", id.ParseRegionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	rows, err := h.service.BenefitsReport(ctx, categoryID, regionID)
	if err != nil {
		h.fail(ctx, w, "benefits report failed", err)
		return
	}

	filename := "benefits_" + requestcontext.Now(ctx).Format("20060102")
	switch format {
	case formatCSV:
		var buf bytes.Buffer
		if err := export.BenefitsCSV(&buf, rows); err != nil {
			h.fail(ctx, w, "render benefits csv failed", err)
			return
		}
		httputil.WriteAttachment(w, csvContentType, filename+".csv", buf.Bytes())
	case formatXLSX:
		body, err := export.BenefitsWorkbook(rows)
		if err != nil {
			h.fail(ctx, w, "render benefits workbook failed", err)
			return
		}
		httputil.WriteAttachment(w, export.XLSXContentType, filename+".xlsx", body)
	default:
		httputil.WriteJSON(w, http.StatusOK, toBenefitRows(rows))
	}
}

// HandleCertificates serves GET /reports/certificates. The range defaults
// to the month ending today; format is json (default) or csv.
func (h *Handler) HandleCertificates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	format, err := queryFormat(r, formatJSON, formatCSV)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	from, to, err := reportRange(ctx, r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	report, err := h.service.CertificatesReport(ctx, from, to)
	if err != nil {
		h.fail(ctx, w, "certificates report failed", err)
		return
	}

	if format == formatCSV {
		var buf bytes.Buffer
		if err := export.CertificatesCSV(&buf, report); err != nil {
			h.fail(ctx, w, "render certificates csv failed", err)
			return
		}
		filename := fmt.Sprintf("certificates_%s_%s.csv", from.Format("20060102"), to.Format("20060102"))
		httputil.WriteAttachment(w, csvContentType, filename, buf.Bytes())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCertificatesReport(report))
}

func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bars, err := h.service.CategoryChart(ctx)
	if err != nil {
		h.fail(ctx, w, "category chart failed", err)
		return
	}
	out := make([]CategoryBarResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, CategoryBarResponse{Category: b.Category, Citizens: b.Citizens})
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

// HandleEventLogExport serves the event log as a workbook. It accepts the
// same query parameters as GET /events.
func (h *Handler) HandleEventLogExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	f, err := eventlog.ParseFilter(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	entries, err := h.service.EventLog(ctx, f)
	if err != nil {
		h.fail(ctx, w, "event log export failed", err)
		return
	}
	body, err := export.EventLogWorkbook(entries)
	if err != nil {
		h.fail(ctx, w, "render event log workbook failed", err)
		return
	}
	filename := "EventLog_" + requestcontext.Now(ctx).Format("20060102_150405") + ".xlsx"
	httputil.WriteAttachment(w, export.XLSXContentType, filename, body)
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	h.logger.ErrorContext(ctx, msg, "error", err, "request_id", requestcontext.RequestID(ctx))
	httputil.WriteError(w, err)
}

func queryFormat(r *http.Request, allowed ...string) (string, error) {
	format := r.URL.Query().Get("format")
	if format == "" {
		return allowed[0], nil
	}
	for _, a := range allowed {
		if format == a {
			return format, nil
		}
	}
	return "", dErrors.Newf(dErrors.CodeBadRequest, "unsupported format %q", format)
}

// reportRange reads from and to, defaulting to one month back from today.
func reportRange(ctx context.Context, r *http.Request) (time.Time, time.Time, error) {
	from, err := httputil.QueryDate(r, "from")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := httputil.QueryDate(r, "to")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if to == nil {
		now := requestcontext.Now(ctx).UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		to = &today
	}
	if from == nil {
		start := to.AddDate(0, -1, 0)
		from = &start
	}
	return *from, *to, nil
}
