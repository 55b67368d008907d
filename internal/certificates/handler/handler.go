package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"welfare/internal/certificates/models"
	"welfare/internal/certificates/service"
	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	"welfare/pkg/platform/httputil"
	"welfare/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

type Service interface {
	Issue(ctx context.Context, cmd *service.CertificateCommand) (*models.Certificate, error)
	Update(ctx context.Context, certificateID id.CertificateID, cmd *service.CertificateCommand) (*models.Certificate, error)
	Get(ctx context.Context, certificateID id.CertificateID) (*models.Certificate, error)
	List(ctx context.Context, q service.ListQuery) ([]*models.Certificate, error)
	Annul(ctx context.Context, certificateID id.CertificateID) (*models.Certificate, error)
	Statistics(ctx context.Context) ([]models.TypeCount, error)
	CountInRange(ctx context.Context, start, end time.Time) (int, error)
	Count(ctx context.Context) (int, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/certificate-types", h.HandleTypes)
	r.Get("/certificates", h.HandleList)
	r.Get("/certificates/stats", h.HandleStatistics)
	r.Get("/certificates/count", h.HandleCount)
	r.Get("/certificates/{id}", h.HandleGet)
}

func (h *Handler) RegisterWrites(r chi.Router) {
	r.Post("/certificates", h.HandleIssue)
	r.Put("/certificates/{id}", h.HandleUpdate)
	r.Post("/certificates/{id}/annul", h.HandleAnnul)
}

func (h *Handler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	req, ok := httputil.Bind[CertificateRequest](w, r, h.logger)
	if !ok {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c, err := h.service.Issue(ctx, cmd)
	if err != nil {
		h.logger.ErrorContext(ctx, "issue certificate failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toCertificateResponse(c))
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	certificateID, ok := httputil.PathID(w, r, "id", id.ParseCertificateID)
	if !ok {
		return
	}
	req, ok := httputil.Bind[CertificateRequest](w, r, h.logger)
	if !ok {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c, err := h.service.Update(ctx, certificateID, cmd)
	if err != nil {
		h.logger.ErrorContext(ctx, "update certificate failed",
			"error", err,
			"certificate_id", certificateID,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCertificateResponse(c))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	certificateID, ok := httputil.PathID(w, r, "id", id.ParseCertificateID)
	if !ok {
		return
	}
	c, err := h.service.Get(ctx, certificateID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get certificate failed",
			"error", err,
			"certificate_id", certificateID,
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCertificateResponse(c))
}

// HandleList serves GET /certificates. Supported query parameters:
// citizen_id, type, from, to, q (holder name) and include_annulled.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q, err := parseListQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	cs, err := h.service.List(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "list certificates failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	out := make([]*CertificateResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCertificateResponse(c))
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) HandleAnnul(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	certificateID, ok := httputil.PathID(w, r, "id", id.ParseCertificateID)
	if !ok {
		return
	}
	c, err := h.service.Annul(ctx, certificateID)
	if err != nil {
		h.logger.ErrorContext(ctx, "annul certificate failed",
			"error", err,
			"certificate_id", certificateID,
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCertificateResponse(c))
}

func (h *Handler) HandleStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats, err := h.service.Statistics(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "certificate statistics failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	out := make([]TypeCountResponse, 0, len(stats))
	for _, tc := range stats {
		out = append(out, TypeCountResponse{Type: string(tc.Type), Title: tc.Type.Title(), Count: tc.Count})
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

// HandleCount serves GET /certificates/count. With both from and to it
// counts certificates issued in that range, otherwise all of them.
func (h *Handler) HandleCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	from, err := httputil.QueryDate(r, "from")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	to, err := httputil.QueryDate(r, "to")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var n int
	switch {
	case from != nil && to != nil:
		n, err = h.service.CountInRange(ctx, *from, *to)
	case from == nil && to == nil:
		n, err = h.service.Count(ctx)
	default:
		err = dErrors.New(dErrors.CodeBadRequest, "from and to must be given together")
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "count certificates failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CountResponse{Count: n})
}

func (h *Handler) HandleTypes(w http.ResponseWriter, _ *http.Request) {
	out := make([]TypeResponse, 0, len(models.Types))
	for _, t := range models.Types {
		out = append(out, TypeResponse{Type: string(t), Title: t.Title()})
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func parseListQuery(r *http.Request) (service.ListQuery, error) {
	var q service.ListQuery
	var err error
	if q.CitizenID, err = httputil.QueryOptionalID(r, "citizen_id", id.ParseCitizenID); err != nil {
		return q, err
	}
	if q.From, err = httputil.QueryDate(r, "from"); err != nil {
		return q, err
	}
	if q.To, err = httputil.QueryDate(r, "to"); err != nil {
		return q, err
	}
	if q.IncludeAnnulled, err = httputil.QueryBool(r, "include_annulled", false); err != nil {
		return q, err
	}
	q.Type = models.Type(r.URL.Query().Get("type"))
	q.Search = r.URL.Query().Get("q")
	return q, nil
}
