package eventlog

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	id "welfare/pkg/domain"
	"welfare/pkg/platform/httputil"
	"welfare/pkg/platform/validation"
	"welfare/pkg/requestcontext"
)

// Querier is the read side used by the HTTP handler.
type Querier interface {
	Filter(ctx context.Context, f Filter) ([]*Entry, error)
	Latest(ctx context.Context, n int) ([]*Entry, error)
}

type Handler struct {
	service Querier
	logger  *slog.Logger
}

func NewHandler(service Querier, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/events", h.HandleFilter)
	r.Get("/events/latest", h.HandleLatest)
}

type EntryResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id,omitempty"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	EntityType  string    `json:"entity_type,omitempty"`
	EntityID    string    `json:"entity_id,omitempty"`
	IPAddress   string    `json:"ip_address,omitempty"`
	Device      string    `json:"device"`
	CreatedAt   time.Time `json:"created_at"`
}

func toEntryResponse(e *Entry) EntryResponse {
	resp := EntryResponse{
		ID:          e.ID.String(),
		Type:        string(e.Type),
		Description: e.Description,
		EntityType:  string(e.EntityType),
		IPAddress:   e.IPAddress,
		Device:      e.Device(),
		CreatedAt:   e.CreatedAt,
	}
	if e.UserID != nil {
		resp.UserID = e.UserID.String()
	}
	if e.EntityID != nil {
		resp.EntityID = e.EntityID.String()
	}
	return resp
}

func toEntryResponses(entries []*Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}

// ParseFilter reads user_id, from, to, type and limit query parameters.
// The to date includes the whole day.
func ParseFilter(r *http.Request) (Filter, error) {
	var f Filter
	userID, err := httputil.QueryOptionalID(r, "user_id", id.ParseUserID)
	if err != nil {
		return f, err
	}
	f.UserID = userID

	if f.From, err = httputil.QueryDate(r, "from"); err != nil {
		return f, err
	}
	to, err := httputil.QueryDate(r, "to")
	if err != nil {
		return f, err
	}
	if to != nil {
		end := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		f.To = &end
	}
	f.Type = Type(r.URL.Query().Get("type"))

	if f.Limit, err = httputil.QueryInt(r, "limit", validation.MaxListLimit, validation.MaxListLimit); err != nil {
		return f, err
	}
	return f, nil
}

func (h *Handler) HandleFilter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	f, err := ParseFilter(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	entries, err := h.service.Filter(ctx, f)
	if err != nil {
		h.logger.ErrorContext(ctx, "filter event log failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toEntryResponses(entries))
}

func (h *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	n, err := httputil.QueryInt(r, "limit", validation.DefaultLatestEvents, validation.MaxListLimit)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	entries, err := h.service.Latest(ctx, n)
	if err != nil {
		h.logger.ErrorContext(ctx, "latest events failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toEntryResponses(entries))
}
