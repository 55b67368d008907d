package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"welfare/internal/citizens/models"
	"welfare/internal/citizens/service"
	id "welfare/pkg/domain"
	"welfare/pkg/platform/httputil"
	"welfare/pkg/requestcontext"
)

// Service defines the citizen registry operations used over HTTP.
type Service interface {
	Create(ctx context.Context, cmd *service.CitizenCommand) (*models.Citizen, error)
	Update(ctx context.Context, citizenID id.CitizenID, cmd *service.CitizenCommand) (*models.Citizen, error)
	Get(ctx context.Context, citizenID id.CitizenID) (*models.Citizen, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.Citizen, error)
	List(ctx context.Context, activeOnly bool) ([]*models.Citizen, error)
	SearchByName(ctx context.Context, text string) ([]*models.Citizen, error)
	ListByRegion(ctx context.Context, regionID id.RegionID) ([]*models.Citizen, error)
	Deactivate(ctx context.Context, citizenID id.CitizenID) (*models.Citizen, error)
	Reactivate(ctx context.Context, citizenID id.CitizenID) (*models.Citizen, error)
	CreateRegion(ctx context.Context, name string) (*models.Region, error)
	UpdateRegion(ctx context.Context, regionID id.RegionID, name string) (*models.Region, error)
	GetRegion(ctx context.Context, regionID id.RegionID) (*models.Region, error)
	ListRegions(ctx context.Context) ([]*models.Region, error)
	CitizenCountByRegion(ctx context.Context) ([]models.RegionCount, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts read routes on r. Writes go through RegisterWrites so the
// caller can put them behind a role check.
func (h *Handler) Register(r chi.Router) {
	r.Get("/citizens", h.HandleList)
	r.Get("/citizens/{id}", h.HandleGet)
	r.Get("/citizens/by-identifier/{identifier}", h.HandleGetByIdentifier)
	r.Get("/regions", h.HandleListRegions)
	r.Get("/regions/stats", h.HandleRegionStats)
	r.Get("/regions/{id}", h.HandleGetRegion)
}

func (h *Handler) RegisterWrites(r chi.Router) {
	r.Post("/citizens", h.HandleCreate)
	r.Put("/citizens/{id}", h.HandleUpdate)
	r.Post("/citizens/{id}/deactivate", h.HandleDeactivate)
	r.Post("/citizens/{id}/reactivate", h.HandleReactivate)
	r.Post("/regions", h.HandleCreateRegion)
	r.Put("/regions/{id}", h.HandleUpdateRegion)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.Bind[CitizenRequest](w, r, h.logger)
	if !ok {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	citizen, err := h.service.Create(ctx, cmd)
	if err != nil {
		h.logger.ErrorContext(ctx, "create citizen failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toCitizenResponse(citizen))
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	citizenID, ok := httputil.PathID(w, r, "id", id.ParseCitizenID)
	if !ok {
		return
	}

	req, ok := httputil.Bind[CitizenRequest](w, r, h.logger)
	if !ok {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	citizen, err := h.service.Update(ctx, citizenID, cmd)
	if err != nil {
		h.logger.ErrorContext(ctx, "update citizen failed", "error", err, "request_id", requestID, "citizen_id", citizenID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCitizenResponse(citizen))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	citizenID, ok := httputil.PathID(w, r, "id", id.ParseCitizenID)
	if !ok {
		return
	}
	citizen, err := h.service.Get(ctx, citizenID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get citizen failed", "error", err, "request_id", requestcontext.RequestID(ctx), "citizen_id", citizenID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCitizenResponse(citizen))
}

func (h *Handler) HandleGetByIdentifier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	citizen, err := h.service.GetByIdentifier(ctx, chi.URLParam(r, "identifier"))
	if err != nil {
		h.logger.ErrorContext(ctx, "get citizen by identifier failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCitizenResponse(citizen))
}

// HandleList serves GET /citizens. Query parameters, in precedence order:
// q searches by name, region_id filters by region, active=false includes
// deactivated citizens.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var (
		citizens []*models.Citizen
		err      error
	)
	regionID, err := httputil.QueryOptionalID(r, "region_id", id.ParseRegionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	activeOnly, err := httputil.QueryBool(r, "active", true)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	switch q := r.URL.Query().Get("q"); {
	case q != "":
		citizens, err = h.service.SearchByName(ctx, q)
	case regionID != nil:
		citizens, err = h.service.ListByRegion(ctx, *regionID)
	default:
		citizens, err = h.service.List(ctx, activeOnly)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "list citizens failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCitizenResponses(citizens))
}

func (h *Handler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, "deactivate citizen failed", h.service.Deactivate)
}

func (h *Handler) HandleReactivate(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, "reactivate citizen failed", h.service.Reactivate)
}

func (h *Handler) handleTransition(w http.ResponseWriter, r *http.Request, msg string,
	change func(context.Context, id.CitizenID) (*models.Citizen, error),
) {
	ctx := r.Context()
	citizenID, ok := httputil.PathID(w, r, "id", id.ParseCitizenID)
	if !ok {
		return
	}
	citizen, err := change(ctx, citizenID)
	if err != nil {
		h.logger.ErrorContext(ctx, msg, "error", err, "request_id", requestcontext.RequestID(ctx), "citizen_id", citizenID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCitizenResponse(citizen))
}

func (h *Handler) HandleCreateRegion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.Bind[RegionRequest](w, r, h.logger)
	if !ok {
		return
	}
	region, err := h.service.CreateRegion(ctx, req.Name)
	if err != nil {
		h.logger.ErrorContext(ctx, "create region failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toRegionResponse(region))
}

func (h *Handler) HandleUpdateRegion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	regionID, ok := httputil.PathID(w, r, "id", id.ParseRegionID)
	if !ok {
		return
	}

	req, ok := httputil.Bind[RegionRequest](w, r, h.logger)
	if !ok {
		return
	}
	region, err := h.service.UpdateRegion(ctx, regionID, req.Name)
	if err != nil {
		h.logger.ErrorContext(ctx, "update region failed", "error", err, "request_id", requestID, "region_id", regionID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toRegionResponse(region))
}

func (h *Handler) HandleGetRegion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	regionID, ok := httputil.PathID(w, r, "id", id.ParseRegionID)
	if !ok {
		return
	}
	region, err := h.service.GetRegion(ctx, regionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get region failed", "error", err, "request_id", requestcontext.RequestID(ctx), "region_id", regionID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toRegionResponse(region))
}

func (h *Handler) HandleListRegions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	regions, err := h.service.ListRegions(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list regions failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	out := make([]*RegionResponse, 0, len(regions))
	for _, region := range regions {
		out = append(out, toRegionResponse(region))
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) HandleRegionStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	counts, err := h.service.CitizenCountByRegion(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "region stats failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	out := make([]RegionCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, RegionCountResponse{Region: c.RegionName, Count: c.Count})
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}
