package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"welfare/internal/benefits/models"
	"welfare/internal/benefits/service"
	id "welfare/pkg/domain"
	"welfare/pkg/platform/httputil"
	"welfare/pkg/requestcontext"
)

// maxExpiryWindowDays caps the days query parameter of /benefits/expiring.
const maxExpiryWindowDays = 366

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service is the benefits API consumed by the handler.
type Service interface {
	CreateCategory(ctx context.Context, d models.CategoryDetails) (*models.Category, error)
	UpdateCategory(ctx context.Context, categoryID id.CategoryID, d models.CategoryDetails) (*models.Category, error)
	GetCategory(ctx context.Context, categoryID id.CategoryID) (*models.Category, error)
	ListCategories(ctx context.Context, activeOnly bool) ([]*models.Category, error)
	DeactivateCategory(ctx context.Context, categoryID id.CategoryID) (*models.Category, error)
	ReactivateCategory(ctx context.Context, categoryID id.CategoryID) (*models.Category, error)
	CategoryStatistics(ctx context.Context) ([]models.CategoryCount, error)
	CitizenCountByCategory(ctx context.Context, categoryID id.CategoryID) (int, error)
	GrantBenefit(ctx context.Context, cmd *service.GrantCommand) (*models.Grant, error)
	UpdateGrant(ctx context.Context, grantID id.GrantID, cmd *service.UpdateGrantCommand) (*models.Grant, error)
	GetGrant(ctx context.Context, grantID id.GrantID) (*models.Grant, error)
	ListByCitizen(ctx context.Context, citizenID id.CitizenID) ([]*models.Grant, error)
	ListActiveByCitizen(ctx context.Context, citizenID id.CitizenID) ([]*models.Grant, error)
	DeactivateGrant(ctx context.Context, grantID id.GrantID) (*models.Grant, error)
	ExpiringGrants(ctx context.Context, days int) ([]*models.Grant, error)
}

type Handler struct {
	service      Service
	logger       *slog.Logger
	expiryWindow int
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger, expiryWindow: models.DefaultExpiryWindowDays}
}

// WithExpiryWindow sets the days used by /benefits/expiring when the query
// does not name a window.
func (h *Handler) WithExpiryWindow(days int) *Handler {
	if days > 0 {
		h.expiryWindow = min(days, maxExpiryWindowDays)
	}
	return h
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/benefit-categories", h.HandleListCategories)
	r.Get("/benefit-categories/stats", h.HandleCategoryStatistics)
	r.Get("/benefit-categories/{id}", h.HandleGetCategory)
	r.Get("/benefit-categories/{id}/citizen-count", h.HandleCitizenCount)
	r.Get("/benefits/expiring", h.HandleExpiring)
	r.Get("/benefits/{id}", h.HandleGetGrant)
	r.Get("/citizens/{id}/benefits", h.HandleListByCitizen)
}

func (h *Handler) RegisterWrites(r chi.Router) {
	r.Post("/benefit-categories", h.HandleCreateCategory)
	r.Put("/benefit-categories/{id}", h.HandleUpdateCategory)
	r.Post("/benefit-categories/{id}/deactivate", h.HandleDeactivateCategory)
	r.Post("/benefit-categories/{id}/reactivate", h.HandleReactivateCategory)
	r.Post("/benefits", h.HandleGrant)
	r.Put("/benefits/{id}", h.HandleUpdateGrant)
	r.Post("/benefits/{id}/deactivate", h.HandleDeactivateGrant)
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err, "request_id", requestcontext.RequestID(ctx))
	h.logger.ErrorContext(ctx, msg, args...)
	httputil.WriteError(w, err)
}

func (h *Handler) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.Bind[CategoryRequest](w, r, h.logger)
	if !ok {
		return
	}
	c, err := h.service.CreateCategory(ctx, req.Details())
	if err != nil {
		h.fail(ctx, w, "create category failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toCategoryResponse(c))
}

func (h *Handler) HandleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categoryID, ok := httputil.PathID(w, r, "id", id.ParseCategoryID)
	if !ok {
		return
	}
	req, ok := httputil.Bind[CategoryRequest](w, r, h.logger)
	if !ok {
		return
	}
	c, err := h.service.UpdateCategory(ctx, categoryID, req.Details())
	if err != nil {
		h.fail(ctx, w, "update category failed", err, "category_id", categoryID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCategoryResponse(c))
}

func (h *Handler) HandleGetCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categoryID, ok := httputil.PathID(w, r, "id", id.ParseCategoryID)
	if !ok {
		return
	}
	c, err := h.service.GetCategory(ctx, categoryID)
	if err != nil {
		h.fail(ctx, w, "get category failed", err, "category_id", categoryID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCategoryResponse(c))
}

func (h *Handler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	activeOnly, err := httputil.QueryBool(r, "active", false)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	cs, err := h.service.ListCategories(ctx, activeOnly)
	if err != nil {
		h.fail(ctx, w, "list categories failed", err)
		return
	}
	out := make([]*CategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCategoryResponse(c))
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) HandleDeactivateCategory(w http.ResponseWriter, r *http.Request) {
	h.handleCategoryTransition(w, r, "deactivate category failed", h.service.DeactivateCategory)
}

func (h *Handler) HandleReactivateCategory(w http.ResponseWriter, r *http.Request) {
	h.handleCategoryTransition(w, r, "reactivate category failed", h.service.ReactivateCategory)
}

func (h *Handler) handleCategoryTransition(w http.ResponseWriter, r *http.Request, msg string,
	change func(context.Context, id.CategoryID) (*models.Category, error),
) {
	ctx := r.Context()
	categoryID, ok := httputil.PathID(w, r, "id", id.ParseCategoryID)
	if !ok {
		return
	}
	c, err := change(ctx, categoryID)
	if err != nil {
		h.fail(ctx, w, msg, err, "category_id", categoryID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCategoryResponse(c))
}

func (h *Handler) HandleCategoryStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	counts, err := h.service.CategoryStatistics(ctx)
	if err != nil {
		h.fail(ctx, w, "category statistics failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCountResponses(counts))
}

func (h *Handler) HandleCitizenCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categoryID, ok := httputil.PathID(w, r, "id", id.ParseCategoryID)
	if !ok {
		return
	}
	n, err := h.service.CitizenCountByCategory(ctx, categoryID)
	if err != nil {
		h.fail(ctx, w, "citizen count failed", err, "category_id", categoryID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]int{"count": n})
}

func (h *Handler) HandleGrant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.Bind[GrantRequest](w, r, h.logger)
	if !ok {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	g, err := h.service.GrantBenefit(ctx, cmd)
	if err != nil {
		h.fail(ctx, w, "grant benefit failed", err, "citizen_id", cmd.CitizenID, "category_id", cmd.CategoryID)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toGrantResponse(g))
}

func (h *Handler) HandleUpdateGrant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	grantID, ok := httputil.PathID(w, r, "id", id.ParseGrantID)
	if !ok {
		return
	}
	req, ok := httputil.Bind[GrantRequest](w, r, h.logger)
	if !ok {
		return
	}
	cmd, err := req.ToUpdateCommand()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	g, err := h.service.UpdateGrant(ctx, grantID, cmd)
	if err != nil {
		h.fail(ctx, w, "update benefit failed", err, "grant_id", grantID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toGrantResponse(g))
}

func (h *Handler) HandleGetGrant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	grantID, ok := httputil.PathID(w, r, "id", id.ParseGrantID)
	if !ok {
		return
	}
	g, err := h.service.GetGrant(ctx, grantID)
	if err != nil {
		h.fail(ctx, w, "get benefit failed", err, "grant_id", grantID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toGrantResponse(g))
}

func (h *Handler) HandleDeactivateGrant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	grantID, ok := httputil.PathID(w, r, "id", id.ParseGrantID)
	if !ok {
		return
	}
	g, err := h.service.DeactivateGrant(ctx, grantID)
	if err != nil {
		h.fail(ctx, w, "deactivate benefit failed", err, "grant_id", grantID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toGrantResponse(g))
}

// HandleListByCitizen serves GET /citizens/{id}/benefits. With active=true
// only grants that are active and not yet ended are returned.
func (h *Handler) HandleListByCitizen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	citizenID, ok := httputil.PathID(w, r, "id", id.ParseCitizenID)
	if !ok {
		return
	}
	activeOnly, err := httputil.QueryBool(r, "active", false)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	list := h.service.ListByCitizen
	if activeOnly {
		list = h.service.ListActiveByCitizen
	}
	gs, err := list(ctx, citizenID)
	if err != nil {
		h.fail(ctx, w, "list benefits failed", err, "citizen_id", citizenID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toGrantResponses(gs))
}

func (h *Handler) HandleExpiring(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	days, err := httputil.QueryInt(r, "days", h.expiryWindow, maxExpiryWindowDays)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	gs, err := h.service.ExpiringGrants(ctx, days)
	if err != nil {
		h.fail(ctx, w, "list expiring benefits failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toGrantResponses(gs))
}
