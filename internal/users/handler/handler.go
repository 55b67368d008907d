package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"welfare/internal/users/models"
	"welfare/internal/users/service"
	id "welfare/pkg/domain"
	"welfare/pkg/platform/httputil"
	"welfare/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

type Service interface {
	Create(ctx context.Context, cmd *service.UserCommand) (*models.User, error)
	Update(ctx context.Context, userID id.UserID, cmd *service.UserCommand) (*models.User, error)
	Get(ctx context.Context, userID id.UserID) (*models.User, error)
	List(ctx context.Context, activeOnly bool) ([]*models.User, error)
	ListByRole(ctx context.Context, role models.Role) ([]*models.User, error)
	Deactivate(ctx context.Context, userID id.UserID) (*models.User, error)
	Reactivate(ctx context.Context, userID id.UserID) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.Session, *models.User, error)
	Logout(ctx context.Context) error
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterPublic mounts the routes reachable without a session.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
}

// RegisterSession mounts the routes of the logged-in user.
func (h *Handler) RegisterSession(r chi.Router) {
	r.Post("/auth/logout", h.HandleLogout)
	r.Get("/auth/me", h.HandleMe)
}

// RegisterAdmin mounts account management.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/users", h.HandleList)
	r.Get("/users/by-role/{role}", h.HandleListByRole)
	r.Get("/users/{id}", h.HandleGet)
	r.Post("/users", h.HandleCreate)
	r.Put("/users/{id}", h.HandleUpdate)
	r.Post("/users/{id}/deactivate", h.HandleDeactivate)
	r.Post("/users/{id}/reactivate", h.HandleReactivate)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	req, ok := httputil.Bind[LoginRequest](w, r, h.logger)
	if !ok {
		return
	}
	session, user, err := h.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, LoginResponse{
		AccessToken: session.Token,
		TokenType:   "Bearer",
		ExpiresAt:   session.ExpiresAt,
		User:        toUserResponse(user),
	})
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.service.Logout(ctx); err != nil {
		h.logger.ErrorContext(ctx, "logout failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := httputil.RequireUserID(ctx, h.logger, requestcontext.RequestID(ctx))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	u, err := h.service.Get(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "load current user failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	activeOnly, err := httputil.QueryBool(r, "active", false)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	us, err := h.service.List(ctx, activeOnly)
	if err != nil {
		h.logger.ErrorContext(ctx, "list users failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toUserResponses(us))
}

func (h *Handler) HandleListByRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	us, err := h.service.ListByRole(ctx, models.Role(chi.URLParam(r, "role")))
	if err != nil {
		h.logger.ErrorContext(ctx, "list users by role failed", "error", err, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toUserResponses(us))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, "get user failed", h.service.Get)
}

func (h *Handler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, "deactivate user failed", h.service.Deactivate)
}

func (h *Handler) HandleReactivate(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, "reactivate user failed", h.service.Reactivate)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	req, ok := httputil.Bind[UserRequest](w, r, h.logger)
	if !ok {
		return
	}
	u, err := h.service.Create(ctx, req.ToCommand())
	if err != nil {
		h.logger.ErrorContext(ctx, "create user failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toUserResponse(u))
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID, ok := httputil.PathID(w, r, "id", id.ParseUserID)
	if !ok {
		return
	}
	req, ok := httputil.Bind[UserRequest](w, r, h.logger)
	if !ok {
		return
	}
	u, err := h.service.Update(ctx, userID, req.ToCommand())
	if err != nil {
		h.logger.ErrorContext(ctx, "update user failed", "error", err, "user_id", userID, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

// withUser runs a single-user operation addressed by the {id} path value.
func (h *Handler) withUser(w http.ResponseWriter, r *http.Request, msg string, op func(context.Context, id.UserID) (*models.User, error)) {
	ctx := r.Context()
	userID, ok := httputil.PathID(w, r, "id", id.ParseUserID)
	if !ok {
		return
	}
	u, err := op(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, msg, "error", err, "user_id", userID, "request_id", requestcontext.RequestID(ctx))
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toUserResponse(u))
}
