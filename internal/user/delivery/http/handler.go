package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/growshop/internal/user/domain"
	"github.com/tair/growshop/internal/user/usecase/command"
	"github.com/tair/growshop/internal/user/usecase/query"
	"github.com/tair/growshop/pkg/auth"
	"github.com/tair/growshop/pkg/logger"
	"github.com/tair/growshop/pkg/metrics"
)

// UserHandler handles HTTP requests for authentication
type UserHandler struct {
	registerHandler *command.RegisterUserHandler
	loginHandler    *command.LoginUserHandler
	getUserHandler  *query.GetUserHandler

	sessions *auth.SessionManager
	metrics  *metrics.HTTPMetrics
	logins   *prometheus.CounterVec
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	registerHandler *command.RegisterUserHandler,
	loginHandler *command.LoginUserHandler,
	getUserHandler *query.GetUserHandler,
	sessions *auth.SessionManager,
	reg prometheus.Registerer,
) *UserHandler {
	logins := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "growshop",
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Login attempts by result",
		},
		[]string{"result"},
	)
	reg.MustRegister(logins)

	return &UserHandler{
		registerHandler: registerHandler,
		loginHandler:    loginHandler,
		getUserHandler:  getUserHandler,
		sessions:        sessions,
		metrics:         metrics.NewHTTPMetrics("auth", reg),
		logins:          logins,
	}
}

// RegisterRoutes registers auth routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/auth/register", h.metrics.Wrap("/api/auth/register", h.Register)).Methods("POST")
	router.HandleFunc("/api/auth/login", h.metrics.Wrap("/api/auth/login", h.Login)).Methods("POST")
	router.HandleFunc("/api/auth/logout", h.metrics.Wrap("/api/auth/logout", h.Logout)).Methods("POST")
	router.HandleFunc("/api/auth/me", h.metrics.Wrap("/api/auth/me", h.Me)).Methods("GET")
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.registerHandler.Handle(r.Context(), command.RegisterUserCommand{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		status := StatusForError(err)
		if status >= http.StatusInternalServerError {
			logger.Error(r.Context()).Err(err).Msg("Failed to register user")
		}
		h.respondError(w, status, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"user": user.Public()})
}

// Login handles POST /api/auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.loginHandler.Handle(r.Context(), command.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		status := StatusForError(err)
		switch {
		case status == http.StatusUnauthorized:
			h.logins.WithLabelValues("rejected").Inc()
		case status >= http.StatusInternalServerError:
			h.logins.WithLabelValues("error").Inc()
			logger.Error(r.Context()).Err(err).Msg("Login failed")
		}
		h.respondError(w, status, err.Error())
		return
	}

	if err := h.sessions.SetCookie(w, auth.Session{UserID: user.ID, Email: user.Email}); err != nil {
		h.logins.WithLabelValues("error").Inc()
		logger.Error(r.Context()).Err(err).Str("user_id", user.ID).Msg("Failed to issue session")
		h.respondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	h.logins.WithLabelValues("ok").Inc()
	logger.Info(r.Context()).Str("user_id", user.ID).Msg("User logged in")
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"user": user.Public()})
}

// Logout handles POST /api/auth/logout
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	h.respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Me handles GET /api/auth/me. Anything short of a valid session naming an
// existing user answers {"user": null}.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		h.respondJSON(w, http.StatusOK, map[string]interface{}{"user": nil})
		return
	}

	user, err := h.getUserHandler.Handle(r.Context(), query.GetUserQuery{ID: session.UserID})
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			logger.Error(r.Context()).Err(err).Str("user_id", session.UserID).Msg("Failed to load session user")
		}
		h.respondJSON(w, http.StatusOK, map[string]interface{}{"user": nil})
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"user": user.Public()})
}

// StatusForError maps user errors to HTTP status codes
func StatusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrMissingCredentials),
		errors.Is(err, domain.ErrPasswordTooShort):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondJSON sends a JSON response
func (h *UserHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *UserHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
