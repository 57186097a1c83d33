package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/serene/internal/service"
	"github.com/limbo/serene/internal/wellness"
	"github.com/limbo/serene/pkg/entity"
	"github.com/limbo/serene/pkg/httputil"
)

const requestTimeout = 10 * time.Second

type RegisterRequest struct {
	Name        string `json:"name"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
	Language    string `json:"language,omitempty"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type AnonymousRequest struct {
	Language string `json:"language,omitempty"`
}

type AuthResponse struct {
	UserID  string         `json:"uid"`
	Token   string         `json:"token"`
	Profile entity.Profile `json:"profile"`
}

type UpdateProfileRequest struct {
	DisplayName string  `json:"display_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Language    string  `json:"language,omitempty"`
}

type PushTokenRequest struct {
	Token string `json:"token"`
}

type RemindersRequest struct {
	Enabled bool `json:"enabled"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// decodeBody writes 400 itself and reports whether the handler may go on
func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, dst any) bool {
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Error(op + " error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

func requireUID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, false
	}
	return uid, true
}

func pathUUID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid id in path value", nil)
		return uuid.UUID{}, false
	}
	return id, true
}

// pagination reads limit and page query params, falling back to defLimit
func pagination(r *http.Request, defLimit, maxLimit int) (service.PaginationOpts, int, int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > maxLimit {
		limit = defLimit
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return service.PaginationOpts{Limit: limit, Offset: (page - 1) * limit}, page, limit
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) MoodTaxonomy(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"moods": wellness.Moods()})
}

func (s *Server) Helplines(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"helplines": wellness.Helplines()})
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if !decodeBody(w, r, logger, "registering", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:        req.Name,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Language:    req.Language,
	})
	if err != nil {
		writeServiceError(w, logger, "registering", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if !decodeBody(w, r, logger, "login", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		writeServiceError(w, logger, "login", err)
		return
	}
	s.writeAuthResponse(w, logger, http.StatusOK, user)
	logger.Info("successful login")
}

func (s *Server) AnonymousSignIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req AnonymousRequest
	// Empty body is allowed
	if r.ContentLength != 0 && !decodeBody(w, r, logger, "anonymous sign in", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.AnonymousSignIn(ctx, req.Language)
	if err != nil {
		writeServiceError(w, logger, "anonymous sign in", err)
		return
	}
	s.writeAuthResponse(w, logger, http.StatusCreated, user)
	logger.Info("anonymous user signed in")
}

func (s *Server) writeAuthResponse(w http.ResponseWriter, logger *slog.Logger, code int, user *entity.User) {
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, code, AuthResponse{
		UserID:  user.ID.String(),
		Token:   token,
		Profile: user.Profile(),
	})
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "get profile")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user.Profile())
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "update profile")
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if !decodeBody(w, r, logger, "update profile", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.UpdateProfile(ctx, uid, &service.UpdateProfileRequest{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Language:    req.Language,
	})
	if err != nil {
		writeServiceError(w, logger, "update profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user.Profile())
	logger.Info("profile updated")
}

func (s *Server) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "onboarding")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.userService.CompleteOnboarding(ctx, uid); err != nil {
		writeServiceError(w, logger, "onboarding", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) RegisterPushToken(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "push token")
	if !ok {
		return
	}
	var req PushTokenRequest
	if !decodeBody(w, r, logger, "push token", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.userService.RegisterPushToken(ctx, uid, req.Token); err != nil {
		writeServiceError(w, logger, "push token", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("push token registered")
}

func (s *Server) SetReminders(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "reminders")
	if !ok {
		return
	}
	var req RemindersRequest
	if !decodeBody(w, r, logger, "reminders", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.userService.SetReminders(ctx, uid, req.Enabled); err != nil {
		writeServiceError(w, logger, "reminders", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"reminder_enabled": req.Enabled})
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "logout")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.userService.Logout(ctx, uid); err != nil {
		writeServiceError(w, logger, "logout", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("push token dropped")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "account deletion")
	if !ok {
		return
	}
	var req DeleteAccountRequest
	if r.ContentLength != 0 && !decodeBody(w, r, logger, "account deletion", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.userService.DeleteAccount(ctx, uid, req.Password); err != nil {
		writeServiceError(w, logger, "account deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}
