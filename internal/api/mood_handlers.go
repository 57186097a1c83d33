package api

import (
	"context"
	"net/http"

	"github.com/limbo/serene/internal/service"
	"github.com/limbo/serene/pkg/entity"
	"github.com/limbo/serene/pkg/httputil"
)

// Device zone for requests that carry no explicit one
const timezoneHeader = "X-Timezone"

type RecordMoodRequest struct {
	Mood     string `json:"mood"`
	Note     string `json:"note,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

type GetMoodsResponse struct {
	UserID string             `json:"uid"`
	Page   int                `json:"page"`
	Limit  int                `json:"limit"`
	Moods  []entity.MoodEntry `json:"moods"`
}

func (s *Server) RecordMood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "record mood")
	if !ok {
		return
	}
	var req RecordMoodRequest
	if !decodeBody(w, r, logger, "record mood", &req) {
		return
	}
	if req.Timezone == "" {
		req.Timezone = r.Header.Get(timezoneHeader)
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	entry, err := s.moodService.RecordMood(ctx, uid, &service.RecordMoodRequest{
		Mood:     req.Mood,
		Note:     req.Note,
		Timezone: req.Timezone,
	})
	if err != nil {
		writeServiceError(w, logger, "record mood", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("mood recorded")
}

func (s *Server) ListMoods(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "get moods")
	if !ok {
		return
	}
	opts, page, limit := pagination(r, 30, 500)
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	moods, err := s.moodService.ListMoods(ctx, uid, opts)
	if err != nil {
		writeServiceError(w, logger, "get moods", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetMoodsResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Moods:  moods,
	})
}

func (s *Server) DeleteMood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "mood deletion")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, logger, "mood deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.moodService.DeleteMood(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "mood deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("mood deleted")
}

func (s *Server) GetTrend(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "get trend")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	trend, err := s.moodService.GetTrend(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get trend", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, trend)
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "get stats")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	stats, err := s.moodService.GetStats(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) GetBadges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "get badges")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	badges, err := s.moodService.GetBadges(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get badges", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, badges)
}
