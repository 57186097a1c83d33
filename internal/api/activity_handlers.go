package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/limbo/serene/internal/service"
	"github.com/limbo/serene/pkg/httputil"
)

func (s *Server) GetActivityFlags(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "activity flags")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	flags, err := s.activityService.GetFlags(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "activity flags", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, flags)
}

func (s *Server) MarkBreathingUsed(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "breathing")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.activityService.MarkBreathingUsed(ctx, uid); err != nil {
		writeServiceError(w, logger, "breathing", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) SaveJournalEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "journal")
	if !ok {
		return
	}
	var req TextRequest
	if !decodeBody(w, r, logger, "journal", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	entry, err := s.activityService.SaveJournalEntry(ctx, uid, &service.JournalRequest{Text: req.Text})
	if err != nil {
		writeServiceError(w, logger, "journal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
}

func (s *Server) ListJournal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "journal list")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	entries, err := s.activityService.ListJournal(ctx, uid, limit)
	if err != nil {
		writeServiceError(w, logger, "journal list", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"entries": entries})
}

func (s *Server) SaveAffirmation(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "affirmation")
	if !ok {
		return
	}
	var req TextRequest
	if !decodeBody(w, r, logger, "affirmation", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.activityService.SaveAffirmation(ctx, uid, &service.AffirmationRequest{Text: req.Text}); err != nil {
		writeServiceError(w, logger, "affirmation", err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) ListAffirmations(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "affirmations list")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	res, err := s.activityService.ListAffirmations(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "affirmations list", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"affirmations": res})
}
