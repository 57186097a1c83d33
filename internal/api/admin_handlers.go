package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/serene/pkg/httputil"
)

func (s *Server) ListJobs(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"jobs": s.jobs.List()})
}

// RunJob starts the job in background and returns at once
func (s *Server) RunJob(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	name := r.PathValue("name")
	if err := s.jobs.Run(context.WithoutCancel(r.Context()), name); err != nil {
		writeServiceError(w, logger, "run job", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusAccepted, map[string]any{"name": name, "status": "started"})
	logger.Info("job started manually", slog.String("job", name))
}
