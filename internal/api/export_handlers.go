package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/serene/pkg/httputil"
)

const exportTimeout = 30 * time.Second

type exportFunc func(ctx context.Context, ownerID uuid.UUID, timezone string, w io.Writer) error

func (s *Server) ExportCSV(w http.ResponseWriter, r *http.Request) {
	s.export(w, r, "csv export", "text/csv; charset=utf-8", "mood-log.csv", s.exportService.ExportCSV)
}

func (s *Server) ExportReport(w http.ResponseWriter, r *http.Request) {
	s.export(w, r, "report export", "text/html; charset=utf-8", "", s.exportService.ExportHTML)
}

// export renders into a buffer first so failures still get a JSON error
func (s *Server) export(w http.ResponseWriter, r *http.Request, op, contentType, filename string, fn exportFunc) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, op)
	if !ok {
		return
	}
	tz := r.URL.Query().Get("tz")
	if tz == "" {
		tz = r.Header.Get(timezoneHeader)
	}
	ctx, cancel := context.WithTimeout(r.Context(), exportTimeout)
	defer cancel()
	var buf bytes.Buffer
	if err := fn(ctx, uid, tz, &buf); err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	if err := httputil.WriteFile(w, contentType, filename, &buf); err != nil {
		logger.Error(op + " error: writing response")
		return
	}
	logger.Info(op + " done")
}
