package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/serene/internal/error_values"
	"github.com/limbo/serene/pkg/httputil"
)

// writeServiceError maps service sentinels to status codes. Unknown errors are logged and hidden.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: validation", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrInvalidTZ):
		logger.Error(op + " error: unknown time zone")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown time zone", nil)
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		logger.Error(op + " error: wrong credentials")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
	case errors.Is(err, errorvalues.ErrUserExists):
		logger.Error(op + " error: existed user")
		httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(op + " error: unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrMoodNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
		// Foreign entries are reported as missing
		logger.Error(op+" error: unexist or foreign entry", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, "entry doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrPostNotFound):
		logger.Error(op + " error: unexist post")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "post doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrUnknownJob):
		logger.Error(op + " error: unknown job")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "job doesn't exist", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}
