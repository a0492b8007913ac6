package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/hearth/sanctuary/internal/error_values"
	"github.com/hearth/sanctuary/internal/service"
	"github.com/hearth/sanctuary/pkg/httputil"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
	healthTimeout    = 2 * time.Second
)

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := s.db.Ping(ctx); err != nil {
			GetLoggerFromCtx(r.Context()).Error("health check: store ping failed", slog.String("error", err.Error()))
			httputil.WriteJSONResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.requestTimeout)
}

// requestLocation resolves the optional tz query parameter against the server default.
func (s *Server) requestLocation(r *http.Request) (*time.Location, error) {
	tz := r.URL.Query().Get("tz")
	if tz == "" {
		return s.location, nil
	}
	return time.LoadLocation(tz)
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue("id"))
}

func pagination(r *http.Request) (page, limit int, opts service.PaginationOpts) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	page, err = strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return page, limit, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// writeServiceError maps service sentinels onto status codes. Store outages
// answer 503 so clients know a retry may succeed.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrInvalidInput):
		logger.Error(op+" error: invalid input", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid input", err)
	case errors.Is(err, errorvalues.ErrThreadNotFound):
		logger.Error(op + " error: unexist thread")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "thread doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrReplyNotFound):
		logger.Error(op + " error: unexist reply")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "reply doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrAliasNotFound):
		logger.Error(op + " error: user has no alias")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "alias not set", nil)
	case errors.Is(err, errorvalues.ErrAliasExists):
		logger.Error(op + " error: alias taken")
		httputil.WriteErrorResponse(w, http.StatusConflict, "alias already taken", nil)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: resource has different owner")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "not allowed", nil)
	case errors.Is(err, errorvalues.ErrDoseAlreadyTaken):
		logger.Info(op + ": dose already logged today")
		httputil.WriteErrorResponse(w, http.StatusConflict, "dose already logged today", nil)
	case errors.Is(err, errorvalues.ErrStoreUnavailable):
		logger.Error(op+" error: store unavailable", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "storage temporarily unavailable, retry later", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func unauthorized(w http.ResponseWriter, logger *slog.Logger, op string) {
	logger.Error(op + " error: unauthorized")
	httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
}
