package api

import (
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/hearth/sanctuary/internal/error_values"
	"github.com/hearth/sanctuary/pkg/entity"
	"github.com/hearth/sanctuary/pkg/httputil"
)

type RecordDoseRequest struct {
	TakenAt *time.Time `json:"taken_at,omitempty"`
}

type GetDosesResponse struct {
	UserID string             `json:"uid"`
	Doses  []entity.DoseEvent `json:"doses"`
}

// RecordDose refuses a second dose on the same local day. The engine itself
// tolerates duplicates, so this is the only place the guard lives.
func (s *Server) RecordDose(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		unauthorized(w, logger, "record dose")
		return
	}
	loc, err := s.requestLocation(r)
	if err != nil {
		logger.Error("record dose error: invalid tz")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid tz parameter", nil)
		return
	}
	var req RecordDoseRequest
	if r.ContentLength != 0 {
		if err = httputil.DecodeJSON(r, &req); err != nil {
			logger.Error("record dose error: invalid request body")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
	}
	ref := s.now().In(loc)
	if req.TakenAt != nil {
		ref = req.TakenAt.In(loc)
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	taken, err := s.adherenceService.TakenToday(ctx, uid, ref)
	if err != nil {
		writeServiceError(w, logger, "record dose", err)
		return
	}
	if taken {
		writeServiceError(w, logger, "record dose", errorvalues.ErrDoseAlreadyTaken)
		return
	}
	event, err := s.adherenceService.RecordDose(ctx, uid, req.TakenAt)
	if err != nil {
		writeServiceError(w, logger, "record dose", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, event)
	logger.Info("dose recorded", slog.String("dose_id", event.ID.String()))
}

func (s *Server) ListDoses(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		unauthorized(w, logger, "list doses")
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	doses, err := s.adherenceService.ListDoses(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "list doses", err)
		return
	}
	if doses == nil {
		doses = []entity.DoseEvent{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetDosesResponse{
		UserID: uid.String(),
		Doses:  doses,
	})
}

// GetAdherence answers for ?date=YYYY-MM-DD (default today) in ?tz (default server zone).
func (s *Server) GetAdherence(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		unauthorized(w, logger, "get adherence")
		return
	}
	loc, err := s.requestLocation(r)
	if err != nil {
		logger.Error("get adherence error: invalid tz")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid tz parameter", nil)
		return
	}
	asOf := s.now().In(loc)
	if date := r.URL.Query().Get("date"); date != "" {
		asOf, err = time.ParseInLocation(time.DateOnly, date, loc)
		if err != nil {
			logger.Error("get adherence error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date parameter, expected YYYY-MM-DD", nil)
			return
		}
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	snapshot, err := s.adherenceService.GetSnapshot(ctx, uid, asOf)
	if err != nil {
		writeServiceError(w, logger, "get adherence", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, snapshot)
}
