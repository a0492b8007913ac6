package api

import (
	"net/http"

	"github.com/hearth/sanctuary/internal/service"
	"github.com/hearth/sanctuary/pkg/httputil"
)

type CreateAliasRequest struct {
	Alias string `json:"alias"`
}

func (s *Server) CreateAlias(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		unauthorized(w, logger, "create alias")
		return
	}
	var req CreateAliasRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create alias error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	alias, err := s.aliasService.CreateAlias(ctx, uid, &service.CreateAliasRequest{Alias: req.Alias})
	if err != nil {
		writeServiceError(w, logger, "create alias", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, alias)
	logger.Info("alias created")
}

func (s *Server) GetMyAlias(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		unauthorized(w, logger, "get alias")
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	alias, err := s.aliasService.GetAlias(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get alias", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, alias)
}
