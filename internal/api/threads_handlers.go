package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/hearth/sanctuary/internal/moderation"
	"github.com/hearth/sanctuary/internal/service"
	"github.com/hearth/sanctuary/pkg/entity"
	"github.com/hearth/sanctuary/pkg/httputil"
)

const (
	StatusPublished   = "published"
	StatusUnderReview = "under_review"
)

type CreateThreadRequest struct {
	Content string `json:"content"`
	Mood    string `json:"mood"`
	Tag     string `json:"tag"`
}

type CreateThreadResponse struct {
	Thread *entity.ThreadPost `json:"thread"`
	Status string             `json:"status"`
}

type GetThreadsResponse struct {
	Page    int                  `json:"page"`
	Limit   int                  `json:"limit"`
	Threads []*entity.ThreadPost `json:"threads"`
}

type CreateReplyRequest struct {
	Content string `json:"content"`
	Mood    string `json:"mood"`
}

type CreateReplyResponse struct {
	Reply  *entity.ThreadReply `json:"reply"`
	Status string              `json:"status"`
}

type GetRepliesResponse struct {
	ThreadID string                `json:"thread_id"`
	Replies  []*entity.ThreadReply `json:"replies"`
}

type ReportRequest struct {
	Reason string `json:"reason"`
}

type ReportResponse struct {
	FlagID string            `json:"flag_id"`
	Status entity.FlagStatus `json:"status"`
}

func publicationStatus(d moderation.Decision) string {
	if d == moderation.DecisionHoldForReview {
		return StatusUnderReview
	}
	return StatusPublished
}

func (s *Server) CreateThread(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		unauthorized(w, logger, "create thread")
		return
	}
	var req CreateThreadRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create thread error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	post, decision, err := s.threadsService.CreateThread(ctx, uid, &service.CreateThreadRequest{
		Content: req.Content,
		Mood:    entity.Mood(req.Mood),
		Tag:     entity.Tag(req.Tag),
	})
	if err != nil {
		writeServiceError(w, logger, "create thread", err)
		return
	}
	status := publicationStatus(decision)
	httputil.WriteJSONResponse(w, http.StatusCreated, CreateThreadResponse{
		Thread: post,
		Status: status,
	})
	logger.Info("thread created", slog.String("thread_id", post.ID.String()), slog.String("status", status))
}

func (s *Server) GetThreads(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	page, limit, opts := pagination(r)
	ctx, cancel := s.requestContext(r)
	defer cancel()
	threads, err := s.threadsService.ListFeed(ctx, opts)
	if err != nil {
		writeServiceError(w, logger, "get threads", err)
		return
	}
	if threads == nil {
		threads = []*entity.ThreadPost{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetThreadsResponse{
		Page:    page,
		Limit:   limit,
		Threads: threads,
	})
}

func (s *Server) GetThread(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		unauthorized(w, logger, "get thread")
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("get thread error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid thread id in path value", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	post, err := s.threadsService.GetThread(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "get thread", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, post)
}

func (s *Server) DeleteThread(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		unauthorized(w, logger, "thread deletion")
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("thread deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid thread id in path value", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err = s.threadsService.DeleteThread(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "thread deletion", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
	logger.Info("thread deleted", slog.String("thread_id", id.String()))
}

func (s *Server) GetReplies(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		unauthorized(w, logger, "get replies")
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("get replies error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid thread id in path value", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	replies, err := s.threadsService.ListReplies(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "get replies", err)
		return
	}
	if replies == nil {
		replies = []*entity.ThreadReply{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetRepliesResponse{
		ThreadID: id.String(),
		Replies:  replies,
	})
}

func (s *Server) CreateReply(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		unauthorized(w, logger, "create reply")
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("create reply error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid thread id in path value", nil)
		return
	}
	var req CreateReplyRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create reply error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	reply, decision, err := s.threadsService.CreateReply(ctx, uid, id, &service.CreateReplyRequest{
		Content: req.Content,
		Mood:    entity.Mood(req.Mood),
	})
	if err != nil {
		writeServiceError(w, logger, "create reply", err)
		return
	}
	status := publicationStatus(decision)
	httputil.WriteJSONResponse(w, http.StatusCreated, CreateReplyResponse{
		Reply:  reply,
		Status: status,
	})
	logger.Info("reply created", slog.String("reply_id", reply.ID.String()), slog.String("status", status))
}

func (s *Server) ReportThread(w http.ResponseWriter, r *http.Request) {
	s.report(w, r, "report thread", s.threadsService.ReportThread)
}

func (s *Server) ReportReply(w http.ResponseWriter, r *http.Request) {
	s.report(w, r, "report reply", s.threadsService.ReportReply)
}

type reportFunc func(ctx context.Context, userID, targetID uuid.UUID, reason string) (*entity.ModerationFlag, error)

// report accepts an empty body; the reason then defaults in the service.
func (s *Server) report(w http.ResponseWriter, r *http.Request, op string, create reportFunc) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		unauthorized(w, logger, op)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid id in path value", nil)
		return
	}
	var req ReportRequest
	if r.ContentLength != 0 {
		if err = httputil.DecodeJSON(r, &req); err != nil {
			logger.Error(op + " error: invalid request body")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	flag, err := create(ctx, uid, id, req.Reason)
	if err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, ReportResponse{
		FlagID: flag.ID.String(),
		Status: flag.Status,
	})
	logger.Info("content reported", slog.String("flag_id", flag.ID.String()))
}
