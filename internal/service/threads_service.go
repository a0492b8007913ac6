package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	errorvalues "github.com/hearth/sanctuary/internal/error_values"
	"github.com/hearth/sanctuary/internal/moderation"
	"github.com/hearth/sanctuary/internal/repository"
	"github.com/hearth/sanctuary/pkg/entity"
)

const (
	DefaultReportReason = "User reported"
	maxReportReasonLen  = 500
)

type ThreadsService struct {
	threads repository.ThreadsRepositoryI
	replies repository.RepliesRepositoryI
	aliases repository.AliasesRepositoryI
	flags   repository.FlagsRepositoryI
}

type ThreadsRepos struct {
	Threads repository.ThreadsRepositoryI
	Replies repository.RepliesRepositoryI
	Aliases repository.AliasesRepositoryI
	Flags   repository.FlagsRepositoryI
}

func NewThreadsService(repos *ThreadsRepos) *ThreadsService {
	if repos == nil || repos.Threads == nil || repos.Replies == nil || repos.Aliases == nil || repos.Flags == nil {
		log.Fatal("on threads service provided nil repos")
	}
	return &ThreadsService{
		threads: repos.Threads,
		replies: repos.Replies,
		aliases: repos.Aliases,
		flags:   repos.Flags,
	}
}

func (ts *ThreadsService) CreateThread(ctx context.Context, userID uuid.UUID, req *CreateThreadRequest) (*entity.ThreadPost, moderation.Decision, error) {
	if err := validateRequest(req); err != nil {
		return nil, "", err
	}
	alias, err := ts.currentAlias(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	tag := req.Tag
	if tag == "" {
		tag = entity.TagNone
	}
	verdict := moderation.Classify(req.Content)
	post, err := ts.threads.Insert(ctx, &entity.ThreadPost{
		UserID:        userID,
		AliasID:       alias.ID,
		Content:       req.Content,
		Mood:          req.Mood,
		Tag:           tag,
		IsFlagged:     verdict.Flagged,
		IsUnderReview: verdict.Flagged,
		IsApproved:    !verdict.Flagged,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrAliasNotFound) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("inserting thread: %w", err)
	}
	post.Alias = alias.Alias
	return post, verdict.Decision(), nil
}

// GetThread hides held posts from everyone but their author.
func (ts *ThreadsService) GetThread(ctx context.Context, userID, threadID uuid.UUID) (*entity.ThreadPost, error) {
	post, err := ts.threads.GetByID(ctx, threadID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrThreadNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("searching thread: %w", err)
	}
	if !post.Visible() && post.UserID != userID {
		return nil, errorvalues.ErrThreadNotFound
	}
	return post, nil
}

func (ts *ThreadsService) ListFeed(ctx context.Context, pagination PaginationOpts) ([]*entity.ThreadPost, error) {
	posts, err := ts.threads.ListVisible(ctx, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, fmt.Errorf("listing feed: %w", err)
	}
	return posts, nil
}

func (ts *ThreadsService) DeleteThread(ctx context.Context, userID, threadID uuid.UUID) error {
	post, err := ts.threads.GetByID(ctx, threadID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrThreadNotFound) {
			return err
		}
		return fmt.Errorf("searching thread: %w", err)
	}
	if post.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	err = ts.threads.Delete(ctx, threadID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrThreadNotFound) {
			return err
		}
		return fmt.Errorf("deleting thread: %w", err)
	}
	return nil
}

func (ts *ThreadsService) CreateReply(ctx context.Context, userID, threadID uuid.UUID, req *CreateReplyRequest) (*entity.ThreadReply, moderation.Decision, error) {
	if err := validateRequest(req); err != nil {
		return nil, "", err
	}
	if _, err := ts.GetThread(ctx, userID, threadID); err != nil {
		return nil, "", err
	}
	alias, err := ts.currentAlias(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	mood := req.Mood
	if mood == "" {
		mood = entity.MoodHopeful
	}
	verdict := moderation.Classify(req.Content)
	reply, err := ts.replies.Insert(ctx, &entity.ThreadReply{
		ThreadID:      threadID,
		UserID:        userID,
		AliasID:       alias.ID,
		Content:       req.Content,
		Mood:          mood,
		IsFlagged:     verdict.Flagged,
		IsUnderReview: verdict.Flagged,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrThreadNotFound) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("inserting reply: %w", err)
	}
	reply.Alias = alias.Alias
	return reply, verdict.Decision(), nil
}

func (ts *ThreadsService) ListReplies(ctx context.Context, userID, threadID uuid.UUID) ([]*entity.ThreadReply, error) {
	if _, err := ts.GetThread(ctx, userID, threadID); err != nil {
		return nil, err
	}
	replies, err := ts.replies.ListVisibleByThread(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("listing replies: %w", err)
	}
	return replies, nil
}

func (ts *ThreadsService) ReportThread(ctx context.Context, userID, threadID uuid.UUID, reason string) (*entity.ModerationFlag, error) {
	reason, err := reportReason(reason)
	if err != nil {
		return nil, err
	}
	if _, err = ts.GetThread(ctx, userID, threadID); err != nil {
		return nil, err
	}
	return ts.createFlag(ctx, &entity.ModerationFlag{
		ThreadID:       &threadID,
		ReporterUserID: userID,
		Reason:         reason,
	})
}

func (ts *ThreadsService) ReportReply(ctx context.Context, userID, replyID uuid.UUID, reason string) (*entity.ModerationFlag, error) {
	reason, err := reportReason(reason)
	if err != nil {
		return nil, err
	}
	if _, err = ts.replies.GetByID(ctx, replyID); err != nil {
		if errors.Is(err, errorvalues.ErrReplyNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("searching reply: %w", err)
	}
	return ts.createFlag(ctx, &entity.ModerationFlag{
		ReplyID:        &replyID,
		ReporterUserID: userID,
		Reason:         reason,
	})
}

func (ts *ThreadsService) createFlag(ctx context.Context, flag *entity.ModerationFlag) (*entity.ModerationFlag, error) {
	flag.Status = entity.FlagPending
	created, err := ts.flags.Create(ctx, flag)
	if err != nil {
		if errors.Is(err, errorvalues.ErrThreadNotFound) || errors.Is(err, errorvalues.ErrReplyNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("creating flag: %w", err)
	}
	return created, nil
}

func (ts *ThreadsService) currentAlias(ctx context.Context, userID uuid.UUID) (*entity.Alias, error) {
	alias, err := ts.aliases.FindLatestByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAliasNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("searching alias: %w", err)
	}
	return alias, nil
}

func reportReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return DefaultReportReason, nil
	}
	if utf8.RuneCountInString(reason) > maxReportReasonLen {
		return "", errors.Join(errorvalues.ErrInvalidInput, errors.New("report reason is too long"))
	}
	return reason, nil
}
