package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hearth/sanctuary/internal/moderation"
	"github.com/hearth/sanctuary/pkg/entity"
)

type PaginationOpts struct {
	Limit  int
	Offset int
}

type CreateThreadRequest struct {
	Content string      `validate:"not_blank,max=280"`
	Mood    entity.Mood `validate:"required,oneof=hopeful grateful angry tired healing resilient"`
	Tag     entity.Tag  `validate:"omitempty,oneof=none treatment_wins faith_and_healing just_venting"`
}

type CreateReplyRequest struct {
	Content string      `validate:"not_blank,max=280"`
	Mood    entity.Mood `validate:"omitempty,oneof=hopeful grateful angry tired healing resilient"`
}

type CreateAliasRequest struct {
	Alias string `validate:"required,alphanum_underscore,min=3,max=32"`
}

type AdherenceServiceI interface {
	// Appends a "taken" event at takenAt, or now when takenAt is nil
	RecordDose(ctx context.Context, userID uuid.UUID, takenAt *time.Time) (*entity.DoseEvent, error)
	// Reports whether a dose was logged on asOf's calendar day in asOf's location
	TakenToday(ctx context.Context, userID uuid.UUID, asOf time.Time) (bool, error)
	GetSnapshot(ctx context.Context, userID uuid.UUID, asOf time.Time) (*entity.AdherenceSnapshot, error)
	ListDoses(ctx context.Context, userID uuid.UUID) ([]entity.DoseEvent, error)
}

type ThreadsServiceI interface {
	// Classifies the content and stores the post published or held for review
	CreateThread(ctx context.Context, userID uuid.UUID, req *CreateThreadRequest) (*entity.ThreadPost, moderation.Decision, error)
	GetThread(ctx context.Context, userID, threadID uuid.UUID) (*entity.ThreadPost, error)
	ListFeed(ctx context.Context, pagination PaginationOpts) ([]*entity.ThreadPost, error)
	DeleteThread(ctx context.Context, userID, threadID uuid.UUID) error
	CreateReply(ctx context.Context, userID, threadID uuid.UUID, req *CreateReplyRequest) (*entity.ThreadReply, moderation.Decision, error)
	ListReplies(ctx context.Context, userID, threadID uuid.UUID) ([]*entity.ThreadReply, error)
	ReportThread(ctx context.Context, userID, threadID uuid.UUID, reason string) (*entity.ModerationFlag, error)
	ReportReply(ctx context.Context, userID, replyID uuid.UUID, reason string) (*entity.ModerationFlag, error)
}

type AliasServiceI interface {
	CreateAlias(ctx context.Context, userID uuid.UUID, req *CreateAliasRequest) (*entity.Alias, error)
	GetAlias(ctx context.Context, userID uuid.UUID) (*entity.Alias, error)
}
