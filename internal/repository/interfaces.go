package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hearth/sanctuary/pkg/entity"
)

type DoseEventsRepositoryI interface {
	// Appends one "taken" event. Same-day duplicates are accepted
	Append(ctx context.Context, userID uuid.UUID, takenAt time.Time) (*entity.DoseEvent, error)
	// Lists every event of the user, newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.DoseEvent, error)
	// Lists events with taken_at >= since, newest first
	ListByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]entity.DoseEvent, error)
}

type AliasesRepositoryI interface {
	Create(ctx context.Context, userID uuid.UUID, alias string) (*entity.Alias, error)
	// Returns the most recently created alias of the user
	FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.Alias, error)
}

type ThreadsRepositoryI interface {
	// Inserts a post. UserID, AliasID, Content, Mood, Tag and moderation flags are used
	Insert(ctx context.Context, post *entity.ThreadPost) (*entity.ThreadPost, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ThreadPost, error)
	// Lists approved posts that are not under review, newest first
	ListVisible(ctx context.Context, limit, offset int) ([]*entity.ThreadPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RepliesRepositoryI interface {
	// Inserts a reply and bumps the thread's warm replies counter when the reply is published
	Insert(ctx context.Context, reply *entity.ThreadReply) (*entity.ThreadReply, error)
	ListVisibleByThread(ctx context.Context, threadID uuid.UUID) ([]*entity.ThreadReply, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ThreadReply, error)
}

type FlagsRepositoryI interface {
	Create(ctx context.Context, flag *entity.ModerationFlag) (*entity.ModerationFlag, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
