package repository

import (
	"context"
	"errors"

	errorvalues "github.com/hearth/sanctuary/internal/error_values"
	"github.com/hearth/sanctuary/pkg/entity"
)

type FlagsRepository struct {
	conn PgConnection
}

func NewFlagsRepo(conn PgConnection) *FlagsRepository {
	return &FlagsRepository{
		conn: conn,
	}
}

func (fr *FlagsRepository) Create(ctx context.Context, flag *entity.ModerationFlag) (*entity.ModerationFlag, error) {
	if (flag.ThreadID == nil) == (flag.ReplyID == nil) {
		return nil, errors.Join(errorvalues.ErrInvalidInput, errors.New("flag must target exactly one of thread or reply"))
	}
	created := *flag
	if created.Status == "" {
		created.Status = entity.FlagPending
	}
	row := fr.conn.QueryRow(
		ctx,
		`INSERT INTO moderation_flags (thread_id, reply_id, reporter_user_id, reason, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`,
		created.ThreadID,
		created.ReplyID,
		created.ReporterUserID,
		created.Reason,
		created.Status,
	)
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		if pgCode(err) == pgFKViolation {
			if created.ThreadID != nil {
				return nil, errorvalues.ErrThreadNotFound
			}
			return nil, errorvalues.ErrReplyNotFound
		}
		return nil, storeError("creating moderation flag", err)
	}
	return &created, nil
}
