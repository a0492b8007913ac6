package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/hearth/sanctuary/internal/error_values"
	"github.com/hearth/sanctuary/pkg/entity"
)

const replyColumns = `r.id, r.thread_id, r.user_id, r.alias_id, a.alias, r.content, r.mood, r.is_flagged, r.is_under_review, r.created_at`

type RepliesRepository struct {
	conn PgConnection
}

func NewRepliesRepo(conn PgConnection) *RepliesRepository {
	return &RepliesRepository{
		conn: conn,
	}
}

func (rr *RepliesRepository) Insert(ctx context.Context, reply *entity.ThreadReply) (*entity.ThreadReply, error) {
	tx, err := rr.conn.Begin(ctx)
	if err != nil {
		return nil, storeError("starting reply transaction", err)
	}
	created := *reply
	row := tx.QueryRow(
		ctx,
		`INSERT INTO thread_replies (thread_id, user_id, alias_id, content, mood, is_flagged, is_under_review)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at;`,
		reply.ThreadID,
		reply.UserID,
		reply.AliasID,
		reply.Content,
		reply.Mood,
		reply.IsFlagged,
		reply.IsUnderReview,
	)
	if err = row.Scan(&created.ID, &created.CreatedAt); err != nil {
		_ = tx.Rollback(ctx)
		if pgCode(err) == pgFKViolation {
			return nil, errorvalues.ErrThreadNotFound
		}
		return nil, storeError("inserting reply", err)
	}
	// Held replies don't count until a reviewer releases them.
	if !reply.IsUnderReview {
		_, err = tx.Exec(
			ctx,
			`UPDATE threads SET warm_replies_count = warm_replies_count + 1, updated_at = NOW() WHERE id = $1;`,
			reply.ThreadID,
		)
		if err != nil {
			_ = tx.Rollback(ctx)
			return nil, storeError("bumping warm replies counter", err)
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, storeError("committing reply", err)
	}
	return &created, nil
}

func (rr *RepliesRepository) ListVisibleByThread(ctx context.Context, threadID uuid.UUID) ([]*entity.ThreadReply, error) {
	rows, err := rr.conn.Query(
		ctx,
		`SELECT `+replyColumns+` FROM thread_replies r JOIN user_aliases a ON a.id = r.alias_id
		WHERE r.thread_id = $1 AND NOT r.is_under_review ORDER BY r.created_at ASC;`,
		threadID,
	)
	if err != nil {
		return nil, storeError("listing replies", err)
	}
	defer rows.Close()
	replies := make([]*entity.ThreadReply, 0, 8)
	for rows.Next() {
		r, err := scanReply(rows)
		if err != nil {
			return nil, storeError("reply row parsing", err)
		}
		replies = append(replies, r)
	}
	if err = rows.Err(); err != nil {
		return nil, storeError("reply rows", err)
	}
	return replies, nil
}

func (rr *RepliesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ThreadReply, error) {
	row := rr.conn.QueryRow(
		ctx,
		`SELECT `+replyColumns+` FROM thread_replies r JOIN user_aliases a ON a.id = r.alias_id WHERE r.id = $1;`,
		id,
	)
	reply, err := scanReply(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrReplyNotFound
		}
		return nil, storeError("getting reply", err)
	}
	return reply, nil
}

func scanReply(row pgx.Row) (*entity.ThreadReply, error) {
	var r entity.ThreadReply
	err := row.Scan(&r.ID, &r.ThreadID, &r.UserID, &r.AliasID, &r.Alias, &r.Content, &r.Mood, &r.IsFlagged, &r.IsUnderReview, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
