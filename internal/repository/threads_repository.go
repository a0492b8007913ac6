package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/hearth/sanctuary/internal/error_values"
	"github.com/hearth/sanctuary/pkg/entity"
)

const threadColumns = `t.id, t.user_id, t.alias_id, a.alias, t.content, t.mood, t.tag, t.warm_replies_count,
	t.is_flagged, t.is_approved, t.is_under_review, t.created_at, t.updated_at`

type ThreadsRepository struct {
	conn PgConnection
}

func NewThreadsRepo(conn PgConnection) *ThreadsRepository {
	return &ThreadsRepository{
		conn: conn,
	}
}

func (tr *ThreadsRepository) Insert(ctx context.Context, post *entity.ThreadPost) (*entity.ThreadPost, error) {
	created := *post
	row := tr.conn.QueryRow(
		ctx,
		`INSERT INTO threads (user_id, alias_id, content, mood, tag, is_flagged, is_under_review, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, warm_replies_count, created_at, updated_at;`,
		post.UserID,
		post.AliasID,
		post.Content,
		post.Mood,
		post.Tag,
		post.IsFlagged,
		post.IsUnderReview,
		post.IsApproved,
	)
	if err := row.Scan(&created.ID, &created.WarmRepliesCount, &created.CreatedAt, &created.UpdatedAt); err != nil {
		if pgCode(err) == pgFKViolation {
			return nil, errorvalues.ErrAliasNotFound
		}
		return nil, storeError("inserting thread", err)
	}
	return &created, nil
}

func (tr *ThreadsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ThreadPost, error) {
	row := tr.conn.QueryRow(
		ctx,
		`SELECT `+threadColumns+` FROM threads t JOIN user_aliases a ON a.id = t.alias_id WHERE t.id = $1;`,
		id,
	)
	post, err := scanThread(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrThreadNotFound
		}
		return nil, storeError("getting thread by id", err)
	}
	return post, nil
}

func (tr *ThreadsRepository) ListVisible(ctx context.Context, limit, offset int) ([]*entity.ThreadPost, error) {
	rows, err := tr.conn.Query(
		ctx,
		`SELECT `+threadColumns+` FROM threads t JOIN user_aliases a ON a.id = t.alias_id
		WHERE t.is_approved AND NOT t.is_under_review ORDER BY t.created_at DESC LIMIT $1 OFFSET $2;`,
		limit,
		offset,
	)
	if err != nil {
		return nil, storeError("listing threads", err)
	}
	defer rows.Close()
	posts := make([]*entity.ThreadPost, 0, limit)
	for rows.Next() {
		post, err := scanThread(rows)
		if err != nil {
			return nil, storeError("thread row parsing", err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, storeError("thread rows", err)
	}
	return posts, nil
}

func (tr *ThreadsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM threads WHERE id = $1;`, id)
	if err != nil {
		return storeError("deleting thread", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrThreadNotFound
	}
	return nil
}

func scanThread(row pgx.Row) (*entity.ThreadPost, error) {
	var p entity.ThreadPost
	err := row.Scan(
		&p.ID, &p.UserID, &p.AliasID, &p.Alias, &p.Content, &p.Mood, &p.Tag, &p.WarmRepliesCount,
		&p.IsFlagged, &p.IsApproved, &p.IsUnderReview, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
