package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/hearth/sanctuary/internal/error_values"
	"github.com/hearth/sanctuary/pkg/entity"
)

type AliasesRepository struct {
	conn PgConnection
}

func NewAliasesRepo(conn PgConnection) *AliasesRepository {
	return &AliasesRepository{
		conn: conn,
	}
}

func (ar *AliasesRepository) Create(ctx context.Context, userID uuid.UUID, alias string) (*entity.Alias, error) {
	a := entity.Alias{UserID: userID, Alias: alias}
	row := ar.conn.QueryRow(
		ctx,
		`INSERT INTO user_aliases (user_id, alias) VALUES ($1, $2) RETURNING id, created_at;`,
		userID,
		alias,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		if pgCode(err) == pgUniqueViolation {
			return nil, errorvalues.ErrAliasExists
		}
		return nil, storeError("creating alias", err)
	}
	return &a, nil
}

func (ar *AliasesRepository) FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.Alias, error) {
	var a entity.Alias
	row := ar.conn.QueryRow(
		ctx,
		`SELECT id, user_id, alias, created_at FROM user_aliases WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1;`,
		userID,
	)
	if err := row.Scan(&a.ID, &a.UserID, &a.Alias, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrAliasNotFound
		}
		return nil, storeError("searching alias by uid", err)
	}
	return &a, nil
}
