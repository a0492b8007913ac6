package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/hearth/sanctuary/internal/error_values"
	"github.com/hearth/sanctuary/internal/repository"
	"github.com/hearth/sanctuary/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userID = uuid.New()
)

func TestAppendDoseEvent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDoseEventsRepo(mock)
	query := regexp.QuoteMeta(`INSERT INTO medication_logs (user_id, taken_at) VALUES ($1, $2) RETURNING id, taken_at, created_at;`)
	takenAt := time.Now()
	eventID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(userID, takenAt).
					WillReturnRows(pgxmock.NewRows([]string{"id", "taken_at", "created_at"}).AddRow(eventID, takenAt, takenAt))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("store unavailable: appending dose event: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(userID, takenAt).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			event, err := repo.Append(ctx, userID, takenAt)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				assert.ErrorIs(t, err, errorvalues.ErrStoreUnavailable)
			} else {
				require.NoError(t, err)
				assert.Equal(t, entity.DoseEvent{ID: eventID, UserID: userID, TakenAt: takenAt, CreatedAt: takenAt}, *event)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDoseEvents(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDoseEventsRepo(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, taken_at, created_at FROM medication_logs WHERE user_id = $1 ORDER BY taken_at DESC;`)
	now := time.Now()
	returned := []entity.DoseEvent{
		{ID: uuid.New(), UserID: userID, TakenAt: now, CreatedAt: now},
		{ID: uuid.New(), UserID: userID, TakenAt: now.Add(-time.Hour), CreatedAt: now.Add(-time.Hour)},
		{ID: uuid.New(), UserID: userID, TakenAt: now.Add(-24 * time.Hour), CreatedAt: now.Add(-24 * time.Hour)},
	}
	testCases := []struct {
		Desc         string
		Error        error
		Result       []entity.DoseEvent
		MockPrepFunc func()
	}{
		{
			Desc:   "success",
			Result: returned,
			MockPrepFunc: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "taken_at", "created_at"})
				for _, e := range returned {
					rows.AddRow(e.ID, e.UserID, e.TakenAt, e.CreatedAt)
				}
				mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)
			},
		},
		{
			Desc:   "empty history",
			Result: []entity.DoseEvent{},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "taken_at", "created_at"}))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("store unavailable: listing dose events: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := repo.ListByUser(ctx, userID)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.Result, result)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDoseEventsSince(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDoseEventsRepo(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, taken_at, created_at FROM medication_logs WHERE user_id = $1 AND taken_at >= $2 ORDER BY taken_at DESC;`)
	since := time.Now().AddDate(0, 0, -30)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		e := entity.DoseEvent{ID: uuid.New(), UserID: userID, TakenAt: time.Now(), CreatedAt: time.Now()}
		mock.ExpectQuery(query).
			WithArgs(userID, since).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "taken_at", "created_at"}).AddRow(e.ID, e.UserID, e.TakenAt, e.CreatedAt))
		result, err := repo.ListByUserSince(ctx, userID, since)
		require.NoError(t, err)
		assert.Equal(t, []entity.DoseEvent{e}, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, since).WillReturnError(errors.New("db error"))
		_, err := repo.ListByUserSince(ctx, userID, since)
		assert.ErrorIs(t, err, errorvalues.ErrStoreUnavailable)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
