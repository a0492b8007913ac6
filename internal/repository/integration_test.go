package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hearth/sanctuary/internal/adherence"
	errorvalues "github.com/hearth/sanctuary/internal/error_values"
	"github.com/hearth/sanctuary/internal/repository"
	"github.com/hearth/sanctuary/pkg/entity"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func TestRepositoriesIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()
	pool, err := repository.NewPool(ctx, setupTestDB(t))
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	doses := repository.NewDoseEventsRepo(pool)
	aliases := repository.NewAliasesRepo(pool)
	threads := repository.NewThreadsRepo(pool)
	replies := repository.NewRepliesRepo(pool)
	flags := repository.NewFlagsRepo(pool)

	owner := uuid.New()
	other := uuid.New()

	t.Run("dose events feed the adherence engine", func(t *testing.T) {
		asOf := time.Date(2025, time.March, 10, 20, 0, 0, 0, time.UTC)
		for _, d := range []int{0, 1, 2, 4} {
			_, err := doses.Append(ctx, owner, asOf.AddDate(0, 0, -d).Add(-time.Hour))
			require.NoError(t, err)
		}
		events, err := doses.ListByUser(ctx, owner)
		require.NoError(t, err)
		assert.Len(t, events, 4)
		assert.True(t, events[0].TakenAt.After(events[1].TakenAt))

		streak, err := adherence.ComputeStreak(events, asOf)
		require.NoError(t, err)
		assert.Equal(t, 3, streak)

		recent, err := doses.ListByUserSince(ctx, owner, asOf.AddDate(0, 0, -2).Add(-2*time.Hour))
		require.NoError(t, err)
		assert.Len(t, recent, 3)

		none, err := doses.ListByUser(ctx, other)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	var ownerAlias, otherAlias *entity.Alias
	t.Run("aliases", func(t *testing.T) {
		ownerAlias, err = aliases.Create(ctx, owner, "quiet_river")
		require.NoError(t, err)
		otherAlias, err = aliases.Create(ctx, other, "brave_cedar")
		require.NoError(t, err)

		_, err = aliases.Create(ctx, other, "quiet_river")
		assert.ErrorIs(t, err, errorvalues.ErrAliasExists)

		found, err := aliases.FindLatestByUserID(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, ownerAlias.ID, found.ID)

		_, err = aliases.FindLatestByUserID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrAliasNotFound)
	})

	var published, held *entity.ThreadPost
	t.Run("threads", func(t *testing.T) {
		published, err = threads.Insert(ctx, &entity.ThreadPost{
			UserID:     owner,
			AliasID:    ownerAlias.ID,
			Content:    "Finished my third cycle today",
			Mood:       entity.MoodHopeful,
			Tag:        entity.TagTreatmentWins,
			IsApproved: true,
		})
		require.NoError(t, err)
		held, err = threads.Insert(ctx, &entity.ThreadPost{
			UserID:        owner,
			AliasID:       ownerAlias.ID,
			Content:       "message me on whatsapp",
			Mood:          entity.MoodTired,
			Tag:           entity.TagNone,
			IsFlagged:     true,
			IsUnderReview: true,
		})
		require.NoError(t, err)

		_, err = threads.Insert(ctx, &entity.ThreadPost{
			UserID:  owner,
			AliasID: uuid.New(),
			Content: "orphan",
			Mood:    entity.MoodTired,
			Tag:     entity.TagNone,
		})
		assert.ErrorIs(t, err, errorvalues.ErrAliasNotFound)

		feed, err := threads.ListVisible(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, feed, 1)
		assert.Equal(t, published.ID, feed[0].ID)
		assert.Equal(t, "quiet_river", feed[0].Alias)

		got, err := threads.GetByID(ctx, held.ID)
		require.NoError(t, err)
		assert.False(t, got.Visible())

		_, err = threads.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrThreadNotFound)
	})

	var reply *entity.ThreadReply
	t.Run("replies", func(t *testing.T) {
		reply, err = replies.Insert(ctx, &entity.ThreadReply{
			ThreadID: published.ID,
			UserID:   other,
			AliasID:  otherAlias.ID,
			Content:  "Sending you warmth",
			Mood:     entity.MoodGrateful,
		})
		require.NoError(t, err)
		_, err = replies.Insert(ctx, &entity.ThreadReply{
			ThreadID:      published.ID,
			UserID:        other,
			AliasID:       otherAlias.ID,
			Content:       "call me",
			Mood:          entity.MoodGrateful,
			IsFlagged:     true,
			IsUnderReview: true,
		})
		require.NoError(t, err)

		visible, err := replies.ListVisibleByThread(ctx, published.ID)
		require.NoError(t, err)
		require.Len(t, visible, 1)
		assert.Equal(t, reply.ID, visible[0].ID)

		post, err := threads.GetByID(ctx, published.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, post.WarmRepliesCount)

		_, err = replies.Insert(ctx, &entity.ThreadReply{
			ThreadID: uuid.New(),
			UserID:   other,
			AliasID:  otherAlias.ID,
			Content:  "lost",
			Mood:     entity.MoodGrateful,
		})
		assert.ErrorIs(t, err, errorvalues.ErrThreadNotFound)
	})

	t.Run("flags", func(t *testing.T) {
		flag, err := flags.Create(ctx, &entity.ModerationFlag{
			ThreadID:       &published.ID,
			ReporterUserID: other,
			Reason:         "User reported",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.FlagPending, flag.Status)

		_, err = flags.Create(ctx, &entity.ModerationFlag{
			ReplyID:        &reply.ID,
			ReporterUserID: owner,
			Reason:         "User reported",
		})
		require.NoError(t, err)

		missing := uuid.New()
		_, err = flags.Create(ctx, &entity.ModerationFlag{
			ReplyID:        &missing,
			ReporterUserID: owner,
			Reason:         "User reported",
		})
		assert.ErrorIs(t, err, errorvalues.ErrReplyNotFound)
	})

	t.Run("delete cascades", func(t *testing.T) {
		require.NoError(t, threads.Delete(ctx, published.ID))
		_, err := threads.GetByID(ctx, published.ID)
		assert.ErrorIs(t, err, errorvalues.ErrThreadNotFound)
		left, err := replies.ListVisibleByThread(ctx, published.ID)
		require.NoError(t, err)
		assert.Empty(t, left)
		assert.ErrorIs(t, threads.Delete(ctx, published.ID), errorvalues.ErrThreadNotFound)
	})
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("sanctuary"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
