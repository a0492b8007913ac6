package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/hearth/sanctuary/internal/error_values"
	"github.com/hearth/sanctuary/internal/moderation"
	"github.com/hearth/sanctuary/internal/repository/mocks"
	"github.com/hearth/sanctuary/internal/service"
	"github.com/hearth/sanctuary/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type threadsMocks struct {
	threads *mocks.MockThreadsRepositoryI
	replies *mocks.MockRepliesRepositoryI
	aliases *mocks.MockAliasesRepositoryI
	flags   *mocks.MockFlagsRepositoryI
}

func newThreadsService(t *testing.T) (*service.ThreadsService, threadsMocks) {
	ctrl := gomock.NewController(t)
	m := threadsMocks{
		threads: mocks.NewMockThreadsRepositoryI(ctrl),
		replies: mocks.NewMockRepliesRepositoryI(ctrl),
		aliases: mocks.NewMockAliasesRepositoryI(ctrl),
		flags:   mocks.NewMockFlagsRepositoryI(ctrl),
	}
	serv := service.NewThreadsService(&service.ThreadsRepos{
		Threads: m.threads,
		Replies: m.replies,
		Aliases: m.aliases,
		Flags:   m.flags,
	})
	return serv, m
}

var testAlias = &entity.Alias{ID: uuid.New(), UserID: userID, Alias: "quiet_river"}

func echoInsertedPost(_ context.Context, p *entity.ThreadPost) (*entity.ThreadPost, error) {
	created := *p
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	return &created, nil
}

func TestCreateThread(t *testing.T) {
	serv, m := newThreadsService(t)

	testCases := []struct {
		Desc         string
		Req          service.CreateThreadRequest
		MockPrepFunc func()
		Error        error
		Decision     moderation.Decision
		Visible      bool
		Tag          entity.Tag
	}{
		{
			Desc: "clean post published",
			Req:  service.CreateThreadRequest{Content: "Finished my third cycle today", Mood: entity.MoodHopeful, Tag: entity.TagTreatmentWins},
			MockPrepFunc: func() {
				m.aliases.EXPECT().FindLatestByUserID(gomock.Any(), userID).Return(testAlias, nil)
				m.threads.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(echoInsertedPost)
			},
			Decision: moderation.DecisionPublish,
			Visible:  true,
			Tag:      entity.TagTreatmentWins,
		},
		{
			Desc: "contact info held",
			Req:  service.CreateThreadRequest{Content: "Call me tonight, here is my number", Mood: entity.MoodTired},
			MockPrepFunc: func() {
				m.aliases.EXPECT().FindLatestByUserID(gomock.Any(), userID).Return(testAlias, nil)
				m.threads.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(echoInsertedPost)
			},
			Decision: moderation.DecisionHoldForReview,
			Visible:  false,
			Tag:      entity.TagNone,
		},
		{
			Desc: "self harm held",
			Req:  service.CreateThreadRequest{Content: "some days I want to die", Mood: entity.MoodTired, Tag: entity.TagJustVenting},
			MockPrepFunc: func() {
				m.aliases.EXPECT().FindLatestByUserID(gomock.Any(), userID).Return(testAlias, nil)
				m.threads.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(echoInsertedPost)
			},
			Decision: moderation.DecisionHoldForReview,
			Visible:  false,
			Tag:      entity.TagJustVenting,
		},
		{
			Desc:         "blank content",
			Req:          service.CreateThreadRequest{Content: "   ", Mood: entity.MoodHopeful},
			MockPrepFunc: func() {},
			Error:        errorvalues.ErrInvalidInput,
		},
		{
			Desc:         "content too long",
			Req:          service.CreateThreadRequest{Content: strings.Repeat("é", 281), Mood: entity.MoodHopeful},
			MockPrepFunc: func() {},
			Error:        errorvalues.ErrInvalidInput,
		},
		{
			Desc:         "unknown mood",
			Req:          service.CreateThreadRequest{Content: "hello", Mood: entity.Mood("sleepy")},
			MockPrepFunc: func() {},
			Error:        errorvalues.ErrInvalidInput,
		},
		{
			Desc:         "unknown tag",
			Req:          service.CreateThreadRequest{Content: "hello", Mood: entity.MoodHopeful, Tag: entity.Tag("memes")},
			MockPrepFunc: func() {},
			Error:        errorvalues.ErrInvalidInput,
		},
		{
			Desc: "no alias yet",
			Req:  service.CreateThreadRequest{Content: "hello", Mood: entity.MoodHopeful},
			MockPrepFunc: func() {
				m.aliases.EXPECT().FindLatestByUserID(gomock.Any(), userID).Return(nil, errorvalues.ErrAliasNotFound)
			},
			Error: errorvalues.ErrAliasNotFound,
		},
		{
			Desc: "store unavailable",
			Req:  service.CreateThreadRequest{Content: "hello", Mood: entity.MoodHopeful},
			MockPrepFunc: func() {
				m.aliases.EXPECT().FindLatestByUserID(gomock.Any(), userID).Return(testAlias, nil)
				m.threads.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil, storeErr())
			},
			Error: errorvalues.ErrStoreUnavailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			post, decision, err := serv.CreateThread(context.Background(), userID, &tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Decision, decision)
			assert.Equal(t, tc.Visible, post.Visible())
			assert.Equal(t, !tc.Visible, post.IsFlagged)
			assert.Equal(t, tc.Tag, post.Tag)
			assert.Equal(t, testAlias.ID, post.AliasID)
			assert.Equal(t, testAlias.Alias, post.Alias)
		})
	}
}

func TestGetThread(t *testing.T) {
	serv, m := newThreadsService(t)
	threadID := uuid.New()
	held := &entity.ThreadPost{ID: threadID, UserID: userID, IsFlagged: true, IsUnderReview: true}

	t.Run("author sees held post", func(t *testing.T) {
		m.threads.EXPECT().GetByID(gomock.Any(), threadID).Return(held, nil)
		post, err := serv.GetThread(context.Background(), userID, threadID)
		require.NoError(t, err)
		assert.Equal(t, held, post)
	})
	t.Run("others don't", func(t *testing.T) {
		m.threads.EXPECT().GetByID(gomock.Any(), threadID).Return(held, nil)
		_, err := serv.GetThread(context.Background(), uuid.New(), threadID)
		assert.ErrorIs(t, err, errorvalues.ErrThreadNotFound)
	})
	t.Run("missing", func(t *testing.T) {
		m.threads.EXPECT().GetByID(gomock.Any(), threadID).Return(nil, errorvalues.ErrThreadNotFound)
		_, err := serv.GetThread(context.Background(), userID, threadID)
		assert.ErrorIs(t, err, errorvalues.ErrThreadNotFound)
	})
}

func TestListFeed(t *testing.T) {
	serv, m := newThreadsService(t)
	posts := []*entity.ThreadPost{{ID: uuid.New(), IsApproved: true}}

	m.threads.EXPECT().ListVisible(gomock.Any(), 10, 20).Return(posts, nil)
	got, err := serv.ListFeed(context.Background(), service.PaginationOpts{Limit: 10, Offset: 20})
	require.NoError(t, err)
	assert.Equal(t, posts, got)

	m.threads.EXPECT().ListVisible(gomock.Any(), 10, 0).Return(nil, storeErr())
	_, err = serv.ListFeed(context.Background(), service.PaginationOpts{Limit: 10})
	assert.ErrorIs(t, err, errorvalues.ErrStoreUnavailable)
}

func TestDeleteThread(t *testing.T) {
	serv, m := newThreadsService(t)
	threadID := uuid.New()

	testCases := []struct {
		Desc         string
		MockPrepFunc func()
		Error        error
	}{
		{
			Desc: "deleted",
			MockPrepFunc: func() {
				m.threads.EXPECT().GetByID(gomock.Any(), threadID).Return(&entity.ThreadPost{ID: threadID, UserID: userID}, nil)
				m.threads.EXPECT().Delete(gomock.Any(), threadID).Return(nil)
			},
		},
		{
			Desc: "someone else's thread",
			MockPrepFunc: func() {
				m.threads.EXPECT().GetByID(gomock.Any(), threadID).Return(&entity.ThreadPost{ID: threadID, UserID: uuid.New()}, nil)
			},
			Error: errorvalues.ErrWrongOwner,
		},
		{
			Desc: "missing",
			MockPrepFunc: func() {
				m.threads.EXPECT().GetByID(gomock.Any(), threadID).Return(nil, errorvalues.ErrThreadNotFound)
			},
			Error: errorvalues.ErrThreadNotFound,
		},
		{
			Desc: "store unavailable on delete",
			MockPrepFunc: func() {
				m.threads.EXPECT().GetByID(gomock.Any(), threadID).Return(&entity.ThreadPost{ID: threadID, UserID: userID}, nil)
				m.threads.EXPECT().Delete(gomock.Any(), threadID).Return(storeErr())
			},
			Error: errorvalues.ErrStoreUnavailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := serv.DeleteThread(context.Background(), userID, threadID)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCreateReply(t *testing.T) {
	serv, m := newThreadsService(t)
	threadID := uuid.New()
	visible := &entity.ThreadPost{ID: threadID, UserID: uuid.New(), IsApproved: true}

	t.Run("published with default mood", func(t *testing.T) {
		m.threads.EXPECT().GetByID(gomock.Any(), threadID).Return(visible, nil)
		m.aliases.EXPECT().FindLatestByUserID(gomock.Any(), userID).Return(testAlias, nil)
		m.replies.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r *entity.ThreadReply) (*entity.ThreadReply, error) {
				assert.Equal(t, entity.MoodHopeful, r.Mood)
				assert.False(t, r.IsUnderReview)
				created := *r
				created.ID = uuid.New()
				return &created, nil
			})
		reply, decision, err := serv.CreateReply(context.Background(), userID, threadID, &service.CreateReplyRequest{Content: "Sending you warmth"})
		require.NoError(t, err)
		assert.Equal(t, moderation.DecisionPublish, decision)
		assert.Equal(t, testAlias.Alias, reply.Alias)
	})
	t.Run("held", func(t *testing.T) {
		m.threads.EXPECT().GetByID(gomock.Any(), threadID).Return(visible, nil)
		m.aliases.EXPECT().FindLatestByUserID(gomock.Any(), userID).Return(testAlias, nil)
		m.replies.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r *entity.ThreadReply) (*entity.ThreadReply, error) {
				assert.True(t, r.IsFlagged)
				assert.True(t, r.IsUnderReview)
				created := *r
				return &created, nil
			})
		_, decision, err := serv.CreateReply(context.Background(), userID, threadID, &service.CreateReplyRequest{Content: "text me", Mood: entity.MoodGrateful})
		require.NoError(t, err)
		assert.Equal(t, moderation.DecisionHoldForReview, decision)
	})
	t.Run("hidden thread", func(t *testing.T) {
		m.threads.EXPECT().GetByID(gomock.Any(), threadID).Return(&entity.ThreadPost{ID: threadID, UserID: uuid.New(), IsUnderReview: true}, nil)
		_, _, err := serv.CreateReply(context.Background(), userID, threadID, &service.CreateReplyRequest{Content: "hi"})
		assert.ErrorIs(t, err, errorvalues.ErrThreadNotFound)
	})
	t.Run("invalid", func(t *testing.T) {
		_, _, err := serv.CreateReply(context.Background(), userID, threadID, &service.CreateReplyRequest{Content: ""})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)
	})
}

func TestListReplies(t *testing.T) {
	serv, m := newThreadsService(t)
	threadID := uuid.New()
	replies := []*entity.ThreadReply{{ID: uuid.New(), ThreadID: threadID}}

	m.threads.EXPECT().GetByID(gomock.Any(), threadID).Return(&entity.ThreadPost{ID: threadID, IsApproved: true}, nil)
	m.replies.EXPECT().ListVisibleByThread(gomock.Any(), threadID).Return(replies, nil)
	got, err := serv.ListReplies(context.Background(), userID, threadID)
	require.NoError(t, err)
	assert.Equal(t, replies, got)

	m.threads.EXPECT().GetByID(gomock.Any(), threadID).Return(nil, errorvalues.ErrThreadNotFound)
	_, err = serv.ListReplies(context.Background(), userID, threadID)
	assert.ErrorIs(t, err, errorvalues.ErrThreadNotFound)
}

func TestReportThread(t *testing.T) {
	serv, m := newThreadsService(t)
	threadID := uuid.New()

	t.Run("default reason", func(t *testing.T) {
		m.threads.EXPECT().GetByID(gomock.Any(), threadID).Return(&entity.ThreadPost{ID: threadID, IsApproved: true}, nil)
		m.flags.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f *entity.ModerationFlag) (*entity.ModerationFlag, error) {
				require.NotNil(t, f.ThreadID)
				assert.Nil(t, f.ReplyID)
				assert.Equal(t, threadID, *f.ThreadID)
				assert.Equal(t, userID, f.ReporterUserID)
				created := *f
				created.ID = uuid.New()
				return &created, nil
			})
		flag, err := serv.ReportThread(context.Background(), userID, threadID, "  ")
		require.NoError(t, err)
		assert.Equal(t, service.DefaultReportReason, flag.Reason)
		assert.Equal(t, entity.FlagPending, flag.Status)
	})
	t.Run("reason too long", func(t *testing.T) {
		_, err := serv.ReportThread(context.Background(), userID, threadID, strings.Repeat("a", 501))
		assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)
	})
	t.Run("missing thread", func(t *testing.T) {
		m.threads.EXPECT().GetByID(gomock.Any(), threadID).Return(nil, errorvalues.ErrThreadNotFound)
		_, err := serv.ReportThread(context.Background(), userID, threadID, "")
		assert.ErrorIs(t, err, errorvalues.ErrThreadNotFound)
	})
}

func TestReportReply(t *testing.T) {
	serv, m := newThreadsService(t)
	replyID := uuid.New()

	t.Run("custom reason", func(t *testing.T) {
		m.replies.EXPECT().GetByID(gomock.Any(), replyID).Return(&entity.ThreadReply{ID: replyID}, nil)
		m.flags.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f *entity.ModerationFlag) (*entity.ModerationFlag, error) {
				require.NotNil(t, f.ReplyID)
				assert.Nil(t, f.ThreadID)
				created := *f
				return &created, nil
			})
		flag, err := serv.ReportReply(context.Background(), userID, replyID, "spam")
		require.NoError(t, err)
		assert.Equal(t, "spam", flag.Reason)
	})
	t.Run("missing reply", func(t *testing.T) {
		m.replies.EXPECT().GetByID(gomock.Any(), replyID).Return(nil, errorvalues.ErrReplyNotFound)
		_, err := serv.ReportReply(context.Background(), userID, replyID, "")
		assert.ErrorIs(t, err, errorvalues.ErrReplyNotFound)
	})
	t.Run("store unavailable", func(t *testing.T) {
		m.replies.EXPECT().GetByID(gomock.Any(), replyID).Return(&entity.ThreadReply{ID: replyID}, nil)
		m.flags.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, storeErr())
		_, err := serv.ReportReply(context.Background(), userID, replyID, "")
		assert.ErrorIs(t, err, errorvalues.ErrStoreUnavailable)
	})
}
