package unit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"forum-api/internal/domain"
	"forum-api/internal/service"
	"forum-api/tests/mocks"
)

func TestThreadService_Create(t *testing.T) {
	mockRepo := new(mocks.ThreadRepository)
	svc := service.NewThreadService(mockRepo, nil) // Redis nil

	ctx := context.Background()
	input := domain.CreateThreadInput{Title: "sebuah thread", Body: "sebuah body thread"}

	t.Run("Success", func(t *testing.T) {
		expected := &domain.AddedThread{ID: "thread-123", Title: input.Title, Owner: "user-123"}
		mockRepo.On("AddThread", ctx, input, "user-123").Return(expected, nil).Once()

		added, err := svc.Create(ctx, "user-123", input)

		assert.NoError(t, err)
		assert.Equal(t, expected, added)
		mockRepo.AssertExpectations(t)
	})
}

func TestThreadService_GetDetail(t *testing.T) {
	ctx := context.Background()

	baseDate := time.Date(2022, 4, 10, 12, 0, 0, 0, time.UTC)
	threadInfo := &domain.ThreadInfo{
		ID:       "thread-123",
		Title:    "sebuah thread",
		Body:     "sebuah body thread",
		Date:     baseDate,
		Username: "dicoding",
	}

	t.Run("Thread Not Found", func(t *testing.T) {
		mockRepo := new(mocks.ThreadRepository)
		svc := service.NewThreadService(mockRepo, nil)

		mockRepo.On("VerifyThreadExists", ctx, "thread-xxx").Return(domain.ErrThreadNotFound).Once()

		detail, err := svc.GetDetail(ctx, "thread-xxx")

		assert.ErrorIs(t, err, domain.ErrThreadNotFound)
		assert.Nil(t, detail)
		mockRepo.AssertNotCalled(t, "GetThread")
		mockRepo.AssertNotCalled(t, "GetThreadComments")
	})

	t.Run("Assembles Nested View", func(t *testing.T) {
		mockRepo := new(mocks.ThreadRepository)
		svc := service.NewThreadService(mockRepo, nil)

		comments := []domain.ThreadComment{
			{
				ID:       "comment-123",
				Username: "johndoe",
				Date:     baseDate.Add(time.Minute),
				Content:  "sebuah komentar",
				Replies: []domain.ThreadReply{
					{ID: "reply-123", Username: "dicoding", Date: baseDate.Add(2 * time.Minute), Content: "sebuah balasan"},
				},
			},
		}

		mockRepo.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		// The fetches run under a context derived from the caller's, so the
		// expectations cannot pin the exact context value.
		mockRepo.On("GetThread", mock.Anything, "thread-123").Return(threadInfo, nil).Once()
		mockRepo.On("GetThreadComments", mock.Anything, "thread-123").Return(comments, nil).Once()

		detail, err := svc.GetDetail(ctx, "thread-123")

		assert.NoError(t, err)
		assert.Equal(t, "thread-123", detail.ID)
		assert.Equal(t, "dicoding", detail.Username)
		assert.Len(t, detail.Comments, 1)
		assert.Equal(t, "comment-123", detail.Comments[0].ID)
		assert.Equal(t, "sebuah komentar", detail.Comments[0].Content)
		assert.Equal(t, 0, detail.Comments[0].LikeCount)
		assert.Len(t, detail.Comments[0].Replies, 1)
		assert.Equal(t, "reply-123", detail.Comments[0].Replies[0].ID)
		assert.Equal(t, "sebuah balasan", detail.Comments[0].Replies[0].Content)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Redacts Deleted Comment But Not Its Replies", func(t *testing.T) {
		mockRepo := new(mocks.ThreadRepository)
		svc := service.NewThreadService(mockRepo, nil)

		comments := []domain.ThreadComment{
			{
				ID:       "comment-123",
				Username: "johndoe",
				Date:     baseDate.Add(time.Minute),
				Content:  "komentar yang sudah dihapus",
				IsDelete: true,
				Replies: []domain.ThreadReply{
					{ID: "reply-123", Username: "dicoding", Date: baseDate.Add(2 * time.Minute), Content: "sebuah balasan"},
				},
			},
		}

		mockRepo.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		mockRepo.On("GetThread", mock.Anything, "thread-123").Return(threadInfo, nil).Once()
		mockRepo.On("GetThreadComments", mock.Anything, "thread-123").Return(comments, nil).Once()

		detail, err := svc.GetDetail(ctx, "thread-123")

		assert.NoError(t, err)
		assert.Equal(t, "**komentar telah dihapus**", detail.Comments[0].Content)
		assert.Equal(t, "sebuah balasan", detail.Comments[0].Replies[0].Content)
	})

	t.Run("Redacts Deleted Reply", func(t *testing.T) {
		mockRepo := new(mocks.ThreadRepository)
		svc := service.NewThreadService(mockRepo, nil)

		comments := []domain.ThreadComment{
			{
				ID:       "comment-123",
				Username: "johndoe",
				Date:     baseDate.Add(time.Minute),
				Content:  "sebuah komentar",
				Replies: []domain.ThreadReply{
					{ID: "reply-123", Username: "dicoding", Date: baseDate.Add(2 * time.Minute), Content: "balasan kasar", IsDelete: true},
				},
			},
		}

		mockRepo.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		mockRepo.On("GetThread", mock.Anything, "thread-123").Return(threadInfo, nil).Once()
		mockRepo.On("GetThreadComments", mock.Anything, "thread-123").Return(comments, nil).Once()

		detail, err := svc.GetDetail(ctx, "thread-123")

		assert.NoError(t, err)
		assert.Equal(t, "sebuah komentar", detail.Comments[0].Content)
		assert.Equal(t, "**balasan telah dihapus**", detail.Comments[0].Replies[0].Content)
	})

	t.Run("Preserves Comment And Reply Ordering", func(t *testing.T) {
		mockRepo := new(mocks.ThreadRepository)
		svc := service.NewThreadService(mockRepo, nil)

		comments := []domain.ThreadComment{
			{ID: "comment-111", Username: "a", Date: baseDate.Add(1 * time.Minute), Content: "pertama", Replies: []domain.ThreadReply{
				{ID: "reply-111", Username: "b", Date: baseDate.Add(2 * time.Minute), Content: "balasan pertama"},
				{ID: "reply-222", Username: "c", Date: baseDate.Add(3 * time.Minute), Content: "balasan kedua"},
			}},
			{ID: "comment-222", Username: "b", Date: baseDate.Add(4 * time.Minute), Content: "kedua", Replies: []domain.ThreadReply{}},
		}

		mockRepo.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		mockRepo.On("GetThread", mock.Anything, "thread-123").Return(threadInfo, nil).Once()
		mockRepo.On("GetThreadComments", mock.Anything, "thread-123").Return(comments, nil).Once()

		detail, err := svc.GetDetail(ctx, "thread-123")

		assert.NoError(t, err)
		assert.Equal(t, []string{"comment-111", "comment-222"}, []string{detail.Comments[0].ID, detail.Comments[1].ID})
		assert.Equal(t, "reply-111", detail.Comments[0].Replies[0].ID)
		assert.Equal(t, "reply-222", detail.Comments[0].Replies[1].ID)
	})

	t.Run("Comment Without Replies Yields Empty Slice", func(t *testing.T) {
		mockRepo := new(mocks.ThreadRepository)
		svc := service.NewThreadService(mockRepo, nil)

		comments := []domain.ThreadComment{
			{ID: "comment-123", Username: "johndoe", Date: baseDate, Content: "sendirian"},
		}

		mockRepo.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		mockRepo.On("GetThread", mock.Anything, "thread-123").Return(threadInfo, nil).Once()
		mockRepo.On("GetThreadComments", mock.Anything, "thread-123").Return(comments, nil).Once()

		detail, err := svc.GetDetail(ctx, "thread-123")

		assert.NoError(t, err)
		assert.NotNil(t, detail.Comments[0].Replies)
		assert.Empty(t, detail.Comments[0].Replies)
	})

	t.Run("Thread Without Comments Yields Empty Slice", func(t *testing.T) {
		mockRepo := new(mocks.ThreadRepository)
		svc := service.NewThreadService(mockRepo, nil)

		mockRepo.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		mockRepo.On("GetThread", mock.Anything, "thread-123").Return(threadInfo, nil).Once()
		mockRepo.On("GetThreadComments", mock.Anything, "thread-123").Return([]domain.ThreadComment{}, nil).Once()

		detail, err := svc.GetDetail(ctx, "thread-123")

		assert.NoError(t, err)
		assert.NotNil(t, detail.Comments)
		assert.Empty(t, detail.Comments)
	})

	t.Run("Carries Like Counts Through", func(t *testing.T) {
		mockRepo := new(mocks.ThreadRepository)
		svc := service.NewThreadService(mockRepo, nil)

		comments := []domain.ThreadComment{
			{ID: "comment-123", Username: "johndoe", Date: baseDate, Content: "populer", LikeCount: 3, Replies: []domain.ThreadReply{}},
		}

		mockRepo.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		mockRepo.On("GetThread", mock.Anything, "thread-123").Return(threadInfo, nil).Once()
		mockRepo.On("GetThreadComments", mock.Anything, "thread-123").Return(comments, nil).Once()

		detail, err := svc.GetDetail(ctx, "thread-123")

		assert.NoError(t, err)
		assert.Equal(t, 3, detail.Comments[0].LikeCount)
	})
}
