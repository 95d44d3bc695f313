package unit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"forum-api/internal/domain"
	"forum-api/internal/service"
	"forum-api/tests/mocks"
)

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()
	input := domain.CreateCommentInput{Content: "sebuah komentar"}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.ThreadRepository)
		svc := service.NewCommentService(mockRepo, nil)

		expected := &domain.AddedComment{ID: "comment-123", Content: input.Content, Owner: "user-123"}
		mockRepo.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		mockRepo.On("AddComment", ctx, input, "user-123", "thread-123").Return(expected, nil).Once()

		added, err := svc.Create(ctx, "user-123", "thread-123", input)

		assert.NoError(t, err)
		assert.Equal(t, expected, added)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Thread Not Found", func(t *testing.T) {
		mockRepo := new(mocks.ThreadRepository)
		svc := service.NewCommentService(mockRepo, nil)

		mockRepo.On("VerifyThreadExists", ctx, "thread-xxx").Return(domain.ErrThreadNotFound).Once()

		added, err := svc.Create(ctx, "user-123", "thread-xxx", input)

		assert.ErrorIs(t, err, domain.ErrThreadNotFound)
		assert.Nil(t, added)
		mockRepo.AssertNotCalled(t, "AddComment")
	})
}

func TestCommentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.ThreadRepository)
		svc := service.NewCommentService(mockRepo, nil)

		mockRepo.On("VerifyCommentExists", ctx, "comment-123").Return(nil).Once()
		mockRepo.On("VerifyCommentOwner", ctx, "comment-123", "user-123").Return(nil).Once()
		mockRepo.On("SoftDeleteComment", ctx, "comment-123").Return("thread-123", nil).Once()

		err := svc.Delete(ctx, "comment-123", "user-123")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing Comment Reports Not Found Before Ownership", func(t *testing.T) {
		mockRepo := new(mocks.ThreadRepository)
		svc := service.NewCommentService(mockRepo, nil)

		mockRepo.On("VerifyCommentExists", ctx, "comment-xxx").Return(domain.ErrCommentNotFound).Once()

		// An arbitrary non-owning user still gets not-found, never forbidden.
		err := svc.Delete(ctx, "comment-xxx", "user-999")

		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
		mockRepo.AssertNotCalled(t, "VerifyCommentOwner")
		mockRepo.AssertNotCalled(t, "SoftDeleteComment")
	})

	t.Run("Non Owner Is Forbidden", func(t *testing.T) {
		mockRepo := new(mocks.ThreadRepository)
		svc := service.NewCommentService(mockRepo, nil)

		mockRepo.On("VerifyCommentExists", ctx, "comment-123").Return(nil).Once()
		mockRepo.On("VerifyCommentOwner", ctx, "comment-123", "user-999").Return(domain.ErrNotCommentOwner).Once()

		err := svc.Delete(ctx, "comment-123", "user-999")

		assert.ErrorIs(t, err, domain.ErrNotCommentOwner)
		mockRepo.AssertNotCalled(t, "SoftDeleteComment")
	})
}

func TestCommentService_ToggleLike(t *testing.T) {
	ctx := context.Background()

	t.Run("Adds Like When Not Liked", func(t *testing.T) {
		mockRepo := new(mocks.ThreadRepository)
		svc := service.NewCommentService(mockRepo, nil)

		mockRepo.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		mockRepo.On("VerifyCommentExists", ctx, "comment-123").Return(nil).Once()
		mockRepo.On("IsLiked", ctx, "comment-123", "user-123").Return(false, nil).Once()
		mockRepo.On("AddCommentLike", ctx, "comment-123", "user-123").Return(nil).Once()

		err := svc.ToggleLike(ctx, "thread-123", "comment-123", "user-123")

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "DeleteCommentLike")
		mockRepo.AssertExpectations(t)
	})

	t.Run("Removes Like When Already Liked", func(t *testing.T) {
		mockRepo := new(mocks.ThreadRepository)
		svc := service.NewCommentService(mockRepo, nil)

		mockRepo.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		mockRepo.On("VerifyCommentExists", ctx, "comment-123").Return(nil).Once()
		mockRepo.On("IsLiked", ctx, "comment-123", "user-123").Return(true, nil).Once()
		mockRepo.On("DeleteCommentLike", ctx, "comment-123", "user-123").Return(nil).Once()

		err := svc.ToggleLike(ctx, "thread-123", "comment-123", "user-123")

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "AddCommentLike")
		mockRepo.AssertExpectations(t)
	})

	t.Run("Thread Not Found", func(t *testing.T) {
		mockRepo := new(mocks.ThreadRepository)
		svc := service.NewCommentService(mockRepo, nil)

		mockRepo.On("VerifyThreadExists", ctx, "thread-xxx").Return(domain.ErrThreadNotFound).Once()

		err := svc.ToggleLike(ctx, "thread-xxx", "comment-123", "user-123")

		assert.ErrorIs(t, err, domain.ErrThreadNotFound)
		mockRepo.AssertNotCalled(t, "IsLiked")
	})

	t.Run("Comment Not Found", func(t *testing.T) {
		mockRepo := new(mocks.ThreadRepository)
		svc := service.NewCommentService(mockRepo, nil)

		mockRepo.On("VerifyThreadExists", ctx, "thread-123").Return(nil).Once()
		mockRepo.On("VerifyCommentExists", ctx, "comment-xxx").Return(domain.ErrCommentNotFound).Once()

		err := svc.ToggleLike(ctx, "thread-123", "comment-xxx", "user-123")

		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
		mockRepo.AssertNotCalled(t, "IsLiked")
	})
}
