package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"forum-api/internal/domain"
)

type ThreadRepository struct {
	mock.Mock
}

func (m *ThreadRepository) AddThread(ctx context.Context, input domain.CreateThreadInput, owner string) (*domain.AddedThread, error) {
	args := m.Called(ctx, input, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AddedThread), args.Error(1)
}

func (m *ThreadRepository) AddComment(ctx context.Context, input domain.CreateCommentInput, owner, threadID string) (*domain.AddedComment, error) {
	args := m.Called(ctx, input, owner, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AddedComment), args.Error(1)
}

func (m *ThreadRepository) AddReply(ctx context.Context, input domain.CreateCommentInput, owner, threadID, commentID string) (*domain.AddedReply, error) {
	args := m.Called(ctx, input, owner, threadID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AddedReply), args.Error(1)
}

func (m *ThreadRepository) SoftDeleteComment(ctx context.Context, commentID string) (string, error) {
	args := m.Called(ctx, commentID)
	return args.String(0), args.Error(1)
}

func (m *ThreadRepository) VerifyThreadExists(ctx context.Context, threadID string) error {
	args := m.Called(ctx, threadID)
	return args.Error(0)
}

func (m *ThreadRepository) VerifyCommentExists(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *ThreadRepository) VerifyReplyExists(ctx context.Context, replyID string) (string, error) {
	args := m.Called(ctx, replyID)
	return args.String(0), args.Error(1)
}

func (m *ThreadRepository) VerifyCommentOwner(ctx context.Context, commentID, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *ThreadRepository) GetThread(ctx context.Context, threadID string) (*domain.ThreadInfo, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ThreadInfo), args.Error(1)
}

func (m *ThreadRepository) GetThreadComments(ctx context.Context, threadID string) ([]domain.ThreadComment, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ThreadComment), args.Error(1)
}

func (m *ThreadRepository) IsLiked(ctx context.Context, commentID, userID string) (bool, error) {
	args := m.Called(ctx, commentID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *ThreadRepository) AddCommentLike(ctx context.Context, commentID, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *ThreadRepository) DeleteCommentLike(ctx context.Context, commentID, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}
