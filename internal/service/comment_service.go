package service

import (
	"context"

	"github.com/redis/go-redis/v9"

	"forum-api/internal/domain"
	"forum-api/internal/repository"
)

type CommentService interface {
	Create(ctx context.Context, owner, threadID string, input domain.CreateCommentInput) (*domain.AddedComment, error)
	Delete(ctx context.Context, commentID, userID string) error
	ToggleLike(ctx context.Context, threadID, commentID, userID string) error
}

type commentService struct {
	threadRepo repository.ThreadRepository
	redis      *redis.Client
}

func NewCommentService(threadRepo repository.ThreadRepository, redis *redis.Client) CommentService {
	return &commentService{
		threadRepo: threadRepo,
		redis:      redis,
	}
}

func (s *commentService) Create(ctx context.Context, owner, threadID string, input domain.CreateCommentInput) (*domain.AddedComment, error) {
	if err := s.threadRepo.VerifyThreadExists(ctx, threadID); err != nil {
		return nil, err
	}

	added, err := s.threadRepo.AddComment(ctx, input, owner, threadID)
	if err != nil {
		return nil, err
	}

	invalidateThreadDetail(ctx, s.redis, threadID)
	return added, nil
}

// Delete checks existence before ownership: a delete against a missing
// comment reports not-found even for a non-owner.
func (s *commentService) Delete(ctx context.Context, commentID, userID string) error {
	if err := s.threadRepo.VerifyCommentExists(ctx, commentID); err != nil {
		return err
	}
	if err := s.threadRepo.VerifyCommentOwner(ctx, commentID, userID); err != nil {
		return err
	}

	threadID, err := s.threadRepo.SoftDeleteComment(ctx, commentID)
	if err != nil {
		return err
	}

	invalidateThreadDetail(ctx, s.redis, threadID)
	return nil
}

// ToggleLike adds the like when absent and removes it when present. There
// is no upsert: a racing double-add is rejected by the unique constraint
// and surfaces as an error.
func (s *commentService) ToggleLike(ctx context.Context, threadID, commentID, userID string) error {
	if err := s.threadRepo.VerifyThreadExists(ctx, threadID); err != nil {
		return err
	}
	if err := s.threadRepo.VerifyCommentExists(ctx, commentID); err != nil {
		return err
	}

	liked, err := s.threadRepo.IsLiked(ctx, commentID, userID)
	if err != nil {
		return err
	}

	if liked {
		err = s.threadRepo.DeleteCommentLike(ctx, commentID, userID)
	} else {
		err = s.threadRepo.AddCommentLike(ctx, commentID, userID)
	}
	if err != nil {
		return err
	}

	invalidateThreadDetail(ctx, s.redis, threadID)
	return nil
}
