package service

import (
	"context"

	"github.com/redis/go-redis/v9"

	"forum-api/internal/domain"
	"forum-api/internal/repository"
)

type ReplyService interface {
	Create(ctx context.Context, owner, threadID, commentID string, input domain.CreateCommentInput) (*domain.AddedReply, error)
	Delete(ctx context.Context, replyID, userID string) error
}

type replyService struct {
	threadRepo repository.ThreadRepository
	redis      *redis.Client
}

func NewReplyService(threadRepo repository.ThreadRepository, redis *redis.Client) ReplyService {
	return &replyService{
		threadRepo: threadRepo,
		redis:      redis,
	}
}

func (s *replyService) Create(ctx context.Context, owner, threadID, commentID string, input domain.CreateCommentInput) (*domain.AddedReply, error) {
	if err := s.threadRepo.VerifyThreadExists(ctx, threadID); err != nil {
		return nil, err
	}
	if err := s.threadRepo.VerifyCommentExists(ctx, commentID); err != nil {
		return nil, err
	}

	added, err := s.threadRepo.AddReply(ctx, input, owner, threadID, commentID)
	if err != nil {
		return nil, err
	}

	invalidateThreadDetail(ctx, s.redis, threadID)
	return added, nil
}

// Delete resolves the reply link to its backing comment and checks
// ownership of that comment; the link itself carries no owner. The soft
// delete then runs through the same path as a comment delete.
func (s *replyService) Delete(ctx context.Context, replyID, userID string) error {
	commentID, err := s.threadRepo.VerifyReplyExists(ctx, replyID)
	if err != nil {
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
