package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"forum-api/internal/domain"
	"forum-api/internal/repository"
)

// Placeholders shown in place of soft-deleted content. The exact literals
// are part of the API contract.
const (
	deletedCommentPlaceholder = "**komentar telah dihapus**"
	deletedReplyPlaceholder   = "**balasan telah dihapus**"
)

const threadDetailCacheTTL = 5 * time.Minute

type ThreadService interface {
	Create(ctx context.Context, owner string, input domain.CreateThreadInput) (*domain.AddedThread, error)
	GetDetail(ctx context.Context, threadID string) (*domain.ThreadDetail, error)
}

type threadService struct {
	threadRepo repository.ThreadRepository
	redis      *redis.Client
}

func NewThreadService(threadRepo repository.ThreadRepository, redis *redis.Client) ThreadService {
	return &threadService{
		threadRepo: threadRepo,
		redis:      redis,
	}
}

func (s *threadService) Create(ctx context.Context, owner string, input domain.CreateThreadInput) (*domain.AddedThread, error) {
	return s.threadRepo.AddThread(ctx, input, owner)
}

// GetDetail assembles the full view of a thread: the thread row and its
// comment tree are fetched concurrently, then deleted content is redacted
// and the delete flags dropped.
func (s *threadService) GetDetail(ctx context.Context, threadID string) (*domain.ThreadDetail, error) {
	if err := s.threadRepo.VerifyThreadExists(ctx, threadID); err != nil {
		return nil, err
	}

	cacheKey := threadDetailCacheKey(threadID)
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var detail domain.ThreadDetail
			if json.Unmarshal([]byte(cached), &detail) == nil {
				return &detail, nil
			}
		}
	}

	var (
		thread   *domain.ThreadInfo
		comments []domain.ThreadComment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		thread, err = s.threadRepo.GetThread(gctx, threadID)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = s.threadRepo.GetThreadComments(gctx, threadID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail := &domain.ThreadDetail{
		ID:       thread.ID,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     thread.Date,
		Username: thread.Username,
		Comments: redactComments(comments),
	}

	if s.redis != nil {
		if detailJSON, err := json.Marshal(detail); err == nil {
			_ = s.redis.Set(ctx, cacheKey, detailJSON, threadDetailCacheTTL).Err()
		}
	}

	return detail, nil
}

func redactComments(comments []domain.ThreadComment) []domain.CommentDetail {
	out := make([]domain.CommentDetail, 0, len(comments))
	for _, c := range comments {
		content := c.Content
		if c.IsDelete {
			content = deletedCommentPlaceholder
		}

		replies := make([]domain.ReplyDetail, 0, len(c.Replies))
		for _, r := range c.Replies {
			replyContent := r.Content
			if r.IsDelete {
				replyContent = deletedReplyPlaceholder
			}
			replies = append(replies, domain.ReplyDetail{
				ID:       r.ID,
				Username: r.Username,
				Date:     r.Date,
				Content:  replyContent,
			})
		}

		out = append(out, domain.CommentDetail{
			ID:        c.ID,
			Username:  c.Username,
			Date:      c.Date,
			Content:   content,
			Replies:   replies,
			LikeCount: c.LikeCount,
		})
	}
	return out
}

func threadDetailCacheKey(threadID string) string {
	return fmt.Sprintf("thread:detail:%s", threadID)
}

func invalidateThreadDetail(ctx context.Context, rdb *redis.Client, threadID string) {
	if rdb == nil {
		return
	}
	_ = rdb.Del(ctx, threadDetailCacheKey(threadID)).Err()
}
