package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"forum-api/internal/domain"
	"forum-api/internal/pkg/idgen"
)

// ThreadRepository owns the unified comment/reply table: thread and comment
// writes, soft deletes, like toggling, the existence/ownership checks, and
// the reads the detail aggregation is built from. Replies are comment rows
// with is_reply set, joined through thread_comment_replies.
type ThreadRepository interface {
	AddThread(ctx context.Context, input domain.CreateThreadInput, owner string) (*domain.AddedThread, error)
	AddComment(ctx context.Context, input domain.CreateCommentInput, owner, threadID string) (*domain.AddedComment, error)
	AddReply(ctx context.Context, input domain.CreateCommentInput, owner, threadID, commentID string) (*domain.AddedReply, error)
	SoftDeleteComment(ctx context.Context, commentID string) (threadID string, err error)

	VerifyThreadExists(ctx context.Context, threadID string) error
	VerifyCommentExists(ctx context.Context, commentID string) error
	VerifyReplyExists(ctx context.Context, replyID string) (commentID string, err error)
	VerifyCommentOwner(ctx context.Context, commentID, userID string) error

	GetThread(ctx context.Context, threadID string) (*domain.ThreadInfo, error)
	GetThreadComments(ctx context.Context, threadID string) ([]domain.ThreadComment, error)

	IsLiked(ctx context.Context, commentID, userID string) (bool, error)
	AddCommentLike(ctx context.Context, commentID, userID string) error
	DeleteCommentLike(ctx context.Context, commentID, userID string) error
}

type threadRepository struct {
	db *sqlx.DB
}

func NewThreadRepository(db *sqlx.DB) ThreadRepository {
	return &threadRepository{db: db}
}

func (r *threadRepository) AddThread(ctx context.Context, input domain.CreateThreadInput, owner string) (*domain.AddedThread, error) {
	query := `
		INSERT INTO threads (id, title, body, owner)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, owner`

	var added domain.AddedThread
	err := r.db.GetContext(ctx, &added, query, idgen.NewThreadID(), input.Title, input.Body, owner)
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (r *threadRepository) AddComment(ctx context.Context, input domain.CreateCommentInput, owner, threadID string) (*domain.AddedComment, error) {
	query := `
		INSERT INTO thread_comments (id, content, owner, thread_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, content, owner`

	var added domain.AddedComment
	err := r.db.GetContext(ctx, &added, query, idgen.NewCommentID(), input.Content, owner, threadID)
	if err != nil {
		return nil, err
	}
	return &added, nil
}

// AddReply inserts the backing comment row and its reply link in one
// transaction; a failure of either insert leaves no trace of the other.
func (r *threadRepository) AddReply(ctx context.Context, input domain.CreateCommentInput, owner, threadID, commentID string) (*domain.AddedReply, error) {
	replyID := idgen.NewReplyID()
	backingID := idgen.NewCommentID()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	commentQuery := `
		INSERT INTO thread_comments (id, content, owner, thread_id, is_reply)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING content, owner`

	var added domain.AddedReply
	if err := tx.QueryRowxContext(ctx, commentQuery, backingID, input.Content, owner, threadID).
		Scan(&added.Content, &added.Owner); err != nil {
		return nil, err
	}

	replyQuery := `
		INSERT INTO thread_comment_replies (id, reply_to, comment_id)
		VALUES ($1, $2, $3)
		RETURNING id`

	if err := tx.QueryRowxContext(ctx, replyQuery, replyID, commentID, backingID).Scan(&added.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &added, nil
}

// SoftDeleteComment flips is_delete; the row and its content stay for
// audit and referential history. Replies go through the same path since a
// reply link's comment_id shares the comment id space.
func (r *threadRepository) SoftDeleteComment(ctx context.Context, commentID string) (string, error) {
	query := `UPDATE thread_comments SET is_delete = TRUE WHERE id = $1 RETURNING thread_id`

	var threadID string
	err := r.db.QueryRowxContext(ctx, query, commentID).Scan(&threadID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrCommentNotFound
	}
	if err != nil {
		return "", err
	}
	return threadID, nil
}

func (r *threadRepository) VerifyThreadExists(ctx context.Context, threadID string) error {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, threadID); err != nil {
		return err
	}
	if !exists {
		return domain.ErrThreadNotFound
	}
	return nil
}

func (r *threadRepository) VerifyCommentExists(ctx context.Context, commentID string) error {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM thread_comments WHERE id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, commentID); err != nil {
		return err
	}
	if !exists {
		return domain.ErrCommentNotFound
	}
	return nil
}

// VerifyReplyExists resolves a reply-link id to its backing comment id,
// which subsequent ownership checks and deletes operate on.
func (r *threadRepository) VerifyReplyExists(ctx context.Context, replyID string) (string, error) {
	var commentID string
	query := `SELECT comment_id FROM thread_comment_replies WHERE id = $1`

	err := r.db.GetContext(ctx, &commentID, query, replyID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrReplyNotFound
	}
	if err != nil {
		return "", err
	}
	return commentID, nil
}

func (r *threadRepository) VerifyCommentOwner(ctx context.Context, commentID, userID string) error {
	var owner string
	query := `SELECT owner FROM thread_comments WHERE id = $1`

	err := r.db.GetContext(ctx, &owner, query, commentID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrCommentNotFound
	}
	if err != nil {
		return err
	}
	if owner != userID {
		return domain.ErrNotCommentOwner
	}
	return nil
}

func (r *threadRepository) GetThread(ctx context.Context, threadID string) (*domain.ThreadInfo, error) {
	var thread domain.ThreadInfo
	query := `
		SELECT t.id, t.title, t.body, t.date, u.username
		FROM threads t
		JOIN users u ON u.id = t.owner
		WHERE t.id = $1`

	err := r.db.GetContext(ctx, &thread, query, threadID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrThreadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

// GetThreadComments returns the raw comment tree: top-level comments with
// like counts, each carrying its replies, both levels ordered by ascending
// date. Content is unredacted and is_delete flags are preserved; redaction
// is the aggregation service's job.
func (r *threadRepository) GetThreadComments(ctx context.Context, threadID string) ([]domain.ThreadComment, error) {
	commentsQuery := `
		SELECT c.id, u.username, c.date, c.content, c.is_delete,
			COUNT(l.user_id) AS like_count
		FROM thread_comments c
		JOIN users u ON u.id = c.owner
		LEFT JOIN thread_comment_likes l ON l.comment_id = c.id
		WHERE c.thread_id = $1 AND c.is_reply = FALSE
		GROUP BY c.id, u.username
		ORDER BY c.date ASC`

	var comments []domain.ThreadComment
	if err := r.db.SelectContext(ctx, &comments, commentsQuery, threadID); err != nil {
		return nil, err
	}

	repliesQuery := `
		SELECT r.id, r.reply_to, u.username, c.date, c.content, c.is_delete
		FROM thread_comment_replies r
		JOIN thread_comments c ON c.id = r.comment_id
		JOIN users u ON u.id = c.owner
		WHERE c.thread_id = $1
		ORDER BY c.date ASC`

	var replies []domain.ThreadReply
	if err := r.db.SelectContext(ctx, &replies, repliesQuery, threadID); err != nil {
		return nil, err
	}

	byParent := make(map[string][]domain.ThreadReply, len(comments))
	for _, reply := range replies {
		byParent[reply.ReplyTo] = append(byParent[reply.ReplyTo], reply)
	}
	for i := range comments {
		if rs, ok := byParent[comments[i].ID]; ok {
			comments[i].Replies = rs
		} else {
			comments[i].Replies = []domain.ThreadReply{}
		}
	}

	return comments, nil
}

func (r *threadRepository) IsLiked(ctx context.Context, commentID, userID string) (bool, error) {
	var liked bool
	query := `SELECT EXISTS(SELECT 1 FROM thread_comment_likes WHERE comment_id = $1 AND user_id = $2)`
	err := r.db.GetContext(ctx, &liked, query, commentID, userID)
	return liked, err
}

// AddCommentLike has no upsert guard: callers branch through IsLiked first,
// and a concurrent double-add fails on the (comment_id, user_id) unique
// constraint rather than being absorbed.
func (r *threadRepository) AddCommentLike(ctx context.Context, commentID, userID string) error {
	query := `INSERT INTO thread_comment_likes (comment_id, user_id) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, commentID, userID)
	return err
}

func (r *threadRepository) DeleteCommentLike(ctx context.Context, commentID, userID string) error {
	query := `DELETE FROM thread_comment_likes WHERE comment_id = $1 AND user_id = $2`
	_, err := r.db.ExecContext(ctx, query, commentID, userID)
	return err
}
