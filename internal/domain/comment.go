package domain

import "time"

// Comment backs both top-level comments and replies: a reply is a comment
// row with IsReply set, attached to its parent through the
// thread_comment_replies link table.
type Comment struct {
	ID       string    `json:"id" db:"id"`
	Content  string    `json:"content" db:"content"`
	Owner    string    `json:"owner" db:"owner"`
	ThreadID string    `json:"thread_id" db:"thread_id"`
	IsDelete bool      `json:"is_delete" db:"is_delete"`
	IsReply  bool      `json:"is_reply" db:"is_reply"`
	Date     time.Time `json:"date" db:"date"`
}

type CreateCommentInput struct {
	Content string `json:"content" validate:"required"`
}

type AddedComment struct {
	ID      string `json:"id" db:"id"`
	Content string `json:"content" db:"content"`
	Owner   string `json:"owner" db:"owner"`
}

// AddedReply carries the reply-link id, not the backing comment id.
type AddedReply struct {
	ID      string `json:"id" db:"id"`
	Content string `json:"content" db:"content"`
	Owner   string `json:"owner" db:"owner"`
}
