package domain

import "time"

type Thread struct {
	ID    string    `json:"id" db:"id"`
	Title string    `json:"title" db:"title"`
	Body  string    `json:"body" db:"body"`
	Owner string    `json:"owner" db:"owner"`
	Date  time.Time `json:"date" db:"date"`
}

type CreateThreadInput struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// AddedThread is the created-resource projection returned by AddThread,
// not the full thread row.
type AddedThread struct {
	ID    string `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
	Owner string `json:"owner" db:"owner"`
}

// ThreadInfo is the thread row joined with its author's username,
// as read by the detail aggregation.
type ThreadInfo struct {
	ID       string    `json:"id" db:"id"`
	Title    string    `json:"title" db:"title"`
	Body     string    `json:"body" db:"body"`
	Date     time.Time `json:"date" db:"date"`
	Username string    `json:"username" db:"username"`
}

// ThreadComment and ThreadReply are the raw comment-tree rows: content is
// unredacted and the delete flag is still present. The service applies the
// redaction pass and maps them into CommentDetail/ReplyDetail.
type ThreadComment struct {
	ID        string        `db:"id"`
	Username  string        `db:"username"`
	Date      time.Time     `db:"date"`
	Content   string        `db:"content"`
	IsDelete  bool          `db:"is_delete"`
	LikeCount int           `db:"like_count"`
	Replies   []ThreadReply `db:"-"`
}

type ThreadReply struct {
	ID       string    `db:"id"`
	ReplyTo  string    `db:"reply_to"`
	Username string    `db:"username"`
	Date     time.Time `db:"date"`
	Content  string    `db:"content"`
	IsDelete bool      `db:"is_delete"`
}

// ThreadDetail is the aggregated, redacted view of a thread. Deleted
// content has already been replaced and the delete flags dropped.
type ThreadDetail struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

type CommentDetail struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Date      time.Time     `json:"date"`
	Content   string        `json:"content"`
	Replies   []ReplyDetail `json:"replies"`
	LikeCount int           `json:"likeCount"`
}

type ReplyDetail struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Date     time.Time `json:"date"`
	Content  string    `json:"content"`
}
