// Package idgen produces the prefixed opaque identifiers used across the
// forum: thread-xxxx, comment-xxxx, reply-xxxx, user-xxxx.
package idgen

import (
	"crypto/rand"
	"encoding/hex"
)

const (
	ThreadPrefix  = "thread-"
	CommentPrefix = "comment-"
	ReplyPrefix   = "reply-"
	UserPrefix    = "user-"

	// 16 hex chars keep every id inside its column width:
	// threads VARCHAR(23), comments VARCHAR(24), replies VARCHAR(22).
	suffixBytes = 8
)

func NewThreadID() string  { return ThreadPrefix + suffix() }
func NewCommentID() string { return CommentPrefix + suffix() }
func NewReplyID() string   { return ReplyPrefix + suffix() }
func NewUserID() string    { return UserPrefix + suffix() }

func suffix() string {
	b := make([]byte, suffixBytes)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
