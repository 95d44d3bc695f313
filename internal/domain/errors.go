package domain

import "errors"

// Sentinel errors raised by the existence and ownership checks. Handlers map
// them onto HTTP statuses; the messages are stable labels that API clients
// match on, so they must not change.
var (
	ErrThreadNotFound  = errors.New("thread tidak dapat ditemukan")
	ErrCommentNotFound = errors.New("komentar tidak dapat ditemukan")
	ErrReplyNotFound   = errors.New("balasan tidak dapat ditemukan")
	ErrNotCommentOwner = errors.New("kamu tidak memiliki akses")
)
