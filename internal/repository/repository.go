package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Thread  ThreadRepository
	User    UserRepository
	Session SessionRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Thread:  NewThreadRepository(db),
		User:    NewUserRepository(db),
		Session: NewSessionRepository(db),
	}
}
