package handler

import "forum-api/internal/service"

type Handlers struct {
	Auth   *AuthHandler
	User   *UserHandler
	Thread *ThreadHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:   NewAuthHandler(services.Auth),
		User:   NewUserHandler(services.User),
		Thread: NewThreadHandler(services.Thread, services.Comment, services.Reply),
	}
}
