package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"forum-api/internal/config"
	"forum-api/internal/repository"
)

type Services struct {
	Auth    AuthService
	User    UserService
	Thread  ThreadService
	Comment CommentService
	Reply   ReplyService
	Email   EmailService
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := NewEmailService(cfg)
	authService := NewAuthService(repos.User, repos.Session, emailService, cfg)
	userService := NewUserService(repos.User, minioClient, cfg)
	threadService := NewThreadService(repos.Thread, redis)
	commentService := NewCommentService(repos.Thread, redis)
	replyService := NewReplyService(repos.Thread, redis)

	return &Services{
		Auth:    authService,
		User:    userService,
		Thread:  threadService,
		Comment: commentService,
		Reply:   replyService,
		Email:   emailService,
	}
}
