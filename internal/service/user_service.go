package service

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/minio/minio-go/v7"

	"forum-api/internal/config"
	"forum-api/internal/domain"
	"forum-api/internal/repository"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, userID, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.User, error)
}

type userService struct {
	userRepo    repository.UserRepository
	minioClient *minio.Client
	cfg         *config.Config
}

func NewUserService(userRepo repository.UserRepository, minioClient *minio.Client, cfg *config.Config) UserService {
	return &userService{
		userRepo:    userRepo,
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateAvatar stores the image under a per-user key so re-uploads replace
// the previous object instead of accumulating.
func (s *userService) UpdateAvatar(ctx context.Context, userID, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.User, error) {
	if s.minioClient == nil {
		return nil, fmt.Errorf("media storage is not configured")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	storagePath := fmt.Sprintf("avatars/%s", userID)

	_, err = s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	avatarURL := s.getPublicURL(storagePath)
	if err := s.userRepo.UpdateAvatarURL(ctx, userID, avatarURL); err != nil {
		return nil, err
	}

	user.AvatarURL = &avatarURL
	return user, nil
}

func (s *userService) getPublicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(storagePath))
}
