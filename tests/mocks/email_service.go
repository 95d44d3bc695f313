package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendRegistrationEmail(ctx context.Context, toEmail, fullname string) error {
	args := m.Called(ctx, toEmail, fullname)
	return args.Error(0)
}
