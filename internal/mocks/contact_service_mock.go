package mocks

import (
	"context"

	"github.com/joshu-sajeev/contactrelay/internal/dto"
	"github.com/stretchr/testify/mock"
)

type ContactServiceMock struct {
	mock.Mock
}

func (m *ContactServiceMock) CheckConfigured() error {
	args := m.Called()
	return args.Error(0)
}

func (m *ContactServiceMock) Submit(ctx context.Context, sub *dto.ContactSubmission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}
