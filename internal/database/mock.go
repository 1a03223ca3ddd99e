package database

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockSocialRepository struct {
	mock.Mock
}

func (m *MockSocialRepository) Ping(ctx context.Context) error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockSocialRepository) CreateAccount(ctx context.Context, params CreateAccountParams) (Account, error) {
	args := m.Called(params)
	return args.Get(0).(Account), args.Error(1)
}
func (m *MockSocialRepository) AccountExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}
func (m *MockSocialRepository) GetAccountByUsername(ctx context.Context, username string) (Account, error) {
	args := m.Called(username)
	return args.Get(0).(Account), args.Error(1)
}
func (m *MockSocialRepository) AccountIdExists(ctx context.Context, accountId int) (bool, error) {
	args := m.Called(accountId)
	return args.Bool(0), args.Error(1)
}
func (m *MockSocialRepository) CreateMessage(ctx context.Context, params CreateMessageParams) (Message, error) {
	args := m.Called(params)
	return args.Get(0).(Message), args.Error(1)
}
func (m *MockSocialRepository) GetMessages(ctx context.Context) ([]Message, error) {
	args := m.Called()
	if msgs, ok := args.Get(0).([]Message); ok {
		return msgs, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockSocialRepository) GetMessageById(ctx context.Context, messageId int) (Message, error) {
	args := m.Called(messageId)
	return args.Get(0).(Message), args.Error(1)
}
func (m *MockSocialRepository) DeleteMessage(ctx context.Context, messageId int) (Message, error) {
	args := m.Called(messageId)
	return args.Get(0).(Message), args.Error(1)
}
func (m *MockSocialRepository) UpdateMessageText(ctx context.Context, messageId int, text string) (Message, error) {
	args := m.Called(messageId, text)
	return args.Get(0).(Message), args.Error(1)
}
func (m *MockSocialRepository) GetMessagesByAccountId(ctx context.Context, accountId int) ([]Message, error) {
	args := m.Called(accountId)
	if msgs, ok := args.Get(0).([]Message); ok {
		return msgs, args.Error(1)
	}
	return nil, args.Error(1)
}
