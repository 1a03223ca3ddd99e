package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/npezzotti/go-social/internal/database"
	"github.com/npezzotti/go-social/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateMessage(t *testing.T) {
	created := database.Message{Id: 1, PostedBy: 1, Text: "hello", TimePostedEpoch: 1000}

	tcases := []struct {
		name        string
		candidate   database.Message
		checkOwner  bool
		ownerExists bool
		ownerErr    error
		insertErr   error
		expectedErr error
	}{
		{
			name:        "creates message",
			candidate:   database.Message{PostedBy: 1, Text: "hello", TimePostedEpoch: 1000},
			checkOwner:  true,
			ownerExists: true,
		},
		{
			name:        "rejects empty text",
			candidate:   database.Message{PostedBy: 1, Text: "", TimePostedEpoch: 1000},
			expectedErr: ErrInvalidMessage,
		},
		{
			name:        "rejects text of 255 characters",
			candidate:   database.Message{PostedBy: 1, Text: strings.Repeat("a", 255), TimePostedEpoch: 1000},
			expectedErr: ErrInvalidMessage,
		},
		{
			name:        "rejects unknown poster",
			candidate:   database.Message{PostedBy: 99, Text: "hello", TimePostedEpoch: 1000},
			checkOwner:  true,
			ownerExists: false,
			expectedErr: ErrAccountNotFound,
		},
		{
			name:        "storage failure on owner check",
			candidate:   database.Message{PostedBy: 1, Text: "hello", TimePostedEpoch: 1000},
			checkOwner:  true,
			ownerErr:    errors.New("db down"),
			expectedErr: ErrStorage,
		},
		{
			name:        "storage failure on insert",
			candidate:   database.Message{PostedBy: 1, Text: "hello", TimePostedEpoch: 1000},
			checkOwner:  true,
			ownerExists: true,
			insertErr:   errors.New("db down"),
			expectedErr: ErrStorage,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockSocialRepository{}
			defer mockRepo.AssertExpectations(t)

			if tc.checkOwner {
				mockRepo.On("AccountIdExists", tc.candidate.PostedBy).Return(tc.ownerExists, tc.ownerErr).Once()
			}
			if tc.ownerExists && tc.ownerErr == nil {
				mockRepo.On("CreateMessage", database.CreateMessageParams{
					PostedBy:        tc.candidate.PostedBy,
					Text:            tc.candidate.Text,
					TimePostedEpoch: tc.candidate.TimePostedEpoch,
				}).Return(created, tc.insertErr).Once()
			}

			svc := NewMessageService(testutil.TestLogger(t), mockRepo)
			msg, err := svc.CreateMessage(context.Background(), tc.candidate)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Equal(t, database.Message{}, msg)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, created, msg)
			assert.Positive(t, msg.Id, "expected database-assigned id")
		})
	}
}

func TestCreateMessage_TextLengthCountsCharacters(t *testing.T) {
	mockRepo := &database.MockSocialRepository{}
	defer mockRepo.AssertExpectations(t)

	// 254 multi-byte characters is more than 255 bytes but still valid.
	text := strings.Repeat("é", 254)
	mockRepo.On("AccountIdExists", 1).Return(true, nil).Once()
	mockRepo.On("CreateMessage", mock.Anything).Return(database.Message{Id: 3, PostedBy: 1, Text: text}, nil).Once()

	svc := NewMessageService(testutil.TestLogger(t), mockRepo)
	_, err := svc.CreateMessage(context.Background(), database.Message{PostedBy: 1, Text: text})
	assert.NoError(t, err)
}

func TestGetAllMessages(t *testing.T) {
	t.Run("returns messages", func(t *testing.T) {
		msgs := []database.Message{{Id: 1, PostedBy: 1, Text: "a"}, {Id: 2, PostedBy: 2, Text: "b"}}
		mockRepo := &database.MockSocialRepository{}
		defer mockRepo.AssertExpectations(t)
		mockRepo.On("GetMessages").Return(msgs, nil).Once()

		svc := NewMessageService(testutil.TestLogger(t), mockRepo)
		assert.Equal(t, msgs, svc.GetAllMessages(context.Background()))
	})

	t.Run("storage failure yields empty", func(t *testing.T) {
		mockRepo := &database.MockSocialRepository{}
		defer mockRepo.AssertExpectations(t)
		mockRepo.On("GetMessages").Return(nil, errors.New("db down")).Once()

		svc := NewMessageService(testutil.TestLogger(t), mockRepo)
		got := svc.GetAllMessages(context.Background())
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestGetMessageById(t *testing.T) {
	mockRepo := &database.MockSocialRepository{}
	defer mockRepo.AssertExpectations(t)

	msg := database.Message{Id: 1, PostedBy: 1, Text: "hello", TimePostedEpoch: 1000}
	mockRepo.On("GetMessageById", 1).Return(msg, nil).Once()
	mockRepo.On("GetMessageById", 2).Return(database.Message{}, sql.ErrNoRows).Once()
	mockRepo.On("GetMessageById", 3).Return(database.Message{}, errors.New("db down")).Once()

	svc := NewMessageService(testutil.TestLogger(t), mockRepo)
	ctx := context.Background()

	got, err := svc.GetMessageById(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, msg, got)

	_, err = svc.GetMessageById(ctx, 2)
	assert.ErrorIs(t, err, ErrMessageNotFound)

	_, err = svc.GetMessageById(ctx, 3)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestDeleteMessage_Twice(t *testing.T) {
	mockRepo := &database.MockSocialRepository{}
	defer mockRepo.AssertExpectations(t)

	msg := database.Message{Id: 1, PostedBy: 1, Text: "hello", TimePostedEpoch: 1000}
	mockRepo.On("DeleteMessage", 1).Return(msg, nil).Once()
	mockRepo.On("DeleteMessage", 1).Return(database.Message{}, sql.ErrNoRows).Once()

	svc := NewMessageService(testutil.TestLogger(t), mockRepo)
	ctx := context.Background()

	deleted, err := svc.DeleteMessage(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, msg, deleted, "expected pre-deletion snapshot")

	_, err = svc.DeleteMessage(ctx, 1)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestUpdateMessage(t *testing.T) {
	updated := database.Message{Id: 1, PostedBy: 1, Text: "hi", TimePostedEpoch: 1000}

	tcases := []struct {
		name        string
		text        string
		callRepo    bool
		mockMsg     database.Message
		mockErr     error
		expectedErr error
	}{
		{
			name:     "updates text",
			text:     "hi",
			callRepo: true,
			mockMsg:  updated,
		},
		{
			name:        "rejects empty text",
			text:        "",
			expectedErr: ErrInvalidMessage,
		},
		{
			name:        "rejects overlong text",
			text:        strings.Repeat("x", 300),
			expectedErr: ErrInvalidMessage,
		},
		{
			name:        "unknown message",
			text:        "hi",
			callRepo:    true,
			mockErr:     sql.ErrNoRows,
			expectedErr: ErrMessageNotFound,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockSocialRepository{}
			defer mockRepo.AssertExpectations(t)

			if tc.callRepo {
				mockRepo.On("UpdateMessageText", 1, tc.text).Return(tc.mockMsg, tc.mockErr).Once()
			}

			svc := NewMessageService(testutil.TestLogger(t), mockRepo)
			// posted_by and time_posted_epoch in the patch are ignored
			msg, err := svc.UpdateMessage(context.Background(), 1, database.Message{
				PostedBy:        42,
				Text:            tc.text,
				TimePostedEpoch: 9,
			})

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, updated, msg)
		})
	}
}

func TestGetAllMessagesFromUser(t *testing.T) {
	mockRepo := &database.MockSocialRepository{}
	defer mockRepo.AssertExpectations(t)

	mine := []database.Message{{Id: 4, PostedBy: 1, Text: "mine"}}
	mockRepo.On("GetMessagesByAccountId", 1).Return(mine, nil).Once()
	mockRepo.On("GetMessagesByAccountId", 2).Return([]database.Message{}, nil).Once()
	mockRepo.On("GetMessagesByAccountId", 3).Return(nil, errors.New("db down")).Once()

	svc := NewMessageService(testutil.TestLogger(t), mockRepo)
	ctx := context.Background()

	assert.Equal(t, mine, svc.GetAllMessagesFromUser(ctx, 1))
	assert.Empty(t, svc.GetAllMessagesFromUser(ctx, 2))

	got := svc.GetAllMessagesFromUser(ctx, 3)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
