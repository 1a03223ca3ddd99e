package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"unicode/utf8"

	"github.com/npezzotti/go-social/internal/database"
)

const maxMessageLength = 255

type MessageService struct {
	log  *log.Logger
	repo database.SocialRepository
}

func NewMessageService(logger *log.Logger, repo database.SocialRepository) *MessageService {
	return &MessageService{
		log:  logger,
		repo: repo,
	}
}

func (s *MessageService) storageErr(op string, err error) error {
	s.log.Printf("%s: %v", op, err)
	return &StorageError{Op: op, Err: err}
}

func validMessageText(text string) bool {
	n := utf8.RuneCountInString(text)
	return n > 0 && n < maxMessageLength
}

// CreateMessage stores candidate if its text is valid and PostedBy names an
// existing account.
func (s *MessageService) CreateMessage(ctx context.Context, candidate database.Message) (database.Message, error) {
	if !validMessageText(candidate.Text) {
		return database.Message{}, ErrInvalidMessage
	}

	exists, err := s.repo.AccountIdExists(ctx, candidate.PostedBy)
	if err != nil {
		return database.Message{}, s.storageErr("account id exists", err)
	}
	if !exists {
		return database.Message{}, ErrAccountNotFound
	}

	msg, err := s.repo.CreateMessage(ctx, database.CreateMessageParams{
		PostedBy:        candidate.PostedBy,
		Text:            candidate.Text,
		TimePostedEpoch: candidate.TimePostedEpoch,
	})
	if err != nil {
		return database.Message{}, s.storageErr("create message", err)
	}

	return msg, nil
}

// GetAllMessages never returns nil; a storage failure yields an empty slice.
func (s *MessageService) GetAllMessages(ctx context.Context) []database.Message {
	msgs, err := s.repo.GetMessages(ctx)
	if err != nil {
		s.storageErr("get messages", err)
		return []database.Message{}
	}

	return msgs
}

func (s *MessageService) GetMessageById(ctx context.Context, messageId int) (database.Message, error) {
	msg, err := s.repo.GetMessageById(ctx, messageId)
	if err != nil {
		return database.Message{}, s.notFoundOrStorage("get message", err)
	}

	return msg, nil
}

// DeleteMessage returns the message as it was before deletion.
func (s *MessageService) DeleteMessage(ctx context.Context, messageId int) (database.Message, error) {
	msg, err := s.repo.DeleteMessage(ctx, messageId)
	if err != nil {
		return database.Message{}, s.notFoundOrStorage("delete message", err)
	}

	return msg, nil
}

// UpdateMessage overwrites only the text of an existing message.
func (s *MessageService) UpdateMessage(ctx context.Context, messageId int, patch database.Message) (database.Message, error) {
	if !validMessageText(patch.Text) {
		return database.Message{}, ErrInvalidMessage
	}

	msg, err := s.repo.UpdateMessageText(ctx, messageId, patch.Text)
	if err != nil {
		return database.Message{}, s.notFoundOrStorage("update message", err)
	}

	return msg, nil
}

// GetAllMessagesFromUser returns an empty slice for unknown accounts.
func (s *MessageService) GetAllMessagesFromUser(ctx context.Context, accountId int) []database.Message {
	msgs, err := s.repo.GetMessagesByAccountId(ctx, accountId)
	if err != nil {
		s.storageErr("get messages by account", err)
		return []database.Message{}
	}

	return msgs
}

func (s *MessageService) notFoundOrStorage(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrMessageNotFound
	}
	return s.storageErr(op, err)
}
