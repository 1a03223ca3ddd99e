package database

import "context"

// SocialRepository is the persistence boundary for accounts and messages.
// Lookups of a single row return sql.ErrNoRows when the row is absent.
type SocialRepository interface {
	Ping(ctx context.Context) error
	CreateAccount(ctx context.Context, params CreateAccountParams) (Account, error)
	AccountExists(ctx context.Context, username string) (bool, error)
	GetAccountByUsername(ctx context.Context, username string) (Account, error)
	AccountIdExists(ctx context.Context, accountId int) (bool, error)
	CreateMessage(ctx context.Context, params CreateMessageParams) (Message, error)
	GetMessages(ctx context.Context) ([]Message, error)
	GetMessageById(ctx context.Context, messageId int) (Message, error)
	DeleteMessage(ctx context.Context, messageId int) (Message, error)
	UpdateMessageText(ctx context.Context, messageId int, text string) (Message, error)
	GetMessagesByAccountId(ctx context.Context, accountId int) ([]Message, error)
}
