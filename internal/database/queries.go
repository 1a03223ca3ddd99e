package database

import (
	"context"
	"fmt"
)

const (
	createAccountQuery = "INSERT INTO account (username, password) " +
		"VALUES ($1, $2) RETURNING account_id, username, password"
	accountExistsQuery        = "SELECT COUNT(*) FROM account WHERE username = $1"
	getAccountByUsernameQuery = "SELECT account_id, username, password FROM account " +
		"WHERE username = $1 LIMIT 1"
	accountIdExistsQuery = "SELECT COUNT(*) FROM account WHERE account_id = $1"

	createMessageQuery = "INSERT INTO message (posted_by, message_text, time_posted_epoch) " +
		"VALUES ($1, $2, $3) RETURNING message_id, posted_by, message_text, time_posted_epoch"
	getMessagesQuery       = "SELECT message_id, posted_by, message_text, time_posted_epoch FROM message"
	getMessageByIdQuery    = getMessagesQuery + " WHERE message_id = $1"
	getMessagesByUserQuery = getMessagesQuery + " WHERE posted_by = $1"
	deleteMessageQuery     = "DELETE FROM message WHERE message_id = $1 " +
		"RETURNING message_id, posted_by, message_text, time_posted_epoch"
	updateMessageTextQuery = "UPDATE message SET message_text = $2 WHERE message_id = $1 " +
		"RETURNING message_id, posted_by, message_text, time_posted_epoch"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(row scanner) (Message, error) {
	var msg Message
	err := row.Scan(
		&msg.Id,
		&msg.PostedBy,
		&msg.Text,
		&msg.TimePostedEpoch,
	)

	return msg, err
}

func (db *PgSocialRepository) CreateAccount(ctx context.Context, params CreateAccountParams) (Account, error) {
	res := db.conn.QueryRowContext(ctx,
		createAccountQuery,
		params.Username,
		params.Password,
	)

	var a Account
	err := res.Scan(
		&a.Id,
		&a.Username,
		&a.Password,
	)

	return a, err
}

func (db *PgSocialRepository) AccountExists(ctx context.Context, username string) (bool, error) {
	return db.exists(ctx, accountExistsQuery, username)
}

func (db *PgSocialRepository) GetAccountByUsername(ctx context.Context, username string) (Account, error) {
	row := db.conn.QueryRowContext(ctx, getAccountByUsernameQuery, username)

	var a Account
	err := row.Scan(
		&a.Id,
		&a.Username,
		&a.Password,
	)

	return a, err
}

func (db *PgSocialRepository) AccountIdExists(ctx context.Context, accountId int) (bool, error) {
	return db.exists(ctx, accountIdExistsQuery, accountId)
}

func (db *PgSocialRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int
	if err := db.conn.QueryRowContext(ctx, query, arg).Scan(&count); err != nil {
		return false, fmt.Errorf("count rows: %w", err)
	}

	return count > 0, nil
}

func (db *PgSocialRepository) CreateMessage(ctx context.Context, params CreateMessageParams) (Message, error) {
	return scanMessage(db.conn.QueryRowContext(ctx,
		createMessageQuery,
		params.PostedBy,
		params.Text,
		params.TimePostedEpoch,
	))
}

func (db *PgSocialRepository) GetMessages(ctx context.Context) ([]Message, error) {
	return db.queryMessages(ctx, getMessagesQuery)
}

func (db *PgSocialRepository) GetMessageById(ctx context.Context, messageId int) (Message, error) {
	return scanMessage(db.conn.QueryRowContext(ctx, getMessageByIdQuery, messageId))
}

func (db *PgSocialRepository) DeleteMessage(ctx context.Context, messageId int) (Message, error) {
	return scanMessage(db.conn.QueryRowContext(ctx, deleteMessageQuery, messageId))
}

func (db *PgSocialRepository) UpdateMessageText(ctx context.Context, messageId int, text string) (Message, error) {
	return scanMessage(db.conn.QueryRowContext(ctx, updateMessageTextQuery, messageId, text))
}

func (db *PgSocialRepository) GetMessagesByAccountId(ctx context.Context, accountId int) ([]Message, error) {
	return db.queryMessages(ctx, getMessagesByUserQuery, accountId)
}

func (db *PgSocialRepository) queryMessages(ctx context.Context, query string, args ...any) ([]Message, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var messages = make([]Message, 0)
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return messages, nil
}

var _ SocialRepository = (*PgSocialRepository)(nil)
