package types

import "github.com/npezzotti/go-social/internal/database"

// Account is the wire form of an account. The password is echoed back in
// responses, as clients of this API expect.
type Account struct {
	Id       int    `json:"account_id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Message struct {
	Id              int    `json:"message_id"`
	PostedBy        int    `json:"posted_by"`
	Text            string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}

func AccountFromDB(a database.Account) Account {
	return Account{
		Id:       a.Id,
		Username: a.Username,
		Password: a.Password,
	}
}

func (a Account) ToDB() database.Account {
	return database.Account{
		Id:       a.Id,
		Username: a.Username,
		Password: a.Password,
	}
}

func MessageFromDB(m database.Message) Message {
	return Message{
		Id:              m.Id,
		PostedBy:        m.PostedBy,
		Text:            m.Text,
		TimePostedEpoch: m.TimePostedEpoch,
	}
}

func MessagesFromDB(msgs []database.Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, MessageFromDB(m))
	}
	return out
}

func (m Message) ToDB() database.Message {
	return database.Message{
		Id:              m.Id,
		PostedBy:        m.PostedBy,
		Text:            m.Text,
		TimePostedEpoch: m.TimePostedEpoch,
	}
}
