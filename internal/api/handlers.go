package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/npezzotti/go-social/internal/types"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateMessageRequest struct {
	Text string `json:"message_text"`
}

func (s *SocialApp) writeJson(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Printf("json encode: %v", err)
	}
}

// writeEmpty sends a status with no body, which is how this API reports
// rejected input and missing resources.
func (s *SocialApp) writeEmpty(w http.ResponseWriter, statusCode int) {
	w.WriteHeader(statusCode)
}

func pathInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(r.PathValue(name))
}

func (s *SocialApp) healthCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.log.Println("health check:", err)
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *SocialApp) register(w http.ResponseWriter, r *http.Request) {
	var req types.Account
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeEmpty(w, http.StatusBadRequest)
		return
	}

	account, err := s.accounts.CreateAccount(r.Context(), req.ToDB())
	if err != nil {
		s.log.Printf("register %q: %v", req.Username, err)
		s.writeEmpty(w, http.StatusBadRequest)
		return
	}

	s.stats.Incr(metricAccountsRegistered)
	s.writeJson(w, http.StatusOK, types.AccountFromDB(account))
}

func (s *SocialApp) login(w http.ResponseWriter, r *http.Request) {
	var lr LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&lr); err != nil {
		s.writeEmpty(w, http.StatusUnauthorized)
		return
	}

	account, err := s.accounts.AuthenticateAccount(r.Context(), lr.Username, lr.Password)
	if err != nil {
		s.stats.Incr(metricLoginsFailed)
		s.writeEmpty(w, http.StatusUnauthorized)
		return
	}

	s.stats.Incr(metricLoginsSucceeded)
	s.writeJson(w, http.StatusOK, types.AccountFromDB(account))
}

func (s *SocialApp) createMessage(w http.ResponseWriter, r *http.Request) {
	var req types.Message
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeEmpty(w, http.StatusBadRequest)
		return
	}

	msg, err := s.messages.CreateMessage(r.Context(), req.ToDB())
	if err != nil {
		s.writeEmpty(w, http.StatusBadRequest)
		return
	}

	s.stats.Incr(metricMessagesCreated)
	s.writeJson(w, http.StatusOK, types.MessageFromDB(msg))
}

func (s *SocialApp) getAllMessages(w http.ResponseWriter, r *http.Request) {
	msgs := s.messages.GetAllMessages(r.Context())
	s.writeJson(w, http.StatusOK, types.MessagesFromDB(msgs))
}

func (s *SocialApp) getMessage(w http.ResponseWriter, r *http.Request) {
	messageId, err := pathInt(r, "message_id")
	if err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	msg, err := s.messages.GetMessageById(r.Context(), messageId)
	if err != nil {
		// a missing message is not an error for this endpoint
		s.writeEmpty(w, http.StatusOK)
		return
	}

	s.writeJson(w, http.StatusOK, types.MessageFromDB(msg))
}

func (s *SocialApp) deleteMessage(w http.ResponseWriter, r *http.Request) {
	messageId, err := pathInt(r, "message_id")
	if err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	msg, err := s.messages.DeleteMessage(r.Context(), messageId)
	if err != nil {
		s.writeEmpty(w, http.StatusOK)
		return
	}

	s.stats.Incr(metricMessagesDeleted)
	s.writeJson(w, http.StatusOK, types.MessageFromDB(msg))
}

func (s *SocialApp) updateMessage(w http.ResponseWriter, r *http.Request) {
	messageId, err := pathInt(r, "message_id")
	if err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req UpdateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeEmpty(w, http.StatusBadRequest)
		return
	}

	msg, err := s.messages.UpdateMessage(r.Context(), messageId, types.Message{Text: req.Text}.ToDB())
	if err != nil {
		s.writeEmpty(w, http.StatusBadRequest)
		return
	}

	s.stats.Incr(metricMessagesUpdated)
	s.writeJson(w, http.StatusOK, types.MessageFromDB(msg))
}

func (s *SocialApp) getAccountMessages(w http.ResponseWriter, r *http.Request) {
	accountId, err := pathInt(r, "account_id")
	if err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	msgs := s.messages.GetAllMessagesFromUser(r.Context(), accountId)
	s.writeJson(w, http.StatusOK, types.MessagesFromDB(msgs))
}
