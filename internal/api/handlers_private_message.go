package api

import (
	"encoding/json"
	"net/http"

	"github.com/kmuller/go-messenger/internal/stats"
	"github.com/kmuller/go-messenger/internal/types"
)

type SendPrivateMessageRequest struct {
	SenderId    int     `json:"sender_id"`
	RecipientId int     `json:"recipient_id"`
	Content     *string `json:"content"`
}

func (s *MessengerApp) sendPrivateMessage(w http.ResponseWriter, r *http.Request) {
	var req SendPrivateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	message, err := s.chat.SendPrivateMessage(req.SenderId, req.RecipientId, req.Content)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.incr(stats.PrivateMessagesSent)
	s.writeJson(w, http.StatusCreated, toPrivateMessage(message))
}

func (s *MessengerApp) getPrivateMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	message, err := s.chat.GetPrivateMessage(id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusOK, toPrivateMessage(message))
}

// listPrivateChat returns the messages of the ordered (sender, recipient)
// pair given as query parameters.
func (s *MessengerApp) listPrivateChat(w http.ResponseWriter, r *http.Request) {
	senderId, ok := queryId(r, "sender_id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	recipientId, ok := queryId(r, "recipient_id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	messages, err := s.chat.ListPrivateMessages(senderId, recipientId)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := make([]types.PrivateMessage, 0, len(messages))
	for _, msg := range messages {
		resp = append(resp, toPrivateMessage(msg))
	}

	s.writeJson(w, http.StatusOK, resp)
}

func (s *MessengerApp) updatePrivateMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req UpdateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	message, err := s.chat.UpdatePrivateMessage(id, req.Content)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusOK, toPrivateMessage(message))
}

func (s *MessengerApp) deletePrivateMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := s.chat.DeletePrivateMessage(id); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusNoContent, nil)
}

func (s *MessengerApp) deletePrivateChat(w http.ResponseWriter, r *http.Request) {
	senderId, ok := queryId(r, "sender_id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	recipientId, ok := queryId(r, "recipient_id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	deleted, err := s.chat.DeletePrivateChat(senderId, recipientId)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusOK, types.DeleteResult{Deleted: deleted})
}
