package api

import (
	"encoding/json"
	"net/http"

	"github.com/kmuller/go-messenger/internal/database"
	"github.com/kmuller/go-messenger/internal/stats"
	"github.com/kmuller/go-messenger/internal/types"
)

type PostGroupMessageRequest struct {
	AuthorId int     `json:"author_id"`
	Content  *string `json:"content"`
}

type UpdateMessageRequest struct {
	Content string `json:"content"`
}

func (s *MessengerApp) postGroupMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req PostGroupMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	message, err := s.chat.PostMessage(req.AuthorId, id, req.Content)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.incr(stats.GroupMessagesPosted)
	s.writeJson(w, http.StatusCreated, toGroupMessage(message))
}

func (s *MessengerApp) getGroupMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	message, err := s.chat.GetGroupMessage(id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusOK, toGroupMessage(message))
}

func (s *MessengerApp) listGroupMessages(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	messages, err := s.chat.ListGroupMessages(id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusOK, toGroupMessages(messages))
}

func (s *MessengerApp) listAuthorMessages(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	profileId, ok := pathId(r, "profileId")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	messages, err := s.chat.ListGroupMessagesOfAuthor(id, profileId)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusOK, toGroupMessages(messages))
}

func (s *MessengerApp) updateGroupMessage(w http.ResponseWriter, r *http.Request) {
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

	message, err := s.chat.UpdateGroupMessage(id, req.Content)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusOK, toGroupMessage(message))
}

func (s *MessengerApp) deleteGroupMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := s.chat.DeleteGroupMessage(id); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusNoContent, nil)
}

func (s *MessengerApp) deleteGroupMessagesOfChat(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	deleted, err := s.chat.DeleteGroupMessagesOfChat(id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusOK, types.DeleteResult{Deleted: deleted})
}

func (s *MessengerApp) deleteAuthorMessages(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	profileId, ok := pathId(r, "profileId")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	deleted, err := s.chat.DeleteGroupMessagesOfAuthor(profileId, id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusOK, types.DeleteResult{Deleted: deleted})
}

func toGroupMessages(messages []database.GroupMessage) []types.GroupMessage {
	resp := make([]types.GroupMessage, 0, len(messages))
	for _, msg := range messages {
		resp = append(resp, toGroupMessage(msg))
	}
	return resp
}
