package api

import (
	"encoding/json"
	"net/http"

	"github.com/kmuller/go-messenger/internal/stats"
	"github.com/kmuller/go-messenger/internal/types"
)

type CreateGroupChatRequest struct {
	MemberIds []int `json:"member_ids"`
}

type UpdateGroupChatRequest struct {
	GroupPicture string `json:"group_picture"`
}

type AddMemberRequest struct {
	ProfileId int `json:"profile_id"`
}

func (s *MessengerApp) createGroupChat(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	groupChat, err := s.chat.CreateGroupChat(req.MemberIds)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.incr(stats.GroupChatsCreated)
	s.writeJson(w, http.StatusCreated, toGroupChat(groupChat))
}

func (s *MessengerApp) getGroupChat(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	groupChat, err := s.chat.GetGroupChat(id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusOK, toGroupChat(groupChat))
}

func (s *MessengerApp) updateGroupChat(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req UpdateGroupChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	groupChat, err := s.chat.UpdateGroupChat(id, req.GroupPicture)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusOK, toGroupChat(groupChat))
}

func (s *MessengerApp) deleteGroupChat(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := s.chat.DeleteGroupChat(id); err != nil {
		s.writeError(w, err)
		return
	}

	s.incr(stats.GroupChatsDeleted)
	s.writeJson(w, http.StatusNoContent, nil)
}

func (s *MessengerApp) addMember(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	membership, err := s.chat.AddMember(id, req.ProfileId)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusCreated, toMembership(membership))
}

func (s *MessengerApp) listMembers(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	memberships, err := s.chat.ListMembers(id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := make([]types.Membership, 0, len(memberships))
	for _, m := range memberships {
		resp = append(resp, toMembership(m))
	}

	s.writeJson(w, http.StatusOK, resp)
}

func (s *MessengerApp) removeAllMembers(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	deleted, err := s.chat.RemoveAllMembers(id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusOK, types.DeleteResult{Deleted: deleted})
}

func (s *MessengerApp) removeMember(w http.ResponseWriter, r *http.Request) {
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

	if err := s.chat.RemoveMember(id, profileId); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusNoContent, nil)
}
