package api

import (
	"encoding/json"
	"net/http"

	"github.com/kmuller/go-messenger/internal/chat"
	"github.com/kmuller/go-messenger/internal/stats"
	"github.com/kmuller/go-messenger/internal/types"
)

type CreateProfileRequest struct {
	Username     string  `json:"username"`
	DisplayName  *string `json:"display_name"`
	Password     string  `json:"password"`
	EmailAddress string  `json:"email_address"`
}

type UpdateProfileRequest struct {
	Username       *string `json:"username"`
	DisplayName    *string `json:"display_name"`
	Password       *string `json:"password"`
	EmailAddress   *string `json:"email_address"`
	ProfilePicture *string `json:"profile_picture"`
}

func (s *MessengerApp) createProfile(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.Username == "" || req.Password == "" || req.EmailAddress == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	profile, err := s.chat.CreateProfile(req.Username, req.DisplayName, req.Password, req.EmailAddress)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.incr(stats.ProfilesCreated)
	s.writeJson(w, http.StatusCreated, toProfile(profile))
}

func (s *MessengerApp) getProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	profile, err := s.chat.GetProfile(id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusOK, toProfile(profile))
}

func (s *MessengerApp) getProfileByUsername(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	profile, err := s.chat.GetProfileByUsername(username)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusOK, toProfile(profile))
}

func (s *MessengerApp) updateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	profile, err := s.chat.UpdateProfile(id, chat.UpdateProfileParams{
		Username:       req.Username,
		DisplayName:    req.DisplayName,
		Password:       req.Password,
		EmailAddress:   req.EmailAddress,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusOK, toProfile(profile))
}

func (s *MessengerApp) deleteProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := s.chat.DeleteProfile(id); err != nil {
		s.writeError(w, err)
		return
	}

	s.incr(stats.ProfilesDeleted)
	s.writeJson(w, http.StatusNoContent, nil)
}

func (s *MessengerApp) getProfileGroupChats(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	groupChats, err := s.chat.GetGroupChatsOfProfile(id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := make([]types.GroupChat, 0, len(groupChats))
	for _, gc := range groupChats {
		resp = append(resp, toGroupChat(gc))
	}

	s.writeJson(w, http.StatusOK, resp)
}

func (s *MessengerApp) deleteProfileMemberships(w http.ResponseWriter, r *http.Request) {
	id, ok := pathId(r, "id")
	if !ok {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	deleted, err := s.chat.RemoveMembershipsOfProfile(id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJson(w, http.StatusOK, types.DeleteResult{Deleted: deleted})
}
