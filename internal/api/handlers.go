package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kmuller/go-messenger/internal/database"
	"github.com/kmuller/go-messenger/internal/types"
)

func (s *MessengerApp) writeJson(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Printf("json encode: %v", err)
	}
}

// writeError logs store failures and translates the error for the client.
func (s *MessengerApp) writeError(w http.ResponseWriter, err error) {
	errResp := fromDomainError(err)
	if errResp.StatusCode == http.StatusInternalServerError {
		s.log.Printf("internal error: %v", err)
	}

	s.writeJson(w, errResp.StatusCode, errResp)
}

func pathId(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	return id, err == nil
}

func queryId(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.URL.Query().Get(name))
	return id, err == nil
}

func toProfile(p database.Profile) types.Profile {
	return types.Profile{
		Id:             p.Id,
		Username:       p.Username,
		DisplayName:    p.DisplayName,
		EmailAddress:   p.EmailAddress,
		JoinDatetime:   p.JoinDatetime,
		ProfilePicture: p.ProfilePicture,
	}
}

func toGroupChat(gc database.GroupChat) types.GroupChat {
	return types.GroupChat{
		Id:           gc.Id,
		CreationDate: gc.CreationDate,
		GroupPicture: gc.GroupPicture,
	}
}

func toMembership(m database.Membership) types.Membership {
	return types.Membership{
		MemberId:    m.MemberId,
		ProfileId:   m.ProfileId,
		GroupChatId: m.GroupChatId,
	}
}

func toGroupMessage(msg database.GroupMessage) types.GroupMessage {
	return types.GroupMessage{
		Id:       msg.MessageId,
		AuthorId: msg.AuthorId,
		ChatId:   msg.ChatId,
		SendTime: msg.SendTime,
		Content:  msg.Content,
	}
}

func toPrivateMessage(msg database.PrivateMessage) types.PrivateMessage {
	return types.PrivateMessage{
		Id:          msg.Id,
		SenderId:    msg.SenderId,
		RecipientId: msg.RecipientId,
		Content:     msg.Content,
	}
}
