// Package chat is the domain layer of the messaging platform. It owns the
// rules the store does not enforce: existence of referenced profiles and
// group chats, the username format, membership cleanup on chat deletion.
// Operations take primitive arguments and return entities or sentinel errors;
// transport concerns and logging live with the callers.
package chat

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/kmuller/go-messenger/internal/database"
)

type Service struct {
	repo database.MessengerRepository
}

func NewService(repo database.MessengerRepository) *Service {
	return &Service{repo: repo}
}

// profileExists is the guard run before any mutation that references a
// profile. The guard error propagates to callers unwrapped.
func (s *Service) profileExists(profileId int) (database.Profile, error) {
	profile, err := s.repo.GetProfileById(profileId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return database.Profile{}, ErrProfileNotFound
		}
		return database.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	return profile, nil
}

// groupChatExists is the guard counterpart for group chats.
func (s *Service) groupChatExists(groupChatId int) (database.GroupChat, error) {
	groupChat, err := s.repo.GetGroupChatById(groupChatId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return database.GroupChat{}, ErrGroupChatNotFound
		}
		return database.GroupChat{}, fmt.Errorf("get group chat: %w", err)
	}

	return groupChat, nil
}
