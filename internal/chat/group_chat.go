package chat

import (
	"errors"
	"fmt"

	"github.com/kmuller/go-messenger/internal/database"
)

// CreateGroupChat opens a chat and attaches the given profiles as members.
// Member ids that do not resolve to a profile are skipped, so the chat may
// end up with fewer members than requested; an empty id list is rejected
// before anything is inserted.
func (s *Service) CreateGroupChat(memberIds []int) (database.GroupChat, error) {
	if len(memberIds) == 0 {
		return database.GroupChat{}, ErrNoMembers
	}

	groupChat, err := s.repo.CreateGroupChat()
	if err != nil {
		return database.GroupChat{}, fmt.Errorf("create group chat: %w", err)
	}

	for _, memberId := range memberIds {
		profile, err := s.profileExists(memberId)
		if errors.Is(err, ErrProfileNotFound) {
			continue
		}
		if err != nil {
			return database.GroupChat{}, err
		}

		if _, err := s.repo.CreateMembership(profile.Id, groupChat.Id); err != nil {
			return database.GroupChat{}, fmt.Errorf("attach member: %w", err)
		}
	}

	return groupChat, nil
}

func (s *Service) GetGroupChat(groupChatId int) (database.GroupChat, error) {
	return s.groupChatExists(groupChatId)
}

// UpdateGroupChat sets the group picture, the chat's only mutable field.
func (s *Service) UpdateGroupChat(groupChatId int, groupPicture string) (database.GroupChat, error) {
	if _, err := s.groupChatExists(groupChatId); err != nil {
		return database.GroupChat{}, err
	}

	updated, err := s.repo.UpdateGroupChatPicture(groupChatId, groupPicture)
	if err != nil {
		return database.GroupChat{}, fmt.Errorf("update group chat: %w", err)
	}

	return updated, nil
}

// DeleteGroupChat removes the chat and its memberships; the store does both
// in one transaction, so a failed membership sweep leaves the chat row in
// place. The chat's messages are not cascaded.
func (s *Service) DeleteGroupChat(groupChatId int) error {
	if _, err := s.groupChatExists(groupChatId); err != nil {
		return err
	}

	if err := s.repo.DeleteGroupChat(groupChatId); err != nil {
		return fmt.Errorf("delete group chat: %w", err)
	}

	return nil
}
