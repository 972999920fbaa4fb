package chat

import (
	"errors"
	"fmt"

	"github.com/kmuller/go-messenger/internal/database"
)

// AddMember links a profile to a group chat. Both guards must pass first.
// Membership is a set keyed by (profile, chat), so re-adding an existing
// member returns the existing row.
func (s *Service) AddMember(groupChatId, profileId int) (database.Membership, error) {
	profile, err := s.profileExists(profileId)
	if err != nil {
		return database.Membership{}, err
	}

	groupChat, err := s.groupChatExists(groupChatId)
	if err != nil {
		return database.Membership{}, err
	}

	membership, err := s.repo.CreateMembership(profile.Id, groupChat.Id)
	if err != nil {
		return database.Membership{}, fmt.Errorf("create membership: %w", err)
	}

	return membership, nil
}

func (s *Service) ListMembers(groupChatId int) ([]database.Membership, error) {
	if _, err := s.groupChatExists(groupChatId); err != nil {
		return nil, err
	}

	memberships, err := s.repo.ListMembershipsByChat(groupChatId)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	return memberships, nil
}

// GetGroupChatsOfProfile resolves each of the profile's memberships to its
// group chat. Memberships whose chat has since been deleted are skipped.
func (s *Service) GetGroupChatsOfProfile(profileId int) ([]database.GroupChat, error) {
	if _, err := s.profileExists(profileId); err != nil {
		return nil, err
	}

	memberships, err := s.repo.ListMembershipsByProfile(profileId)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}

	groupChats := make([]database.GroupChat, 0, len(memberships))
	for _, membership := range memberships {
		groupChat, err := s.groupChatExists(membership.GroupChatId)
		if errors.Is(err, ErrGroupChatNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		groupChats = append(groupChats, groupChat)
	}

	return groupChats, nil
}

// RemoveMember deletes the membership matching the (profile, chat) pair.
func (s *Service) RemoveMember(groupChatId, profileId int) error {
	deleted, err := s.repo.DeleteMembership(groupChatId, profileId)
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}

	if deleted == 0 {
		return ErrMembershipNotFound
	}

	return nil
}

// RemoveAllMembers empties a chat's member set and reports how many rows
// were removed. The chat itself survives, possibly memberless.
func (s *Service) RemoveAllMembers(groupChatId int) (int64, error) {
	if _, err := s.groupChatExists(groupChatId); err != nil {
		return 0, err
	}

	deleted, err := s.repo.DeleteMembershipsByChat(groupChatId)
	if err != nil {
		return 0, fmt.Errorf("delete memberships: %w", err)
	}

	return deleted, nil
}

// RemoveMembershipsOfProfile detaches a profile from every chat it belongs to.
func (s *Service) RemoveMembershipsOfProfile(profileId int) (int64, error) {
	if _, err := s.profileExists(profileId); err != nil {
		return 0, err
	}

	deleted, err := s.repo.DeleteMembershipsByProfile(profileId)
	if err != nil {
		return 0, fmt.Errorf("delete memberships: %w", err)
	}

	return deleted, nil
}
