package chat

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/kmuller/go-messenger/internal/database"
)

// PostMessage writes a message into a group chat. Author and chat must both
// exist at insertion time; nothing re-checks them afterwards.
func (s *Service) PostMessage(authorId, groupChatId int, content *string) (database.GroupMessage, error) {
	author, err := s.profileExists(authorId)
	if err != nil {
		return database.GroupMessage{}, err
	}

	groupChat, err := s.groupChatExists(groupChatId)
	if err != nil {
		return database.GroupMessage{}, err
	}

	message, err := s.repo.CreateGroupMessage(database.CreateGroupMessageParams{
		AuthorId: author.Id,
		ChatId:   groupChat.Id,
		Content:  content,
	})
	if err != nil {
		return database.GroupMessage{}, fmt.Errorf("create group message: %w", err)
	}

	return message, nil
}

func (s *Service) GetGroupMessage(messageId int) (database.GroupMessage, error) {
	message, err := s.repo.GetGroupMessageById(messageId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return database.GroupMessage{}, ErrMessageNotFound
		}
		return database.GroupMessage{}, fmt.Errorf("get group message: %w", err)
	}

	return message, nil
}

func (s *Service) ListGroupMessages(groupChatId int) ([]database.GroupMessage, error) {
	if _, err := s.groupChatExists(groupChatId); err != nil {
		return nil, err
	}

	messages, err := s.repo.ListGroupMessagesByChat(groupChatId)
	if err != nil {
		return nil, fmt.Errorf("list group messages: %w", err)
	}

	return messages, nil
}

func (s *Service) ListGroupMessagesOfAuthor(groupChatId, authorId int) ([]database.GroupMessage, error) {
	if _, err := s.profileExists(authorId); err != nil {
		return nil, err
	}

	if _, err := s.groupChatExists(groupChatId); err != nil {
		return nil, err
	}

	messages, err := s.repo.ListGroupMessagesByAuthor(groupChatId, authorId)
	if err != nil {
		return nil, fmt.Errorf("list author messages: %w", err)
	}

	return messages, nil
}

func (s *Service) UpdateGroupMessage(messageId int, content string) (database.GroupMessage, error) {
	if _, err := s.GetGroupMessage(messageId); err != nil {
		return database.GroupMessage{}, err
	}

	message, err := s.repo.UpdateGroupMessageContent(messageId, content)
	if err != nil {
		return database.GroupMessage{}, fmt.Errorf("update group message: %w", err)
	}

	return message, nil
}

func (s *Service) DeleteGroupMessage(messageId int) error {
	deleted, err := s.repo.DeleteGroupMessage(messageId)
	if err != nil {
		return fmt.Errorf("delete group message: %w", err)
	}

	if deleted == 0 {
		return ErrMessageNotFound
	}

	return nil
}

func (s *Service) DeleteGroupMessagesOfChat(groupChatId int) (int64, error) {
	if _, err := s.groupChatExists(groupChatId); err != nil {
		return 0, err
	}

	deleted, err := s.repo.DeleteGroupMessagesByChat(groupChatId)
	if err != nil {
		return 0, fmt.Errorf("delete group messages: %w", err)
	}

	return deleted, nil
}

func (s *Service) DeleteGroupMessagesOfAuthor(authorId, groupChatId int) (int64, error) {
	if _, err := s.profileExists(authorId); err != nil {
		return 0, err
	}

	if _, err := s.groupChatExists(groupChatId); err != nil {
		return 0, err
	}

	deleted, err := s.repo.DeleteGroupMessagesByAuthor(groupChatId, authorId)
	if err != nil {
		return 0, fmt.Errorf("delete author messages: %w", err)
	}

	return deleted, nil
}
