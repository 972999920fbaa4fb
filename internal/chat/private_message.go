package chat

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/kmuller/go-messenger/internal/database"
)

// SendPrivateMessage stores a 1:1 message. Unlike group messages, neither
// participant is guarded; a message to an unknown profile simply dangles.
func (s *Service) SendPrivateMessage(senderId, recipientId int, content *string) (database.PrivateMessage, error) {
	message, err := s.repo.CreatePrivateMessage(database.CreatePrivateMessageParams{
		SenderId:    senderId,
		RecipientId: recipientId,
		Content:     content,
	})
	if err != nil {
		return database.PrivateMessage{}, fmt.Errorf("create private message: %w", err)
	}

	return message, nil
}

func (s *Service) GetPrivateMessage(messageId int) (database.PrivateMessage, error) {
	message, err := s.repo.GetPrivateMessageById(messageId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return database.PrivateMessage{}, ErrMessageNotFound
		}
		return database.PrivateMessage{}, fmt.Errorf("get private message: %w", err)
	}

	return message, nil
}

// ListPrivateMessages returns the chat identified by the ordered
// (sender, recipient) pair. Messages sent in the opposite direction belong
// to a different chat.
func (s *Service) ListPrivateMessages(senderId, recipientId int) ([]database.PrivateMessage, error) {
	messages, err := s.repo.ListPrivateMessages(senderId, recipientId)
	if err != nil {
		return nil, fmt.Errorf("list private messages: %w", err)
	}

	return messages, nil
}

func (s *Service) UpdatePrivateMessage(messageId int, content string) (database.PrivateMessage, error) {
	if _, err := s.GetPrivateMessage(messageId); err != nil {
		return database.PrivateMessage{}, err
	}

	message, err := s.repo.UpdatePrivateMessageContent(messageId, content)
	if err != nil {
		return database.PrivateMessage{}, fmt.Errorf("update private message: %w", err)
	}

	return message, nil
}

func (s *Service) DeletePrivateMessage(messageId int) error {
	deleted, err := s.repo.DeletePrivateMessage(messageId)
	if err != nil {
		return fmt.Errorf("delete private message: %w", err)
	}

	if deleted == 0 {
		return ErrMessageNotFound
	}

	return nil
}

// DeletePrivateChat removes every message of the ordered pair's chat and
// reports the count. An empty chat is not an error.
func (s *Service) DeletePrivateChat(senderId, recipientId int) (int64, error) {
	deleted, err := s.repo.DeletePrivateMessages(senderId, recipientId)
	if err != nil {
		return 0, fmt.Errorf("delete private messages: %w", err)
	}

	return deleted, nil
}
