package chat

import "errors"

var (
	ErrProfileNotFound    = errors.New("profile does not exist")
	ErrGroupChatNotFound  = errors.New("group chat does not exist")
	ErrMembershipNotFound = errors.New("membership does not exist")
	ErrMessageNotFound    = errors.New("message does not exist")

	ErrInvalidUsername = errors.New("usernames must be at most 32 characters and contain no whitespace")
	ErrNoMembers       = errors.New("a group chat needs at least one member")
)
