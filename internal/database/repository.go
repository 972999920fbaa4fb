package database

// MessengerRepository is the store boundary for the five relations. It exposes
// find-by-key, filtered find, insert, update and delete-by-filter primitives;
// cross-entity integrity is the caller's responsibility. Lookups report a
// missing row as sql.ErrNoRows, deletes report the number of rows removed.
type MessengerRepository interface {
	Ping() error

	CreateProfile(params CreateProfileParams) (Profile, error)
	GetProfileById(profileId int) (Profile, error)
	GetProfileByUsername(username string) (Profile, error)
	UpdateProfile(params UpdateProfileParams) (Profile, error)
	DeleteProfile(profileId int) (int64, error)

	CreateGroupChat() (GroupChat, error)
	GetGroupChatById(groupChatId int) (GroupChat, error)
	UpdateGroupChatPicture(groupChatId int, groupPicture string) (GroupChat, error)
	DeleteGroupChat(groupChatId int) error

	CreateMembership(profileId, groupChatId int) (Membership, error)
	ListMembershipsByChat(groupChatId int) ([]Membership, error)
	ListMembershipsByProfile(profileId int) ([]Membership, error)
	DeleteMembership(groupChatId, profileId int) (int64, error)
	DeleteMembershipsByChat(groupChatId int) (int64, error)
	DeleteMembershipsByProfile(profileId int) (int64, error)

	CreateGroupMessage(params CreateGroupMessageParams) (GroupMessage, error)
	GetGroupMessageById(messageId int) (GroupMessage, error)
	ListGroupMessagesByChat(groupChatId int) ([]GroupMessage, error)
	ListGroupMessagesByAuthor(groupChatId, authorId int) ([]GroupMessage, error)
	UpdateGroupMessageContent(messageId int, content string) (GroupMessage, error)
	DeleteGroupMessage(messageId int) (int64, error)
	DeleteGroupMessagesByChat(groupChatId int) (int64, error)
	DeleteGroupMessagesByAuthor(groupChatId, authorId int) (int64, error)

	CreatePrivateMessage(params CreatePrivateMessageParams) (PrivateMessage, error)
	GetPrivateMessageById(messageId int) (PrivateMessage, error)
	ListPrivateMessages(senderId, recipientId int) ([]PrivateMessage, error)
	UpdatePrivateMessageContent(messageId int, content string) (PrivateMessage, error)
	DeletePrivateMessage(messageId int) (int64, error)
	DeletePrivateMessages(senderId, recipientId int) (int64, error)
}
