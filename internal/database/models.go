package database

import "time"

type Profile struct {
	Id             int
	Username       string
	DisplayName    *string
	Password       string
	EmailAddress   string
	JoinDatetime   time.Time
	ProfilePicture *string
}

type GroupChat struct {
	Id           int
	CreationDate time.Time
	GroupPicture *string
}

type Membership struct {
	MemberId    int
	ProfileId   int
	GroupChatId int
}

type GroupMessage struct {
	MessageId int
	AuthorId  int
	ChatId    int
	SendTime  time.Time
	Content   *string
}

type PrivateMessage struct {
	Id          int
	SenderId    int
	RecipientId int
	Content     *string
}

type CreateProfileParams struct {
	Username       string
	DisplayName    *string
	Password       string
	EmailAddress   string
	ProfilePicture string
}

type UpdateProfileParams struct {
	ProfileId      int
	Username       string
	DisplayName    *string
	Password       string
	EmailAddress   string
	ProfilePicture *string
}

type CreateGroupMessageParams struct {
	AuthorId int
	ChatId   int
	Content  *string
}

type CreatePrivateMessageParams struct {
	SenderId    int
	RecipientId int
	Content     *string
}
