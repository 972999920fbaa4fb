package types

import "time"

type Profile struct {
	Id             int       `json:"id"`
	Username       string    `json:"username"`
	DisplayName    *string   `json:"display_name,omitempty"`
	EmailAddress   string    `json:"email_address"`
	JoinDatetime   time.Time `json:"join_datetime"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
}

type GroupChat struct {
	Id           int       `json:"id"`
	CreationDate time.Time `json:"creation_date"`
	GroupPicture *string   `json:"group_picture,omitempty"`
}

type Membership struct {
	MemberId    int `json:"member_id"`
	ProfileId   int `json:"profile_id"`
	GroupChatId int `json:"group_chat_id"`
}

type GroupMessage struct {
	Id       int       `json:"id"`
	AuthorId int       `json:"author_id"`
	ChatId   int       `json:"chat_id"`
	SendTime time.Time `json:"send_time"`
	Content  *string   `json:"content,omitempty"`
}

type PrivateMessage struct {
	Id          int     `json:"id"`
	SenderId    int     `json:"sender_id"`
	RecipientId int     `json:"recipient_id"`
	Content     *string `json:"content,omitempty"`
}

// DeleteResult reports how many rows a bulk delete removed.
type DeleteResult struct {
	Deleted int64 `json:"deleted"`
}
