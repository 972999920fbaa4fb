package database

import (
	"database/sql"
	"time"
)

const createMembershipQuery = "INSERT INTO group_chat_member (profile_id, group_chat_id) VALUES ($1, $2) " +
	"ON CONFLICT (profile_id, group_chat_id) DO UPDATE SET profile_id = EXCLUDED.profile_id " +
	"RETURNING member_id, profile_id, group_chat_id"

func (db *PgMessengerRepository) CreateProfile(params CreateProfileParams) (Profile, error) {
	res := db.conn.QueryRow(
		"INSERT INTO profile (username, displayname, password, email_address, join_datetime, profile_picture) "+
			"VALUES ($1, $2, $3, $4, $5, $6) "+
			"RETURNING profile_id, username, displayname, password, email_address, join_datetime, profile_picture",
		params.Username,
		params.DisplayName,
		params.Password,
		params.EmailAddress,
		time.Now().UTC(),
		params.ProfilePicture,
	)

	var p Profile
	err := scanProfile(res, &p)

	return p, err
}

func (db *PgMessengerRepository) GetProfileById(profileId int) (Profile, error) {
	row := db.conn.QueryRow(
		"SELECT profile_id, username, displayname, password, email_address, join_datetime, profile_picture "+
			"FROM profile WHERE profile_id = $1 LIMIT 1",
		profileId,
	)

	var p Profile
	err := scanProfile(row, &p)

	return p, err
}

func (db *PgMessengerRepository) GetProfileByUsername(username string) (Profile, error) {
	row := db.conn.QueryRow(
		"SELECT profile_id, username, displayname, password, email_address, join_datetime, profile_picture "+
			"FROM profile WHERE username = $1 LIMIT 1",
		username,
	)

	var p Profile
	err := scanProfile(row, &p)

	return p, err
}

// UpdateProfile rewrites every mutable column; join_datetime keeps its
// creation value.
func (db *PgMessengerRepository) UpdateProfile(params UpdateProfileParams) (Profile, error) {
	res := db.conn.QueryRow(
		"UPDATE profile SET username = $2, displayname = $3, password = $4, email_address = $5, profile_picture = $6 "+
			"WHERE profile_id = $1 "+
			"RETURNING profile_id, username, displayname, password, email_address, join_datetime, profile_picture",
		params.ProfileId,
		params.Username,
		params.DisplayName,
		params.Password,
		params.EmailAddress,
		params.ProfilePicture,
	)

	var p Profile
	err := scanProfile(res, &p)

	return p, err
}

func (db *PgMessengerRepository) DeleteProfile(profileId int) (int64, error) {
	res, err := db.conn.Exec("DELETE FROM profile WHERE profile_id = $1", profileId)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (db *PgMessengerRepository) CreateGroupChat() (GroupChat, error) {
	res := db.conn.QueryRow(
		"INSERT INTO group_chat (creation_date) VALUES ($1) "+
			"RETURNING group_chat_id, creation_date, group_picture",
		time.Now().UTC(),
	)

	var gc GroupChat
	err := res.Scan(&gc.Id, &gc.CreationDate, &gc.GroupPicture)

	return gc, err
}

func (db *PgMessengerRepository) GetGroupChatById(groupChatId int) (GroupChat, error) {
	row := db.conn.QueryRow(
		"SELECT group_chat_id, creation_date, group_picture FROM group_chat "+
			"WHERE group_chat_id = $1 LIMIT 1",
		groupChatId,
	)

	var gc GroupChat
	err := row.Scan(&gc.Id, &gc.CreationDate, &gc.GroupPicture)

	return gc, err
}

func (db *PgMessengerRepository) UpdateGroupChatPicture(groupChatId int, groupPicture string) (GroupChat, error) {
	res := db.conn.QueryRow(
		"UPDATE group_chat SET group_picture = $2 WHERE group_chat_id = $1 "+
			"RETURNING group_chat_id, creation_date, group_picture",
		groupChatId,
		groupPicture,
	)

	var gc GroupChat
	err := res.Scan(&gc.Id, &gc.CreationDate, &gc.GroupPicture)

	return gc, err
}

// DeleteGroupChat removes the chat's memberships and the chat row in one
// transaction, so a failed membership sweep leaves the chat in place.
// Messages referencing the chat are untouched.
func (db *PgMessengerRepository) DeleteGroupChat(groupChatId int) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.Exec("DELETE FROM group_chat_member WHERE group_chat_id = $1", groupChatId)
	if err != nil {
		return err
	}

	_, err = tx.Exec("DELETE FROM group_chat WHERE group_chat_id = $1", groupChatId)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// CreateMembership inserts into the membership set. Re-adding an existing
// (profile, chat) pair returns the existing row.
func (db *PgMessengerRepository) CreateMembership(profileId, groupChatId int) (Membership, error) {
	res := db.conn.QueryRow(createMembershipQuery, profileId, groupChatId)

	var m Membership
	err := res.Scan(&m.MemberId, &m.ProfileId, &m.GroupChatId)

	return m, err
}

func (db *PgMessengerRepository) ListMembershipsByChat(groupChatId int) ([]Membership, error) {
	rows, err := db.conn.Query(
		"SELECT member_id, profile_id, group_chat_id FROM group_chat_member WHERE group_chat_id = $1",
		groupChatId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMemberships(rows)
}

func (db *PgMessengerRepository) ListMembershipsByProfile(profileId int) ([]Membership, error) {
	rows, err := db.conn.Query(
		"SELECT member_id, profile_id, group_chat_id FROM group_chat_member WHERE profile_id = $1",
		profileId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMemberships(rows)
}

func (db *PgMessengerRepository) DeleteMembership(groupChatId, profileId int) (int64, error) {
	res, err := db.conn.Exec(
		"DELETE FROM group_chat_member WHERE group_chat_id = $1 AND profile_id = $2",
		groupChatId,
		profileId,
	)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (db *PgMessengerRepository) DeleteMembershipsByChat(groupChatId int) (int64, error) {
	res, err := db.conn.Exec("DELETE FROM group_chat_member WHERE group_chat_id = $1", groupChatId)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (db *PgMessengerRepository) DeleteMembershipsByProfile(profileId int) (int64, error) {
	res, err := db.conn.Exec("DELETE FROM group_chat_member WHERE profile_id = $1", profileId)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (db *PgMessengerRepository) CreateGroupMessage(params CreateGroupMessageParams) (GroupMessage, error) {
	res := db.conn.QueryRow(
		"INSERT INTO group_chat_message (author_id, chat_id, send_time, content) "+
			"VALUES ($1, $2, $3, $4) "+
			"RETURNING message_id, author_id, chat_id, send_time, content",
		params.AuthorId,
		params.ChatId,
		time.Now().UTC(),
		params.Content,
	)

	var msg GroupMessage
	err := scanGroupMessage(res, &msg)

	return msg, err
}

func (db *PgMessengerRepository) GetGroupMessageById(messageId int) (GroupMessage, error) {
	row := db.conn.QueryRow(
		"SELECT message_id, author_id, chat_id, send_time, content FROM group_chat_message "+
			"WHERE message_id = $1 LIMIT 1",
		messageId,
	)

	var msg GroupMessage
	err := scanGroupMessage(row, &msg)

	return msg, err
}

func (db *PgMessengerRepository) ListGroupMessagesByChat(groupChatId int) ([]GroupMessage, error) {
	rows, err := db.conn.Query(
		"SELECT message_id, author_id, chat_id, send_time, content FROM group_chat_message "+
			"WHERE chat_id = $1",
		groupChatId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectGroupMessages(rows)
}

func (db *PgMessengerRepository) ListGroupMessagesByAuthor(groupChatId, authorId int) ([]GroupMessage, error) {
	rows, err := db.conn.Query(
		"SELECT message_id, author_id, chat_id, send_time, content FROM group_chat_message "+
			"WHERE chat_id = $1 AND author_id = $2",
		groupChatId,
		authorId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectGroupMessages(rows)
}

func (db *PgMessengerRepository) UpdateGroupMessageContent(messageId int, content string) (GroupMessage, error) {
	res := db.conn.QueryRow(
		"UPDATE group_chat_message SET content = $2 WHERE message_id = $1 "+
			"RETURNING message_id, author_id, chat_id, send_time, content",
		messageId,
		content,
	)

	var msg GroupMessage
	err := scanGroupMessage(res, &msg)

	return msg, err
}

func (db *PgMessengerRepository) DeleteGroupMessage(messageId int) (int64, error) {
	res, err := db.conn.Exec("DELETE FROM group_chat_message WHERE message_id = $1", messageId)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (db *PgMessengerRepository) DeleteGroupMessagesByChat(groupChatId int) (int64, error) {
	res, err := db.conn.Exec("DELETE FROM group_chat_message WHERE chat_id = $1", groupChatId)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (db *PgMessengerRepository) DeleteGroupMessagesByAuthor(groupChatId, authorId int) (int64, error) {
	res, err := db.conn.Exec(
		"DELETE FROM group_chat_message WHERE chat_id = $1 AND author_id = $2",
		groupChatId,
		authorId,
	)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (db *PgMessengerRepository) CreatePrivateMessage(params CreatePrivateMessageParams) (PrivateMessage, error) {
	res := db.conn.QueryRow(
		"INSERT INTO private_message (sender_id, recipient_id, content) "+
			"VALUES ($1, $2, $3) "+
			"RETURNING private_message_id, sender_id, recipient_id, content",
		params.SenderId,
		params.RecipientId,
		params.Content,
	)

	var msg PrivateMessage
	err := res.Scan(&msg.Id, &msg.SenderId, &msg.RecipientId, &msg.Content)

	return msg, err
}

func (db *PgMessengerRepository) GetPrivateMessageById(messageId int) (PrivateMessage, error) {
	row := db.conn.QueryRow(
		"SELECT private_message_id, sender_id, recipient_id, content FROM private_message "+
			"WHERE private_message_id = $1 LIMIT 1",
		messageId,
	)

	var msg PrivateMessage
	err := row.Scan(&msg.Id, &msg.SenderId, &msg.RecipientId, &msg.Content)

	return msg, err
}

// ListPrivateMessages filters on the ordered (sender, recipient) pair; the
// reverse direction is a separate chat.
func (db *PgMessengerRepository) ListPrivateMessages(senderId, recipientId int) ([]PrivateMessage, error) {
	rows, err := db.conn.Query(
		"SELECT private_message_id, sender_id, recipient_id, content FROM private_message "+
			"WHERE sender_id = $1 AND recipient_id = $2",
		senderId,
		recipientId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages = make([]PrivateMessage, 0)
	for rows.Next() {
		var msg PrivateMessage
		if err = rows.Scan(&msg.Id, &msg.SenderId, &msg.RecipientId, &msg.Content); err != nil {
			return nil, err
		}

		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

func (db *PgMessengerRepository) UpdatePrivateMessageContent(messageId int, content string) (PrivateMessage, error) {
	res := db.conn.QueryRow(
		"UPDATE private_message SET content = $2 WHERE private_message_id = $1 "+
			"RETURNING private_message_id, sender_id, recipient_id, content",
		messageId,
		content,
	)

	var msg PrivateMessage
	err := res.Scan(&msg.Id, &msg.SenderId, &msg.RecipientId, &msg.Content)

	return msg, err
}

func (db *PgMessengerRepository) DeletePrivateMessage(messageId int) (int64, error) {
	res, err := db.conn.Exec("DELETE FROM private_message WHERE private_message_id = $1", messageId)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (db *PgMessengerRepository) DeletePrivateMessages(senderId, recipientId int) (int64, error) {
	res, err := db.conn.Exec(
		"DELETE FROM private_message WHERE sender_id = $1 AND recipient_id = $2",
		senderId,
		recipientId,
	)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner, p *Profile) error {
	return row.Scan(
		&p.Id,
		&p.Username,
		&p.DisplayName,
		&p.Password,
		&p.EmailAddress,
		&p.JoinDatetime,
		&p.ProfilePicture,
	)
}

func scanGroupMessage(row rowScanner, msg *GroupMessage) error {
	return row.Scan(
		&msg.MessageId,
		&msg.AuthorId,
		&msg.ChatId,
		&msg.SendTime,
		&msg.Content,
	)
}

func collectMemberships(rows *sql.Rows) ([]Membership, error) {
	var memberships = make([]Membership, 0)
	for rows.Next() {
		var m Membership
		if err := rows.Scan(&m.MemberId, &m.ProfileId, &m.GroupChatId); err != nil {
			return nil, err
		}

		memberships = append(memberships, m)
	}

	return memberships, rows.Err()
}

func collectGroupMessages(rows *sql.Rows) ([]GroupMessage, error) {
	var messages = make([]GroupMessage, 0)
	for rows.Next() {
		var msg GroupMessage
		if err := scanGroupMessage(rows, &msg); err != nil {
			return nil, err
		}

		messages = append(messages, msg)
	}

	return messages, rows.Err()
}
