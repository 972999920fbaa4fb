package database

import (
	"github.com/stretchr/testify/mock"
)

type MockMessengerRepository struct {
	mock.Mock
}

func (m *MockMessengerRepository) Ping() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockMessengerRepository) CreateProfile(params CreateProfileParams) (Profile, error) {
	args := m.Called(params)
	return args.Get(0).(Profile), args.Error(1)
}
func (m *MockMessengerRepository) GetProfileById(profileId int) (Profile, error) {
	args := m.Called(profileId)
	return args.Get(0).(Profile), args.Error(1)
}
func (m *MockMessengerRepository) GetProfileByUsername(username string) (Profile, error) {
	args := m.Called(username)
	return args.Get(0).(Profile), args.Error(1)
}
func (m *MockMessengerRepository) UpdateProfile(params UpdateProfileParams) (Profile, error) {
	args := m.Called(params)
	return args.Get(0).(Profile), args.Error(1)
}
func (m *MockMessengerRepository) DeleteProfile(profileId int) (int64, error) {
	args := m.Called(profileId)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockMessengerRepository) CreateGroupChat() (GroupChat, error) {
	args := m.Called()
	return args.Get(0).(GroupChat), args.Error(1)
}
func (m *MockMessengerRepository) GetGroupChatById(groupChatId int) (GroupChat, error) {
	args := m.Called(groupChatId)
	return args.Get(0).(GroupChat), args.Error(1)
}
func (m *MockMessengerRepository) UpdateGroupChatPicture(groupChatId int, groupPicture string) (GroupChat, error) {
	args := m.Called(groupChatId, groupPicture)
	return args.Get(0).(GroupChat), args.Error(1)
}
func (m *MockMessengerRepository) DeleteGroupChat(groupChatId int) error {
	args := m.Called(groupChatId)
	return args.Error(0)
}
func (m *MockMessengerRepository) CreateMembership(profileId, groupChatId int) (Membership, error) {
	args := m.Called(profileId, groupChatId)
	return args.Get(0).(Membership), args.Error(1)
}
func (m *MockMessengerRepository) ListMembershipsByChat(groupChatId int) ([]Membership, error) {
	args := m.Called(groupChatId)
	return args.Get(0).([]Membership), args.Error(1)
}
func (m *MockMessengerRepository) ListMembershipsByProfile(profileId int) ([]Membership, error) {
	args := m.Called(profileId)
	return args.Get(0).([]Membership), args.Error(1)
}
func (m *MockMessengerRepository) DeleteMembership(groupChatId, profileId int) (int64, error) {
	args := m.Called(groupChatId, profileId)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockMessengerRepository) DeleteMembershipsByChat(groupChatId int) (int64, error) {
	args := m.Called(groupChatId)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockMessengerRepository) DeleteMembershipsByProfile(profileId int) (int64, error) {
	args := m.Called(profileId)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockMessengerRepository) CreateGroupMessage(params CreateGroupMessageParams) (GroupMessage, error) {
	args := m.Called(params)
	return args.Get(0).(GroupMessage), args.Error(1)
}
func (m *MockMessengerRepository) GetGroupMessageById(messageId int) (GroupMessage, error) {
	args := m.Called(messageId)
	return args.Get(0).(GroupMessage), args.Error(1)
}
func (m *MockMessengerRepository) ListGroupMessagesByChat(groupChatId int) ([]GroupMessage, error) {
	args := m.Called(groupChatId)
	return args.Get(0).([]GroupMessage), args.Error(1)
}
func (m *MockMessengerRepository) ListGroupMessagesByAuthor(groupChatId, authorId int) ([]GroupMessage, error) {
	args := m.Called(groupChatId, authorId)
	return args.Get(0).([]GroupMessage), args.Error(1)
}
func (m *MockMessengerRepository) UpdateGroupMessageContent(messageId int, content string) (GroupMessage, error) {
	args := m.Called(messageId, content)
	return args.Get(0).(GroupMessage), args.Error(1)
}
func (m *MockMessengerRepository) DeleteGroupMessage(messageId int) (int64, error) {
	args := m.Called(messageId)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockMessengerRepository) DeleteGroupMessagesByChat(groupChatId int) (int64, error) {
	args := m.Called(groupChatId)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockMessengerRepository) DeleteGroupMessagesByAuthor(groupChatId, authorId int) (int64, error) {
	args := m.Called(groupChatId, authorId)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockMessengerRepository) CreatePrivateMessage(params CreatePrivateMessageParams) (PrivateMessage, error) {
	args := m.Called(params)
	return args.Get(0).(PrivateMessage), args.Error(1)
}
func (m *MockMessengerRepository) GetPrivateMessageById(messageId int) (PrivateMessage, error) {
	args := m.Called(messageId)
	return args.Get(0).(PrivateMessage), args.Error(1)
}
func (m *MockMessengerRepository) ListPrivateMessages(senderId, recipientId int) ([]PrivateMessage, error) {
	args := m.Called(senderId, recipientId)
	return args.Get(0).([]PrivateMessage), args.Error(1)
}
func (m *MockMessengerRepository) UpdatePrivateMessageContent(messageId int, content string) (PrivateMessage, error) {
	args := m.Called(messageId, content)
	return args.Get(0).(PrivateMessage), args.Error(1)
}
func (m *MockMessengerRepository) DeletePrivateMessage(messageId int) (int64, error) {
	args := m.Called(messageId)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockMessengerRepository) DeletePrivateMessages(senderId, recipientId int) (int64, error) {
	args := m.Called(senderId, recipientId)
	return args.Get(0).(int64), args.Error(1)
}
