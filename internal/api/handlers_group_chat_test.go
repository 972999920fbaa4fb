package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kmuller/go-messenger/internal/chat"
	"github.com/kmuller/go-messenger/internal/database"
	"github.com/kmuller/go-messenger/internal/types"
)

func Test_createGroupChat(t *testing.T) {
	mockChat := database.GroupChat{
		Id:           7,
		CreationDate: time.Now().UTC(),
	}

	t.Run("successfully creates a group chat", func(t *testing.T) {
		mockRepo := &database.MockMessengerRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("CreateGroupChat").Return(mockChat, nil).Once()
		mockRepo.On("GetProfileById", 1).Return(database.Profile{Id: 1}, nil).Once()
		mockRepo.On("CreateMembership", 1, 7).Return(database.Membership{MemberId: 10, ProfileId: 1, GroupChatId: 7}, nil).Once()

		app := newTestApp(t, mockRepo)

		body, err := json.Marshal(CreateGroupChatRequest{MemberIds: []int{1}})
		assert.NoError(t, err, "failed to marshal request body")
		req := httptest.NewRequest(http.MethodPost, "/api/group-chats", bytes.NewBuffer(body))

		rr := httptest.NewRecorder()
		app.createGroupChat(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var groupChat types.GroupChat
		err = json.NewDecoder(rr.Body).Decode(&groupChat)
		assert.NoError(t, err, "failed to decode response")
		assert.Equal(t, mockChat.Id, groupChat.Id)
		assert.WithinDuration(t, mockChat.CreationDate, groupChat.CreationDate, time.Second)
	})

	t.Run("fails with no members", func(t *testing.T) {
		mockRepo := &database.MockMessengerRepository{}
		defer mockRepo.AssertExpectations(t)

		app := newTestApp(t, mockRepo)

		body, err := json.Marshal(CreateGroupChatRequest{})
		assert.NoError(t, err, "failed to marshal request body")
		req := httptest.NewRequest(http.MethodPost, "/api/group-chats", bytes.NewBuffer(body))

		rr := httptest.NewRecorder()
		app.createGroupChat(rr, req)

		var apiErr ApiError
		err = json.NewDecoder(rr.Body).Decode(&apiErr)
		assert.NoError(t, err, "failed to decode error response")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, chat.ErrNoMembers.Error(), apiErr.Message)
	})

	t.Run("fails with invalid json body", func(t *testing.T) {
		mockRepo := &database.MockMessengerRepository{}
		defer mockRepo.AssertExpectations(t)

		app := newTestApp(t, mockRepo)
		req := httptest.NewRequest(http.MethodPost, "/api/group-chats", strings.NewReader("invalid json"))

		rr := httptest.NewRecorder()
		app.createGroupChat(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func Test_getGroupChat(t *testing.T) {
	mockChat := database.GroupChat{
		Id:           7,
		CreationDate: time.Now().UTC(),
	}

	tcases := []struct {
		name        string
		pathId      string
		mockChat    database.GroupChat
		mockErr     error
		expectedErr *ApiError
	}{
		{
			name:     "successfully retrieves a group chat",
			pathId:   "7",
			mockChat: mockChat,
		},
		{
			name:        "fails with non-numeric id",
			pathId:      "abc",
			expectedErr: NewBadRequestError(),
		},
		{
			name:    "fails with group chat not found",
			pathId:  "7",
			mockErr: sql.ErrNoRows,
			expectedErr: &ApiError{
				StatusCode: http.StatusNotFound,
				Message:    chat.ErrGroupChatNotFound.Error(),
			},
		},
		{
			name:        "fails with db error",
			pathId:      "7",
			mockErr:     errors.New("db error"),
			expectedErr: NewInternalServerError(nil),
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockMessengerRepository{}
			defer mockRepo.AssertExpectations(t)

			if tc.mockChat.Id != 0 || tc.mockErr != nil {
				mockRepo.On("GetGroupChatById", 7).Return(tc.mockChat, tc.mockErr).Once()
			}

			app := newTestApp(t, mockRepo)
			req := httptest.NewRequest(http.MethodGet, "/api/group-chats/"+tc.pathId, nil)
			req.SetPathValue("id", tc.pathId)

			rr := httptest.NewRecorder()
			app.getGroupChat(rr, req)

			if tc.expectedErr != nil {
				var apiErr ApiError
				err := json.NewDecoder(rr.Body).Decode(&apiErr)
				assert.NoError(t, err, "failed to decode error response")
				assert.Equal(t, tc.expectedErr.StatusCode, rr.Code, "expected status code to match")
				assert.Equal(t, *tc.expectedErr, apiErr, "expected ApiError response")
				return
			}

			assert.Equal(t, http.StatusOK, rr.Code)

			var groupChat types.GroupChat
			err := json.NewDecoder(rr.Body).Decode(&groupChat)
			assert.NoError(t, err, "failed to decode response")
			assert.Equal(t, mockChat.Id, groupChat.Id)
		})
	}
}

func Test_updateGroupChat(t *testing.T) {
	mockChat := database.GroupChat{
		Id:           7,
		CreationDate: time.Now().UTC(),
	}
	updated := mockChat
	updated.GroupPicture = strPtr("sunset.png")

	t.Run("successfully sets the group picture", func(t *testing.T) {
		mockRepo := &database.MockMessengerRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetGroupChatById", 7).Return(mockChat, nil).Once()
		mockRepo.On("UpdateGroupChatPicture", 7, "sunset.png").Return(updated, nil).Once()

		app := newTestApp(t, mockRepo)

		body, err := json.Marshal(UpdateGroupChatRequest{GroupPicture: "sunset.png"})
		assert.NoError(t, err, "failed to marshal request body")
		req := httptest.NewRequest(http.MethodPatch, "/api/group-chats/7", bytes.NewBuffer(body))
		req.SetPathValue("id", "7")

		rr := httptest.NewRecorder()
		app.updateGroupChat(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var groupChat types.GroupChat
		err = json.NewDecoder(rr.Body).Decode(&groupChat)
		assert.NoError(t, err, "failed to decode response")
		assert.NotNil(t, groupChat.GroupPicture)
		assert.Equal(t, "sunset.png", *groupChat.GroupPicture)
	})

	t.Run("fails with group chat not found", func(t *testing.T) {
		mockRepo := &database.MockMessengerRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetGroupChatById", 99).Return(database.GroupChat{}, sql.ErrNoRows).Once()

		app := newTestApp(t, mockRepo)

		body, err := json.Marshal(UpdateGroupChatRequest{GroupPicture: "sunset.png"})
		assert.NoError(t, err, "failed to marshal request body")
		req := httptest.NewRequest(http.MethodPatch, "/api/group-chats/99", bytes.NewBuffer(body))
		req.SetPathValue("id", "99")

		rr := httptest.NewRecorder()
		app.updateGroupChat(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func Test_deleteGroupChat(t *testing.T) {
	mockChat := database.GroupChat{
		Id:           7,
		CreationDate: time.Now().UTC(),
	}

	tcases := []struct {
		name          string
		mockChat      database.GroupChat
		mockGetErr    error
		mockDeleteErr error
		expectedErr   *ApiError
	}{
		{
			name:     "successfully deletes a group chat",
			mockChat: mockChat,
		},
		{
			name:       "fails with group chat not found",
			mockGetErr: sql.ErrNoRows,
			expectedErr: &ApiError{
				StatusCode: http.StatusNotFound,
				Message:    chat.ErrGroupChatNotFound.Error(),
			},
		},
		{
			name:          "fails with db error on delete",
			mockChat:      mockChat,
			mockDeleteErr: errors.New("db error"),
			expectedErr:   NewInternalServerError(nil),
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockMessengerRepository{}
			defer mockRepo.AssertExpectations(t)

			mockRepo.On("GetGroupChatById", 7).Return(tc.mockChat, tc.mockGetErr).Once()
			if tc.mockGetErr == nil {
				mockRepo.On("DeleteGroupChat", 7).Return(tc.mockDeleteErr).Once()
			}

			app := newTestApp(t, mockRepo)
			req := httptest.NewRequest(http.MethodDelete, "/api/group-chats/7", nil)
			req.SetPathValue("id", "7")

			rr := httptest.NewRecorder()
			app.deleteGroupChat(rr, req)

			if tc.expectedErr != nil {
				var apiErr ApiError
				err := json.NewDecoder(rr.Body).Decode(&apiErr)
				assert.NoError(t, err, "failed to decode error response")
				assert.Equal(t, tc.expectedErr.StatusCode, rr.Code, "expected status code to match")
				assert.Equal(t, *tc.expectedErr, apiErr, "expected ApiError response")
				return
			}

			assert.Equal(t, http.StatusNoContent, rr.Code)
		})
	}
}

func Test_addMember(t *testing.T) {
	mockMembership := database.Membership{MemberId: 10, ProfileId: 1, GroupChatId: 7}

	t.Run("successfully adds a member", func(t *testing.T) {
		mockRepo := &database.MockMessengerRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetProfileById", 1).Return(database.Profile{Id: 1}, nil).Once()
		mockRepo.On("GetGroupChatById", 7).Return(database.GroupChat{Id: 7}, nil).Once()
		mockRepo.On("CreateMembership", 1, 7).Return(mockMembership, nil).Once()

		app := newTestApp(t, mockRepo)

		body, err := json.Marshal(AddMemberRequest{ProfileId: 1})
		assert.NoError(t, err, "failed to marshal request body")
		req := httptest.NewRequest(http.MethodPost, "/api/group-chats/7/members", bytes.NewBuffer(body))
		req.SetPathValue("id", "7")

		rr := httptest.NewRecorder()
		app.addMember(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var membership types.Membership
		err = json.NewDecoder(rr.Body).Decode(&membership)
		assert.NoError(t, err, "failed to decode response")
		assert.Equal(t, mockMembership.MemberId, membership.MemberId)
		assert.Equal(t, mockMembership.ProfileId, membership.ProfileId)
		assert.Equal(t, mockMembership.GroupChatId, membership.GroupChatId)
	})

	t.Run("fails with profile not found", func(t *testing.T) {
		mockRepo := &database.MockMessengerRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetProfileById", 42).Return(database.Profile{}, sql.ErrNoRows).Once()

		app := newTestApp(t, mockRepo)

		body, err := json.Marshal(AddMemberRequest{ProfileId: 42})
		assert.NoError(t, err, "failed to marshal request body")
		req := httptest.NewRequest(http.MethodPost, "/api/group-chats/7/members", bytes.NewBuffer(body))
		req.SetPathValue("id", "7")

		rr := httptest.NewRecorder()
		app.addMember(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func Test_listMembers(t *testing.T) {
	mockMemberships := []database.Membership{
		{MemberId: 10, ProfileId: 1, GroupChatId: 7},
		{MemberId: 11, ProfileId: 2, GroupChatId: 7},
	}

	t.Run("successfully lists members", func(t *testing.T) {
		mockRepo := &database.MockMessengerRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetGroupChatById", 7).Return(database.GroupChat{Id: 7}, nil).Once()
		mockRepo.On("ListMembershipsByChat", 7).Return(mockMemberships, nil).Once()

		app := newTestApp(t, mockRepo)
		req := httptest.NewRequest(http.MethodGet, "/api/group-chats/7/members", nil)
		req.SetPathValue("id", "7")

		rr := httptest.NewRecorder()
		app.listMembers(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var memberships []types.Membership
		err := json.NewDecoder(rr.Body).Decode(&memberships)
		assert.NoError(t, err, "failed to decode response")
		assert.Len(t, memberships, 2)
	})

	t.Run("fails with group chat not found", func(t *testing.T) {
		mockRepo := &database.MockMessengerRepository{}
		defer mockRepo.AssertExpectations(t)

		mockRepo.On("GetGroupChatById", 99).Return(database.GroupChat{}, sql.ErrNoRows).Once()

		app := newTestApp(t, mockRepo)
		req := httptest.NewRequest(http.MethodGet, "/api/group-chats/99/members", nil)
		req.SetPathValue("id", "99")

		rr := httptest.NewRecorder()
		app.listMembers(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func Test_removeAllMembers(t *testing.T) {
	mockRepo := &database.MockMessengerRepository{}
	defer mockRepo.AssertExpectations(t)

	mockRepo.On("GetGroupChatById", 7).Return(database.GroupChat{Id: 7}, nil).Once()
	mockRepo.On("DeleteMembershipsByChat", 7).Return(int64(3), nil).Once()

	app := newTestApp(t, mockRepo)
	req := httptest.NewRequest(http.MethodDelete, "/api/group-chats/7/members", nil)
	req.SetPathValue("id", "7")

	rr := httptest.NewRecorder()
	app.removeAllMembers(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var result types.DeleteResult
	err := json.NewDecoder(rr.Body).Decode(&result)
	assert.NoError(t, err, "failed to decode response")
	assert.Equal(t, int64(3), result.Deleted)
}

func Test_removeMember(t *testing.T) {
	tcases := []struct {
		name        string
		deleted     int64
		mockErr     error
		expectedErr *ApiError
	}{
		{
			name:    "successfully removes a member",
			deleted: 1,
		},
		{
			name:    "fails with membership not found",
			deleted: 0,
			expectedErr: &ApiError{
				StatusCode: http.StatusNotFound,
				Message:    chat.ErrMembershipNotFound.Error(),
			},
		},
		{
			name:        "fails with db error",
			mockErr:     errors.New("db error"),
			expectedErr: NewInternalServerError(nil),
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &database.MockMessengerRepository{}
			defer mockRepo.AssertExpectations(t)

			mockRepo.On("DeleteMembership", 7, 1).Return(tc.deleted, tc.mockErr).Once()

			app := newTestApp(t, mockRepo)
			req := httptest.NewRequest(http.MethodDelete, "/api/group-chats/7/members/1", nil)
			req.SetPathValue("id", "7")
			req.SetPathValue("profileId", "1")

			rr := httptest.NewRecorder()
			app.removeMember(rr, req)

			if tc.expectedErr != nil {
				var apiErr ApiError
				err := json.NewDecoder(rr.Body).Decode(&apiErr)
				assert.NoError(t, err, "failed to decode error response")
				assert.Equal(t, tc.expectedErr.StatusCode, rr.Code, "expected status code to match")
				assert.Equal(t, *tc.expectedErr, apiErr, "expected ApiError response")
				return
			}

			assert.Equal(t, http.StatusNoContent, rr.Code)
		})
	}
}
