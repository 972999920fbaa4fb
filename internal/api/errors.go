package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/kmuller/go-messenger/internal/chat"
)

type ApiError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
}

func (e *ApiError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}

	return e.Message
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

func lower(s string) string {
	return strings.ToLower(s)
}

func NewBadRequestError() *ApiError {
	return &ApiError{
		StatusCode: http.StatusBadRequest,
		Message:    lower(http.StatusText(http.StatusBadRequest)),
	}
}

func NewNotFoundError() *ApiError {
	return &ApiError{
		StatusCode: http.StatusNotFound,
		Message:    lower(http.StatusText(http.StatusNotFound)),
	}
}

func NewInternalServerError(err error) *ApiError {
	return &ApiError{
		StatusCode: http.StatusInternalServerError,
		Message:    lower(http.StatusText(http.StatusInternalServerError)),
		Err:        err,
	}
}

// fromDomainError translates a chat failure into its transport shape:
// missing entities map to 404, rejected arguments to 400 with the rule in
// the message, anything else is a store failure and maps to 500.
func fromDomainError(err error) *ApiError {
	switch {
	case errors.Is(err, chat.ErrProfileNotFound),
		errors.Is(err, chat.ErrGroupChatNotFound),
		errors.Is(err, chat.ErrMembershipNotFound),
		errors.Is(err, chat.ErrMessageNotFound):
		return &ApiError{
			StatusCode: http.StatusNotFound,
			Message:    err.Error(),
		}
	case errors.Is(err, chat.ErrInvalidUsername),
		errors.Is(err, chat.ErrNoMembers):
		return &ApiError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	default:
		return NewInternalServerError(err)
	}
}
