package tgbot

import (
	"errors"
	"fmt"
)

var ErrNoToken = errors.New("BOT_TOKEN is not configured")

type ErrMissingField struct {
	Field string
}

func NewErrMissingField(field string) *ErrMissingField {
	return &ErrMissingField{Field: field}
}

func (err *ErrMissingField) Error() string {
	return fmt.Sprintf("%s is required", err.Field)
}

// ErrBotAPI ответ Bot API с ok=false.
type ErrBotAPI struct {
	Method      string
	Code        int
	Description string
}

func NewErrBotAPI(method string, code int, description string) *ErrBotAPI {
	return &ErrBotAPI{
		Method:      method,
		Code:        code,
		Description: description,
	}
}

func (err *ErrBotAPI) Error() string {
	return fmt.Sprintf("запрос %s к Bot API закончился ошибкой %d: %s", err.Method, err.Code, err.Description)
}
