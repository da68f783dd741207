package telegram

import "fmt"

type ErrBadStatus struct {
	code int
}

func NewErrBadStatus(code int) *ErrBadStatus {
	return &ErrBadStatus{code: code}
}

func (err *ErrBadStatus) Error() string {
	return fmt.Sprintf("Запрос к BOT API вернул статус %d без корректного тела ответа", err.code)
}
