// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

// humanizeError turns a service error into a message for the user.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrWriteTimedOut):
		return "Сервер не ответил вовремя. Изменения не сохранены"
	case errors.Is(err, service.ErrServerUnavailable):
		return "Отсутствует сеть или Сервер недоступен"
	case errors.Is(err, service.ErrNoteNotFound):
		return "Заметка уже удалена"
	case errors.Is(err, service.ErrNoteRejected):
		return "Сервер отклонил заметку: " + err.Error()
	case errors.Is(err, service.ErrSubscriptionClosed):
		return "Обновления в реальном времени прерваны"
	}

	return err.Error()
}
