// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, appVersion string, server *models.ServerVersion, serverErr error) string {
	var b strings.Builder

	b.WriteString("Название приложения: GoNotesKeeper\n")
	b.WriteString("Версия: ")
	b.WriteString(valueOrNA(appVersion))
	b.WriteString("\n")
	b.WriteString("Сборка: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n\n")

	b.WriteString("[ СЕРВЕР ]\n")
	switch {
	case serverErr != nil:
		b.WriteString(humanizeError(serverErr))
	case server == nil:
		b.WriteString("Загрузка...")
	default:
		b.WriteString("Версия: ")
		b.WriteString(valueOrNA(server.Version))
		b.WriteString("\n")
		b.WriteString("Сборка: ")
		b.WriteString(valueOrNA(server.BuildVersion))
		b.WriteString("\n")
		b.WriteString("Коммит: ")
		b.WriteString(valueOrNA(server.BuildCommit))
	}

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
