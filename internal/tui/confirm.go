// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmModel struct {
	noteID string
	title  string
}

func (m confirmModel) View() string {
	content := "Удалить заметку \"" + m.title + "\"?\n"
	content += "Отменить удаление будет нельзя.\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
