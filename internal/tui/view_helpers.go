// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("q / ctrl+c: выход"))

	return appStyle.Render(b.String())
}

// fitText cuts v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	if max <= 0 || utf8.RuneCountInString(v) <= max {
		return v
	}
	runes := []rune(v)
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func noteTitle(n models.Note) string {
	if strings.TrimSpace(n.Title) == "" {
		return "(без названия)"
	}
	return n.Title
}

// notePreview is the first line of the content without markup.
func notePreview(n models.Note, max int) string {
	return fitText(utils.PlainText(n.Content), max)
}

// noteMarkdown renders stored HTML as markdown text. Markup is never
// interpreted by the terminal.
func noteMarkdown(n models.Note) string {
	text, err := utils.HTMLToMarkdown(n.Content)
	if err != nil {
		return utils.PlainText(n.Content)
	}
	return text
}

func formatCreatedAt(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	return time.UnixMilli(ms).Local().Format("02.01.2006 15:04")
}

func colorLabel(c models.Color) string {
	return swatch(c) + " " + string(c.OrDefault())
}
