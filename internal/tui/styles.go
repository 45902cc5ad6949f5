// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-notes-keeper/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	selectedStyle   = lipgloss.NewStyle().Reverse(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// swatchColors maps the palette onto ANSI 256 colors.
var swatchColors = map[models.Color]lipgloss.Color{
	models.ColorNeutral: lipgloss.Color("250"),
	models.ColorRed:     lipgloss.Color("196"),
	models.ColorOrange:  lipgloss.Color("208"),
	models.ColorYellow:  lipgloss.Color("226"),
	models.ColorGreen:   lipgloss.Color("34"),
	models.ColorTeal:    lipgloss.Color("30"),
	models.ColorBlue:    lipgloss.Color("33"),
	models.ColorPurple:  lipgloss.Color("93"),
	models.ColorPink:    lipgloss.Color("213"),
	models.ColorBrown:   lipgloss.Color("94"),
	models.ColorGray:    lipgloss.Color("244"),
}

func swatch(c models.Color) string {
	color, ok := swatchColors[c.OrDefault()]
	if !ok {
		color = swatchColors[models.ColorNeutral]
	}
	return lipgloss.NewStyle().Foreground(color).Render("●")
}
