// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Color is a note color tag from the fixed palette.
type Color string

const (
	ColorNeutral Color = "neutral"
	ColorRed     Color = "red"
	ColorOrange  Color = "orange"
	ColorYellow  Color = "yellow"
	ColorGreen   Color = "green"
	ColorTeal    Color = "teal"
	ColorBlue    Color = "blue"
	ColorPurple  Color = "purple"
	ColorPink    Color = "pink"
	ColorBrown   Color = "brown"
	ColorGray    Color = "gray"
)

// Palette lists every supported color in display order.
var Palette = []Color{
	ColorNeutral,
	ColorRed,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorTeal,
	ColorBlue,
	ColorPurple,
	ColorPink,
	ColorBrown,
	ColorGray,
}

// IsValid reports whether c belongs to the palette.
// The empty color is valid and means ColorNeutral.
func (c Color) IsValid() bool {
	if c == "" {
		return true
	}
	for _, p := range Palette {
		if p == c {
			return true
		}
	}
	return false
}

// OrDefault returns ColorNeutral for the empty color and c otherwise.
func (c Color) OrDefault() Color {
	if c == "" {
		return ColorNeutral
	}
	return c
}

// Next returns the palette color following c, wrapping around.
func (c Color) Next() Color {
	return c.shift(1)
}

// Prev returns the palette color preceding c, wrapping around.
func (c Color) Prev() Color {
	return c.shift(-1)
}

func (c Color) shift(step int) Color {
	c = c.OrDefault()
	for i, p := range Palette {
		if p == c {
			n := len(Palette)
			return Palette[((i+step)%n+n)%n]
		}
	}
	return ColorNeutral
}
