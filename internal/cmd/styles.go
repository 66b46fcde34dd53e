package cmd

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// theme holds the styles used for report and check output. The zero-color
// theme renders text unchanged.
type theme struct {
	Key     lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// ParseHex parses a #rrggbb color, falling back to no color on bad input.
func ParseHex(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.Transparent
	}
	return c
}

// newChallengerDeepTheme is the palette of the challenger-deep terminal
// scheme.
func newChallengerDeepTheme() theme {
	return theme{
		Key:     lipgloss.NewStyle().Foreground(ParseHex("#65b2ff")).Bold(true), // color12
		Muted:   lipgloss.NewStyle().Foreground(ParseHex("#565575")),            // color8
		Success: lipgloss.NewStyle().Foreground(ParseHex("#95ffa4")),            // color2
		Error:   lipgloss.NewStyle().Foreground(ParseHex("#ff8080")).Bold(true), // color1
	}
}

func plainTheme() theme {
	return theme{
		Key:     lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
	}
}

func themeFor(color bool) theme {
	if color {
		return newChallengerDeepTheme()
	}
	return plainTheme()
}
