package display

import "github.com/fatih/color"

// Box drawing characters
const (
	BoxTopLeft     = "┌"
	BoxTopRight    = "┐"
	BoxBottomLeft  = "└"
	BoxBottomRight = "┘"
	BoxHorizontal  = "─"
	BoxVertical    = "│"
)

// Status symbols
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolInfo    = "◆"
	SymbolArrow   = "▶"
)

// Theme holds all color functions for consistent styling
type Theme struct {
	// Banner and framing
	Border func(a ...interface{}) string
	Label  func(a ...interface{}) string
	Text   func(a ...interface{}) string

	// Status indicators
	Success func(a ...interface{}) string
	Error   func(a ...interface{}) string
	Info    func(a ...interface{}) string

	// Structural elements
	Bold func(a ...interface{}) string
	Dim  func(a ...interface{}) string
}

// DefaultTheme creates the default color theme
func DefaultTheme() *Theme {
	return &Theme{
		Border: color.New(color.FgMagenta).SprintFunc(),
		Label:  color.New(color.FgMagenta, color.Bold).SprintFunc(),
		Text:   color.New(color.FgWhite).SprintFunc(),

		Success: color.New(color.FgGreen).SprintFunc(),
		Error:   color.New(color.FgRed).SprintFunc(),
		Info:    color.New(color.FgCyan).SprintFunc(),

		Bold: color.New(color.Bold).SprintFunc(),
		Dim:  color.New(color.FgHiBlack).SprintFunc(),
	}
}

// FancyTheme swaps the frame to the full-color variant used by --fancy
func FancyTheme() *Theme {
	t := DefaultTheme()
	t.Border = color.New(color.FgHiMagenta, color.Bold).SprintFunc()
	t.Label = color.New(color.FgHiCyan, color.Bold).SprintFunc()
	t.Text = color.New(color.FgHiWhite).SprintFunc()
	return t
}

// NoColorTheme creates a theme without colors (NO_COLOR or non-TTY)
func NoColorTheme() *Theme {
	identity := func(a ...interface{}) string {
		if len(a) == 0 {
			return ""
		}
		return a[0].(string)
	}
	return &Theme{
		Border:  identity,
		Label:   identity,
		Text:    identity,
		Success: identity,
		Error:   identity,
		Info:    identity,
		Bold:    identity,
		Dim:     identity,
	}
}
