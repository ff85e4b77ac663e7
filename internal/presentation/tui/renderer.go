package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// Plain disables styling, for output that is piped or redirected.
func NewRenderer(plain bool) func(string) (string, error) {
	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return func(markdown string) (string, error) {
			return "", err
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
