package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	"     _            __                          ",
	"  __| | ___   ___/ _|_ __ __ _ _ __ ___   ___ ",
	" / _` |/ _ \\ / __| |_| '__/ _` | '_ ` _ \\ / _ \\",
	"| (_| | (_) | (__|  _| | | (_| | | | | | |  __/",
	" \\__,_|\\___/ \\___|_| |_|  \\__,_|_| |_| |_|\\___|",
}

var bannerColors = []string{"#38bdf8", "#22d3ee", "#2dd4bf", "#34d399", "#4ade80"}

// PrintBanner writes the docframe banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.NewOutput(w).Profile
	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, p.String(line).Foreground(p.Color(bannerColors[i])))
	}
	fmt.Fprintln(w)
}
