package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Status prints colored one-line results. The profile is detected from the
// writer, so redirected output stays free of escape codes.
type Status struct {
	w io.Writer
	p termenv.Profile
}

func NewStatus(w io.Writer) *Status {
	return &Status{w: w, p: termenv.NewOutput(w).Profile}
}

// NewStatusWithProfile forces a color profile.
func NewStatusWithProfile(w io.Writer, p termenv.Profile) *Status {
	return &Status{w: w, p: p}
}

func (s *Status) Success(format string, args ...any) {
	s.line("✔", "#4ade80", format, args...)
}

func (s *Status) Failure(format string, args ...any) {
	s.line("✘", "#f87171", format, args...)
}

func (s *Status) Info(format string, args ...any) {
	s.line("•", "#38bdf8", format, args...)
}

func (s *Status) line(mark, hex, format string, args ...any) {
	prefix := s.p.String(mark).Foreground(s.p.Color(hex)).Bold()
	fmt.Fprintf(s.w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
