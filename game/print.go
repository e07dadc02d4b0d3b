package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	guessStyle = lipgloss.NewStyle().Bold(true)
	opsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	wonStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	lostStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// printer writes the transcript of a game. A printer without a writer is silent.
type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) printer { return printer{w} }

func (p printer) printf(format string, args ...any) {
	if p.w == nil {
		return
	}
	fmt.Fprintf(p.w, format, args...)
}

func (p printer) turn(n int, t Turn) {
	p.printf("  [%2d] %s  distance %d  %s\n", n, guessStyle.Render(t.Guess), t.Distance, opsStyle.Render("["+t.Feedback.String()+"]"))
}

func (p printer) result(r *Result) {
	if r.Won {
		p.printf("%s found %q in %d guesses\n", wonStyle.Render("[W]"), r.Secret, r.Guesses())
	} else {
		p.printf("%s out of guesses, the word was %q\n", lostStyle.Render("[L]"), r.Secret)
	}
}
