// Package report renders played games as markdown and HTML.
package report

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"znkr.io/distle/game"
)

// Markdown renders a game as a markdown document. A result without a secret is rendered as a game
// in progress and never reveals anything beyond the guesses and their feedback.
func Markdown(res *game.Result) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# Game %s\n\n", res.ID)

	switch {
	case res.Secret == "":
		fmt.Fprintf(&b, "In progress, %d of %d guesses used.\n\n", res.Guesses(), res.MaxGuesses)
	case res.Won:
		fmt.Fprintf(&b, "Found **%s** in %d guesses.\n\n", escape(res.Secret), res.Guesses())
	default:
		fmt.Fprintf(&b, "Lost after %d guesses, the word was **%s**.\n\n", res.Guesses(), escape(res.Secret))
	}

	if len(res.Turns) == 0 {
		return b.Bytes()
	}

	b.WriteString("| # | Guess | Distance | Feedback |\n")
	b.WriteString("|--:|-------|---------:|----------|\n")
	for i, t := range res.Turns {
		fb := t.Feedback.String()
		if fb == "" {
			fb = "-"
		}
		fmt.Fprintf(&b, "| %d | %s | %d | `%s` |\n", i+1, escape(t.Guess), t.Distance, fb)
	}

	if res.Secret != "" && !res.Won {
		last := res.Turns[len(res.Turns)-1]
		fmt.Fprintf(&b, "\nClosest call:\n\n```\n%s```\n", Alignment(last.Guess, res.Secret))
	}
	return b.Bytes()
}

var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// HTML renders a game as a minified, self-contained HTML page.
func HTML(res *game.Result) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert(Markdown(res), &body); err != nil {
		return nil, fmt.Errorf("rendering markdown: %v", err)
	}

	var page bytes.Buffer
	page.WriteString("<!doctype html>\n<html lang=en>\n<head>\n<meta charset=utf-8>\n")
	fmt.Fprintf(&page, "<title>Distle game %s</title>\n", html.EscapeString(res.ID))
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")

	m := minify.New()
	m.AddFunc("text/html", minhtml.Minify)
	out, err := m.Bytes("text/html", page.Bytes())
	if err != nil {
		return nil, fmt.Errorf("minification failed: %v", err)
	}
	return out, nil
}

var escaper = strings.NewReplacer(`|`, `\|`, `*`, `\*`, `_`, `\_`, "`", "\\`", `<`, `&lt;`)

func escape(s string) string { return escaper.Replace(s) }
