package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal. When rendering fails
// (no usable terminal profile, broken style) the raw markdown is still
// printed, a report is never swallowed.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err == nil {
		if out, rerr := r.Render(md); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
