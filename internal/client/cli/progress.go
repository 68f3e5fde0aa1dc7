package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophdrop/internal/client/session"
)

const progressBarWidth = 20

// progressRenderer draws upload progress. On a terminal it redraws one line
// in place; otherwise it prints a line per event.
type progressRenderer struct {
	w    io.Writer
	tty  bool
	drew bool
}

func (p *progressRenderer) ProgressChanged(ev session.ProgressEvent) {
	if p.tty {
		fmt.Fprintf(p.w, "\rUploading %s %s %3d%%", ev.Filename, progressBar(ev.Percent), ev.Percent)
		p.drew = true
		return
	}
	fmt.Fprintf(p.w, "Uploading %s: %d%%\n", ev.Filename, ev.Percent)
}

// finish terminates the in-place line, if one was drawn.
func (p *progressRenderer) finish() {
	if p.drew {
		fmt.Fprintln(p.w)
		p.drew = false
	}
}

func progressBar(percent int) string {
	filled := min(max(percent, 0), 100) * progressBarWidth / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", progressBarWidth-filled) + "]"
}
