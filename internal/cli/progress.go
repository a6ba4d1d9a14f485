package cli

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ─── Progress Bar ───────────────────────────────────────────────────────────
// Terminal progress for multi-step runs such as benchmarks.
// Shows: [==========>.........] 2/3 │ add-first on Doubly Linked List │ 1.2s

const barWidth = 30 // Characters for the progress bar

type progressBar struct {
	out     io.Writer
	started time.Time
	total   int
}

func newProgressBar(out io.Writer, total int) *progressBar {
	return &progressBar{
		out:     out,
		started: time.Now(),
		total:   total,
	}
}

// step renders the bar after done of total steps, labelled with the step
// about to run (or just finished).
func (p *progressBar) step(done int, label string) {
	done = min(max(done, 0), p.total)

	filled := 0
	if p.total > 0 {
		filled = done * barWidth / p.total
	}
	empty := barWidth - filled

	var bar string
	switch {
	case filled == barWidth:
		bar = strings.Repeat("=", filled)
	case filled > 0:
		bar = strings.Repeat("=", filled-1) + ">" + strings.Repeat(".", empty)
	default:
		bar = strings.Repeat(".", barWidth)
	}

	p.clearLine()
	fmt.Fprintf(p.out, "  [%s] %d/%d | %s | %s",
		bar, done, p.total, label, time.Since(p.started).Round(100*time.Millisecond))
}

// finish clears the bar line.
func (p *progressBar) finish() {
	p.clearLine()
}

func (p *progressBar) clearLine() {
	fmt.Fprint(p.out, "\r\033[K")
}
