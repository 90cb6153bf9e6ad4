package img

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/progress"
)

// ProgressWriter renders a progress bar while bytes flow through it, for
// hashing files large enough that silence would look like a hang. Wire it
// into MD5File as the progress writer, bracketed by Start and Stop.
// current is atomic because Write runs on the caller's goroutine while
// render reads from its own.
type ProgressWriter struct {
	total   int64
	current atomic.Int64
	prog    progress.Model
	done    chan bool
}

// NewProgressWriter returns a writer expecting the given number of bytes.
func NewProgressWriter(total int64) *ProgressWriter {
	return &ProgressWriter{
		total: total,
		prog:  progress.New(progress.WithDefaultGradient()),
		done:  make(chan bool),
	}
}

func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n := len(p)
	pw.current.Add(int64(n))
	return n, nil
}

// Start begins rendering in the background.
func (pw *ProgressWriter) Start() {
	go pw.render()
}

// Stop renders the final 100% state and stops the background rendering.
func (pw *ProgressWriter) Stop() {
	pw.done <- true
}

func (pw *ProgressWriter) render() {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-pw.done:
			// Show 100% progress before clearing
			fmt.Printf("\r%s\n", pw.prog.ViewAs(1.0))
			return
		case <-ticker.C:
			if current := pw.current.Load(); current > 0 && pw.total > 0 {
				percent := float64(current) / float64(pw.total)
				fmt.Printf("\r%s", pw.prog.ViewAs(percent))
			}
		}
	}
}
