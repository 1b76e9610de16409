package navigation

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Recorder keeps every target it is asked to navigate to.
type Recorder struct {
	Calls []Target
	// Err, when set, is returned from Navigate after recording the call.
	Err error
}

// Navigate records the target.
func (r *Recorder) Navigate(_ context.Context, target Target) error {
	r.Calls = append(r.Calls, target)
	return r.Err
}

// Last returns the most recent target.
func (r *Recorder) Last() (Target, bool) {
	if len(r.Calls) == 0 {
		return Target{}, false
	}
	return r.Calls[len(r.Calls)-1], true
}

// Printer writes the absolute target URL to a writer; the terminal session
// uses it in place of a browser.
type Printer struct {
	Writer  io.Writer
	BaseURL string
}

// Navigate prints the target URL.
func (p Printer) Navigate(ctx context.Context, target Target) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.Writer == nil {
		return nil
	}
	_, err := fmt.Fprintln(p.Writer, strings.TrimRight(p.BaseURL, "/")+target.URL())
	return err
}
