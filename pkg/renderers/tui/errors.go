package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrMaxAttempts is returned when a field stays invalid after the
	// configured number of prompts.
	ErrMaxAttempts = errors.New("tui: too many invalid answers")
	// ErrNotSubmitted is returned when the form refused to submit after every
	// field was answered.
	ErrNotSubmitted = errors.New("tui: form not submitted")
)
