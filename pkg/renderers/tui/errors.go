package tui

import "errors"

// ErrAborted signals the user aborted input (e.g., Ctrl+C). Any modal
// session open at that moment is canceled before the error propagates.
var ErrAborted = errors.New("tui: aborted")
