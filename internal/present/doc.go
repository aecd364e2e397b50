package present

// Package present drives the presentation itself: the navigation state
// machine over an immutable slide sequence and the periodic refresh loop
// that swaps the sequence in place while preserving the viewer's position.
