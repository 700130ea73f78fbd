package main

import "time"

// Default limits for CLI commands.
const (
	DefaultListLimit    = 50
	DefaultPreviewChars = 60
)

// Server timeouts.
const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)
