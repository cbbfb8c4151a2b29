// Package model defines shared data structures.
package model

import "time"

// CrackConfig defines Caesar cracker options.
type CrackConfig struct {
	Top      int
	DictPath string
	TUI      bool
}

// DTMFConfig defines tone synthesis options.
type DTMFConfig struct {
	Speed      string
	SampleRate int
	Output     string
}

// HistoryFilter selects operations for the history listing.
type HistoryFilter struct {
	Tool  string
	Since *time.Time
	Last  int
}

// Operation records one tool invocation. Input and Output hold short,
// display-safe previews. Key material and the plaintext side of the XOR and
// RSA tools are never stored; callers record a byte count instead.
type Operation struct {
	ID        int64
	CreatedAt time.Time
	Tool      string
	Action    string
	Input     string
	Output    string
}
