package main

import (
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"
)

func globdir(dir, pattern string) ([]string, error) {
	// check for bad pattern
	_, err := filepath.Match(pattern, "")
	if err != nil {
		return nil, err
	}

	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var matches []string

	for {
		names, err := f.Readdirnames(100)

		for _, n := range names {
			if m, _ := filepath.Match(pattern, n); m {
				matches = append(matches, n)
			}
		}

		if err == io.EOF {
			return matches, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

type MessageType int

const (
	DefaultMessage MessageType = iota
	StatusMessage
	ErrorMessage
)

const (
	defaultColor = "\x1b[0m"
	statusColor  = "\x1b[36m"
	errorColor   = "\x1b[31m"
)

// DecorateText colors diagnostic messages when stderr is a terminal.
func DecorateText(s string, msgType MessageType) string {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return s
	}

	switch msgType {
	case StatusMessage:
		s = statusColor + s
	case ErrorMessage:
		s = errorColor + s
	default:
		return s
	}
	return s + defaultColor
}
