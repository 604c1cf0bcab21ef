package util

import (
	"os"
)

// ListInputFiles returns the regular files in dir, for the interactive picker.
func ListInputFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, e.Name())
	}

	return files, nil
}

const (
	TerminalReset  = "\033[0m"
	TerminalRed    = "\033[31m"
	TerminalGreen  = "\033[32m"
	TerminalYellow = "\033[33m"
	TerminalBlue   = "\033[34m"
	TerminalPurple = "\033[35m"
	TerminalCyan   = "\033[36m"
	TerminalWhite  = "\033[37m"
)
