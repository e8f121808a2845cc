package main

import (
	"bufio"
	"github.com/google/uuid"
	"io"
	"strings"
)

// readKeys - Returns one key per line of r, with line endings trimmed and blank lines skipped
func readKeys(r io.Reader) (keys []string, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		keys = append(keys, line)
	}
	err = scanner.Err()

	return
}

// generateKeys - Returns n random UUID keys
func generateKeys(n int) (keys []string) {
	if n <= 0 {
		return
	}
	keys = make([]string, n)
	for i := range keys {
		keys[i] = uuid.NewString()
	}

	return
}
