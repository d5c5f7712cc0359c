// Package handlers provides the handler bodies the demo CLI registers on
// the loop. These are ordinary application code behind the generic
// handler contract; the loop knows nothing about them.
package handlers

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Greet greets whatever the payload says.
func Greet(payload string) (string, error) {
	return "Hello! " + payload, nil
}

// ReadFile reads the file named by payload and returns its lines joined
// with single spaces. A missing or unreadable file is a handler error.
func ReadFile(payload string) (string, error) {
	f, err := os.Open(payload)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", payload, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading %s: %w", payload, err)
	}

	return strings.Join(lines, " "), nil
}
