package source

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadWordFile reads candidate words from a file.
// Words are separated by any whitespace, several per line is fine.
// Lines starting with '#' (after leading spaces) are comments.
// Tokens are returned as written; filtering is left to the caller.
func ReadWordFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open word file: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.Fields(line)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word file: %w", err)
	}

	return words, nil
}
