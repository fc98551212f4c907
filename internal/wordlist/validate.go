package wordlist

import (
	"fmt"
	"strings"
)

// ValidationResult describes the outcome of checking a guess
type ValidationResult struct {
	Valid bool
	Word  string // normalized word, set when Valid
	Error string // user-facing reason, set when not Valid
}

// Validate checks user input against the collection using the game rules.
// Input is trimmed and lowercased before the checks run.
func (c *Collection) Validate(input string) ValidationResult {
	normalized := strings.ToLower(strings.TrimSpace(input))

	if normalized == "" {
		return ValidationResult{Error: "Please enter a word"}
	}

	if len([]rune(normalized)) != WordLength {
		return ValidationResult{Error: fmt.Sprintf("Word must be %d letters", WordLength)}
	}

	if _, ok := Normalize(normalized); !ok {
		return ValidationResult{Error: "Only letters allowed"}
	}

	if !c.Contains(normalized) {
		return ValidationResult{Error: "Not in word list"}
	}

	return ValidationResult{Valid: true, Word: normalized}
}
