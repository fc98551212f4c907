package wordlist

import (
	_ "embed"
	"sort"
	"strings"
)

// WordLength is the number of letters in every entry
const WordLength = 5

//go:embed words.txt
var builtinWords string

// Normalize lowercases s and reports whether the result is a valid entry:
// exactly WordLength letters, all in a-z.
func Normalize(s string) (string, bool) {
	word := strings.ToLower(s)
	if len(word) != WordLength {
		return "", false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return "", false
		}
	}
	return word, true
}

// Collection is an immutable set of normalized words
type Collection struct {
	entries map[string]struct{}
	sorted  []string
}

// NewCollection builds a collection from arbitrary-case strings, dropping
// anything Normalize rejects
func NewCollection(words ...string) *Collection {
	entries := make(map[string]struct{}, len(words))
	for _, w := range words {
		if word, ok := Normalize(w); ok {
			entries[word] = struct{}{}
		}
	}

	sorted := make([]string, 0, len(entries))
	for word := range entries {
		sorted = append(sorted, word)
	}
	sort.Strings(sorted)

	return &Collection{
		entries: entries,
		sorted:  sorted,
	}
}

// Default returns the collection built from the embedded word literal
func Default() *Collection {
	return NewCollection(BuiltinWords()...)
}

// BuiltinWords returns the raw tokens of the embedded literal, unfiltered
func BuiltinWords() []string {
	return strings.Fields(builtinWords)
}

// Len returns the number of unique entries
func (c *Collection) Len() int {
	return len(c.sorted)
}

// Contains reports whether word, lowercased, is in the collection
func (c *Collection) Contains(word string) bool {
	_, ok := c.entries[strings.ToLower(word)]
	return ok
}

// Words returns all entries in ascending order. The slice is a copy.
func (c *Collection) Words() []string {
	out := make([]string, len(c.sorted))
	copy(out, c.sorted)
	return out
}
