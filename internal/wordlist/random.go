package wordlist

import (
	"fmt"
	"math/rand"
)

// Random picks count unique words using a Fisher-Yates shuffle over a copy of
// the sorted entries. The collection itself is not modified.
func (c *Collection) Random(count int, rng *rand.Rand) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("word count cannot be negative: %d", count)
	}
	if count > len(c.sorted) {
		return nil, fmt.Errorf("cannot get %d unique words from a list of %d", count, len(c.sorted))
	}

	shuffled := c.Words()
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled[:count], nil
}
