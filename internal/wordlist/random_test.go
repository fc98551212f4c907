package wordlist

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollection_Random(t *testing.T) {
	c := NewCollection("hello", "world", "apple", "grape")

	got, err := c.Random(3, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Random() returned %d words, want 3", len(got))
	}

	seen := make(map[string]bool)
	for _, w := range got {
		if !c.Contains(w) {
			t.Errorf("Random() returned %q which is not in the collection", w)
		}
		if seen[w] {
			t.Errorf("Random() returned duplicate %q", w)
		}
		seen[w] = true
	}

	// Source collection order is untouched
	if diff := cmp.Diff([]string{"apple", "grape", "hello", "world"}, c.Words()); diff != "" {
		t.Errorf("collection changed (-want +got):\n%s", diff)
	}
}

func TestCollection_RandomDeterministic(t *testing.T) {
	c := Default()

	a, err := c.Random(10, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	b, err := c.Random(10, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed gave different picks (-first +second):\n%s", diff)
	}
}

func TestCollection_RandomErrors(t *testing.T) {
	c := NewCollection("hello", "world")
	rng := rand.New(rand.NewSource(1))

	if _, err := c.Random(3, rng); err == nil {
		t.Error("Expected error when asking for more words than available")
	}
	if _, err := c.Random(-1, rng); err == nil {
		t.Error("Expected error for negative count")
	}

	got, err := c.Random(0, rng)
	if err != nil {
		t.Errorf("Random(0) error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Random(0) = %v, want empty", got)
	}
}
