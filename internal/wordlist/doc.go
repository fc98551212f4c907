// Package wordlist holds the built-in English word collection and the rules
// that decide which strings are valid 5-letter entries. It also implements
// guess validation and random target selection on top of a collection.
package wordlist
