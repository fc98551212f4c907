// Package export writes normalized word lists to disk. CSV is the primary
// format (a "word" header followed by one word per row); JSON and SQLite
// writers serve the same sorted list to other consumers.
package export
