package export

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// writeSQLite replaces path with a database holding one row per word
func writeSQLite(path string, words []string) error {
	// Start from an empty file so reruns produce the same table
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing database: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE words (
			word TEXT PRIMARY KEY
		)`); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if err := insertWords(db, words); err != nil {
		return fmt.Errorf("failed to insert words: %w", err)
	}

	return nil
}

// insertWords inserts all words inside a single transaction
func insertWords(db *sql.DB, words []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO words (word) VALUES (?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, word := range words {
		if _, err := stmt.Exec(word); err != nil {
			tx.Rollback()
			return fmt.Errorf("word %q: %w", word, err)
		}
	}

	return tx.Commit()
}
