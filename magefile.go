//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "wordexport"

// Build compiles the wordexport binary into the repository root
func Build() error {
	return sh.RunV("go", "build", "-o", binary, "./cmd/wordexport")
}

// Test runs all package tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Export builds the binary and writes words.csv with the built-in list
func Export() error {
	mg.Deps(Build)
	return sh.RunV("./" + binary)
}

// Clean removes build and export artifacts
func Clean() error {
	for _, path := range []string{binary, "words.csv"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return os.RemoveAll("archive")
}
