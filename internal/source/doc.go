// Package source loads candidate word lists from files on disk.
package source
