// Package archive keeps previous exports around by moving them aside before
// a new run overwrites them.
package archive
