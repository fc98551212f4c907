// Package processor runs one invocation of wordexport: it picks the word
// source, performs the export or lookup the flags ask for, and prints the
// report for the user.
package processor
