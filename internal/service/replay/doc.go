// Package replay applies a YAML scenario to a fresh registry offline.
//
// A scenario lists passengers, bags, checkpoint movements, status changes and
// claims. Replay registers everything in order, processes claims and prints a
// summary; the registry report can be saved for later inspection.
package replay
