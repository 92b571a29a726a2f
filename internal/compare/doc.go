// Package compare runs one locust-compare operation against the result
// files of a single Locust run prefix.
//
// File locations are explicit: a Paths value derived from a directory and a
// prefix is passed to the Comparer, which never looks up names on its own.
package compare
