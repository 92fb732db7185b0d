// Package driver runs the formatting pipeline: parse, build the document,
// relax brackets, render. It formats single strings, single files and whole
// directory trees, the latter in parallel with an on-disk result cache.
package driver
