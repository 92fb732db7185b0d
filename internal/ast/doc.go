// Package ast holds the syntax tree the parser builds and the formatter reads.
//
// Nodes live in per-kind arenas owned by a Builder and are referenced by
// 1-based IDs; the zero ID means "absent". Payload structs are plain data.
// Statement lists keep the comments and blank lines found between
// statements, which is all the layout information the formatter preserves.
package ast
