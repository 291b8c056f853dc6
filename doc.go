// Package eht implements an elastic hash table: an in-memory map from
// variable-length byte-string keys to variable-length byte-string values.
//
// The table's address space is split into a sequence of geometrically
// shrinking levels, each with its own probe budget derived from that
// level's residual vacancy (after Farach-Colton, Krapivin and Kuszmaul,
// "Optimal Bounds for Open Addressing Without Reordering"). Inserts that
// exhaust a level's budget spill into the next, smaller level rather than
// degrading a single dense array's probe length.
//
// A *Table is not safe for concurrent use. All operations must be
// externally synchronized if shared across goroutines.
package eht
