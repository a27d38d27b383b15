// Package changelog implements the extraction pipeline that turns the raw
// Cursor changelog page into structured version records.
//
// The pipeline has four stages, each a pure function over its input:
//   - Clean normalizes a raw description fragment into canonical prose.
//   - Extract runs several independent pattern-matching strategies over the
//     raw markdown and merges their candidates into a PatchMap.
//   - Consolidate groups entries sharing a description and merges runs of
//     consecutive patch versions into ranges.
//   - Order sorts the consolidated records newest first.
//
// Fetching the raw text and persisting the result live in internal/fetch and
// internal/store; this package never performs I/O.
package changelog
