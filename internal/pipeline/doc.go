// Package pipeline contains the HTML transformation stages of the
// wiki-to-PDF pipeline: markdown rendering, media normalization for
// print, table pagination, and document composition.
//
// Each stage is a small interface so the exporter can be tested with
// stubs. Stages operate on strings and are pure: the same input always
// produces the same output, and no stage reads state from a later one.
package pipeline
