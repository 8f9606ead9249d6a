// Package pipeline implements the markdown-to-HTML conversion stages:
// preprocessing, goldmark conversion, and table-of-contents substitution.
//
// Stages are small interfaces so the orchestrating Renderer can be tested
// with fakes. Each stage accepts a context for cancellation and treats its
// input as immutable.
package pipeline
