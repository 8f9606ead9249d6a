package assets

import "errors"

// Sentinel errors for grammar resolution.
var (
	ErrInvalidBasePath    = errors.New("assets: invalid base path")
	ErrGrammarNotFound    = errors.New("assets: grammar not found")
	ErrInvalidGrammarName = errors.New("assets: invalid grammar name")
)
