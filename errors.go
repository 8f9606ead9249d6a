package mdsite

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown      = errors.New("markdown content cannot be empty")
	ErrHTMLConversion     = errors.New("HTML conversion failed")
	ErrNotInitialized     = errors.New("renderer not initialized: call Init first")
	ErrAlreadyInitialized = errors.New("renderer already initialized")

	// Highlighting errors.
	ErrThemeNotFound = errors.New("highlighting theme not found")
	ErrGrammarLoad   = errors.New("grammar definition failed to load")

	// TOC validation errors.
	ErrInvalidTOCDepth     = errors.New("invalid TOC depth")
	ErrInvalidTOCListStyle = errors.New("invalid TOC list style")

	// Grammar asset errors.
	ErrGrammarNotFound  = errors.New("grammar not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
