// Package assets resolves syntax-highlighting grammar definitions.
//
// Grammars are Chroma XML lexer definitions. The package embeds a default
// set and optionally overlays a user-supplied directory; custom definitions
// take precedence over embedded ones with the same name.
package assets
