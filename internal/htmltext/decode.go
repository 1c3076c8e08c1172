// Package htmltext converts HTML-entity-escaped text into its literal
// display form. Open Trivia DB escapes question and answer texts, so every
// string coming off the wire passes through here before it reaches the
// quiz domain.
package htmltext

import "html"

// Decode resolves named and numeric HTML character references in markup
// and returns the literal text. It performs entity decoding only — no
// structural interpretation of markup. Plain text without entities is
// returned unchanged, and malformed entity sequences pass through as
// literal text, matching standard HTML decoding rules.
func Decode(markup string) string {
	return html.UnescapeString(markup)
}
