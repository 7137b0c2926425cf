// Package wikitext implements a recursive-descent parser for MediaWiki
// wikitext markup. It converts a source string into an abstract syntax
// tree and can render that tree back to text; for well-formed input the
// round trip reproduces the original bytes exactly.
//
// The grammar is context-sensitive (a line is a heading, a list item, or
// a paragraph depending on what precedes and follows it) and several
// inline constructs are ambiguous by design (bracketed vs. bare URLs,
// runs of apostrophes toggling bold/italics). Parse never fails: input
// that does not match any construct falls through to plain text.
package wikitext
