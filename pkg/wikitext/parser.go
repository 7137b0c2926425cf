package wikitext

import "strings"

// DefaultParserTagNames is the default set of tag names whose content
// is stored opaque rather than re-parsed as wikitext.
var DefaultParserTagNames = []string{"nowiki", "pre", "math", "source", "syntaxhighlight", "ref"}

type options struct {
	parserTagNames     []string
	caseFoldParserTags bool
}

func defaultOptions() options {
	names := make([]string, len(DefaultParserTagNames))
	copy(names, DefaultParserTagNames)
	return options{parserTagNames: names, caseFoldParserTags: true}
}

// Option configures a Parser. See WithParserTagNames and
// WithCaseFoldParserTags.
type Option func(*options)

// WithParserTagNames overrides the set of tag names whose content is
// treated as opaque text instead of being re-parsed as wikitext.
func WithParserTagNames(names ...string) Option {
	return func(o *options) {
		o.parserTagNames = append([]string(nil), names...)
	}
}

// WithCaseFoldParserTags controls whether parser-tag name comparison
// ignores case (default true, matching MediaWiki's tag name handling).
func WithCaseFoldParserTags(v bool) Option {
	return func(o *options) {
		o.caseFoldParserTags = v
	}
}

// Parser holds the scanner, backtracking frame stack, and resolved
// options for a single parse. It is not safe for concurrent use; a
// fresh Parser is created per call to Parse.
type Parser struct {
	sc           *scanner
	frames       []frame
	opts         options
	parserTagSet map[string]struct{}
}

func newParser(src string, opts options) *Parser {
	p := &Parser{sc: newScanner(src), opts: opts}
	p.parserTagSet = make(map[string]struct{}, len(opts.parserTagNames))
	for _, name := range opts.parserTagNames {
		p.parserTagSet[p.normalizeTagName(name)] = struct{}{}
	}
	return p
}

func (p *Parser) normalizeTagName(name string) string {
	if p.opts.caseFoldParserTags {
		return strings.ToLower(name)
	}
	return name
}

func (p *Parser) isParserTagName(name string) bool {
	_, ok := p.parserTagSet[p.normalizeTagName(name)]
	return ok
}

// Parse parses a wikitext source string into a document. Parsing never
// fails: input that matches no construct is represented as plain text.
func Parse(input string, opts ...Option) (*Wikitext, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := newParser(input, o)
	return p.parseWikitext(), nil
}

// parseWikitext is the top-level block loop: it repeatedly parses a
// line and the separator that follows it until the active terminator
// is reached.
func (p *Parser) parseWikitext() *Wikitext {
	doc := &Wikitext{}
	var last LineNode
	for {
		if p.needsTerminate(nil) {
			return doc
		}
		if line, ok := p.parseLine(last); ok {
			doc.Lines = append(doc.Lines, line)
			last = line
		}
		if last == nil {
			// No line has been produced yet and the terminator has not
			// fired; nothing can make progress (should not happen for
			// well-formed grammars, but avoids an infinite loop on an
			// unexpected input shape).
			return doc
		}
		extra, status := p.parseLineEnd(last)
		switch status {
		case lineEndStop:
			return doc
		case lineEndExtra:
			doc.Lines = append(doc.Lines, extra)
			last = extra
		case lineEndContinue:
			// no new line; loop back around
		}
	}
}
