package wikitext

import (
	"regexp"
	"strings"
)

var (
	openWikiLinkRe     = regexp.MustCompile(`^\[\[`)
	closeWikiLinkRe    = regexp.MustCompile(`^\]\]`)
	pipeRe             = regexp.MustCompile(`^\|`)
	openBracketRe      = regexp.MustCompile(`^\[`)
	closeBracketRe     = regexp.MustCompile(`^\]`)
	singleSpaceOrTabRe = regexp.MustCompile(`^[ \t]`)

	urlRe = regexp.MustCompile(
		"^(?:(?:https?:|ftp:|irc:|gopher:)//|//|news:|mailto:)" +
			"(?:[^\\s\"\\[\\]\\x7f|{}<>]|<[^>]*>)+")
	trailingURLPunctRe = regexp.MustCompile(`[!"().,:;'\x{2018}\x{2022}-]+$`)
)

// parseInline tries the inline constructs in priority order: Tag,
// WikiLink, ExternalLink, FormatSwitch, PartialPlainText. The first to
// succeed wins.
func (p *Parser) parseInline() (InlineNode, bool) {
	if t, ok := p.parseTag(); ok {
		return t, true
	}
	if wl, ok := p.parseWikiLink(); ok {
		return wl, true
	}
	if el, ok := p.parseExternalLink(); ok {
		return el, true
	}
	if fs, ok := p.parseFormatSwitch(); ok {
		return fs, true
	}
	if s, ok := p.parsePartialPlainText(); ok {
		return &PlainText{Content: s}, true
	}
	return nil, false
}

// parseWikiLink parses `[[target|text]]`. Wikilinks cannot nest: the
// frame terminator includes `[[` itself, so an inner `[[` aborts the
// attempt (it is consumed as content by a lower-priority alternative
// instead).
func (p *Parser) parseWikiLink() (*WikiLink, bool) {
	p.parseStart("", true)
	if _, ok := p.consumeToken(openWikiLinkRe); !ok {
		p.fallback()
		return nil, false
	}

	p.parseStart(`\||\n|\[\[|\]\]`, true)
	target, ok := p.parseRun(modeExpandableText)
	if !ok {
		p.fallback()
		p.fallback()
		return nil, false
	}
	p.accept()

	wl := &WikiLink{Target: target}
	if _, ok := p.consumeToken(pipeRe); ok {
		p.parseStart(`\n|\[\[|\]\]`, true)
		text, _ := p.parseRun(modeRun)
		p.accept()
		wl.Text = &text
	}

	if _, ok := p.consumeToken(closeWikiLinkRe); !ok {
		p.fallback()
		return nil, false
	}
	p.accept()
	return wl, true
}

// parseExternalLink parses either a bracketed `[url text]` link or a
// bare URL.
func (p *Parser) parseExternalLink() (*ExternalLink, bool) {
	p.parseStart(`[\s\]\|]`, true)

	brackets := false
	if _, ok := p.consumeToken(openBracketRe); ok {
		brackets = true
	}
	el := &ExternalLink{Brackets: brackets}

	if !brackets {
		urlText, ok := p.parseUrlText()
		if !ok {
			p.fallback()
			return nil, false
		}
		el.Target = Run{Inlines: []InlineNode{&PlainText{Content: urlText}}}
		p.accept()
		return el, true
	}

	target, ok := p.parseRun(modeExpandableUrl)
	if !ok {
		p.fallback()
		return nil, false
	}
	el.Target = target

	if sep, ok := p.consumeToken(singleSpaceOrTabRe); ok {
		el.Sep = sep
		p.parseStart(`[\]\n]`, true)
		text, _ := p.parseRun(modeRun)
		p.accept()
		el.Text = &text
	}

	if _, ok := p.consumeToken(closeBracketRe); !ok {
		p.fallback()
		return nil, false
	}
	p.accept()
	return el, true
}

// parseFormatSwitch consumes a run of apostrophes that forms a
// bold/italics toggle. It only matches when the run starting at the
// current position is exactly 2, 3, or 5 apostrophes long; a run of any
// other length (including the classic 4-apostrophe case) is left
// unmatched here; suspectIndex locates the suffix of the run where a
// match does start, and parsePartialPlainText stops there so the next
// call to parseFormatSwitch picks it up.
//
// The source grammar expresses this as `('{5}|'''|'')(?!')`, but RE2
// (Go's regexp engine) has no negative lookahead. Working out what
// that lookahead actually rules out shows it is equivalent to "the run
// length is exactly 2, 3, or 5" — for any shorter consumption the
// character immediately after would still be part of the same run and
// so still an apostrophe, failing the lookahead — which a plain length
// switch expresses directly.
func (p *Parser) parseFormatSwitch() (*FormatSwitch, bool) {
	n := apostropheRunLength(p.sc.rest(), 0)
	switch n {
	case 5:
		p.sc.moveTo(p.sc.pos + 5)
		return &FormatSwitch{Bold: true, Italics: true}, true
	case 3:
		p.sc.moveTo(p.sc.pos + 3)
		return &FormatSwitch{Bold: true}, true
	case 2:
		p.sc.moveTo(p.sc.pos + 2)
		return &FormatSwitch{Italics: true}, true
	default:
		return nil, false
	}
}

// parsePartialPlainText consumes at least one character of plain text,
// stopping either at the active terminator or earlier, at the first
// position (strictly after the current one) that looks like it could
// start a structural construct.
func (p *Parser) parsePartialPlainText() (string, bool) {
	if p.sc.atEOF() {
		return "", false
	}
	start := p.sc.pos
	termPos := p.findTerminator(1)
	if termPos <= start {
		termPos = start + 1
	}
	if termPos > len(p.sc.src) {
		termPos = len(p.sc.src)
	}

	tail := p.sc.src[start:termPos]
	if idx, ok := suspectIndex(tail, 1); ok {
		end := start + idx
		text := p.sc.src[start:end]
		p.sc.moveTo(end)
		return text, true
	}

	text := p.sc.src[start:termPos]
	p.sc.moveTo(termPos)
	return text, true
}

// parseUrlText consumes a single URL token per the external-link URL
// grammar, anchored at the current position.
func (p *Parser) parseUrlText() (string, bool) {
	matched, ok := p.lookAheadToken(urlRe)
	if !ok {
		return "", false
	}
	trimmed := trailingURLPunctRe.ReplaceAllString(matched, "")
	if trimmed == "" {
		trimmed = matched
	}
	p.sc.moveTo(p.sc.pos + len(trimmed))
	return trimmed, true
}

// apostropheRunLength counts the run of consecutive `'` bytes in s
// starting at index i (which must itself be a `'`, or the result is 0).
func apostropheRunLength(s string, i int) int {
	n := 0
	for i+n < len(s) && s[i+n] == '\'' {
		n++
	}
	return n
}

// apostropheMatchOffset returns the offset, relative to the start of an
// apostrophe run of length n, at which `('{5}|'''|'')(?!')` begins
// matching. RE2 has no negative lookahead, but the lookahead only ever
// rules out stopping mid-run: at a given offset the alternation matches
// iff the remaining run length is exactly 5, 3, or 2, so the earliest
// (leftmost) match is at the offset that leaves the longest of those
// lengths remaining. A run shorter than 2 never matches anywhere.
func apostropheMatchOffset(n int) (int, bool) {
	switch {
	case n >= 5:
		return n - 5, true
	case n >= 3:
		return n - 3, true
	case n >= 2:
		return n - 2, true
	default:
		return 0, false
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

func isASCIISpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r', '\v':
		return true
	}
	return false
}

var urlSchemes = []string{"https:", "http:", "ftp:", "irc:", "gopher:"}

// suspectIndex finds the earliest position at or after skip in s where
// a structural construct plausibly begins, implementing the
// "suspectable end" pattern from the source grammar by hand rather
// than as one RE2 regex, since it embeds the same negative-lookahead
// apostrophe rule parseFormatSwitch does. An apostrophe run is examined
// once, from its first byte at or after skip (even when the run began
// before skip): the match lands at the leftmost offset that leaves
// exactly 5, 3, or 2 apostrophes of the run remaining.
func suspectIndex(s string, skip int) (int, bool) {
	for i := skip; i < len(s); i++ {
		switch s[i] {
		case '[':
			return i, true
		case '{':
			if i+1 < len(s) && s[i+1] == '{' {
				return i, true
			}
		case '<':
			if strings.HasPrefix(s[i:], "<!--") {
				return i, true
			}
			j := i + 1
			for j < len(s) && isASCIISpaceByte(s[j]) {
				j++
			}
			if j < len(s) && isWordByte(s[j]) {
				return i, true
			}
		case '\'':
			if i > skip && s[i-1] == '\'' {
				continue
			}
			if offset, ok := apostropheMatchOffset(apostropheRunLength(s, i)); ok {
				return i + offset, true
			}
		case '/':
			if strings.HasPrefix(s[i:], "//") {
				return i, true
			}
		}
		if isSchemeBoundary(s, i) {
			rest := s[i:]
			for _, scheme := range urlSchemes {
				if strings.HasPrefix(rest, scheme) && strings.HasPrefix(rest[len(scheme):], "//") {
					return i, true
				}
			}
			if strings.HasPrefix(rest, "news:") || strings.HasPrefix(rest, "mailto:") {
				return i, true
			}
		}
	}
	return -1, false
}

func isSchemeBoundary(s string, i int) bool {
	return i == 0 || !isWordByte(s[i-1])
}
