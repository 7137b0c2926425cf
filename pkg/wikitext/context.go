package wikitext

import "regexp"

// frame is one entry in the parser's backtracking stack: a cursor
// snapshot taken when the frame was pushed, and the terminator regex
// in effect for content parsed under this frame.
type frame struct {
	snap    snapshot
	pattern string
	re      *regexp.Regexp
}

// parseStart pushes a new frame. When inherit is true, pattern is
// alternated with the enclosing frame's terminator (an empty pattern
// with inherit=true reproduces the enclosing terminator unchanged,
// i.e. the zero-argument ParseStart described by the grammar). When
// inherit is false, pattern alone becomes the frame's terminator.
func (p *Parser) parseStart(pattern string, inherit bool) {
	combined := pattern
	if inherit {
		combined = combineTerminators(pattern, p.enclosingPattern())
	}
	f := frame{snap: p.sc.snapshot(), pattern: combined}
	if combined != "" {
		f.re = compileTerminator(combined)
	}
	p.frames = append(p.frames, f)
}

func (p *Parser) enclosingPattern() string {
	if len(p.frames) == 0 {
		return ""
	}
	return p.frames[len(p.frames)-1].pattern
}

func (p *Parser) top() *frame {
	return &p.frames[len(p.frames)-1]
}

// accept pops the current frame, committing its cursor state (which
// already reflects every token consumed while the frame was active).
func (p *Parser) accept() {
	p.frames = p.frames[:len(p.frames)-1]
}

// fallback pops the current frame and restores the scanner to the
// snapshot taken when it was pushed, discarding any tokens consumed
// since.
func (p *Parser) fallback() {
	f := p.frames[len(p.frames)-1]
	p.frames = p.frames[:len(p.frames)-1]
	p.sc.restore(f.snap)
}

// consumeToken anchors re at the cursor and advances past it on a match.
func (p *Parser) consumeToken(re *regexp.Regexp) (string, bool) {
	return p.sc.consume(re)
}

// lookAheadToken anchors re at the cursor without advancing it.
func (p *Parser) lookAheadToken(re *regexp.Regexp) (string, bool) {
	return p.sc.lookAhead(re)
}

// needsTerminate reports whether the active terminator (or override,
// when non-nil) matches at the cursor, or whether the cursor is at
// end of input. With no frame pushed (the outermost call, before
// parseWikitext's first parseLine) only end of input terminates.
func (p *Parser) needsTerminate(override *regexp.Regexp) bool {
	if p.sc.atEOF() {
		return true
	}
	re := override
	if re == nil && len(p.frames) > 0 {
		re = p.top().re
	}
	if re == nil {
		return false
	}
	_, ok := p.sc.lookAhead(re)
	return ok
}

// findTerminator returns the earliest absolute offset >= position +
// minOffset at which the active terminator matches, or the length of
// the source when no terminator matches before end of input.
func (p *Parser) findTerminator(minOffset int) int {
	var re *regexp.Regexp
	if len(p.frames) > 0 {
		re = p.top().re
	}
	if re == nil {
		return len(p.sc.src)
	}
	idx := p.sc.searchFrom(re, p.sc.pos+minOffset)
	if idx == -1 {
		return len(p.sc.src)
	}
	return idx
}
