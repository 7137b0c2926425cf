package wikitext

import (
	"regexp"
	"sync"
)

// terminatorCache memoizes compiled terminator regexes by source
// pattern string. It is the only process-wide state the parser keeps:
// append-only, monotonically growing, safe for concurrent use by
// independent parses running in parallel.
var terminatorCache sync.Map // map[string]*regexp.Regexp

// compileTerminator returns the compiled regex for pattern, compiling
// and caching it on first use. It panics on an invalid pattern since
// every pattern used by this package is a compile-time constant;
// constants that fail to compile are a programming error, not a parse
// failure.
func compileTerminator(pattern string) *regexp.Regexp {
	if v, ok := terminatorCache.Load(pattern); ok {
		return v.(*regexp.Regexp)
	}
	re := regexp.MustCompile(pattern)
	actual, _ := terminatorCache.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp)
}

// combineTerminators builds a single regex that matches wherever any of
// the given non-empty patterns would match, used to alternate a new
// frame's terminator with the terminator(s) it inherits.
func combineTerminators(patterns ...string) string {
	nonEmpty := patterns[:0:0]
	for _, p := range patterns {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	switch len(nonEmpty) {
	case 0:
		return ""
	case 1:
		return nonEmpty[0]
	}
	out := "(?:" + nonEmpty[0] + ")"
	for _, p := range nonEmpty[1:] {
		out += "|(?:" + p + ")"
	}
	return out
}
