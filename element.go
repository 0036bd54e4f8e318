// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathpattern/blob/master/LICENSE.txt.

package pathpattern

import (
	"regexp"
	"unicode/utf8"

	"github.com/tigerwill90/pathpattern/internal/stringsutil"
)

const (
	captureWeight  = 1
	wildcardWeight = 100
)

// position locates a cursor in the candidate path: the current element index and
// a byte offset within that element's match value. A fully consumed segment is
// always normalized to the start of the following element, so off is nonzero only
// in the middle of a segment.
type position struct {
	elem int
	off  int
}

// pathElement is one node of a compiled pattern chain. Implementations are
// immutable once the chain is built and singly linked through chainLink.
type pathElement interface {
	// matches attempts to match the candidate path from pos, recursing into the
	// rest of the chain. The context accumulators are mutated on success paths
	// only after the entire remainder has matched, so failed speculative
	// branches leave no bindings behind.
	matches(pos position, mc *matchingContext) bool

	// text returns the exact pattern text this element was parsed from.
	text() string

	score() int
	normalizedLength() int
	captureCount() int
	wildcardCount() int

	link(next pathElement)
	nextElement() pathElement
}

// chainLink holds the next relation and the default, zero valued contributions.
type chainLink struct {
	next pathElement
}

func (l *chainLink) link(next pathElement)    { l.next = next }
func (l *chainLink) nextElement() pathElement { return l.next }
func (l *chainLink) score() int               { return 0 }
func (l *chainLink) captureCount() int        { return 0 }
func (l *chainLink) wildcardCount() int       { return 0 }

// matchNext hands over to the next element, or settles the match when the chain
// is exhausted.
func (l *chainLink) matchNext(pos position, mc *matchingContext) bool {
	if l.next == nil {
		return mc.matchedToEnd(pos)
	}
	return l.next.matches(pos, mc)
}

// separatorElement matches exactly one separator element.
type separatorElement struct {
	chainLink
	sep byte
}

func (e *separatorElement) matches(pos position, mc *matchingContext) bool {
	if pos.elem < mc.pathLength && mc.isSeparator(pos.elem) {
		return e.matchNext(position{elem: pos.elem + 1}, mc)
	}
	return false
}

func (e *separatorElement) text() string          { return string(e.sep) }
func (e *separatorElement) normalizedLength() int { return 1 }

// literalElement matches a run of literal characters within a single segment.
// It may cover only part of the segment when combined with wildcards or captures,
// as in *.html.
type literalElement struct {
	chainLink
	value         string
	caseSensitive bool
}

func (e *literalElement) matches(pos position, mc *matchingContext) bool {
	if !mc.inSegment(pos) {
		return false
	}
	seg := mc.segmentValue(pos.elem)
	end := pos.off + len(e.value)
	if end > len(seg) {
		return false
	}
	chunk := seg[pos.off:end]
	if e.caseSensitive {
		if chunk != e.value {
			return false
		}
	} else if !stringsutil.EqualStringsASCIIIgnoreCase(chunk, e.value) {
		return false
	}
	return e.matchNext(mc.advance(pos, len(e.value)), mc)
}

func (e *literalElement) text() string          { return e.value }
func (e *literalElement) normalizedLength() int { return len(e.value) }

// singleCharElement matches exactly one arbitrary character within a segment.
type singleCharElement struct {
	chainLink
}

func (e *singleCharElement) matches(pos position, mc *matchingContext) bool {
	if !mc.inSegment(pos) {
		return false
	}
	seg := mc.segmentValue(pos.elem)
	_, size := utf8.DecodeRuneInString(seg[pos.off:])
	return e.matchNext(mc.advance(pos, size), mc)
}

func (e *singleCharElement) text() string          { return "?" }
func (e *singleCharElement) normalizedLength() int { return 1 }
func (e *singleCharElement) wildcardCount() int    { return 1 }
func (e *singleCharElement) score() int            { return wildcardWeight }

// wildcardElement matches zero or more characters within the current segment
// only. It is greedy: the longest candidate split is tried first, then shrunk
// one character at a time until the rest of the chain matches.
type wildcardElement struct {
	chainLink
}

func (e *wildcardElement) matches(pos position, mc *matchingContext) bool {
	if !mc.inSegment(pos) {
		return false
	}
	seg := mc.segmentValue(pos.elem)
	for end := len(seg); end >= pos.off; end-- {
		next := position{elem: pos.elem, off: end}
		if end == len(seg) {
			next = position{elem: pos.elem + 1}
		}
		if e.matchNext(next, mc) {
			return true
		}
	}
	return false
}

func (e *wildcardElement) text() string          { return "*" }
func (e *wildcardElement) normalizedLength() int { return 1 }
func (e *wildcardElement) wildcardCount() int    { return 1 }
func (e *wildcardElement) score() int            { return wildcardWeight }

// wildcardTheRestElement matches all remaining segments and separators without
// capturing. It owns its leading separator and is always the chain terminus, so
// it never backtracks.
type wildcardTheRestElement struct {
	chainLink
	sep byte
}

func (e *wildcardTheRestElement) matches(pos position, mc *matchingContext) bool {
	if pos.off != 0 {
		// The previous segment was not fully consumed.
		return false
	}
	if pos.elem < mc.pathLength && !mc.isSeparator(pos.elem) {
		// Any remaining data must start with the separator this element owns.
		return false
	}
	if mc.determineRemaining {
		mc.remainingPathIndex = mc.pathLength
	}
	return true
}

func (e *wildcardTheRestElement) text() string          { return string(e.sep) + "**" }
func (e *wildcardTheRestElement) normalizedLength() int { return 1 }
func (e *wildcardTheRestElement) wildcardCount() int    { return 1 }
func (e *wildcardTheRestElement) score() int            { return wildcardWeight }

// captureTheRestElement matches all remaining path, separators included, and
// binds it to the variable. Always the chain terminus.
type captureTheRestElement struct {
	chainLink
	sep  byte
	name string
}

func (e *captureTheRestElement) matches(pos position, mc *matchingContext) bool {
	if pos.off != 0 {
		return false
	}
	if pos.elem < mc.pathLength && !mc.isSeparator(pos.elem) {
		// Any remaining data must start with the separator this element owns.
		return false
	}
	if mc.determineRemaining {
		mc.remainingPathIndex = mc.pathLength
	}
	if mc.extracting {
		mc.set(e.name, mc.pathFrom(pos.elem), mc.paramsFrom(pos.elem))
	}
	return true
}

func (e *captureTheRestElement) text() string          { return string(e.sep) + "{*" + e.name + "}" }
func (e *captureTheRestElement) normalizedLength() int { return 1 }
func (e *captureTheRestElement) captureCount() int     { return 1 }
func (e *captureTheRestElement) score() int            { return captureWeight }

// captureVariableElement matches one full segment, or a constrained part of it,
// and binds the matched value to the variable name. An unconstrained capture
// consumes the remaining segment text and requires it nonempty. A constrained
// capture backtracks like a wildcard, longest candidate first, accepting only
// candidates matched by the anchored constraint expression.
type captureVariableElement struct {
	chainLink
	name       string
	raw        string
	constraint *regexp.Regexp
}

func (e *captureVariableElement) matches(pos position, mc *matchingContext) bool {
	if !mc.inSegment(pos) {
		return false
	}
	seg := mc.segmentValue(pos.elem)
	for end := len(seg); end >= pos.off; end-- {
		value := seg[pos.off:end]
		if e.constraint == nil {
			if value == "" {
				// A plain capture never binds the empty string.
				return false
			}
		} else if !e.constraint.MatchString(value) {
			continue
		}
		next := position{elem: pos.elem, off: end}
		if end == len(seg) {
			next = position{elem: pos.elem + 1}
		}
		if e.matchNext(next, mc) {
			if mc.extracting {
				mc.set(e.name, value, mc.segmentParams(pos.elem))
			}
			return true
		}
	}
	return false
}

func (e *captureVariableElement) text() string          { return e.raw }
func (e *captureVariableElement) normalizedLength() int { return 1 }
func (e *captureVariableElement) captureCount() int     { return 1 }
func (e *captureVariableElement) score() int            { return captureWeight }
