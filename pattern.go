// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathpattern/blob/master/LICENSE.txt.

// Package pathpattern matches URI-style hierarchical paths against a small
// pattern language and extracts named variables from the match.
//
// Patterns are matched using the following rules:
//   - ? matches one character
//   - * matches zero or more characters within a path segment
//   - ** matches zero or more path segments until the end of the path
//   - {name} matches a path segment and captures it as a variable named "name"
//   - {name:[a-z]+} matches the regexp [a-z]+ as a path variable named "name"
//   - {*name} matches zero or more path segments until the end of the path and
//     captures the rest as a variable named "name"
//
// For example /pages/t?st.html matches /pages/test.html and /pages/tast.html
// but not /pages/toast.html, while /resources/{*path} matches everything under
// /resources and captures the relative part in "path".
package pathpattern

import (
	"iter"
	"strings"
)

// Pattern is the compiled, immutable representation of a path pattern: a chain
// of typed elements walked by a backtracking matcher, plus state precomputed at
// construction for fast comparison of patterns. A Pattern is safe for concurrent
// use without synchronization.
type Pattern struct {
	patternString string
	parser        *Parser
	head          pathElement

	separator           byte
	caseSensitive       bool
	optionalTrailingSep bool

	varNames []string

	capturedVariableCount int
	normalizedLength      int
	score                 int

	// endsWithSeparatorWildcard is set when the final two elements are a
	// separator followed by a segment wildcard, e.g. /hotels/*.
	endsWithSeparatorWildcard bool
	// catchAll is set when the chain terminates in ** or {*name}.
	catchAll bool
}

func newPattern(text string, parser *Parser, head pathElement, varNames []string) *Pattern {
	p := &Pattern{
		patternString:       text,
		parser:              parser,
		head:                head,
		separator:           parser.separator,
		caseSensitive:       parser.caseSensitive,
		optionalTrailingSep: parser.optionalTrailingSep,
		varNames:            varNames,
	}
	for elem := head; elem != nil; elem = elem.nextElement() {
		p.capturedVariableCount += elem.captureCount()
		p.normalizedLength += elem.normalizedLength()
		p.score += elem.score()
		switch elem.(type) {
		case *wildcardTheRestElement, *captureTheRestElement:
			p.catchAll = true
		case *separatorElement:
			if w, ok := elem.nextElement().(*wildcardElement); ok && w.nextElement() == nil {
				p.endsWithSeparatorWildcard = true
			}
		}
	}
	return p
}

// String returns the original pattern text.
func (p *Pattern) String() string {
	return p.patternString
}

// Separator returns the separator character this pattern was parsed with.
func (p *Pattern) Separator() byte {
	return p.separator
}

// CaseSensitive reports whether literal text matches case sensitively.
func (p *Pattern) CaseSensitive() bool {
	return p.caseSensitive
}

// CatchAll reports whether the final element consumes all remaining path.
func (p *Pattern) CatchAll() bool {
	return p.catchAll
}

// VarsLen returns the number of capture variables declared by this pattern.
func (p *Pattern) VarsLen() int {
	return len(p.varNames)
}

// Vars returns an iterator over the capture variable names declared by this
// pattern, in declaration order.
func (p *Pattern) Vars() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range p.varNames {
			if !yield(name) {
				return
			}
		}
	}
}

// Equal reports whether both patterns were built from the same text under the
// same separator and case sensitivity configuration.
func (p *Pattern) Equal(other *Pattern) bool {
	if other == nil {
		return false
	}
	return p.patternString == other.patternString &&
		p.separator == other.separator &&
		p.caseSensitive == other.caseSensitive
}

// Matches reports whether the candidate path matches this pattern.
func (p *Pattern) Matches(path *Path) bool {
	if p.head == nil {
		return !hasLength(path)
	}
	if !hasLength(path) {
		switch p.head.(type) {
		case *wildcardTheRestElement, *captureTheRestElement:
			path = emptyPath
		default:
			return false
		}
	}
	mc := newMatchingContext(path, p, false)
	return p.head.matches(position{}, mc)
}

// MatchAndExtract matches the candidate path and returns the extracted
// variables and matrix parameters, or nil when the path does not match.
func (p *Pattern) MatchAndExtract(path *Path) *MatchInfo {
	if p.head == nil {
		if hasLength(path) {
			return nil
		}
		return emptyMatchInfo
	}
	if !hasLength(path) {
		switch p.head.(type) {
		case *wildcardTheRestElement, *captureTheRestElement:
			// Lets the capture bind the variable to the empty string.
			path = emptyPath
		default:
			return nil
		}
	}
	mc := newMatchingContext(path, p, true)
	if !p.head.matches(position{}, mc) {
		return nil
	}
	return mc.matchInfo()
}

// MatchStartOfPath matches the beginning of the candidate path and returns the
// remaining portion not covered by this pattern, or nil when not even a prefix
// matches. This is useful for nested registration, where a path is matched
// incrementally at each level. An empty pattern trivially matches a prefix of
// zero elements.
func (p *Pattern) MatchStartOfPath(path *Path) *RemainingMatchInfo {
	if p.head == nil {
		if path == nil {
			path = emptyPath
		}
		return &RemainingMatchInfo{pathRemaining: path, info: emptyMatchInfo}
	}
	if !hasLength(path) {
		return nil
	}
	mc := newMatchingContext(path, p, true)
	mc.determineRemaining = true
	if !p.head.matches(position{}, mc) {
		return nil
	}
	remaining := emptyPath
	if mc.remainingPathIndex != len(path.items) {
		remaining = path.subPath(mc.remainingPathIndex)
	}
	return &RemainingMatchInfo{pathRemaining: remaining, info: mc.matchInfo()}
}

// ExtractPathWithinPattern determines the pattern-mapped part for the given
// path: the slice of the path that fell under the first wildcarded portion of
// the pattern. For example:
//   - /docs/cvs/commit.html against /docs/cvs/commit.html returns ""
//   - /docs/* against /docs/cvs/commit returns "cvs/commit"
//   - /docs/cvs/*.html against /docs/cvs/commit.html returns "commit.html"
//   - /docs/** against /docs/cvs/commit returns "cvs/commit"
//
// Assumes that [Pattern.Matches] returns true for the same path, but does not
// enforce it.
func (p *Pattern) ExtractPathWithinPattern(path *Path) *Path {
	var value string
	if path != nil {
		value = path.value
	}
	return parsePath(p.extractPathWithin(value), p.separator)
}

func (p *Pattern) extractPathWithin(path string) string {
	// Find the first pattern based element, counting the separators to skip.
	elem := p.head
	separatorCount := 0
	matchTheRest := false
	for elem != nil {
		switch elem.(type) {
		case *separatorElement:
			separatorCount++
		case *wildcardTheRestElement, *captureTheRestElement:
			separatorCount++
			matchTheRest = true
		}
		if elem.wildcardCount() != 0 || elem.captureCount() != 0 {
			break
		}
		elem = elem.nextElement()
	}
	if elem == nil {
		// There is no pattern mapped section.
		return ""
	}

	sep := p.separator
	length := len(path)
	pos := 0
	for separatorCount > 0 && pos < length {
		if path[pos] == sep {
			separatorCount--
		}
		pos++
	}
	end := length
	// Trim trailing separators, unless the pattern consumes the rest of the path.
	if !matchTheRest {
		for end > 0 && path[end-1] == sep {
			end--
		}
	}

	// Collapse any run of consecutive separators into a single one. The builder
	// is only materialized when a run is found.
	var b *strings.Builder
	for c := pos; c < end; c++ {
		ch := path[c]
		if ch == sep && c+1 < end && path[c+1] == sep {
			if b == nil {
				b = new(strings.Builder)
				b.WriteString(path[pos:c])
			}
			for c+1 < end && path[c+1] == sep {
				c++
			}
		}
		if b != nil {
			b.WriteByte(ch)
		}
	}
	if b != nil {
		return b.String()
	}
	if pos >= end {
		return ""
	}
	return path[pos:end]
}

// Combine merges this pattern with another, producing the pattern a nested
// registration of other under p would match. The algebra operates on the
// pattern text and the result round-trips through the pattern's own parser.
// Combining two patterns carrying concrete but different file extensions fails
// with a [PatternCombineError].
func (p *Pattern) Combine(other *Pattern) (*Pattern, error) {
	// If one of them is empty the result is the other. If both are empty the
	// result is the empty pattern.
	if p.patternString == "" {
		if other.patternString == "" {
			return p.parser.Parse("")
		}
		return other, nil
	}
	if other.patternString == "" {
		return p, nil
	}

	// /* + /hotel => /hotel
	// /*.* + /*.html => /*.html
	// However:
	// /usr + /user => /usr/user
	// /{foo} + /bar => /{foo}/bar
	if p.patternString != other.patternString && p.capturedVariableCount == 0 &&
		p.Matches(p.parser.ParsePath(other.patternString)) {
		return other, nil
	}

	// /hotels/* + /booking => /hotels/booking
	// /hotels/* + booking => /hotels/booking
	if p.endsWithSeparatorWildcard {
		return p.parser.Parse(p.concat(p.patternString[:len(p.patternString)-2], other.patternString))
	}

	// /hotels + /booking => /hotels/booking
	// /hotels + booking => /hotels/booking
	starDot := strings.Index(p.patternString, "*.")
	if p.capturedVariableCount != 0 || starDot == -1 || p.separator == '.' {
		return p.parser.Parse(p.concat(p.patternString, other.patternString))
	}

	// /*.html + /hotel => /hotel.html
	// /*.html + /hotel.* => /hotel.html
	firstExtension := p.patternString[starDot+1:]
	p2 := other.patternString
	file2, secondExtension := p2, ""
	if dotPos := strings.IndexByte(p2, '.'); dotPos != -1 {
		file2, secondExtension = p2[:dotPos], p2[dotPos:]
	}
	firstExtensionWild := firstExtension == ".*" || firstExtension == ""
	secondExtensionWild := secondExtension == ".*" || secondExtension == ""
	if !firstExtensionWild && !secondExtensionWild {
		return nil, &PatternCombineError{First: p, Second: other}
	}
	if firstExtensionWild {
		return p.parser.Parse(file2 + secondExtension)
	}
	return p.parser.Parse(file2 + firstExtension)
}

// concat joins two paths, inserting a separator when neither side carries one
// at the junction and dropping one copy when both do.
func (p *Pattern) concat(path1, path2 string) string {
	path1EndsWithSeparator := path1 != "" && path1[len(path1)-1] == p.separator
	path2StartsWithSeparator := path2 != "" && path2[0] == p.separator
	if path1EndsWithSeparator && path2StartsWithSeparator {
		return path1 + path2[1:]
	}
	if path1EndsWithSeparator || path2StartsWithSeparator {
		return path1 + path2
	}
	return path1 + string(p.separator) + path2
}

// Compare orders patterns by specificity as [CompareSpecificity], breaking any
// remaining tie by lexicographic comparison of the pattern text. The resulting
// order is strict and total, suitable for sorted collections.
func (p *Pattern) Compare(other *Pattern) int {
	result := CompareSpecificity(p, other)
	if result == 0 && other != nil {
		return strings.Compare(p.patternString, other.patternString)
	}
	return result
}

// chainText rebuilds the pattern text from the element chain.
func (p *Pattern) chainText() string {
	var sb strings.Builder
	for elem := p.head; elem != nil; elem = elem.nextElement() {
		sb.WriteString(elem.text())
	}
	return sb.String()
}

func hasLength(path *Path) bool {
	return path != nil && len(path.items) > 0
}
