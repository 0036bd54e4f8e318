// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathpattern/blob/master/LICENSE.txt.

package pathpattern

import (
	"regexp"
	"strings"
)

const defaultSeparator byte = '/'

// Parser compiles pattern text into [Pattern] values and decodes raw paths into
// [Path] values. A Parser is immutable after creation and safe for concurrent
// use. Two patterns compare equal only when built under the same separator and
// case sensitivity configuration.
type Parser struct {
	separator           byte
	caseSensitive       bool
	optionalTrailingSep bool
}

// NewParser returns a [Parser] configured with the given options. Without
// options the parser uses the '/' separator, matches case sensitively and
// handles trailing separators strictly.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{separator: defaultSeparator, caseSensitive: true}
	for _, opt := range opts {
		if err := opt.apply(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

var defaultParser = &Parser{separator: defaultSeparator, caseSensitive: true}

// Parse compiles the pattern with the default parser configuration.
func Parse(pattern string) (*Pattern, error) {
	return defaultParser.Parse(pattern)
}

// MustParse is like [Parse] but panics on malformed pattern text.
func MustParse(pattern string) *Pattern {
	return defaultParser.MustParse(pattern)
}

// ParsePath decodes a raw path with the default parser configuration.
func ParsePath(path string) *Path {
	return defaultParser.ParsePath(path)
}

// Separator returns the configured separator character.
func (p *Parser) Separator() byte {
	return p.separator
}

// CaseSensitive reports whether produced patterns match case sensitively.
func (p *Parser) CaseSensitive() bool {
	return p.caseSensitive
}

// ParsePath decodes a raw path into its element sequence using the parser's
// separator. Matrix parameters attached to a segment (e.g. /cars;color=red)
// are split off the segment's match value. No percent-decoding is performed.
func (p *Parser) ParsePath(path string) *Path {
	return parsePath(path, p.separator)
}

// Parse compiles pattern text into an immutable [Pattern].
func (p *Parser) Parse(pattern string) (*Pattern, error) {
	st := &parseState{parser: p, pattern: pattern}
	if err := st.run(); err != nil {
		return nil, err
	}
	return newPattern(pattern, p, st.head, st.varNames), nil
}

// MustParse is like [Parser.Parse] but panics on malformed pattern text.
func (p *Parser) MustParse(pattern string) *Pattern {
	pat, err := p.Parse(pattern)
	if err != nil {
		panic(err)
	}
	return pat
}

type parseState struct {
	parser   *Parser
	pattern  string
	pos      int
	head     pathElement
	tail     pathElement
	varNames []string
	// terminal is set once a catch-all element has been emitted.
	terminal bool
}

func (st *parseState) run() error {
	sep := st.parser.separator
	for st.pos < len(st.pattern) {
		if st.terminal {
			return newSyntaxError(st.pattern, st.pos, "no element allowed after a catch-all")
		}
		if st.pattern[st.pos] != sep {
			if err := st.parseSegment(); err != nil {
				return err
			}
			continue
		}
		rest := st.pattern[st.pos+1:]
		if rest == "**" {
			st.append(&wildcardTheRestElement{sep: sep})
			st.terminal = true
			st.pos = len(st.pattern)
			continue
		}
		if strings.HasPrefix(rest, "{*") {
			if err := st.parseCaptureTheRest(); err != nil {
				return err
			}
			continue
		}
		st.append(&separatorElement{sep: sep})
		st.pos++
	}
	return nil
}

func (st *parseState) append(e pathElement) {
	if st.head == nil {
		st.head = e
	} else {
		st.tail.link(e)
	}
	st.tail = e
}

func (st *parseState) parseSegment() error {
	sep := st.parser.separator
	lastWasCapture := false
	litStart := -1
	flushLiteral := func(end int) {
		if litStart >= 0 {
			st.append(&literalElement{
				value:         st.pattern[litStart:end],
				caseSensitive: st.parser.caseSensitive,
			})
			litStart = -1
		}
	}
	for st.pos < len(st.pattern) && st.pattern[st.pos] != sep {
		switch st.pattern[st.pos] {
		case '?':
			flushLiteral(st.pos)
			st.append(&singleCharElement{})
			lastWasCapture = false
			st.pos++
		case '*':
			if st.pos+1 < len(st.pattern) && st.pattern[st.pos+1] == '*' {
				return newSyntaxError(st.pattern, st.pos,
					"'**' is only allowed at the end of the pattern, after a separator")
			}
			flushLiteral(st.pos)
			st.append(&wildcardElement{})
			lastWasCapture = false
			st.pos++
		case '{':
			flushLiteral(st.pos)
			if lastWasCapture {
				return newSyntaxError(st.pattern, st.pos, "adjacent captures are not allowed")
			}
			if err := st.parseCapture(); err != nil {
				return err
			}
			lastWasCapture = true
		case '}':
			return newSyntaxError(st.pattern, st.pos, "missing '{' before '}'")
		default:
			if litStart < 0 {
				litStart = st.pos
			}
			lastWasCapture = false
			st.pos++
		}
	}
	flushLiteral(st.pos)
	return nil
}

// parseCapture consumes a {name} or {name:constraint} construct starting at the
// opening brace. Braces nest inside the constraint so that regexp quantifiers
// like {2,4} survive.
func (st *parseState) parseCapture() error {
	open := st.pos
	if open+1 < len(st.pattern) && st.pattern[open+1] == '*' {
		return newSyntaxError(st.pattern, open,
			"'{*name}' is only allowed at the end of the pattern, after a separator")
	}
	end := -1
	depth := 0
	for i := open; i < len(st.pattern); i++ {
		switch st.pattern[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end = i
			}
		}
		if end != -1 {
			break
		}
	}
	if end == -1 {
		return newSyntaxError(st.pattern, open, "missing closing '}'")
	}
	body := st.pattern[open+1 : end]
	name, expr, constrained := strings.Cut(body, ":")
	if err := st.registerVarName(name, open+1); err != nil {
		return err
	}
	elem := &captureVariableElement{name: name, raw: st.pattern[open : end+1]}
	if constrained {
		if !st.parser.caseSensitive {
			expr = "(?i)" + expr
		}
		constraint, err := regexp.Compile("^(?:" + expr + ")$")
		if err != nil {
			return newSyntaxError(st.pattern, open, "invalid capture constraint: "+err.Error())
		}
		elem.constraint = constraint
	}
	st.append(elem)
	st.pos = end + 1
	return nil
}

// parseCaptureTheRest consumes a trailing <sep>{*name} construct starting at
// the separator.
func (st *parseState) parseCaptureTheRest() error {
	open := st.pos + 1
	if st.pattern[len(st.pattern)-1] != '}' || strings.IndexByte(st.pattern[open:], '}') != len(st.pattern)-open-1 {
		return newSyntaxError(st.pattern, open,
			"'{*name}' is only allowed at the end of the pattern, after a separator")
	}
	name := st.pattern[open+2 : len(st.pattern)-1]
	if err := st.registerVarName(name, open+2); err != nil {
		return err
	}
	st.append(&captureTheRestElement{sep: st.parser.separator, name: name})
	st.terminal = true
	st.pos = len(st.pattern)
	return nil
}

func (st *parseState) registerVarName(name string, pos int) error {
	if !validVarName(name) {
		return newSyntaxError(st.pattern, pos, "invalid capture variable name")
	}
	for _, existing := range st.varNames {
		if existing == name {
			return newSyntaxError(st.pattern, pos, "duplicate capture variable name")
		}
	}
	st.varNames = append(st.varNames, name)
	return nil
}

func validVarName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
