// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathpattern/blob/master/LICENSE.txt.

package pathpattern

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrPatternSyntax = errors.New("invalid pattern")
	ErrCombine       = errors.New("cannot combine patterns")
)

// PatternSyntaxError describes a malformed pattern. It carries the full pattern
// text and the byte offset of the offending construct.
type PatternSyntaxError struct {
	// Pattern is the pattern text that failed to parse.
	Pattern string
	// Pos is the byte offset in Pattern where the error was detected.
	Pos    int
	reason string
}

func (e *PatternSyntaxError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid pattern ")
	sb.WriteString(strconv.Quote(e.Pattern))
	sb.WriteString(" at offset ")
	sb.WriteString(strconv.Itoa(e.Pos))
	sb.WriteString(": ")
	sb.WriteString(e.reason)
	return sb.String()
}

// Unwrap returns the sentinel value [ErrPatternSyntax].
func (e *PatternSyntaxError) Unwrap() error {
	return ErrPatternSyntax
}

func newSyntaxError(pattern string, pos int, reason string) error {
	return &PatternSyntaxError{Pattern: pattern, Pos: pos, reason: reason}
}

// PatternCombineError is returned by [Pattern.Combine] when both patterns carry
// concrete but different file extensions, making the combination unresolvable.
type PatternCombineError struct {
	// First is the pattern on which Combine was called.
	First *Pattern
	// Second is the pattern that could not be merged into First.
	Second *Pattern
}

func (e *PatternCombineError) Error() string {
	var sb strings.Builder
	sb.WriteString("cannot combine patterns: ")
	sb.WriteString(e.First.String())
	sb.WriteString(" and ")
	sb.WriteString(e.Second.String())
	return sb.String()
}

// Unwrap returns the sentinel value [ErrCombine].
func (e *PatternCombineError) Unwrap() error {
	return ErrCombine
}
