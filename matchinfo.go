// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathpattern/blob/master/LICENSE.txt.

package pathpattern

import "iter"

// MatchInfo is an immutable snapshot of the variables and per-variable matrix
// parameters extracted by a successful [Pattern.MatchAndExtract].
type MatchInfo struct {
	vars   map[string]string
	params map[string]Params
}

// emptyMatchInfo is shared by all matches that bind no variable.
var emptyMatchInfo = &MatchInfo{}

// Var returns the value bound to name, or the empty string.
func (m *MatchInfo) Var(name string) string {
	return m.vars[name]
}

// HasVar checks whether a value is bound to name.
func (m *MatchInfo) HasVar(name string) bool {
	_, ok := m.vars[name]
	return ok
}

// VarsLen returns the number of bound variables.
func (m *MatchInfo) VarsLen() int {
	return len(m.vars)
}

// Vars returns an iterator over bound name/value pairs. Iteration order is not
// specified.
func (m *MatchInfo) Vars() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for name, value := range m.vars {
			if !yield(name, value) {
				return
			}
		}
	}
}

// Params returns the matrix parameters of the segment bound to name, in
// insertion order, or nil when the segment carried none.
func (m *MatchInfo) Params(name string) Params {
	return m.params[name]
}

// RemainingMatchInfo pairs the path suffix left over by [Pattern.MatchStartOfPath]
// with the variables bound in the matched prefix.
type RemainingMatchInfo struct {
	pathRemaining *Path
	info          *MatchInfo
}

// PathRemaining returns the part of the path that was not matched.
func (r *RemainingMatchInfo) PathRemaining() *Path {
	return r.pathRemaining
}

// Info returns the variables bound in the part of the path that was matched.
func (r *RemainingMatchInfo) Info() *MatchInfo {
	return r.info
}
