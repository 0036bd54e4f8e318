// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathpattern/blob/master/LICENSE.txt.

package pathpattern

import "strings"

// matchingContext carries the candidate path and the per-attempt accumulators.
// A fresh context is allocated for every match attempt and never shared, so
// matching requires no synchronization.
type matchingContext struct {
	path       *Path
	pathLength int

	// extracting enables variable accumulation. The traversal is identical
	// either way.
	extracting bool

	// determineRemaining switches the chain terminus check into prefix mode:
	// the pattern may settle before the path is exhausted, recording in
	// remainingPathIndex the element index just past the matched prefix.
	determineRemaining bool
	remainingPathIndex int

	optionalTrailingSep bool

	vars   map[string]string
	params map[string]Params
}

func newMatchingContext(path *Path, p *Pattern, extracting bool) *matchingContext {
	return &matchingContext{
		path:                path,
		pathLength:          len(path.items),
		extracting:          extracting,
		optionalTrailingSep: p.optionalTrailingSep,
	}
}

func (mc *matchingContext) isSeparator(i int) bool {
	return mc.path.items[i].sep
}

// inSegment reports whether pos points inside a segment element.
func (mc *matchingContext) inSegment(pos position) bool {
	return pos.elem < mc.pathLength && !mc.path.items[pos.elem].sep
}

func (mc *matchingContext) segmentValue(i int) string {
	return mc.path.items[i].match
}

func (mc *matchingContext) segmentParams(i int) Params {
	return mc.path.items[i].params
}

// advance moves pos forward by n bytes within the current segment, normalizing
// a fully consumed segment to the start of the next element.
func (mc *matchingContext) advance(pos position, n int) position {
	pos.off += n
	if pos.off >= len(mc.segmentValue(pos.elem)) {
		return position{elem: pos.elem + 1}
	}
	return pos
}

// matchedToEnd settles a match once the chain is exhausted at pos. The position
// must sit on an element boundary. In prefix mode any boundary settles the
// match; otherwise the path must be exhausted too, modulo a single tolerated
// trailing separator in lenient mode.
func (mc *matchingContext) matchedToEnd(pos position) bool {
	if pos.off != 0 {
		return false
	}
	if mc.determineRemaining {
		mc.remainingPathIndex = pos.elem
		return true
	}
	if pos.elem == mc.pathLength {
		return true
	}
	return mc.optionalTrailingSep && pos.elem == mc.pathLength-1 && mc.isSeparator(pos.elem)
}

func (mc *matchingContext) set(name, value string, params Params) {
	if mc.vars == nil {
		mc.vars = make(map[string]string)
	}
	mc.vars[name] = value
	if len(params) > 0 {
		if mc.params == nil {
			mc.params = make(map[string]Params)
		}
		mc.params[name] = params
	}
}

func (mc *matchingContext) matchInfo() *MatchInfo {
	if mc.vars == nil {
		return emptyMatchInfo
	}
	return &MatchInfo{vars: mc.vars, params: mc.params}
}

// pathFrom renders the path from element index from to the end, separators
// included and matrix parameters stripped. A remainder consisting of a single
// trailing separator renders as the empty string.
func (mc *matchingContext) pathFrom(from int) string {
	if from >= mc.pathLength || (from == mc.pathLength-1 && mc.isSeparator(from)) {
		return ""
	}
	var sb strings.Builder
	for i := from; i < mc.pathLength; i++ {
		item := &mc.path.items[i]
		if item.sep {
			sb.WriteByte(mc.path.sep)
		} else {
			sb.WriteString(item.match)
		}
	}
	return sb.String()
}

// paramsFrom collects the matrix parameters of all segments from element index
// from to the end, in path order.
func (mc *matchingContext) paramsFrom(from int) Params {
	var params Params
	for i := from; i < mc.pathLength; i++ {
		item := &mc.path.items[i]
		if !item.sep && len(item.params) > 0 {
			params = append(params, item.params...)
		}
	}
	return params
}
