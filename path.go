// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathpattern/blob/master/LICENSE.txt.

package pathpattern

import (
	"iter"
	"strings"
)

// pathItem is one element of a decoded path: either a single separator or a
// segment. For a segment, value holds the raw text including any matrix
// parameter suffix while match holds the text the pattern elements compare
// against, with the matrix parameters stripped.
type pathItem struct {
	value  string
	match  string
	params Params
	sep    bool
}

// Path is the decoded form of a raw path string: an ordered sequence of
// separator and segment elements. Percent-encoded sequences are kept verbatim.
// A Path is immutable and safe for concurrent use.
type Path struct {
	value string
	sep   byte
	items []pathItem
}

var emptyPath = &Path{sep: defaultSeparator}

// String returns the raw path this Path was parsed from.
func (p *Path) String() string {
	return p.value
}

// Empty reports whether the path has no element at all.
func (p *Path) Empty() bool {
	return len(p.items) == 0
}

// SegmentsLen returns the number of segment elements, separators excluded.
func (p *Path) SegmentsLen() int {
	n := 0
	for i := range p.items {
		if !p.items[i].sep {
			n++
		}
	}
	return n
}

// Segments returns an iterator over the match value of each segment, in order.
// Matrix parameters are not part of the yielded values.
func (p *Path) Segments() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := range p.items {
			if p.items[i].sep {
				continue
			}
			if !yield(p.items[i].match) {
				return
			}
		}
	}
}

// subPath returns the path made of the elements from index from to the end.
func (p *Path) subPath(from int) *Path {
	if from <= 0 {
		return p
	}
	if from >= len(p.items) {
		return &Path{sep: p.sep}
	}
	var sb strings.Builder
	for i := from; i < len(p.items); i++ {
		sb.WriteString(p.items[i].value)
	}
	return &Path{value: sb.String(), sep: p.sep, items: p.items[from:]}
}

func parsePath(raw string, sep byte) *Path {
	pth := &Path{value: raw, sep: sep}
	for i := 0; i < len(raw); {
		if raw[i] == sep {
			pth.items = append(pth.items, pathItem{value: string(sep), sep: true})
			i++
			continue
		}
		j := i
		for j < len(raw) && raw[j] != sep {
			j++
		}
		pth.items = append(pth.items, newSegment(raw[i:j]))
		i = j
	}
	return pth
}

func newSegment(value string) pathItem {
	semi := strings.IndexByte(value, ';')
	if semi < 0 {
		return pathItem{value: value, match: value}
	}
	return pathItem{
		value:  value,
		match:  value[:semi],
		params: parseMatrixParams(value[semi+1:]),
	}
}

// parseMatrixParams decodes a ";k=v;k2=a,b" style suffix. A parameter without
// '=' binds an empty value, empty keys are skipped.
func parseMatrixParams(s string) Params {
	var params Params
	for _, part := range strings.Split(s, ";") {
		if part == "" {
			continue
		}
		key, val, ok := strings.Cut(part, "=")
		if key == "" {
			continue
		}
		if !ok {
			params = append(params, Param{Key: key})
			continue
		}
		for _, v := range strings.Split(val, ",") {
			params = append(params, Param{Key: key, Value: v})
		}
	}
	return params
}
