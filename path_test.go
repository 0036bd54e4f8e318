// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathpattern/blob/master/LICENSE.txt.

package pathpattern

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePathElements(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		path         string
		wantSegments []string
		wantLen      int
		wantEmpty    bool
	}{
		{
			name:      "empty",
			path:      "",
			wantEmpty: true,
		},
		{
			name:    "root",
			path:    "/",
			wantLen: 1,
		},
		{
			name:         "simple",
			path:         "/a/b/c",
			wantSegments: []string{"a", "b", "c"},
			wantLen:      6,
		},
		{
			name:         "relative",
			path:         "a/b",
			wantSegments: []string{"a", "b"},
			wantLen:      3,
		},
		{
			name:         "trailing separator",
			path:         "/a/",
			wantSegments: []string{"a"},
			wantLen:      3,
		},
		{
			name:         "consecutive separators",
			path:         "/a//b",
			wantSegments: []string{"a", "b"},
			wantLen:      5,
		},
		{
			name:         "matrix parameters stripped from segment values",
			path:         "/cars;color=red/owners",
			wantSegments: []string{"cars", "owners"},
			wantLen:      4,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := ParsePath(tc.path)
			assert.Equal(t, tc.path, p.String())
			assert.Equal(t, tc.wantEmpty, p.Empty())
			assert.Equal(t, tc.wantLen, len(p.items))
			assert.Equal(t, len(tc.wantSegments), p.SegmentsLen())
			assert.Equal(t, tc.wantSegments, slices.Collect(p.Segments()))
		})
	}
}

func TestParsePathMatrixParams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		segment    string
		wantMatch  string
		wantParams Params
	}{
		{
			name:      "no parameters",
			segment:   "cars",
			wantMatch: "cars",
		},
		{
			name:       "single parameter",
			segment:    "cars;color=red",
			wantMatch:  "cars",
			wantParams: Params{{Key: "color", Value: "red"}},
		},
		{
			name:       "comma separated values expand",
			segment:    "cars;color=red,blue",
			wantMatch:  "cars",
			wantParams: Params{{Key: "color", Value: "red"}, {Key: "color", Value: "blue"}},
		},
		{
			name:       "multiple parameters keep insertion order",
			segment:    "cars;color=red;year=2012",
			wantMatch:  "cars",
			wantParams: Params{{Key: "color", Value: "red"}, {Key: "year", Value: "2012"}},
		},
		{
			name:       "parameter without value",
			segment:    "cars;sold",
			wantMatch:  "cars",
			wantParams: Params{{Key: "sold"}},
		},
		{
			name:      "empty key skipped",
			segment:   "cars;=red",
			wantMatch: "cars",
		},
		{
			name:      "bare semicolon",
			segment:   "cars;",
			wantMatch: "cars",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := ParsePath("/" + tc.segment)
			require.Equal(t, 2, len(p.items))
			item := p.items[1]
			assert.Equal(t, tc.segment, item.value)
			assert.Equal(t, tc.wantMatch, item.match)
			assert.Equal(t, tc.wantParams, item.params)
		})
	}
}

func TestSubPath(t *testing.T) {
	t.Parallel()

	p := ParsePath("/a/b/c")
	assert.Same(t, p, p.subPath(0))
	assert.Equal(t, "/b/c", p.subPath(2).String())
	assert.Equal(t, "b/c", p.subPath(3).String())
	assert.Equal(t, "/c", p.subPath(4).String())
	assert.True(t, p.subPath(len(p.items)).Empty())
}
