// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathpattern/blob/master/LICENSE.txt.

package pathpattern

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareSpecificityOrdering(t *testing.T) {
	t.Parallel()

	patterns := []*Pattern{
		MustParse("/a/**"),
		MustParse("/a/*"),
		MustParse("/aa"),
		MustParse("/a/{*rest}"),
		MustParse("/*"),
		MustParse("/a/{x}"),
		MustParse("/a/b/**"),
		MustParse("/a/b"),
		MustParse("/a/{x:[0-9]+}"),
	}
	slices.SortFunc(patterns, (*Pattern).Compare)

	sorted := make([]string, 0, len(patterns))
	for _, p := range patterns {
		sorted = append(sorted, p.String())
	}
	assert.Equal(t, []string{
		"/a/b",
		"/aa",
		"/a/{x:[0-9]+}",
		"/a/{x}",
		"/a/*",
		"/*",
		"/a/b/**",
		"/a/{*rest}",
		"/a/**",
	}, sorted)
}

func TestCompareSpecificity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		p1, p2 string
		want   int
	}{
		{name: "literal beats capture", p1: "/a/b", p2: "/a/{x}", want: -1},
		{name: "capture beats wildcard", p1: "/a/{x}", p2: "/a/*", want: -1},
		{name: "longer literal beats shorter", p1: "/a/b", p2: "/aa", want: -1},
		{name: "anything beats catch-all", p1: "/a/*", p2: "/a/**", want: -1},
		{name: "longer catch-all beats shorter", p1: "/a/b/**", p2: "/a/**", want: -1},
		{name: "capture the rest beats multi segment wildcard", p1: "/a/{*rest}", p2: "/a/**", want: -1},
		{name: "equal specificity", p1: "/a/{x}", p2: "/a/{y}", want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p1, p2 := MustParse(tc.p1), MustParse(tc.p2)
			switch tc.want {
			case 0:
				assert.Zero(t, CompareSpecificity(p1, p2))
				assert.Zero(t, CompareSpecificity(p2, p1))
			default:
				assert.Negative(t, CompareSpecificity(p1, p2))
				assert.Positive(t, CompareSpecificity(p2, p1))
			}
		})
	}
}

func TestCompareSpecificityNil(t *testing.T) {
	t.Parallel()

	p := MustParse("/a")
	assert.Zero(t, CompareSpecificity(nil, nil))
	assert.Negative(t, CompareSpecificity(p, nil))
	assert.Positive(t, CompareSpecificity(nil, p))
}

func TestCompareTieBreak(t *testing.T) {
	t.Parallel()

	p1 := MustParse("/a/{x}")
	p2 := MustParse("/a/{y}")
	assert.Zero(t, CompareSpecificity(p1, p2))
	assert.Negative(t, p1.Compare(p2))
	assert.Positive(t, p2.Compare(p1))
	assert.Zero(t, p1.Compare(p1))
}
