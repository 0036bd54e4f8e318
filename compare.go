// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathpattern/blob/master/LICENSE.txt.

package pathpattern

import "cmp"

// CompareSpecificity compares two patterns for routing priority: it returns a
// negative value when p1 is more specific than p2, zero when they are equally
// specific and a positive value otherwise. Sorting with it puts the most
// specific patterns first. A nil pattern sorts after any real pattern.
//
// Catch-all patterns sort after everything else; between two catch-alls the
// greater normalized length wins. Otherwise the lower score wins (captured
// variables weigh 1, wildcards 100), then the greater normalized length.
// Suitable for [slices.SortFunc]; for a strict total order use [Pattern.Compare].
func CompareSpecificity(p1, p2 *Pattern) int {
	if p1 == p2 {
		return 0
	}
	if p2 == nil {
		return -1
	}
	if p1 == nil {
		return +1
	}

	if p1.catchAll {
		if !p2.catchAll {
			return +1
		}
		if d := p1.normalizedLength - p2.normalizedLength; d != 0 {
			if d < 0 {
				return +1
			}
			return -1
		}
	} else if p2.catchAll {
		return -1
	}

	if d := p1.score - p2.score; d != 0 {
		if d < 0 {
			return -1
		}
		return +1
	}

	// Longer is more specific.
	return cmp.Compare(p2.normalizedLength, p1.normalizedLength)
}
