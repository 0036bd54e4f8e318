// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathpattern/blob/master/LICENSE.txt.

package stringsutil

// ToLowerASCII folds an ASCII upper case letter to lower case and returns any
// other byte unchanged.
func ToLowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// EqualASCIIIgnoreCase reports whether s and t are equal bytes once ASCII
// letters are folded to lower case. Non-letter bytes only compare equal to
// themselves.
func EqualASCIIIgnoreCase(s, t byte) bool {
	if s == t {
		return true
	}
	s = ToLowerASCII(s)
	t = ToLowerASCII(t)
	return s == t && s >= 'a' && s <= 'z'
}

// EqualStringsASCIIIgnoreCase reports whether s1 and s2 are equal under ASCII
// case folding. Bytes outside the ASCII letter range must match exactly.
func EqualStringsASCIIIgnoreCase(s1, s2 string) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i := 0; i < len(s1); i++ {
		if !EqualASCIIIgnoreCase(s1[i], s2[i]) {
			return false
		}
	}
	return true
}
