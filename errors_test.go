// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathpattern/blob/master/LICENSE.txt.

package pathpattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternSyntaxErrorMessage(t *testing.T) {
	t.Parallel()
	_, err := Parse("/{foo")
	require.Error(t, err)
	assert.Equal(t, `invalid pattern "/{foo" at offset 1: missing closing '}'`, err.Error())
}

func TestPatternCombineErrorMessage(t *testing.T) {
	t.Parallel()
	_, err := MustParse("/*.html").Combine(MustParse("/hotel.xml"))
	require.Error(t, err)
	assert.Equal(t, "cannot combine patterns: /*.html and /hotel.xml", err.Error())
}
