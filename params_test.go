// Copyright 2024 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/pathpattern/blob/master/LICENSE.txt.

package pathpattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsGet(t *testing.T) {
	t.Parallel()
	params := Params{
		{Key: "color", Value: "red"},
		{Key: "color", Value: "blue"},
		{Key: "year", Value: "2012"},
	}
	assert.Equal(t, "red", params.Get("color"))
	assert.Equal(t, "2012", params.Get("year"))
	assert.Empty(t, params.Get("owner"))
}

func TestParamsHas(t *testing.T) {
	t.Parallel()
	params := Params{
		{Key: "color", Value: "red"},
		{Key: "sold"},
	}
	assert.True(t, params.Has("color"))
	assert.True(t, params.Has("sold"))
	assert.False(t, params.Has("year"))
}

func TestParamsValues(t *testing.T) {
	t.Parallel()
	params := Params{
		{Key: "color", Value: "red"},
		{Key: "year", Value: "2012"},
		{Key: "color", Value: "blue"},
	}
	assert.Equal(t, []string{"red", "blue"}, params.Values("color"))
	assert.Equal(t, []string{"2012"}, params.Values("year"))
	assert.Nil(t, params.Values("owner"))
}

func TestParamsClone(t *testing.T) {
	t.Parallel()
	params := Params{
		{Key: "color", Value: "red"},
		{Key: "year", Value: "2012"},
	}
	cloned := params.Clone()
	assert.Equal(t, params, cloned)
	cloned[0].Value = "blue"
	assert.Equal(t, "red", params.Get("color"))
}
