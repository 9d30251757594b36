/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert_test

import (
	"context"
	"errors"
	"testing"

	"bennypowers.dev/hopetokens/convert"
	"bennypowers.dev/hopetokens/model"
	"bennypowers.dev/hopetokens/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTargets() map[convert.Format]string {
	return map[convert.Format]string{
		convert.FormatCSS:        "src/styles/tokens.css",
		convert.FormatFigmaLight: "figma/hope-tokens.light.json",
		convert.FormatFigmaDark:  "figma/hope-tokens.dark.json",
		convert.FormatTailwind:   "tailwind.tokens.json",
		convert.FormatFlatJSON:   "tokens.flat.json",
	}
}

func TestRender(t *testing.T) {
	m := testutil.LoadModel(t, "hope/tokens")

	artifacts, err := convert.Render(t.Context(), m, allTargets(), convert.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, artifacts, 5)

	tests := []struct {
		format convert.Format
		path   string
		tokens int
	}{
		{convert.FormatCSS, "src/styles/tokens.css", 39},
		{convert.FormatFigmaLight, "figma/hope-tokens.light.json", 34},
		{convert.FormatFigmaDark, "figma/hope-tokens.dark.json", 4},
		{convert.FormatTailwind, "tailwind.tokens.json", 35},
		{convert.FormatFlatJSON, "tokens.flat.json", 35},
	}
	for i, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			a := artifacts[i]
			assert.Equal(t, tt.format, a.Format)
			assert.Equal(t, tt.path, a.Path)
			assert.Equal(t, tt.tokens, a.Tokens)
			assert.NotEmpty(t, a.Data)
		})
	}
}

func TestRender_MatchesFormatTokens(t *testing.T) {
	m := testutil.LoadModel(t, "hope/tokens")
	opts := convert.DefaultOptions()

	artifacts, err := convert.Render(t.Context(), m, allTargets(), opts)
	require.NoError(t, err)

	for _, a := range artifacts {
		want, err := convert.FormatTokens(m, a.Format, opts)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(a.Data), "concurrent render of %s differs", a.Format)
	}
}

func TestRender_Subset(t *testing.T) {
	m := testutil.LoadModel(t, "hope/tokens")

	artifacts, err := convert.Render(t.Context(), m, map[convert.Format]string{
		convert.FormatTailwind: "tw.json",
		convert.FormatCSS:      "tokens.css",
	}, convert.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, artifacts, 2)
	assert.Equal(t, convert.FormatCSS, artifacts[0].Format)
	assert.Equal(t, convert.FormatTailwind, artifacts[1].Format)
}

func TestRender_UnsupportedFormat(t *testing.T) {
	m := testutil.LoadModel(t, "hope/tokens")
	_, err := convert.Render(t.Context(), m, map[convert.Format]string{"swift": "x"}, convert.DefaultOptions())
	assert.Error(t, err)
}

func TestRender_Cancelled(t *testing.T) {
	m := testutil.LoadModel(t, "hope/tokens")
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := convert.Render(ctx, m, allTargets(), convert.DefaultOptions())
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDefaultOptions(t *testing.T) {
	opts := convert.DefaultOptions()
	assert.Equal(t, ":root", opts.Selector)
	assert.Equal(t, ".dark", opts.DarkSelector)
	assert.Equal(t, "Light", opts.ModeNames[model.Light])
	assert.Equal(t, "Dark", opts.ModeNames[model.Dark])
}
