/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package project_test

import (
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/hopetokens/cmd/project"
	"bennypowers.dev/hopetokens/convert"
	"bennypowers.dev/hopetokens/internal/logger"
	"bennypowers.dev/hopetokens/internal/mapfs"
	"bennypowers.dev/hopetokens/load"
	"bennypowers.dev/hopetokens/model"
	"bennypowers.dev/hopetokens/testutil"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	m.Run()
}

func TestOpen_Defaults(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "hope/tokens", "/project/tokens")

	p, err := project.Open(t.Context(), project.Options{FS: mfs, Root: "/project"})
	require.NoError(t, err)

	assert.Empty(t, p.Sources.Problems)
	assert.Equal(t, "", p.Config.Prefix)
	assert.Equal(t, "/project/tokens/colors/color-global.json", p.Model.File(load.ColorGlobal))
	v, ok := p.Model.Registry(model.Dark).Lookup("color.text.neutral")
	require.True(t, ok)
	assert.Equal(t, "{neutral.0}", v)
}

func TestOpen_ConfigAndOverrides(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "hope/tokens", "/project/design")
	mfs.AddFile("/project/.config/hope-tokens.yaml", "prefix: hope\ntokensDir: design\n", 0644)

	p, err := project.Open(t.Context(), project.Options{FS: mfs, Root: "/project"})
	require.NoError(t, err)
	assert.Equal(t, "hope", p.Config.Prefix)
	assert.Empty(t, p.Sources.Problems)

	p, err = project.Open(t.Context(), project.Options{FS: mfs, Root: "/project", Prefix: "ds", TokensDir: "elsewhere"})
	require.NoError(t, err)
	assert.Equal(t, "ds", p.Config.Prefix)
	assert.Len(t, p.Sources.Problems, len(load.Roles), "overridden tokens dir is empty")
}

func TestOpen_ExplicitConfig(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "hope/tokens", "/project/tokens")
	mfs.AddFile("/project/hope.json", `{"prefix": "brand", "maxPasses": 3}`, 0644)

	p, err := project.Open(t.Context(), project.Options{FS: mfs, Root: "/project", ConfigPath: "hope.json"})
	require.NoError(t, err)
	assert.Equal(t, "brand", p.Config.Prefix)
	assert.Equal(t, 3, p.Config.MaxPasses)

	_, err = project.Open(t.Context(), project.Options{FS: mfs, Root: "/project", ConfigPath: "missing.yaml"})
	assert.Error(t, err)
}

func TestOpen_MalformedDiscoveredConfigFallsBack(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "hope/tokens", "/project/tokens")
	mfs.AddFile("/project/.config/hope-tokens.json", `{"prefix": `, 0644)

	p, err := project.Open(t.Context(), project.Options{FS: mfs, Root: "/project"})
	require.NoError(t, err)
	assert.Equal(t, "tokens", p.Config.TokensDir)
}

func TestOpen_InvalidSourceRole(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "hope/tokens", "/project/tokens")
	mfs.AddFile("/project/.config/hope-tokens.yaml", "sources:\n  colours: x.json\n", 0644)

	_, err := project.Open(t.Context(), project.Options{FS: mfs, Root: "/project"})
	assert.Error(t, err)
}

func TestOpen_EmitterWarningsLoggedOnce(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/tokens/colors/color-global.json",
		`{"neutral": {"0": {"value": "not-a-color", "type": "color"}}}`, 0644)

	p, err := project.Open(t.Context(), project.Options{FS: mfs, Root: "/project"})
	require.NoError(t, err)

	logger.ResetWarnings()
	t.Cleanup(logger.ResetWarnings)
	for range 2 {
		_, err := convert.FormatTokens(p.Model, convert.FormatFigmaLight, convert.DefaultOptions())
		require.NoError(t, err)
	}
	assert.Equal(t, int64(1), logger.Warnings())
}

func TestDeduplicate(t *testing.T) {
	var mu sync.Mutex
	var got []string
	warn := project.Deduplicate(func(err error) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, err.Error())
	})

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			warn(errors.New("could not resolve reference: {x}"))
			warn(errors.New("could not resolve reference: {y}"))
		})
	}
	wg.Wait()

	assert.ElementsMatch(t, []string{
		"could not resolve reference: {x}",
		"could not resolve reference: {y}",
	}, got)
}
