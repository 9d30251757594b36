/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/hopetokens/cmd/project"
	"bennypowers.dev/hopetokens/internal/logger"
	"bennypowers.dev/hopetokens/testutil"
	"bennypowers.dev/hopetokens/validator"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	color.NoColor = true
	m.Run()
}

func open(t *testing.T, fixtureDir string) *project.Project {
	t.Helper()
	mfs := testutil.NewFixtureFS(t, fixtureDir, "/project")
	p, err := project.Open(t.Context(), project.Options{FS: mfs, Root: "/project"})
	require.NoError(t, err)
	return p
}

func TestCheck_Clean(t *testing.T) {
	p := open(t, "hope")
	assert.Empty(t, Check(p, nil))
}

func TestCheck_ExtraFiles(t *testing.T) {
	p := open(t, "fixtures/validate")

	files, err := extraFiles(p, []string{"extra/*.json"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/project/extra/theme.json", "/project/extra/malformed.json"}, files)

	issues := Check(p, files)
	assert.True(t, validator.HasErrors(issues))

	var messages []string
	for _, issue := range issues {
		messages = append(messages, issue.Error())
	}
	joined := strings.Join(messages, "\n")
	assert.Contains(t, joined, "/project/extra/theme.json: broken: unresolved reference {neutral.5}")
	assert.Contains(t, joined, "/project/extra/malformed.json: failed to parse content")
	assert.Contains(t, joined, "color.text.ghost: unresolved reference {neutral.999}")
}

func TestExtraFiles_FromConfig(t *testing.T) {
	p := open(t, "fixtures/validate")
	p.Config.Files = []string{"extra/theme.json"}

	files, err := extraFiles(p, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/project/extra/theme.json"}, files)
}

func TestReport(t *testing.T) {
	issues := []validator.ValidationError{
		{Severity: validator.SeverityError, Path: "a", Message: "unresolved reference {b}"},
		{Severity: validator.SeverityWarning, Path: "w", Message: `malformed number "wide" normalizes to 0`},
	}

	t.Run("full", func(t *testing.T) {
		var buf bytes.Buffer
		report(&buf, issues, 10, false)
		expected := "error: a: unresolved reference {b}\n" +
			"warning: w: malformed number \"wide\" normalizes to 0\n" +
			"1 error(s), 1 warning(s) in 10 documents\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("quiet", func(t *testing.T) {
		var buf bytes.Buffer
		report(&buf, issues, 10, true)
		assert.Equal(t, "error: a: unresolved reference {b}\n", buf.String())
	})

	t.Run("clean", func(t *testing.T) {
		var buf bytes.Buffer
		report(&buf, nil, 10, false)
		assert.Equal(t, "✓ 10 documents valid\n", buf.String())
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := testutil.NewFixtureDir(t, "fixtures/validate", "")
	t.Chdir(dir)
	t.Cleanup(func() {
		viper.Reset()
		f := Cmd.Flags().Lookup("strict")
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	Cmd.SetArgs(args)
	err := Cmd.Execute()
	return buf.String(), err
}

func TestValidateCommand(t *testing.T) {
	viper.Set("quiet", true)
	out, err := execute(t, "extra/theme.json")
	require.NoError(t, err)
	assert.Contains(t, out, "error: extra/theme.json: broken: unresolved reference {neutral.5}")
	assert.NotContains(t, out, "warning:")
}

func TestValidateCommand_StrictFails(t *testing.T) {
	out, err := execute(t, "--strict")
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, out, "error(s)")
}

func TestValidateCommand_Strict(t *testing.T) {
	dir := testutil.NewFixtureDir(t, "hope", "")
	t.Chdir(dir)
	t.Cleanup(func() {
		f := Cmd.Flags().Lookup("strict")
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	Cmd.SetArgs([]string{"--strict"})
	require.NoError(t, Cmd.Execute())
	assert.Equal(t, "✓ 10 documents valid\n", buf.String())
}
