/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator_test

import (
	"io"
	"strings"
	"testing"

	"bennypowers.dev/hopetokens/internal/logger"
	"bennypowers.dev/hopetokens/internal/mapfs"
	"bennypowers.dev/hopetokens/load"
	"bennypowers.dev/hopetokens/model"
	"bennypowers.dev/hopetokens/testutil"
	"bennypowers.dev/hopetokens/validator"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	m.Run()
}

func buildModel(t *testing.T, fixtureDir string) *model.Model {
	t.Helper()
	mfs := testutil.NewFixtureFS(t, fixtureDir, "/tokens")
	sources, err := load.Load(t.Context(), load.Options{Root: "/tokens", FS: mfs})
	if err != nil {
		t.Fatalf("failed to load sources: %v", err)
	}
	return model.Build(sources, model.Options{Warn: func(error) {}})
}

func find(errs []validator.ValidationError, path, message string) *validator.ValidationError {
	for i := range errs {
		if errs[i].Path == path && strings.Contains(errs[i].Message, message) {
			return &errs[i]
		}
	}
	return nil
}

func TestValidate_Clean(t *testing.T) {
	errs := validator.Validate(buildModel(t, "hope/tokens"))
	if len(errs) != 0 {
		t.Errorf("expected no errors for hope tokens, got %d: %v", len(errs), errs)
	}
}

func TestValidate_Broken(t *testing.T) {
	errs := validator.Validate(buildModel(t, "fixtures/validate/tokens"))

	tests := []struct {
		name     string
		path     string
		message  string
		file     string
		severity validator.Severity
	}{
		{"unresolved light", "color.text.ghost", "{neutral.999}", "/tokens/colors/color-brand-light.json", validator.SeverityError},
		{"unresolved dark", "color.text.neutral", "{neutral.404}", "/tokens/colors/color-brand-dark.json", validator.SeverityError},
		{"unresolved composite", "body/md.fontSize", "{fontSize.brand.base}", "/tokens/typography/typography-brand.json", validator.SeverityError},
		{"malformed color", "bad", `malformed color "not-a-color"`, "/tokens/colors/color-global.json", validator.SeverityError},
		{"malformed number", "wide", `malformed number "wide"`, "/tokens/dimensions/dimension-global.json", validator.SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := find(errs, tt.path, tt.message)
			if e == nil {
				t.Fatalf("expected %q at %s, got %v", tt.message, tt.path, errs)
			}
			if e.FilePath != tt.file {
				t.Errorf("expected file %s, got %s", tt.file, e.FilePath)
			}
			if e.Severity != tt.severity {
				t.Errorf("expected severity %s, got %s", tt.severity, e.Severity)
			}
		})
	}

	t.Run("cycle", func(t *testing.T) {
		var cycles []validator.ValidationError
		for _, e := range errs {
			if strings.Contains(e.Message, "circular reference") {
				cycles = append(cycles, e)
			}
		}
		if len(cycles) != 1 {
			t.Fatalf("expected 1 cycle reported once across modes, got %v", cycles)
		}
		if !strings.Contains(cycles[0].Message, "loop.a") || !strings.Contains(cycles[0].Message, "loop.b") {
			t.Errorf("expected cycle through loop.a and loop.b, got %s", cycles[0].Message)
		}
	})

	t.Run("resolving aliases are not reported", func(t *testing.T) {
		if e := find(errs, "color.text.neutral", "{neutral.1000}"); e != nil {
			t.Errorf("unexpected error %v", e)
		}
	})

	if !validator.HasErrors(errs) {
		t.Error("expected HasErrors to be true")
	}
}

func TestValidate_UnreadableDocument(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/tokens/colors/color-global.json", `{"neutral": `, 0644)
	sources, err := load.Load(t.Context(), load.Options{Root: "/tokens", FS: mfs})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	errs := validator.Validate(model.Build(sources, model.Options{Warn: func(error) {}}))
	if len(errs) != len(load.Roles) {
		t.Fatalf("expected one warning per unreadable document, got %d: %v", len(errs), errs)
	}
	for _, e := range errs {
		if e.Severity != validator.SeverityWarning {
			t.Errorf("expected warning, got %s: %v", e.Severity, e.Error())
		}
	}
	if validator.HasErrors(errs) {
		t.Error("unreadable documents should not count as errors")
	}
}

func TestValidateFile(t *testing.T) {
	m := buildModel(t, "hope/tokens")
	mfs := testutil.NewFixtureFS(t, "fixtures/validate/extra", "/extra")

	errs := validator.ValidateFile(mfs, "/extra/theme.json", m.Registry(model.Light))
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Path != "broken" || !strings.Contains(errs[0].Message, "{neutral.5}") {
		t.Errorf("unexpected error %v", errs[0].Error())
	}

	errs = validator.ValidateFile(mfs, "/extra/malformed.json", m.Registry(model.Light))
	if len(errs) != 1 || !strings.Contains(errs[0].Message, "failed to parse") {
		t.Errorf("expected parse error, got %v", errs)
	}

	errs = validator.ValidateFile(mfs, "/extra/missing.json", m.Registry(model.Light))
	if len(errs) != 1 || errs[0].Severity != validator.SeverityError {
		t.Errorf("expected read error, got %v", errs)
	}
}

func TestValidationError_Error(t *testing.T) {
	e := validator.ValidationError{
		FilePath:   "colors.json",
		Path:       "color.text",
		Message:    "unresolved reference {x}",
		Suggestion: "define it",
	}
	expected := "colors.json: color.text: unresolved reference {x} (define it)"
	if got := e.Error(); got != expected {
		t.Errorf("Error() = %q, expected %q", got, expected)
	}
}
