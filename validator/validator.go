/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator reports problems in token sources that the build
// tolerates: unresolved references, circular aliases, malformed literals
// and unreadable documents.
package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"bennypowers.dev/hopetokens/fs"
	"bennypowers.dev/hopetokens/load"
	"bennypowers.dev/hopetokens/model"
	"bennypowers.dev/hopetokens/parser"
	"bennypowers.dev/hopetokens/parser/common"
	"bennypowers.dev/hopetokens/resolver"
	"bennypowers.dev/hopetokens/token"
)

// Severity ranks a validation error.
type Severity int

const (
	// SeverityError marks output that will contain a literal reference
	// or a broken value.
	SeverityError Severity = iota

	// SeverityWarning marks input the build normalizes silently.
	SeverityWarning
)

// String returns the severity label.
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// ValidationError represents one problem in a token source.
type ValidationError struct {
	// Severity ranks the problem.
	Severity Severity
	// FilePath is the path to the file containing the error.
	FilePath string
	// Path is the dotted registry path of the token.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// HasErrors reports whether any problem has error severity.
func HasErrors(errs []ValidationError) bool {
	for _, e := range errs {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}

// collector accumulates errors, dropping exact repeats.
type collector struct {
	seen   map[string]bool
	errors []ValidationError
}

func newCollector() *collector {
	return &collector{seen: make(map[string]bool)}
}

func (c *collector) add(e ValidationError) {
	key := e.Severity.String() + " " + e.Error()
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.errors = append(c.errors, e)
}

// Validate checks every source of m. Semantic colors of the alternate
// mode are checked against the alternate registry, everything else
// against the default one.
func Validate(m *model.Model) []ValidationError {
	c := newCollector()

	for _, problem := range m.Problems() {
		c.add(ValidationError{
			Severity:   SeverityWarning,
			Message:    problem.Error(),
			Suggestion: "the document is treated as empty",
		})
	}

	for _, role := range load.Roles {
		mode := model.Light
		if role == model.BrandRole(model.Dark) {
			mode = model.Dark
		}
		checkEntries(c, m.File(role), m.Entries(role), m.Registry(mode))
	}

	for _, mode := range model.Modes {
		checkCycles(c, m.Registry(mode))
	}

	return c.errors
}

// ValidateFile parses an extra token document and checks its references
// against reg.
func ValidateFile(filesystem fs.FileSystem, path string, reg *resolver.Registry) []ValidationError {
	tree, err := parser.NewJSONParser().ParseFile(filesystem, path)
	if err != nil {
		return []ValidationError{{
			Severity: SeverityError,
			FilePath: path,
			Message:  fmt.Sprintf("failed to parse content: %v", err),
		}}
	}

	c := newCollector()
	checkEntries(c, path, token.Flatten(tree, "", ""), reg)
	return c.errors
}

func checkEntries(c *collector, file string, entries []token.Entry, reg *resolver.Registry) {
	for _, e := range entries {
		kind := (&token.Leaf{Type: e.Type, Value: e.Value}).Kind()
		if props, ok := e.Composite(); ok {
			for _, name := range slices.Sorted(maps.Keys(props)) {
				checkValue(c, file, e.Key+"."+name, token.KindUnknown, props[name], reg)
			}
			continue
		}
		checkValue(c, file, e.Key, kind, e.Value, reg)
	}
}

func checkValue(c *collector, file, path string, kind token.Kind, v any, reg *resolver.Registry) {
	s, ok := v.(string)
	if !ok {
		return
	}

	if refs := token.ExtractAllRefs(s); len(refs) > 0 {
		for _, ref := range reg.Unresolved(s) {
			c.add(ValidationError{
				Severity:   SeverityError,
				FilePath:   file,
				Path:       path,
				Message:    fmt.Sprintf("unresolved reference {%s}", ref),
				Suggestion: "define the token or correct the reference",
			})
		}
		return
	}

	switch kind {
	case token.KindColor:
		if !strings.EqualFold(strings.TrimSpace(s), "transparent") && !common.IsColor(s) {
			c.add(ValidationError{
				Severity:   SeverityError,
				FilePath:   file,
				Path:       path,
				Message:    fmt.Sprintf("malformed color %q", s),
				Suggestion: "use a CSS color literal such as #RRGGBB",
			})
		}
	case token.KindNumber:
		if _, ok := common.ParseNumber(s); !ok {
			c.add(ValidationError{
				Severity:   SeverityWarning,
				FilePath:   file,
				Path:       path,
				Message:    fmt.Sprintf("malformed number %q normalizes to 0", s),
				Suggestion: "use a number with an optional unit such as 16px or 150%",
			})
		}
	}
}

func checkCycles(c *collector, reg *resolver.Registry) {
	for _, cycle := range resolver.BuildDependencyGraph(reg).FindCycles() {
		c.add(ValidationError{
			Severity:   SeverityError,
			Path:       cycle[0],
			Message:    fmt.Sprintf("%v: %s", resolver.ErrCircularReference, strings.Join(cycle, " -> ")),
			Suggestion: "resolution stops after the pass limit and leaves a reference in the output",
		})
	}
}
