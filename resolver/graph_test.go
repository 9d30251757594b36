/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"slices"
	"testing"

	"bennypowers.dev/hopetokens/resolver"
)

func TestDependencyGraph_NoCycle(t *testing.T) {
	reg := freeze(map[string]any{
		"a": "1",
		"b": "{a}",
		"c": "{b}",
	}, resolver.Options{})

	graph := resolver.BuildDependencyGraph(reg)

	if graph.HasCycle() {
		t.Error("expected no cycle")
	}
	if deps := graph.Dependencies("c"); !slices.Equal(deps, []string{"b"}) {
		t.Errorf("Dependencies(c) = %v, want [b]", deps)
	}
	if deps := graph.Dependents("a"); !slices.Equal(deps, []string{"b"}) {
		t.Errorf("Dependents(a) = %v, want [b]", deps)
	}
}

func TestDependencyGraph_Cycle(t *testing.T) {
	reg := freeze(map[string]any{
		"a": "{c}",
		"b": "{a}",
		"c": "{b}",
	}, resolver.Options{})

	graph := resolver.BuildDependencyGraph(reg)

	if !graph.HasCycle() {
		t.Error("expected cycle")
	}

	cycle := graph.FindCycle()
	if cycle == nil {
		t.Fatal("expected to find cycle path")
	}
	if cycle[0] != cycle[len(cycle)-1] {
		t.Errorf("cycle %v does not close", cycle)
	}
}

func TestDependencyGraph_FindCycles(t *testing.T) {
	reg := freeze(map[string]any{
		"a": "{b}",
		"b": "{a}",
		"x": "{y}",
		"y": "{x}",
		"z": "{missing}",
	}, resolver.Options{})

	cycles := resolver.BuildDependencyGraph(reg).FindCycles()
	if len(cycles) != 2 {
		t.Fatalf("FindCycles() = %v, want 2 cycles", cycles)
	}
	if !slices.Equal(cycles[0], []string{"a", "b", "a"}) {
		t.Errorf("cycles[0] = %v", cycles[0])
	}
}

func TestDependencyGraph_CompositeValues(t *testing.T) {
	reg := freeze(map[string]any{
		"size":  "16px",
		"style": map[string]any{"fontSize": "{size}", "fontWeight": 700.0},
	}, resolver.Options{})

	graph := resolver.BuildDependencyGraph(reg)
	if deps := graph.Dependencies("style"); !slices.Equal(deps, []string{"size"}) {
		t.Errorf("Dependencies(style) = %v, want [size]", deps)
	}
}

func TestTopologicalSort(t *testing.T) {
	reg := freeze(map[string]any{
		"c": "{b}",
		"b": "{a}",
		"a": "1px",
	}, resolver.Options{})

	order, err := resolver.BuildDependencyGraph(reg).TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(order, []string{"a", "b", "c"}) {
		t.Errorf("order = %v, want [a b c]", order)
	}

	cyclic := freeze(map[string]any{"a": "{b}", "b": "{a}"}, resolver.Options{})
	_, err = resolver.BuildDependencyGraph(cyclic).TopologicalSort()
	if !errors.Is(err, resolver.ErrCircularReference) {
		t.Errorf("err = %v, want ErrCircularReference", err)
	}
}
