/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"maps"
	"slices"

	"bennypowers.dev/hopetokens/token"
)

// DependencyGraph represents a directed graph of alias dependencies between
// registry keys. Resolution never consults it; it exists to report cycles.
type DependencyGraph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        []string
}

// BuildDependencyGraph builds a dependency graph from a frozen registry.
// Only references to registered keys become edges.
func BuildDependencyGraph(r *Registry) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
		nodes:        r.Keys(),
	}
	slices.Sort(graph.nodes)

	for _, key := range graph.nodes {
		deps := extractDependencies(r, key)
		if len(deps) > 0 {
			graph.dependencies[key] = deps
			for _, dep := range deps {
				graph.dependents[dep] = append(graph.dependents[dep], key)
			}
		}
	}

	return graph
}

// extractDependencies extracts the registry keys that key's value references.
func extractDependencies(r *Registry, key string) []string {
	deps := []string{}
	for _, s := range stringsIn(r.values[key]) {
		for _, ref := range token.ExtractAllRefs(s) {
			if _, ok := r.values[ref]; ok && !slices.Contains(deps, ref) {
				deps = append(deps, ref)
			}
		}
	}
	return deps
}

// stringsIn returns the strings of a scalar or composite value.
func stringsIn(v any) []string {
	switch x := v.(type) {
	case string:
		return []string{x}
	case map[string]any:
		var out []string
		for _, k := range slices.Sorted(maps.Keys(x)) {
			out = append(out, stringsIn(x[k])...)
		}
		return out
	case []any:
		var out []string
		for _, e := range x {
			out = append(out, stringsIn(e)...)
		}
		return out
	}
	return nil
}

// Dependencies returns the keys that the given key depends on.
func (g *DependencyGraph) Dependencies(key string) []string {
	if deps, ok := g.dependencies[key]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the keys that depend on the given key.
func (g *DependencyGraph) Dependents(key string) []string {
	if deps, ok := g.dependents[key]; ok {
		return deps
	}
	return []string{}
}

// HasCycle returns true if the graph contains a circular dependency.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns the first cycle path in key order, or nil if none.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	for _, node := range g.nodes {
		if cycle := g.findCycleDFS(node, visited, make(map[string]bool), nil); cycle != nil {
			return cycle
		}
	}
	return nil
}

// FindCycles returns one path per distinct cycle reachable in key order.
// Each path starts and ends with the same key.
func (g *DependencyGraph) FindCycles() [][]string {
	visited := make(map[string]bool)
	var cycles [][]string
	for _, node := range g.nodes {
		if visited[node] {
			continue
		}
		if cycle := g.findCycleDFS(node, visited, make(map[string]bool), nil); cycle != nil {
			cycles = append(cycles, cycle)
		}
	}
	return cycles
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		cycleStart := slices.Index(path, node)
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(slices.Clone(path[cycleStart:]), node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}

// TopologicalSort returns keys in dependency order (dependencies first).
// Returns error if graph contains a cycle.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %v", ErrCircularReference, cycle)
	}

	visited := make(map[string]bool)
	result := []string{}

	for _, node := range g.nodes {
		if !visited[node] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}

	return result, nil
}

func (g *DependencyGraph) topologicalSortDFS(node string, visited map[string]bool, stack *[]string) {
	visited[node] = true

	for _, dep := range g.dependencies[node] {
		if !visited[dep] {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}

	*stack = append(*stack, node)
}
