/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver provides the alias registry and {reference} resolution.
package resolver

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"bennypowers.dev/hopetokens/parser/common"
	"bennypowers.dev/hopetokens/token"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxPasses bounds the substitution passes used to follow alias chains.
const DefaultMaxPasses = 10

const cacheSize = 1024

// Builder accumulates registry entries. Later registrations may reference
// earlier ones, and a key set twice keeps its latest value.
type Builder struct {
	values map[string]any
	keys   []string
}

// NewBuilder returns an empty registry builder.
func NewBuilder() *Builder {
	return &Builder{values: make(map[string]any)}
}

// Set registers value under key in both its dotted and brace-wrapped forms.
func (b *Builder) Set(key string, value any) {
	if _, exists := b.values[key]; !exists {
		b.keys = append(b.keys, key)
	}
	b.values[key] = value
	b.values["{"+key+"}"] = value
}

// Register flattens tree, registers every leaf under registryPrefix and
// under each alias namespace, and returns the flattened entries.
func (b *Builder) Register(tree *token.Node, namePrefix, registryPrefix string, aliases ...string) []token.Entry {
	token.Walk(tree, func(path []string, leaf *token.Leaf) {
		key := registryPrefix
		for _, seg := range path {
			key = token.JoinPath(key, seg)
		}
		b.Set(key, leaf.Value)
		for _, ns := range aliases {
			b.Set(token.JoinPath(ns, key), leaf.Value)
		}
	})
	return token.Flatten(tree, namePrefix, registryPrefix)
}

// Fork returns an independent copy of the builder.
func (b *Builder) Fork() *Builder {
	return &Builder{
		values: maps.Clone(b.values),
		keys:   slices.Clone(b.keys),
	}
}

// Options configures a frozen registry.
type Options struct {
	// MaxPasses bounds substitution passes. Zero means DefaultMaxPasses.
	MaxPasses int

	// Warn receives recoverable resolution problems, wrapping ErrUnresolved
	// or ErrPassLimit. Nil discards them. It may be called concurrently.
	Warn func(err error)
}

// Freeze returns an immutable registry holding a snapshot of the builder.
// The builder may keep being used afterwards without affecting the registry.
func (b *Builder) Freeze(opts Options) *Registry {
	passes := opts.MaxPasses
	if passes <= 0 {
		passes = DefaultMaxPasses
	}
	cache, err := lru.New[string, resolution](cacheSize)
	if err != nil {
		// Only a non-positive size fails.
		panic(err)
	}
	return &Registry{
		values:    maps.Clone(b.values),
		keys:      slices.Clone(b.keys),
		maxPasses: passes,
		warn:      opts.Warn,
		cache:     cache,
	}
}

// Registry maps dotted token paths to raw values. It is safe for
// concurrent use.
type Registry struct {
	values    map[string]any
	keys      []string
	maxPasses int
	warn      func(error)
	cache     *lru.Cache[string, resolution]
}

type resolution struct {
	value     string
	missing   []string
	saturated bool
}

// Lookup returns the raw value registered for key, in dotted or
// brace-wrapped form.
func (r *Registry) Lookup(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Len returns the number of registered dotted keys.
func (r *Registry) Len() int {
	return len(r.keys)
}

// Keys returns the registered dotted keys in first-registration order.
func (r *Registry) Keys() []string {
	return slices.Clone(r.keys)
}

// Resolve substitutes references in v. Non-string values are returned
// unchanged. Unresolvable references stay in place and are reported.
func (r *Registry) Resolve(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return r.ResolveString(s)
}

// ResolveString repeatedly substitutes every {key} in s, up to the pass
// bound. A missing key leaves its {key} untouched. When the bound is
// reached the partially resolved string is returned as is.
func (r *Registry) ResolveString(s string) string {
	res, ok := r.cache.Get(s)
	if !ok {
		res = r.resolve(s)
		r.cache.Add(s, res)
	}
	if r.warn != nil {
		for _, ref := range res.missing {
			r.warn(fmt.Errorf("%w: {%s}", ErrUnresolved, ref))
		}
		if res.saturated {
			r.warn(fmt.Errorf("%w: %q resolved to %q after %d passes", ErrPassLimit, s, res.value, r.maxPasses))
		}
	}
	return res.value
}

// Unresolved returns the references in s that remain after resolution
// because their keys are missing.
func (r *Registry) Unresolved(s string) []string {
	res, ok := r.cache.Get(s)
	if !ok {
		res = r.resolve(s)
		r.cache.Add(s, res)
	}
	return slices.Clone(res.missing)
}

func (r *Registry) resolve(s string) resolution {
	current := s
	var missing []string
	for pass := 0; pass < r.maxPasses; pass++ {
		replaced := false
		missing = missing[:0]
		current = token.RefPattern.ReplaceAllStringFunc(current, func(match string) string {
			key := match[1 : len(match)-1]
			if v, ok := r.values[key]; ok {
				replaced = true
				return Stringify(v)
			}
			missing = append(missing, key)
			return match
		})
		if !replaced {
			return resolution{value: current, missing: unique(missing)}
		}
	}

	res := resolution{value: current}
	for _, ref := range token.ExtractAllRefs(current) {
		if _, ok := r.values[ref]; !ok {
			res.missing = append(res.missing, ref)
		} else {
			res.saturated = true
		}
	}
	res.missing = unique(res.missing)
	return res
}

func unique(refs []string) []string {
	var out []string
	for _, ref := range refs {
		if !slices.Contains(out, ref) {
			out = append(out, ref)
		}
	}
	return out
}

// Stringify renders a registry value the way it is substituted into a
// string: strings verbatim, numbers in shortest form.
func Stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return common.FormatNumber(x)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	case nil:
		return ""
	case map[string]any, []any:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(data)
	}
	return fmt.Sprint(v)
}
