/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "slices"

// Entry is one flattened leaf.
type Entry struct {
	// Name is the hyphen-joined emission path (e.g. "color-text-neutral").
	Name string

	// Key is the dotted registry path used for alias lookup
	// (e.g. "color.text.neutral" or "fontSize.brand.sm").
	Key string

	// Path holds the source path segments below the flattened tree.
	Path []string

	// Type is the leaf's type tag.
	Type string

	// Value is the raw, unresolved value.
	Value any
}

// Composite returns the entry's sub-properties when it is a composite token.
func (e Entry) Composite() (map[string]any, bool) {
	m, ok := e.Value.(map[string]any)
	return m, ok
}

// Flatten walks tree and returns one entry per leaf in source order.
// namePrefix is hyphen-joined in front of every Name and registryPrefix is
// dot-joined in front of every Key; either may be empty. A Name produced
// twice keeps its first position and takes the later value.
func Flatten(tree *Node, namePrefix, registryPrefix string) []Entry {
	var entries []Entry
	index := make(map[string]int)

	Walk(tree, func(path []string, leaf *Leaf) {
		name, key := namePrefix, registryPrefix
		for _, seg := range path {
			name = JoinName(name, seg)
			key = JoinPath(key, seg)
		}
		e := Entry{
			Name:  name,
			Key:   key,
			Path:  slices.Clone(path),
			Type:  leaf.Type,
			Value: leaf.Value,
		}
		if i, ok := index[name]; ok {
			entries[i] = e
			return
		}
		index[name] = len(entries)
		entries = append(entries, e)
	})

	return entries
}
