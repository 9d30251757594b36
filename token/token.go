/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides design token tree types and the naming rules
// shared by every output format.
package token

// Kind classifies a leaf by its declared type.
type Kind string

const (
	// KindColor is a color token.
	KindColor Kind = "color"

	// KindNumber is a number or dimension token.
	KindNumber Kind = "number"

	// KindComposite is a composite typography token.
	KindComposite Kind = "composite"

	// KindUnknown is a leaf whose type tag is missing or unsupported.
	KindUnknown Kind = ""
)

// Leaf is a token: a value with an optional type tag.
type Leaf struct {
	// Type is the type tag as authored (e.g. "color", "typography").
	Type string

	// Value is the raw value: a string, a float64, or for composite
	// tokens a map of sub-property name to value.
	Value any
}

// Kind returns the leaf's kind, inferring composite from a map value
// when the tag is absent.
func (l *Leaf) Kind() Kind {
	switch l.Type {
	case "color":
		return KindColor
	case "number", "dimension", "spacing", "sizing", "borderRadius",
		"fontSizes", "lineHeights", "fontWeights":
		return KindNumber
	case "typography", "composite":
		return KindComposite
	}
	if _, ok := l.Value.(map[string]any); ok {
		return KindComposite
	}
	return KindUnknown
}

// Node is one node of a token tree. A node is either an interior group
// (Token is nil, Children holds its entries in source order) or a leaf
// (Token is set, Children is empty). The variant is decided at parse time.
type Node struct {
	// Key is the node's name within its parent. The root has an empty key.
	Key string

	// Children are the nested nodes of an interior group, in source order.
	Children []*Node

	// Token is the leaf payload, nil for interior nodes.
	Token *Leaf
}

// NewTree returns an empty root node.
func NewTree() *Node {
	return &Node{}
}

// NewLeaf returns a leaf node.
func NewLeaf(key, typ string, value any) *Node {
	return &Node{Key: key, Token: &Leaf{Type: typ, Value: value}}
}

// IsLeaf reports whether the node is a token.
func (n *Node) IsLeaf() bool {
	return n != nil && n.Token != nil
}

// Append adds a child, replacing any existing child with the same key in place.
func (n *Node) Append(child *Node) {
	for i, c := range n.Children {
		if c.Key == child.Key {
			n.Children[i] = child
			return
		}
	}
	n.Children = append(n.Children, child)
}

// Child returns the direct child with the given key.
func (n *Node) Child(key string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	for _, c := range n.Children {
		if c.Key == key {
			return c, true
		}
	}
	return nil, false
}

// Len returns the number of leaves under n.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	count := 0
	for _, c := range n.Children {
		count += c.Len()
	}
	return count
}

// Walk visits every leaf under n depth-first in source order.
// The path passed to fn excludes n's own key and must not be retained
// without copying.
func Walk(n *Node, fn func(path []string, leaf *Leaf)) {
	if n == nil {
		return
	}
	walk(n.Children, nil, fn)
}

func walk(children []*Node, path []string, fn func([]string, *Leaf)) {
	for _, c := range children {
		p := append(path[:len(path):len(path)], c.Key)
		if c.IsLeaf() {
			fn(p, c.Token)
			continue
		}
		walk(c.Children, p, fn)
	}
}
