/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bennypowers.dev/hopetokens/fs"
	"bennypowers.dev/hopetokens/token"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ErrRootNotObject is returned when a document's root is not a mapping.
var ErrRootNotObject = errors.New("token document root must be an object")

// member is one key/value pair of a decoded object, kept in source order.
type member struct {
	key   string
	value any
}

// object is an ordered mapping. Go maps lose key order, and source order
// is emission order.
type object []member

func (o object) get(key string) (any, bool) {
	for _, m := range o {
		if m.key == key {
			return m.value, true
		}
	}
	return nil, false
}

// JSONParser parses token documents written as JSON, JSON with comments,
// or YAML.
type JSONParser struct{}

// NewJSONParser creates a new token parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses JSON or YAML token data and returns its tree.
func (p *JSONParser) Parse(data []byte) (*token.Node, error) {
	var root any
	if isLikelyJSON(data) {
		cleanJSON := jsonc.ToJSON(data)
		dec := json.NewDecoder(bytes.NewReader(cleanJSON))
		dec.UseNumber()
		v, err := decodeJSON(dec)
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		root = v
	} else {
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if len(doc.Content) == 0 {
			return token.NewTree(), nil
		}
		v, err := decodeYAML(doc.Content[0])
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		root = v
	}

	obj, ok := root.(object)
	if !ok {
		return nil, ErrRootNotObject
	}

	tree := token.NewTree()
	buildChildren(tree, obj, "")
	return tree, nil
}

// ParseFile reads and parses a token file.
func (p *JSONParser) ParseFile(filesystem fs.FileSystem, path string) (*token.Node, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	tree, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}

	return tree, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{', '/':
			return true
		default:
			return false
		}
	}
	return false
}

// buildChildren converts the members of obj into children of parent.
// inheritedType is the nearest enclosing group's type tag.
func buildChildren(parent *token.Node, obj object, inheritedType string) {
	groupType := inheritedType
	for _, key := range []string{"$type", "type"} {
		if v, ok := obj.get(key); ok {
			if s, ok := v.(string); ok {
				groupType = s
				break
			}
		}
	}

	for _, m := range obj {
		if strings.HasPrefix(m.key, "$") {
			continue
		}
		// A string "type" at group level is metadata, not a token.
		if _, isString := m.value.(string); isString && m.key == "type" {
			continue
		}
		child, ok := m.value.(object)
		if !ok {
			continue
		}
		if leaf, ok := leafValue(child); ok {
			parent.Append(token.NewLeaf(m.key, leafType(child, groupType), plain(leaf)))
			continue
		}
		group := &token.Node{Key: m.key}
		buildChildren(group, child, groupType)
		parent.Append(group)
	}
}

func leafValue(obj object) (any, bool) {
	if v, ok := obj.get("$value"); ok {
		return v, true
	}
	return obj.get("value")
}

func leafType(obj object, inherited string) string {
	for _, key := range []string{"$type", "type"} {
		if v, ok := obj.get(key); ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return inherited
}

// plain converts decoded values into the shapes token values use:
// objects become map[string]any and arrays []any.
func plain(v any) any {
	switch x := v.(type) {
	case object:
		m := make(map[string]any, len(x))
		for _, mem := range x {
			m[mem.key] = plain(mem.value)
		}
		return m
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = plain(e)
		}
		return out
	default:
		return v
	}
}

// decodeJSON decodes the next JSON value from dec, preserving object key order.
func decodeJSON(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var obj object
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", keyTok)
				}
				val, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				obj = append(obj, member{key: key, value: val})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			if obj == nil {
				obj = object{}
			}
			return obj, nil
		case '[':
			arr := []any{}
			for dec.More() {
				val, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t.String(), nil
		}
		return f, nil
	default:
		return t, nil
	}
}

// decodeYAML converts a yaml.v3 node into ordered values.
func decodeYAML(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return decodeYAML(n.Content[0])
	case yaml.AliasNode:
		return decodeYAML(n.Alias)
	case yaml.MappingNode:
		obj := make(object, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			val, err := decodeYAML(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj = append(obj, member{key: n.Content[i].Value, value: val})
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := decodeYAML(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!int", "!!float":
			f, err := strconv.ParseFloat(n.Value, 64)
			if err != nil {
				return n.Value, nil
			}
			return f, nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, err
			}
			return b, nil
		case "!!null":
			return nil, nil
		}
		return n.Value, nil
	}
	return nil, fmt.Errorf("unsupported YAML node at line %d", n.Line)
}
