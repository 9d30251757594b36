/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"errors"
	"testing"

	"bennypowers.dev/hopetokens/parser"
	"bennypowers.dev/hopetokens/testutil"
	"bennypowers.dev/hopetokens/token"
)

func keys(n *token.Node) []string {
	var out []string
	for _, c := range n.Children {
		out = append(out, c.Key)
	}
	return out
}

func TestJSONParser_PreservesSourceOrder(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/parser", "/test")

	p := parser.NewJSONParser()
	tree, err := p.ParseFile(mfs, "/test/ordered.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := keys(tree)
	if len(got) != 2 || got[0] != "zeta" || got[1] != "alpha" {
		t.Fatalf("root keys = %v, want [zeta alpha]", got)
	}

	zeta, _ := tree.Child("zeta")
	shades := keys(zeta)
	if len(shades) != 2 || shades[0] != "900" || shades[1] != "100" {
		t.Errorf("zeta keys = %v, want [900 100]", shades)
	}
}

func TestJSONParser_Leaves(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/parser", "/test")

	tree, err := parser.NewJSONParser().ParseFile(mfs, "/test/ordered.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("group type is inherited", func(t *testing.T) {
		zeta, _ := tree.Child("zeta")
		leaf, ok := zeta.Child("900")
		if !ok || !leaf.IsLeaf() {
			t.Fatal("expected 900 to be a leaf")
		}
		if leaf.Token.Type != "color" {
			t.Errorf("Type = %q, want color", leaf.Token.Type)
		}
	})

	t.Run("numbers decode as float64", func(t *testing.T) {
		alpha, _ := tree.Child("alpha")
		if v, ok := alpha.Token.Value.(float64); !ok || v != 4 {
			t.Errorf("Value = %#v, want 4.0", alpha.Token.Value)
		}
	})

	t.Run("metadata and scalars are skipped", func(t *testing.T) {
		if _, ok := tree.Child("type"); ok {
			t.Error("type metadata parsed as a node")
		}
		if _, ok := tree.Child("note"); ok {
			t.Error("scalar parsed as a node")
		}
		if tree.Len() != 3 {
			t.Errorf("Len() = %d, want 3", tree.Len())
		}
	})
}

func TestJSONParser_Comments(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/parser", "/test")

	tree, err := parser.NewJSONParser().ParseFile(mfs, "/test/comments.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := keys(tree)
	if len(got) != 2 || got[0] != "sm" || got[1] != "lg" {
		t.Errorf("keys = %v, want [sm lg]", got)
	}
}

func TestJSONParser_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/parser", "/test")

	tree, err := parser.NewJSONParser().ParseFile(mfs, "/test/tokens.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	space, ok := tree.Child("space")
	if !ok {
		t.Fatal("expected space group")
	}
	if got := keys(space); len(got) != 2 || got[0] != "025" || got[1] != "100" {
		t.Errorf("space keys = %v, want [025 100]", got)
	}
	hundred, _ := space.Child("100")
	if hundred.Token.Value != 8.0 {
		t.Errorf("100 = %#v, want 8.0", hundred.Token.Value)
	}

	heading, ok := tree.Child("heading/xxl")
	if !ok || !heading.IsLeaf() {
		t.Fatal("expected heading/xxl leaf")
	}
	if heading.Token.Kind() != token.KindComposite {
		t.Errorf("Kind() = %q, want composite", heading.Token.Kind())
	}
	props, ok := heading.Token.Value.(map[string]any)
	if !ok {
		t.Fatalf("Value = %#v, want map", heading.Token.Value)
	}
	if props["fontWeight"] != 700.0 || props["fontFamily"] != "Roboto" {
		t.Errorf("props = %v", props)
	}
}

func TestJSONParser_Errors(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/parser", "/test")
	p := parser.NewJSONParser()

	t.Run("malformed", func(t *testing.T) {
		if _, err := p.ParseFile(mfs, "/test/malformed.json"); err == nil {
			t.Error("expected error for malformed JSON")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := p.ParseFile(mfs, "/test/missing.json"); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("non-object root", func(t *testing.T) {
		_, err := p.ParseFile(mfs, "/test/array.json")
		if !errors.Is(err, parser.ErrRootNotObject) {
			t.Errorf("err = %v, want ErrRootNotObject", err)
		}
	})

	t.Run("empty document", func(t *testing.T) {
		tree, err := p.Parse([]byte(""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tree.Len() != 0 {
			t.Errorf("Len() = %d, want 0", tree.Len())
		}
	})
}
