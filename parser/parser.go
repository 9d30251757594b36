/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser parses token source documents into ordered token trees.
package parser

import (
	"bennypowers.dev/hopetokens/fs"
	"bennypowers.dev/hopetokens/token"
)

// Parser parses design token documents.
type Parser interface {
	// Parse parses token data and returns its tree.
	Parse(data []byte) (*token.Node, error)

	// ParseFile reads and parses a token file.
	ParseFile(filesystem fs.FileSystem, path string) (*token.Node, error)
}
