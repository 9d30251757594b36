/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "errors"

var (
	// ErrUnresolved indicates a reference to a key missing from the registry.
	ErrUnresolved = errors.New("could not resolve reference")

	// ErrPassLimit indicates resolution stopped at the pass bound with
	// references still present, usually because of an alias cycle.
	ErrPassLimit = errors.New("reference resolution pass limit reached")

	// ErrCircularReference indicates an alias cycle between registry keys.
	ErrCircularReference = errors.New("circular reference detected")
)
