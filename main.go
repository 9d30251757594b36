/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command hopetokens builds CSS, Figma and Tailwind artifacts from the
// hope design tokens.
package main

import (
	"os"

	"bennypowers.dev/hopetokens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
