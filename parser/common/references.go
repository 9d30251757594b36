/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common

import "strings"

// NormalizeRef namespaces the inner text of a reference under prefix
// without double-prefixing:
//
//	"neutral.100", "color"       -> "{color.neutral.100}"
//	"color.neutral.100", "color" -> "{color.neutral.100}"
//	"16", "dimension"            -> "{dimension.16}"
//
// Blank inner text yields "{<prefix>.UNKNOWN}".
func NormalizeRef(inner, prefix string) string {
	r := strings.TrimSpace(inner)
	if r == "" {
		return "{" + prefix + ".UNKNOWN}"
	}
	if strings.HasPrefix(r, prefix+".") {
		return "{" + r + "}"
	}
	return "{" + prefix + "." + r + "}"
}
