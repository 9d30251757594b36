/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "regexp"

var (
	// RefPattern matches {token.path} references anywhere in a string.
	RefPattern = regexp.MustCompile(`\{([^}]+)\}`)

	// aliasPattern matches a value that is exactly one reference.
	aliasPattern = regexp.MustCompile(`^\{.+\}$`)
)

// IsAlias reports whether v is a string consisting of a single {reference}.
func IsAlias(v any) bool {
	s, ok := v.(string)
	return ok && aliasPattern.MatchString(s)
}

// StripBraces returns the inner text of a {reference}.
func StripBraces(ref string) string {
	if len(ref) >= 2 && ref[0] == '{' && ref[len(ref)-1] == '}' {
		return ref[1 : len(ref)-1]
	}
	return ref
}

// ExtractAllRefs extracts the inner paths of all references in a string.
func ExtractAllRefs(value string) []string {
	matches := RefPattern.FindAllStringSubmatch(value, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) >= 2 {
			refs = append(refs, m[1])
		}
	}
	return refs
}
