// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package label

import (
	"path/filepath"
	"regexp"
	"strings"
)

// exhibitPrefixPattern matches an exhibit designation prefix at the start
// of a filename: "Exhibit", "Exh" or "Ex", optionally followed by a dot,
// space or underscore separator. "Exh" and "Ex" require the separator so
// that words like "extract" are not mistaken for a prefix.
var exhibitPrefixPattern = regexp.MustCompile(`^(?i:exhibit[._ ]?|exh[._ ]|ex[._ ])`)

// leadingLabelPattern captures a label token at the start of the
// remainder: one or two letters followed by a non-alphanumeric boundary,
// or a run of digits. Alphabetic tokens are capped at two characters
// because labels beyond "ZZ" never occur in filenames.
var leadingLabelPattern = regexp.MustCompile(`^(?:([A-Za-z]{1,2})(?:[^A-Za-z0-9]|$)|([0-9]+))`)

// trailingLabelPattern captures a label token just before the extension:
// "Deposition Smith 4.pdf" yields "4".
var trailingLabelPattern = regexp.MustCompile(`(?:^|[^A-Za-z0-9])([A-Za-z]{1,2}|[0-9]+)$`)

// FromFilename attempts to derive an exhibit label from a filename. It
// tries, in order: a label following a recognized exhibit prefix
// ("Exhibit_A.pdf", "Ex. 12 - Lease.pdf"), then a trailing label token
// before the extension ("Deposition Smith 4.pdf"). It returns "" when
// neither form matches.
func FromFilename(name string) string {
	base := filepath.Base(name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	if prefix := exhibitPrefixPattern.FindString(stem); prefix != "" {
		rest := strings.TrimLeft(stem[len(prefix):], "._ -")
		if m := leadingLabelPattern.FindStringSubmatch(rest); m != nil {
			if m[1] != "" {
				return m[1]
			}
			return m[2]
		}
	}

	if m := trailingLabelPattern.FindStringSubmatch(stem); m != nil {
		return m[1]
	}
	return ""
}
