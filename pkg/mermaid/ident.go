// SPDX-FileCopyrightText: 2023 Christoph Mewes
// SPDX-License-Identifier: MIT

package mermaid

import (
	"regexp"
	"strings"
)

const (
	identifierPattern = `[A-Za-z_][A-Za-z0-9_-]*`
	// separatorPattern also matches Unicode spaces like U+00A0.
	separatorPattern  = `[\s\p{Z}]+`
)

var (
	identifierRegex   = regexp.MustCompile(`^` + identifierPattern + `$`)
	relationshipRegex = regexp.MustCompile(`^(` + identifierPattern + `)` + separatorPattern + `(.+?)` + separatorPattern + `(` + identifierPattern + `)`)
)

// entityOpenBlockers are markers that disqualify a line containing "{" from
// opening an entity block, because they belong to cardinality tokens.
var entityOpenBlockers = []string{"||", "o{", "}|"}

// relationshipMarkers are markers that identify a relationship line.
var relationshipMarkers = []string{"||", "o{", "}|", "}"}

// IsIdentifier returns true if the name can be used as an entity name in
// a relationship line without quoting.
func IsIdentifier(name string) bool {
	return identifierRegex.MatchString(name)
}

func containsAny(line string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(line, m) {
			return true
		}
	}

	return false
}
