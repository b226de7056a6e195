// SPDX-FileCopyrightText: 2023 Christoph Mewes
// SPDX-License-Identifier: MIT

package mermaid

import (
	"go.xrstf.de/mermaid2drawio/pkg/mermaid"
)

// relationshipLabel returns the label as it has to be written after the
// colon of a relationship line.
func relationshipLabel(label string) string {
	if mermaid.IsIdentifier(label) {
		return label
	}

	return `"` + label + `"`
}
