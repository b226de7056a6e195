// SPDX-FileCopyrightText: 2025 Christoph Mewes
// SPDX-License-Identifier: MIT

package ergraph

import (
	"strings"

	"go.xrstf.de/mermaid2drawio/pkg/types"
)

type Node struct {
	Entity types.Entity

	// Index is the position of the entity in declaration order.
	Index int
}

func (n Node) Hash() string {
	return nodeHash(n)
}

func nodeHash(n Node) string {
	return entityHash(n.Entity.Name)
}

// entityHash is the vertex hash of an entity. Graphviz writes it verbatim
// into a quoted DOT ID, so it has to be escaped.
func entityHash(name string) string {
	return escapeQuoted(name)
}

var quotedEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
)

// escapeQuoted escapes a string for use inside a double-quoted DOT string.
func escapeQuoted(s string) string {
	return quotedEscaper.Replace(s)
}

// recordLabel renders the entity as a Graphviz record label, i.e.
// "{NAME|attr1\lattr2\l}".
func recordLabel(e types.Entity) string {
	var sb strings.Builder

	sb.WriteString("{")
	sb.WriteString(escapeRecord(e.Name))

	if len(e.Attributes) > 0 {
		sb.WriteString("|")
		for _, attr := range e.Attributes {
			sb.WriteString(escapeRecord(attr))
			sb.WriteString(`\l`)
		}
	}

	sb.WriteString("}")

	return sb.String()
}

var recordEscaper = strings.NewReplacer(
	`\`, `\\`,
	`{`, `\{`,
	`}`, `\}`,
	`|`, `\|`,
	`<`, `\<`,
	`>`, `\>`,
	`"`, `\"`,
)

func escapeRecord(s string) string {
	return recordEscaper.Replace(s)
}
