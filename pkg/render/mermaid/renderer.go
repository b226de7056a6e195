// SPDX-FileCopyrightText: 2023 Christoph Mewes
// SPDX-License-Identifier: MIT

package mermaid

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"go.xrstf.de/mermaid2drawio/pkg/ergraph"
	"go.xrstf.de/mermaid2drawio/pkg/render"
	"go.xrstf.de/mermaid2drawio/pkg/types"
)

type renderer struct {
	indent int
}

var _ render.Renderer = &renderer{}

func New() *renderer {
	return &renderer{
		indent: 4,
	}
}

func (r *renderer) AddFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&r.indent, "mermaid-indent", "", r.indent, "mermaid: number of spaces to indent blocks with")
}

func (r *renderer) RenderGraph(g ergraph.Graph) (string, error) {
	var buf types.StringBuilder
	buf.WriteString("erDiagram\n")

	indent := strings.Repeat(" ", r.indent)

	// define all entities

	for _, node := range g.Entities() {
		entity := node.Entity

		buf.Printf("%s%s {\n", indent, entity.Name)
		for _, attr := range entity.Attributes {
			buf.Printf("%s%s%s\n", indent, indent, attr)
		}
		buf.Printf("%s}\n", indent)
	}

	relationships := g.Relationships()
	if len(relationships) > 0 {
		buf.WriteString("\n")
	}

	for _, rel := range relationships {
		buf.Printf("%s%s %s %s : %s\n", indent, rel.Source, rel.Cardinality, rel.Target, relationshipLabel(rel.Label))
	}

	return buf.String(), nil
}

func (r *renderer) ValidateFlags() error {
	if r.indent < 0 {
		return fmt.Errorf("--mermaid-indent must not be negative, got %d", r.indent)
	}

	return nil
}
