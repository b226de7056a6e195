// SPDX-FileCopyrightText: 2025 Christoph Mewes
// SPDX-License-Identifier: MIT

package graphviz

import (
	"bytes"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/dominikbraun/graph/draw"
	"github.com/spf13/pflag"

	"go.xrstf.de/mermaid2drawio/pkg/ergraph"
	"go.xrstf.de/mermaid2drawio/pkg/render"
)

type renderer struct {
	rankDir string
}

var _ render.Renderer = &renderer{}

func New() *renderer {
	return &renderer{
		rankDir: "LR",
	}
}

func (r *renderer) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&r.rankDir, "graphviz-rankdir", "", r.rankDir, "graphviz: direction of the graph layout (TB, LR, BT or RL)")
}

func (r *renderer) ValidateFlags() error {
	switch r.rankDir {
	case "TB", "LR", "BT", "RL":
		return nil
	default:
		return fmt.Errorf("invalid --graphviz-rankdir %q", r.rankDir)
	}
}

func (r *renderer) RenderGraph(g ergraph.Graph) (string, error) {
	var buf bytes.Buffer
	err := draw.DOT(g.Raw(), &buf, draw.GraphAttribute("rankdir", r.rankDir))
	if err != nil {
		return "", err
	}

	return sortStatements(buf.String(), g), nil
}

// sortStatements orders the vertex and edge statements of a DOT document
// like the entities and relationships in the model, as draw.DOT emits them
// in map order.
func sortStatements(dot string, g ergraph.Graph) string {
	ranks := map[string]int{}

	nodes := g.Entities()
	for _, node := range nodes {
		ranks[quote(node.Hash())] = node.Index
	}

	for idx, rel := range g.Relationships() {
		source, err := g.Node(rel.Source)
		if err != nil {
			continue
		}

		target, err := g.Node(rel.Target)
		if err != nil {
			continue
		}

		key := quote(source.Hash()) + " -> " + quote(target.Hash())
		if _, exists := ranks[key]; !exists {
			ranks[key] = len(nodes) + idx
		}
	}

	var header, statements, footer []string

	for _, line := range strings.Split(dot, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, `"`):
			statements = append(statements, line)
		case len(statements) == 0:
			header = append(header, line)
		default:
			footer = append(footer, line)
		}
	}

	rank := func(statement string) int {
		key, _, _ := strings.Cut(strings.TrimSpace(statement), " [")
		if r, ok := ranks[key]; ok {
			return r
		}

		return len(ranks) + len(nodes) + len(g.Relationships())
	}

	sort.SliceStable(statements, func(i, j int) bool {
		return rank(statements[i]) < rank(statements[j])
	})

	lines := slices.Concat(header, statements, footer)

	return strings.Join(lines, "\n") + "\n"
}

func quote(s string) string {
	return `"` + s + `"`
}
