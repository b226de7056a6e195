// SPDX-FileCopyrightText: 2025 Christoph Mewes
// SPDX-License-Identifier: MIT

package ergraph

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dominikbraun/graph"

	"go.xrstf.de/mermaid2drawio/pkg/types"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/apimachinery/pkg/util/sets"
)

type Graph struct {
	g     graph.Graph[string, Node]
	model *types.Model
}

// New builds a graph from the parsed model. Relationships referencing
// entities that were never declared make New fail; the returned error
// aggregates all of them and matches types.ErrMissingEntity.
func New(model *types.Model) (Graph, error) {
	if model == nil {
		model = &types.Model{}
	}

	pg := Graph{
		g:     graph.New(nodeHash, graph.Directed()),
		model: model,
	}

	// add vertices for all entities
	for idx, entity := range model.Entities {
		err := pg.g.AddVertex(
			Node{Entity: entity, Index: idx},
			graph.VertexAttribute("shape", "record"),
			graph.VertexAttribute("label", recordLabel(entity)),
		)
		if err != nil {
			return Graph{}, fmt.Errorf("failed to add entity %q: %w", entity.Name, err)
		}
	}

	known := sets.New(model.EntityNames()...)

	var errs []error
	for _, rel := range model.Relationships {
		if !known.Has(rel.Source) {
			errs = append(errs, &types.MissingEntityError{Entity: rel.Source, Relationship: rel})
		}

		if rel.Target != rel.Source && !known.Has(rel.Target) {
			errs = append(errs, &types.MissingEntityError{Entity: rel.Target, Relationship: rel})
		}
	}

	if len(errs) > 0 {
		return Graph{}, utilerrors.NewAggregate(errs)
	}

	for _, rel := range model.Relationships {
		err := pg.g.AddEdge(entityHash(rel.Source), entityHash(rel.Target),
			graph.EdgeAttribute("label", escapeQuoted(rel.Label)),
			graph.EdgeAttribute("cardinality", escapeQuoted(rel.Cardinality)),
			graph.EdgeData(rel),
		)

		// the model may contain the same relationship more than once, but
		// the graph can only hold one edge per ordered pair
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return Graph{}, fmt.Errorf("failed to add relationship %s -> %s: %w", rel.Source, rel.Target, err)
		}
	}

	return pg, nil
}

// Entities returns all nodes in declaration order.
func (g *Graph) Entities() []Node {
	if g.model == nil {
		return nil
	}

	nodes := make([]Node, 0, len(g.model.Entities))
	for idx, entity := range g.model.Entities {
		nodes = append(nodes, Node{Entity: entity, Index: idx})
	}

	return nodes
}

// Relationships returns all relationships in declaration order, including
// repeated ones.
func (g *Graph) Relationships() []types.Relationship {
	if g.model == nil {
		return nil
	}

	return slices.Clone(g.model.Relationships)
}

// Node returns the node of the named entity.
func (g *Graph) Node(name string) (Node, error) {
	if g.g == nil {
		return Node{}, fmt.Errorf("%w: %q", types.ErrMissingEntity, name)
	}

	node, err := g.g.Vertex(entityHash(name))
	if err != nil {
		if errors.Is(err, graph.ErrVertexNotFound) {
			return Node{}, fmt.Errorf("%w: %q", types.ErrMissingEntity, name)
		}

		return Node{}, err
	}

	return node, nil
}

func (g *Graph) Raw() graph.Graph[string, Node] {
	return g.g
}
