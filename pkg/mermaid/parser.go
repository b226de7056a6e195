// SPDX-FileCopyrightText: 2025 Christoph Mewes
// SPDX-License-Identifier: MIT

package mermaid

import (
	"strings"

	"go.xrstf.de/mermaid2drawio/pkg/types"
)

const diagramMarker = "erDiagram"

// cursor is the parser state carried from one line to the next.
type cursor struct {
	// current is the index of the entity block that is currently open,
	// or -1 if no block is open.
	current int
	// index maps entity names to their position in the model.
	index map[string]int
}

// Parse turns an erDiagram into a model. Parsing never fails: lines that
// cannot be understood are skipped.
func Parse(text string) *types.Model {
	model := &types.Model{
		Entities:      []types.Entity{},
		Relationships: []types.Relationship{},
	}

	cur := cursor{
		current: -1,
		index:   map[string]int{},
	}

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		cur = parseLine(model, cur, strings.TrimSpace(line))
	}

	return model
}

func parseLine(model *types.Model, cur cursor, line string) cursor {
	switch {
	case strings.HasPrefix(line, diagramMarker):
		return cur

	case isEntityOpener(line):
		name := strings.TrimSpace(line[:strings.Index(line, "{")])

		// a nameless block ends the current one, but opens nothing
		if name == "" {
			cur.current = -1
			return cur
		}

		// re-declaring an entity resets it, but it keeps its position
		if idx, exists := cur.index[name]; exists {
			model.Entities[idx].Attributes = []string{}
			cur.current = idx
			return cur
		}

		model.Entities = append(model.Entities, types.Entity{
			Name:       name,
			Attributes: []string{},
		})

		cur.current = len(model.Entities) - 1
		cur.index[name] = cur.current

	case line == "}":
		cur.current = -1

	case cur.current >= 0 && line != "":
		entity := &model.Entities[cur.current]
		entity.Attributes = append(entity.Attributes, line)

	case containsAny(line, relationshipMarkers):
		if rel, ok := parseRelationship(line); ok {
			model.Relationships = append(model.Relationships, rel)
		}
	}

	return cur
}

func isEntityOpener(line string) bool {
	return strings.Contains(line, "{") &&
		!strings.HasPrefix(line, " ") &&
		!containsAny(line, entityOpenBlockers)
}

// parseRelationship parses "ENTITY1 <cardinality> ENTITY2 [: label]".
func parseRelationship(line string) (types.Relationship, bool) {
	relPart, label, _ := strings.Cut(line, ":")

	match := relationshipRegex.FindStringSubmatch(strings.TrimSpace(relPart))
	if match == nil {
		return types.Relationship{}, false
	}

	return types.Relationship{
		Source:      match[1],
		Target:      match[3],
		Cardinality: match[2],
		Label:       unquote(strings.TrimSpace(label)),
	}, true
}

func unquote(label string) string {
	if len(label) >= 2 && strings.HasPrefix(label, `"`) && strings.HasSuffix(label, `"`) {
		return label[1 : len(label)-1]
	}

	return label
}
