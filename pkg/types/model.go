// SPDX-FileCopyrightText: 2025 Christoph Mewes
// SPDX-License-Identifier: MIT

package types

// Model is the parsed form of an erDiagram. Entities keep the order in which
// they were first declared, as that order drives the diagram layout.
type Model struct {
	Entities      []Entity
	Relationships []Relationship
}

type Entity struct {
	// Name is used verbatim as the diagram node identifier.
	Name string
	// Attributes are the raw attribute lines of the entity block, in source order.
	Attributes []string
}

type Relationship struct {
	Source      string
	Target      string
	Cardinality string
	Label       string
}

// EntityNames returns all entity names in declaration order.
func (m *Model) EntityNames() []string {
	names := make([]string, 0, len(m.Entities))
	for _, e := range m.Entities {
		names = append(names, e.Name)
	}

	return names
}
