// SPDX-FileCopyrightText: 2025 Christoph Mewes
// SPDX-License-Identifier: MIT

package mermaid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.xrstf.de/mermaid2drawio/pkg/types"
)

const customerOrders = `
erDiagram
CUSTOMER {
string name
string email
}
ORDER {
int id
}
CUSTOMER ||--o{ ORDER : places
`

func TestParse_CustomerOrders(t *testing.T) {
	model := Parse(customerOrders)

	require.Len(t, model.Entities, 2)
	assert.Equal(t, types.Entity{Name: "CUSTOMER", Attributes: []string{"string name", "string email"}}, model.Entities[0])
	assert.Equal(t, types.Entity{Name: "ORDER", Attributes: []string{"int id"}}, model.Entities[1])

	require.Len(t, model.Relationships, 1)
	assert.Equal(t, types.Relationship{
		Source:      "CUSTOMER",
		Target:      "ORDER",
		Cardinality: "||--o{",
		Label:       "places",
	}, model.Relationships[0])
}

func TestParse_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "erDiagram", "\n\n  \n"} {
		model := Parse(input)
		assert.Empty(t, model.Entities, "input %q", input)
		assert.Empty(t, model.Relationships, "input %q", input)
	}
}

func TestParse_EntityWithoutAttributes(t *testing.T) {
	model := Parse("erDiagram\nEMPTY {\n}\n")

	require.Len(t, model.Entities, 1)
	assert.Equal(t, "EMPTY", model.Entities[0].Name)
	assert.Empty(t, model.Entities[0].Attributes)
}

func TestParse_IndentedBlocks(t *testing.T) {
	input := `erDiagram
    USER {
        int id PK
        string name
    }
    USER ||--|| PROFILE : has
    PROFILE {
    }`

	model := Parse(input)

	assert.Equal(t, []string{"USER", "PROFILE"}, model.EntityNames())
	assert.Equal(t, []string{"int id PK", "string name"}, model.Entities[0].Attributes)
	require.Len(t, model.Relationships, 1)
	assert.Equal(t, "||--||", model.Relationships[0].Cardinality)
}

func TestParse_AttributeOrderIsPreserved(t *testing.T) {
	model := Parse("erDiagram\nT {\nc\na\nb\na\n}")

	require.Len(t, model.Entities, 1)
	assert.Equal(t, []string{"c", "a", "b", "a"}, model.Entities[0].Attributes)
}

func TestParse_RedeclaredEntityKeepsPosition(t *testing.T) {
	input := `erDiagram
A {
x
}
B {
y
}
A {
z
}`

	model := Parse(input)

	assert.Equal(t, []string{"A", "B"}, model.EntityNames())
	assert.Equal(t, []string{"z"}, model.Entities[0].Attributes)
	assert.Equal(t, []string{"y"}, model.Entities[1].Attributes)
}

func TestParse_Relationships(t *testing.T) {
	testcases := []struct {
		name     string
		line     string
		expected *types.Relationship
	}{
		{
			name:     "one to many with label",
			line:     "CUSTOMER ||--o{ ORDER : places",
			expected: &types.Relationship{Source: "CUSTOMER", Target: "ORDER", Cardinality: "||--o{", Label: "places"},
		},
		{
			name:     "no label",
			line:     "CUSTOMER ||--|| ADDRESS",
			expected: &types.Relationship{Source: "CUSTOMER", Target: "ADDRESS", Cardinality: "||--||", Label: ""},
		},
		{
			name:     "empty label",
			line:     "CUSTOMER ||--|| ADDRESS :",
			expected: &types.Relationship{Source: "CUSTOMER", Target: "ADDRESS", Cardinality: "||--||", Label: ""},
		},
		{
			name:     "quoted label",
			line:     `ORDER }o--|| CUSTOMER : "belongs to"`,
			expected: &types.Relationship{Source: "ORDER", Target: "CUSTOMER", Cardinality: "}o--||", Label: "belongs to"},
		},
		{
			name:     "label keeps further colons",
			line:     "A o{--o{ B : ratio: 1:n",
			expected: &types.Relationship{Source: "A", Target: "B", Cardinality: "o{--o{", Label: "ratio: 1:n"},
		},
		{
			name:     "identifiers with digits, underscores and hyphens",
			line:     "line_item-2 }|--|| _order1 : in",
			expected: &types.Relationship{Source: "line_item-2", Target: "_order1", Cardinality: "}|--||", Label: "in"},
		},
		{
			name:     "unknown cardinality is kept verbatim",
			line:     "A ||..|| B",
			expected: &types.Relationship{Source: "A", Target: "B", Cardinality: "||..||", Label: ""},
		},
		{
			name:     "missing target is dropped",
			line:     "CUSTOMER ||--o{ : places",
			expected: nil,
		},
		{
			name:     "identifier must not start with a digit",
			line:     "1CUSTOMER ||--o{ ORDER",
			expected: nil,
		},
		{
			name:     "no cardinality markers is ignored",
			line:     "A --> B",
			expected: nil,
		},
	}

	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			model := Parse("erDiagram\n" + tt.line)

			if tt.expected == nil {
				assert.Empty(t, model.Relationships)
				return
			}

			require.Len(t, model.Relationships, 1)
			assert.Equal(t, *tt.expected, model.Relationships[0])
		})
	}
}

func TestParse_MalformedRelationshipIsNotFatal(t *testing.T) {
	input := `erDiagram
A {
}
B {
}
A ||--o{ : broken
A ||--o{ B : ok`

	model := Parse(input)

	require.Len(t, model.Relationships, 1)
	assert.Equal(t, "ok", model.Relationships[0].Label)
}

func TestParse_RelationshipInsideOpenBlockIsAnAttribute(t *testing.T) {
	input := `erDiagram
A {
int id
A ||--o{ B : oops
}`

	model := Parse(input)

	assert.Empty(t, model.Relationships)
	assert.Equal(t, []string{"int id", "A ||--o{ B : oops"}, model.Entities[0].Attributes)
}

func TestParse_StrayLinesAreIgnored(t *testing.T) {
	model := Parse("erDiagram\nsome random text\nA {\n}\n")

	assert.Equal(t, []string{"A"}, model.EntityNames())
	assert.Empty(t, model.Entities[0].Attributes)
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, IsIdentifier("CUSTOMER"))
	assert.True(t, IsIdentifier("line-item_2"))
	assert.True(t, IsIdentifier("_x"))
	assert.False(t, IsIdentifier("2x"))
	assert.False(t, IsIdentifier("has space"))
	assert.False(t, IsIdentifier(""))
}

func TestParse_UnicodeSpacesInRelationship(t *testing.T) {
	model := Parse("erDiagram\nCUSTOMER\u00a0||--o{\u00a0\u00a0ORDER : places")

	require.Len(t, model.Relationships, 1)
	assert.Equal(t, types.Relationship{
		Source:      "CUSTOMER",
		Target:      "ORDER",
		Cardinality: "||--o{",
		Label:       "places",
	}, model.Relationships[0])
}

func TestParse_NamelessBlockOpensNothing(t *testing.T) {
	input := `erDiagram
A {
int id
{
string stray
}
B {
}
A ||--|| B`

	model := Parse(input)

	assert.Equal(t, []string{"A", "B"}, model.EntityNames())
	assert.Equal(t, []string{"int id"}, model.Entities[0].Attributes)
	assert.Empty(t, model.Entities[1].Attributes)
	assert.Len(t, model.Relationships, 1)
}
