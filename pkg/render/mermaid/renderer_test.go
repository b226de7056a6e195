// SPDX-FileCopyrightText: 2025 Christoph Mewes
// SPDX-License-Identifier: MIT

package mermaid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.xrstf.de/mermaid2drawio/pkg/ergraph"
	"go.xrstf.de/mermaid2drawio/pkg/mermaid"
	"go.xrstf.de/mermaid2drawio/pkg/types"
)

func testModel() *types.Model {
	return &types.Model{
		Entities: []types.Entity{
			{Name: "CUSTOMER", Attributes: []string{"string name", "string email"}},
			{Name: "ORDER", Attributes: []string{"int id PK"}},
			{Name: "EMPTY", Attributes: []string{}},
		},
		Relationships: []types.Relationship{
			{Source: "CUSTOMER", Target: "ORDER", Cardinality: "||--o{", Label: "places"},
			{Source: "ORDER", Target: "EMPTY", Cardinality: "}o--||", Label: "belongs to"},
			{Source: "EMPTY", Target: "EMPTY", Cardinality: "||--||", Label: ""},
		},
	}
}

func TestRenderGraph(t *testing.T) {
	g, err := ergraph.New(testModel())
	require.NoError(t, err)

	out, err := New().RenderGraph(g)
	require.NoError(t, err)

	expected := `erDiagram
    CUSTOMER {
        string name
        string email
    }
    ORDER {
        int id PK
    }
    EMPTY {
    }

    CUSTOMER ||--o{ ORDER : places
    ORDER }o--|| EMPTY : "belongs to"
    EMPTY ||--|| EMPTY : ""
`

	assert.Equal(t, expected, out)
}

func TestRenderGraphRoundTrip(t *testing.T) {
	model := testModel()

	g, err := ergraph.New(model)
	require.NoError(t, err)

	out, err := New().RenderGraph(g)
	require.NoError(t, err)

	assert.Equal(t, model, mermaid.Parse(out))
}

func TestRelationshipLabel(t *testing.T) {
	assert.Equal(t, "places", relationshipLabel("places"))
	assert.Equal(t, `"places order"`, relationshipLabel("places order"))
	assert.Equal(t, `""`, relationshipLabel(""))
}
