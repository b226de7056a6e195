// SPDX-FileCopyrightText: 2025 Christoph Mewes
// SPDX-License-Identifier: MIT

// Package convert wires parsing, graph construction and rendering together.
package convert

import (
	"fmt"

	"go.xrstf.de/mermaid2drawio/pkg/ergraph"
	"go.xrstf.de/mermaid2drawio/pkg/mermaid"
	"go.xrstf.de/mermaid2drawio/pkg/render"
	"go.xrstf.de/mermaid2drawio/pkg/render/drawio"
	"go.xrstf.de/mermaid2drawio/pkg/types"
)

// Convert renders the given erDiagram with the renderer. A nil renderer
// produces a draw.io document with default options.
func Convert(text string, renderer render.Renderer) (string, error) {
	_, output, err := ConvertModel(text, renderer)
	return output, err
}

// ConvertModel is like Convert, but also returns the parsed model.
func ConvertModel(text string, renderer render.Renderer) (*types.Model, string, error) {
	if renderer == nil {
		renderer = drawio.New()
	}

	model := mermaid.Parse(text)

	g, err := ergraph.New(model)
	if err != nil {
		return model, "", fmt.Errorf("invalid diagram: %w", err)
	}

	output, err := renderer.RenderGraph(g)
	if err != nil {
		return model, "", fmt.Errorf("failed to render diagram: %w", err)
	}

	return model, output, nil
}
