// SPDX-FileCopyrightText: 2025 Christoph Mewes
// SPDX-License-Identifier: MIT

package drawio

import (
	"strings"

	"go.xrstf.de/mermaid2drawio/pkg/types"
)

const (
	entityStyle    = "swimlane;fontStyle=1;align=center;verticalAlign=top;childLayout=stackLayout;horizontal=1;startSize=30;horizontalStack=0;resizeParent=1;resizeParentMax=0;resizeLast=0;collapsible=0;marginBottom=0;fillColor=#dae8fc;strokeColor=#6c8ebf;"
	attributeStyle = "text;strokeColor=none;fillColor=none;align=left;verticalAlign=middle;spacingLeft=4;spacingRight=4;overflow=hidden;rotatable=0;points=[[0,0.5],[1,0.5]];portConstraint=eastwest;"
)

// style is an ordered list of draw.io style properties.
type style [][2]string

func (s style) Set(key, value string) style {
	return append(s, [2]string{key, value})
}

func (s style) String() string {
	var buf types.StringBuilder
	for _, kv := range s {
		buf.Printf("%s=%s;", kv[0], kv[1])
	}

	return buf.String()
}

func edgeStyle(start, end Arrow, a anchor) string {
	return style{}.
		Set("edgeStyle", "curvedEdgeStyle").
		Set("rounded", "0").
		Set("orthogonalLoop", "0").
		Set("jettySize", "auto").
		Set("html", "1").
		Set("routing", "1").
		Set("startArrow", string(start)).
		Set("startFill", "0").
		Set("endArrow", string(end)).
		Set("endFill", "0").
		Set("exitX", formatFraction(a.exitX)).
		Set("exitY", formatFraction(a.exitY)).
		Set("entryX", formatFraction(a.entryX)).
		Set("entryY", formatFraction(a.entryY)).
		String()
}

// ParseStyle splits a draw.io style string into its properties.
func ParseStyle(s string) map[string]string {
	result := map[string]string{}

	for _, part := range strings.Split(s, ";") {
		if part == "" {
			continue
		}

		key, value, _ := strings.Cut(part, "=")
		result[key] = value
	}

	return result
}
