// SPDX-FileCopyrightText: 2025 Christoph Mewes
// SPDX-License-Identifier: MIT

package drawio

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"go.xrstf.de/mermaid2drawio/pkg/ergraph"
	"go.xrstf.de/mermaid2drawio/pkg/render"
	"go.xrstf.de/mermaid2drawio/pkg/types"
)

const (
	host        = "app.diagrams.net"
	agent       = "mermaid2drawio"
	version     = "21.0.0"
	diagramName = "ER Diagram"
	diagramID   = "diagram_1"

	// TimestampFormat is the format of the "modified" attribute.
	TimestampFormat = "2006-01-02T15:04:05.000Z"
)

type Options struct {
	Layout  Layout
	Columns int
	// Timestamp is written into the document's "modified" attribute; if
	// zero, the current time is used.
	Timestamp time.Time
}

func NewDefaultOptions() Options {
	return Options{
		Layout:  LayoutSlots,
		Columns: 4,
	}
}

type renderer struct {
	opts      Options
	layout    string
	timestamp string
}

var _ render.Renderer = &renderer{}

func New() *renderer {
	return NewWithOptions(NewDefaultOptions())
}

func NewWithOptions(opts Options) *renderer {
	return &renderer{
		opts:   opts,
		layout: string(opts.Layout),
	}
}

func (r *renderer) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&r.layout, "drawio-layout", "", r.layout, fmt.Sprintf("draw.io: entity layout (one of %v)", AllLayouts()))
	fs.IntVarP(&r.opts.Columns, "drawio-columns", "", r.opts.Columns, "draw.io: number of columns for the grid layout")
	fs.StringVarP(&r.timestamp, "drawio-timestamp", "", r.timestamp, "draw.io: fixed modification timestamp (RFC3339) for reproducible output")
}

func (r *renderer) ValidateFlags() error {
	layout := Layout(r.layout)
	if err := layout.Validate(); err != nil {
		return err
	}
	r.opts.Layout = layout

	if r.opts.Columns < 1 {
		return errors.New("--drawio-columns must be at least 1")
	}

	if r.timestamp != "" {
		ts, err := time.Parse(time.RFC3339, r.timestamp)
		if err != nil {
			return fmt.Errorf("invalid --drawio-timestamp: %w", err)
		}
		r.opts.Timestamp = ts
	}

	return nil
}

func (r *renderer) RenderGraph(g ergraph.Graph) (string, error) {
	doc, err := r.Document(g)
	if err != nil {
		return "", err
	}

	encoded, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	return xml.Header + string(encoded), nil
}

// Document lays out all entities and relationships.
func (r *renderer) Document(g ergraph.Graph) (*File, error) {
	ts := r.opts.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	cells := []Cell{
		{ID: "0"},
		{ID: "1", Parent: "0"},
	}

	// draw.io cell IDs for edges continue counting after all entity and
	// attribute cells
	cellID := 2

	for _, node := range g.Entities() {
		entity := node.Entity
		pos := r.position(node)

		cells = append(cells, Cell{
			ID:     entity.Name,
			Value:  ptr(entity.Name),
			Style:  entityStyle,
			Vertex: "1",
			Parent: "1",
			Geometry: &Geometry{
				X:      pos.X,
				Y:      pos.Y,
				Width:  entityWidth,
				Height: entityHeight(len(entity.Attributes)),
				As:     "geometry",
			},
		})

		for idx, attr := range entity.Attributes {
			cells = append(cells, Cell{
				ID:     attributeID(entity.Name, idx),
				Value:  ptr(attr),
				Style:  attributeStyle,
				Vertex: "1",
				Parent: entity.Name,
				Geometry: &Geometry{
					Y:      headerHeight + idx*rowHeight,
					Width:  entityWidth,
					Height: rowHeight,
					As:     "geometry",
				},
			})
		}

		cellID += 1 + len(entity.Attributes)
	}

	for _, rel := range g.Relationships() {
		source, err := g.Node(rel.Source)
		if err != nil {
			return nil, &types.MissingEntityError{Entity: rel.Source, Relationship: rel}
		}

		target, err := g.Node(rel.Target)
		if err != nil {
			return nil, &types.MissingEntityError{Entity: rel.Target, Relationship: rel}
		}

		from, to := r.position(source), r.position(target)

		start, end := ArrowsFor(rel.Cardinality)

		cells = append(cells, Cell{
			ID:     "rel" + strconv.Itoa(cellID),
			Value:  ptr(rel.Label),
			Style:  edgeStyle(start, end, anchorsFor(from, to)),
			Edge:   "1",
			Parent: "1",
			Source: rel.Source,
			Target: rel.Target,
			Geometry: &Geometry{
				Relative: "1",
				As:       "geometry",
			},
		})

		cellID++
	}

	model := newGraphModel()
	model.Root = Root{Cells: cells}

	return &File{
		Host:     host,
		Modified: ts.UTC().Format(TimestampFormat),
		Agent:    agent,
		Version:  version,
		Diagram: Diagram{
			Name:  diagramName,
			ID:    diagramID,
			Model: model,
		},
	}, nil
}

func (r *renderer) position(node ergraph.Node) Point {
	return position(r.opts.Layout, r.opts.Columns, node.Index)
}

func attributeID(entity string, index int) string {
	return fmt.Sprintf("%s_attr%d", entity, index)
}

func ptr(s string) *string {
	return &s
}
