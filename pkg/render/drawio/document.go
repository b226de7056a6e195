// SPDX-FileCopyrightText: 2025 Christoph Mewes
// SPDX-License-Identifier: MIT

package drawio

import "encoding/xml"

// File is the root element of a draw.io document.
type File struct {
	XMLName  xml.Name `xml:"mxfile"`
	Host     string   `xml:"host,attr"`
	Modified string   `xml:"modified,attr"`
	Agent    string   `xml:"agent,attr"`
	Version  string   `xml:"version,attr"`
	Diagram  Diagram  `xml:"diagram"`
}

type Diagram struct {
	Name  string     `xml:"name,attr"`
	ID    string     `xml:"id,attr"`
	Model GraphModel `xml:"mxGraphModel"`
}

type GraphModel struct {
	Dx         int  `xml:"dx,attr"`
	Dy         int  `xml:"dy,attr"`
	Grid       int  `xml:"grid,attr"`
	GridSize   int  `xml:"gridSize,attr"`
	Guides     int  `xml:"guides,attr"`
	Tooltips   int  `xml:"tooltips,attr"`
	Connect    int  `xml:"connect,attr"`
	Arrows     int  `xml:"arrows,attr"`
	Fold       int  `xml:"fold,attr"`
	Page       int  `xml:"page,attr"`
	PageScale  int  `xml:"pageScale,attr"`
	PageWidth  int  `xml:"pageWidth,attr"`
	PageHeight int  `xml:"pageHeight,attr"`
	Math       int  `xml:"math,attr"`
	Shadow     int  `xml:"shadow,attr"`
	Root       Root `xml:"root"`
}

type Root struct {
	Cells []Cell `xml:"mxCell"`
}

// Cell is a vertex, an edge or one of the two base cells.
type Cell struct {
	ID       string    `xml:"id,attr"`
	Value    *string   `xml:"value,attr,omitempty"`
	Style    string    `xml:"style,attr,omitempty"`
	Vertex   string    `xml:"vertex,attr,omitempty"`
	Edge     string    `xml:"edge,attr,omitempty"`
	Parent   string    `xml:"parent,attr,omitempty"`
	Source   string    `xml:"source,attr,omitempty"`
	Target   string    `xml:"target,attr,omitempty"`
	Geometry *Geometry `xml:"mxGeometry"`
}

func (c Cell) IsVertex() bool {
	return c.Vertex == "1"
}

func (c Cell) IsEdge() bool {
	return c.Edge == "1"
}

type Geometry struct {
	X        int    `xml:"x,attr,omitempty"`
	Y        int    `xml:"y,attr,omitempty"`
	Width    int    `xml:"width,attr,omitempty"`
	Height   int    `xml:"height,attr,omitempty"`
	Relative string `xml:"relative,attr,omitempty"`
	As       string `xml:"as,attr"`
}

// newGraphModel returns the fixed canvas settings.
func newGraphModel() GraphModel {
	return GraphModel{
		Dx:         1000,
		Dy:         600,
		Grid:       1,
		GridSize:   10,
		Guides:     1,
		Tooltips:   1,
		Connect:    1,
		Arrows:     1,
		Fold:       1,
		Page:       1,
		PageScale:  1,
		PageWidth:  1600,
		PageHeight: 1200,
		Math:       0,
		Shadow:     0,
	}
}
