// SPDX-FileCopyrightText: 2025 Christoph Mewes
// SPDX-License-Identifier: MIT

package drawio

import (
	"fmt"
	"slices"
	"strconv"
)

type Layout string

const (
	// LayoutSlots places entities on a fixed table of 8 positions. The 9th
	// entity reuses the 1st position and so on, so large diagrams overlap.
	LayoutSlots Layout = "slots"
	// LayoutGrid places entities row by row on a grid with a configurable
	// number of columns.
	LayoutGrid Layout = "grid"
)

func AllLayouts() []Layout {
	return []Layout{LayoutSlots, LayoutGrid}
}

func (l Layout) Validate() error {
	if !slices.Contains(AllLayouts(), l) {
		return fmt.Errorf("invalid layout %q, must be one of %v", l, AllLayouts())
	}

	return nil
}

const (
	entityWidth  = 200
	headerHeight = 30
	rowHeight    = 22

	gridOriginX  = 40
	gridOriginY  = 40
	gridSpacingX = 550
	gridSpacingY = 510
)

type Point struct {
	X int
	Y int
}

var slotPositions = []Point{
	{X: 40, Y: 40},
	{X: 590, Y: 40},
	{X: 1140, Y: 40},
	{X: 40, Y: 550},
	{X: 590, Y: 550},
	{X: 1140, Y: 550},
	{X: 1690, Y: 550},
	{X: 2240, Y: 550},
}

// position returns the canvas position of the n-th entity.
func position(layout Layout, columns int, index int) Point {
	switch layout {
	case LayoutGrid:
		if columns < 1 {
			columns = 1
		}

		return Point{
			X: gridOriginX + (index%columns)*gridSpacingX,
			Y: gridOriginY + (index/columns)*gridSpacingY,
		}

	default:
		return slotPositions[index%len(slotPositions)]
	}
}

func entityHeight(attributes int) int {
	return headerHeight + attributes*rowHeight
}

// anchor is the pair of connection points of an edge, as fractions of the
// source and target node's width and height.
type anchor struct {
	exitX, exitY   float64
	entryX, entryY float64
}

// anchorsFor routes edges horizontally unless the entities are further apart
// vertically than horizontally. Ties are routed horizontally.
func anchorsFor(from, to Point) anchor {
	dx := to.X - from.X
	dy := to.Y - from.Y

	if abs(dx) >= abs(dy) {
		if dx > 0 {
			return anchor{exitX: 1, exitY: 0.5, entryX: 0, entryY: 0.5}
		}

		return anchor{exitX: 0, exitY: 0.5, entryX: 1, entryY: 0.5}
	}

	if dy > 0 {
		return anchor{exitX: 0.5, exitY: 1, entryX: 0.5, entryY: 0}
	}

	return anchor{exitX: 0.5, exitY: 0, entryX: 0.5, entryY: 1}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}

	return i
}

func formatFraction(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
