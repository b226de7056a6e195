// SPDX-FileCopyrightText: 2025 Christoph Mewes
// SPDX-License-Identifier: MIT

package drawio

// Arrow is a draw.io arrow head style.
type Arrow string

const (
	ArrowNone       Arrow = "none"
	ArrowOne        Arrow = "ERone"
	ArrowZeroToMany Arrow = "ERzeroToMany"
)

// ArrowsFor returns the arrow heads for the source (start) and target (end)
// end of a relationship. Unknown cardinalities result in plain connectors.
func ArrowsFor(cardinality string) (start Arrow, end Arrow) {
	switch cardinality {
	case "||--||":
		return ArrowOne, ArrowOne
	case "||--o{", "||--|{":
		return ArrowOne, ArrowZeroToMany
	case "}o--||":
		return ArrowZeroToMany, ArrowOne
	case "o{--o{":
		return ArrowZeroToMany, ArrowZeroToMany
	default:
		return ArrowNone, ArrowNone
	}
}
