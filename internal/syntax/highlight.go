package syntax

import "github.com/lucasb-eyer/go-colorful"

// palette cycles by nesting depth so that deeper bracket groups read as
// visually distinct bands; a real grammar would instead key off token class.
var palette = []colorful.Color{
	colorful.Color{R: 0.85, G: 0.85, B: 0.85},
	colorful.Color{R: 0.53, G: 0.80, B: 0.92},
	colorful.Color{R: 0.60, G: 0.85, B: 0.60},
	colorful.Color{R: 0.95, G: 0.75, B: 0.45},
	colorful.Color{R: 0.90, G: 0.55, B: 0.55},
}

// Colors computes one colorful.Color per byte of text, derived from the
// bracket-nesting depth the default Parser produced in tree. Populates
// Buffer.colors in RecalcTree.
func Colors(text string, tree *Tree) []colorful.Color {
	colors := make([]colorful.Color, len(text))
	if tree == nil || tree.Root == nil {
		for i := range colors {
			colors[i] = palette[0]
		}
		return colors
	}
	paintDepth(tree.Root, 0, colors)
	return colors
}

func paintDepth(n Node, depth int, colors []colorful.Color) {
	color := palette[depth%len(palette)]
	start, end := n.Start(), n.End()
	if end > len(colors) {
		end = len(colors)
	}
	for i := start; i < end; i++ {
		colors[i] = color
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		paintDepth(c, depth+1, colors)
	}
}
