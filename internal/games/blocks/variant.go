package blocks

import "github.com/vovakirdan/tui-blocks/internal/core"

// Variant identifies one of the seven piece shapes.
type Variant uint8

const (
	VariantL1 Variant = iota
	VariantL2
	VariantSquare
	VariantBar
	VariantT
	VariantZ1
	VariantZ2

	variantCount
)

// shape is the constant geometry of a variant in its canonical orientation.
// Offsets are relative to the piece anchor, which is the top-left corner of
// the canonical bounding box.
type shape struct {
	name    string
	offsets [4]core.Point
	pivot   int // index of the rotation center in offsets, -1 if the shape never rotates
	color   core.Color
}

var shapes = [variantCount]shape{
	VariantL1: {
		name:    "L1",
		offsets: [4]core.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
		pivot:   1,
		color:   core.ColorOrange,
	},
	VariantL2: {
		name:    "L2",
		offsets: [4]core.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}},
		pivot:   1,
		color:   core.ColorBlue,
	},
	VariantSquare: {
		name:    "Square",
		offsets: [4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		pivot:   -1,
		color:   core.ColorYellow,
	},
	VariantBar: {
		name:    "Bar",
		offsets: [4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
		pivot:   1,
		color:   core.ColorCyan,
	},
	VariantT: {
		name:    "T",
		offsets: [4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}},
		pivot:   1,
		color:   core.ColorMagenta,
	},
	VariantZ1: {
		name:    "Z1",
		offsets: [4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		pivot:   1,
		color:   core.ColorRed,
	},
	VariantZ2: {
		name:    "Z2",
		offsets: [4]core.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		pivot:   0,
		color:   core.ColorGreen,
	},
}

// AllVariants returns every variant in declaration order.
func AllVariants() []Variant {
	out := make([]Variant, variantCount)
	for i := range out {
		out[i] = Variant(i)
	}
	return out
}

// Valid reports whether v names a real shape.
func (v Variant) Valid() bool {
	return v < variantCount
}

// String returns the shape name.
func (v Variant) String() string {
	if !v.Valid() {
		return "Unknown"
	}
	return shapes[v].name
}

// Color returns the visual tag that cells of this variant carry.
func (v Variant) Color() core.Color {
	if !v.Valid() {
		return core.ColorDefault
	}
	return shapes[v].color
}

// Offsets returns the canonical cell offsets.
func (v Variant) Offsets() [4]core.Point {
	return shapes[v].offsets
}
