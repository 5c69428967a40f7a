package core

// Shape is the kind of a draw primitive.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeEllipse
	ShapeText
	ShapeOutline
)

// Layer orders primitives so platforms can tell board content from overlays.
type Layer int

const (
	LayerBoard Layer = iota
	LayerHUD
	LayerOverlay
)

// Primitive is one renderer-neutral draw instruction.
// Bounds are in pixel units of the frame's grid; text primitives use
// Bounds.X/Y as the anchor and Align to position the label.
type Primitive struct {
	Shape  Shape
	Layer  Layer
	Bounds Rect
	Color  Color
	Text   string
	Align  Align
}

// Align is the horizontal alignment of a text primitive.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Frame is an ordered list of primitives describing one displayable picture.
type Frame struct {
	Grid       Grid
	Primitives []Primitive
}

// Add appends a primitive.
func (f *Frame) Add(p Primitive) {
	f.Primitives = append(f.Primitives, p)
}

// Texts returns the text of every text primitive, in draw order.
func (f Frame) Texts() []string {
	var out []string
	for _, p := range f.Primitives {
		if p.Shape == ShapeText {
			out = append(out, p.Text)
		}
	}
	return out
}
