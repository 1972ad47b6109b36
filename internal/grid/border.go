package grid

// Border is the glyph set drawn between and under columns.
type Border struct {
	Vertical     string
	Horizontal   string
	Intersection string
}

var (
	NormalBorder = Border{Vertical: "│", Horizontal: "─", Intersection: "┼"}
	DoubleBorder = Border{Vertical: "║", Horizontal: "═", Intersection: "╬"}
	ASCIIBorder  = Border{Vertical: "|", Horizontal: "-", Intersection: "+"}
)
