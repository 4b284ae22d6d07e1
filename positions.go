package booklist

// Position names the two symbolic insert targets.
type Position int

const (
	// Top inserts at offset 0.
	Top Position = iota
	// Bottom inserts after the current last element.
	Bottom
)

// String returns a string representation of the Position.
func (p Position) String() string {
	switch p {
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}
