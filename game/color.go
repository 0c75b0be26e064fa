package game

// Color identifies piece ownership and turn order. White moves first.
type Color uint8

const (
	White Color = iota
	Black
)

// Enemy returns the opposing color.
func (c Color) Enemy() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}
