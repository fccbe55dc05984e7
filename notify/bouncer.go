package notify

type Bouncer struct {
	X, Y   int
	DX, DY int

	maxX, maxY int
}

// NewBouncer keeps a box of w x h inside a canvas of width x height.
func NewBouncer(w, h, width, height int) *Bouncer {
	maxX, maxY := width-w, height-h
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	return &Bouncer{DX: 1, DY: 1, maxX: maxX, maxY: maxY}
}

// Step moves one cell and reverses direction at an edge.
func (b *Bouncer) Step() {
	b.X, b.DX = bounce(b.X, b.DX, b.maxX)
	b.Y, b.DY = bounce(b.Y, b.DY, b.maxY)
}

func bounce(pos, dir, max int) (int, int) {
	if max == 0 {
		return 0, dir
	}
	next := pos + dir
	if next < 0 || next > max {
		dir = -dir
		next = pos + dir
	}
	return next, dir
}
