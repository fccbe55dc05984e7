package liar

import "math/rand"

const Chambers = 6

// Revolver holds one loaded chamber out of six. The cylinder is shuffled
// again as soon as all six chambers have been fired.
type Revolver struct {
	rand     *rand.Rand
	chambers [Chambers]bool
	fired    int
}

func NewRevolver(r *rand.Rand) *Revolver {
	revolver := &Revolver{rand: r}
	revolver.spin()
	return revolver
}

// Fire draws the next chamber and reports whether it was loaded. The sixth
// draw spins the cylinder for the next cycle.
func (r *Revolver) Fire() bool {
	loaded := r.chambers[r.fired]
	r.fired++
	if r.fired == Chambers {
		r.spin()
	}
	return loaded
}

// Remaining is the number of chambers left before the next spin.
func (r *Revolver) Remaining() int {
	return Chambers - r.fired
}

func (r *Revolver) spin() {
	r.chambers = [Chambers]bool{}
	r.chambers[r.rand.Intn(Chambers)] = true
	r.fired = 0
}
