// Package cubie implements the ground-truth permutation/orientation model of
// a 3x3x3 cube: corner and edge permutation/orientation arrays, the 18
// half-turn-metric moves, and the rotation/reflection generators used for
// symmetry conjugation.
package cubie

// Corner and edge slot counts. A full Cube always has exactly these many
// pieces; block-restricted cubes (see package block) use the sentinel
// values below for slots outside the block.
const (
	NumCorners = 8
	NumEdges   = 12
)

// Sentinels marking "no piece of the block occupies this slot" for
// block-restricted cubie cubes. They deliberately sit one past the last
// valid piece index so a block-restricted Cube is never mistaken for a
// complete one by code that forgets to check.
const (
	NoCorner = NumCorners
	NoEdge   = NumEdges
)

// Corner piece labels in the canonical order used throughout the engine
// (block ids, pruning indices, and the elementary transformation table all
// assume this order).
const (
	ULF = iota
	URF
	URB
	ULB
	DLF
	DRF
	DRB
	DLB
)

// Edge piece labels in the canonical order.
const (
	UF = iota
	UR
	UB
	UL
	LF
	RF
	RB
	LB
	DF
	DR
	DB
	DL
)

// Cube is the four-array cubie-level state. CP[i]/EP[i] name which corner
// or edge piece occupies slot i; CO[i]/EO[i] give that piece's orientation.
type Cube struct {
	CP [NumCorners]int
	CO [NumCorners]int
	EP [NumEdges]int
	EO [NumEdges]int
}

// Solved returns the identity cube: every piece in its own slot, every
// orientation zero.
func Solved() Cube {
	var c Cube
	for i := range c.CP {
		c.CP[i] = i
	}
	for i := range c.EP {
		c.EP[i] = i
	}
	return c
}

// IsSolved reports whether c is the identity cube.
func (c Cube) IsSolved() bool {
	return c == Solved()
}

// CornerApply composes m onto c's corners in place: c := c (then) m, using
// the usual cubie-multiplication convention new[i] = old[m[i]].
func (c *Cube) CornerApply(m Cube) {
	var newCP, newCO [NumCorners]int
	for i := 0; i < NumCorners; i++ {
		newCP[i] = c.CP[m.CP[i]]
		newCO[i] = (c.CO[m.CP[i]] + m.CO[i]) % 3
	}
	c.CP = newCP
	c.CO = newCO
}

// EdgeApply composes m onto c's edges in place, analogous to CornerApply.
func (c *Cube) EdgeApply(m Cube) {
	var newEP, newEO [NumEdges]int
	for i := 0; i < NumEdges; i++ {
		newEP[i] = c.EP[m.EP[i]]
		newEO[i] = (c.EO[m.EP[i]] + m.EO[i]) % 2
	}
	c.EP = newEP
	c.EO = newEO
}

// Apply composes m onto c in place, edges then corners.
func (c *Cube) Apply(m Cube) {
	c.EdgeApply(m)
	c.CornerApply(m)
}

// ApplyMove applies a single HTM move by value, returning the result; c is
// left unmodified.
func (c Cube) ApplyMove(m Move) Cube {
	c.Apply(m.Cube())
	return c
}

// ApplySequence applies a sequence of HTM moves in order, returning the
// result.
func (c Cube) ApplySequence(moves []Move) Cube {
	for _, m := range moves {
		c.Apply(m.Cube())
	}
	return c
}

// Inverse returns the cube such that c.Apply(c.Inverse()) is solved.
func (c Cube) Inverse() Cube {
	var inv Cube
	for i := 0; i < NumCorners; i++ {
		inv.CP[c.CP[i]] = i
		inv.CO[c.CP[i]] = (3 - c.CO[i]) % 3
	}
	for i := 0; i < NumEdges; i++ {
		inv.EP[c.EP[i]] = i
		inv.EO[c.EP[i]] = (2 - c.EO[i]) % 2
	}
	return inv
}
