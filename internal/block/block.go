// Package block identifies a named subset of a cube's corners and edges and
// converts between full cubie-level state and the compact CoordinateBlockCube
// encoding of that subset's sub-state.
package block

import (
	"fmt"
	"sort"

	"github.com/ehrlich-b/blocksolver/internal/coordinate"
	"github.com/ehrlich-b/blocksolver/internal/cubie"
)

// Block identifies nc distinguished corners and ne distinguished edges by
// their solved-position labels (see the cubie package's Corner/Edge
// constants). Pieces are stored sorted for a unique, order-independent id.
type Block struct {
	Name    string
	Corners []int // sorted, len = nc
	Edges   []int // sorted, len = ne
	ID      string

	Solved CBC

	// Cached sizes, derived once at construction, used by the pruning
	// index formulas (see package pruning).
	NCP, NCO int // nc!, 3^nc
	NEP, NEO int // ne!, 2^ne
}

// New builds a Block for the given corners and edges (need not be
// pre-sorted; New sorts a private copy).
func New(name string, corners, edges []int) *Block {
	c := append([]int{}, corners...)
	e := append([]int{}, edges...)
	sort.Ints(c)
	sort.Ints(e)

	b := &Block{
		Name:    name,
		Corners: c,
		Edges:   e,
		NCP:     coordinate.Factorial(len(c)),
		NCO:     coordinate.IPow(3, len(c)),
		NEP:     coordinate.Factorial(len(e)),
		NEO:     coordinate.IPow(2, len(e)),
	}
	b.ID = b.computeID()
	b.Solved = b.ToCBC(cubie.Solved())
	return b
}

func (b *Block) computeID() string {
	cmask := make([]bool, cubie.NumCorners)
	for _, c := range b.Corners {
		cmask[c] = true
	}
	emask := make([]bool, cubie.NumEdges)
	for _, e := range b.Edges {
		emask[e] = true
	}
	return fmt.Sprintf("%dC%d_%dE%d", len(b.Corners), coordinate.LayoutIndex(cmask), len(b.Edges), coordinate.LayoutIndex(emask))
}

func indexOf(xs []int, v int) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}

func contains(xs []int, v int) bool {
	return indexOf(xs, v) >= 0
}

// ToCBC projects a full cubie-level cube onto this block's coordinates.
func (b *Block) ToCBC(cc cubie.Cube) CBC {
	var cmask [cubie.NumCorners]bool
	cperm := make([]int, 0, len(b.Corners))
	co := make([]int, 0, len(b.Corners))
	for slot := 0; slot < cubie.NumCorners; slot++ {
		piece := cc.CP[slot]
		if piece < cubie.NumCorners && contains(b.Corners, piece) {
			cmask[slot] = true
			cperm = append(cperm, indexOf(b.Corners, piece))
			co = append(co, cc.CO[slot])
		}
	}

	var emask [cubie.NumEdges]bool
	eperm := make([]int, 0, len(b.Edges))
	eo := make([]int, 0, len(b.Edges))
	for slot := 0; slot < cubie.NumEdges; slot++ {
		piece := cc.EP[slot]
		if piece < cubie.NumEdges && contains(b.Edges, piece) {
			emask[slot] = true
			eperm = append(eperm, indexOf(b.Edges, piece))
			eo = append(eo, cc.EO[slot])
		}
	}

	return CBC{
		CCL: coordinate.LayoutIndex(cmask[:]),
		CEL: coordinate.LayoutIndex(emask[:]),
		CCP: coordinate.PermutationIndex(cperm),
		CEP: coordinate.PermutationIndex(eperm),
		CCO: coordinate.CornerOrientationIndex(co),
		CEO: coordinate.EdgeOrientationIndex(eo),
	}
}

// ToCube expands this block's CBC into a block-restricted cubie cube:
// slots not occupied by a block piece carry the sentinel values (NoCorner/
// NoEdge, orientation 3/2) and the result is not composable as a right
// multiplicator, matching the cubie package's own documented restriction.
func (b *Block) ToCube(cbc CBC) cubie.Cube {
	var cc cubie.Cube
	for i := range cc.CP {
		cc.CP[i] = cubie.NoCorner
		cc.CO[i] = 3
	}
	for i := range cc.EP {
		cc.EP[i] = cubie.NoEdge
		cc.EO[i] = 2
	}

	cmask := coordinate.LayoutFromIndex(cbc.CCL, cubie.NumCorners, len(b.Corners))
	cperm := coordinate.PermutationFromIndex(cbc.CCP, len(b.Corners))
	co := coordinate.CornerOrientationFromIndex(cbc.CCO, len(b.Corners))
	rank := 0
	for slot := 0; slot < cubie.NumCorners; slot++ {
		if cmask[slot] {
			cc.CP[slot] = b.Corners[cperm[rank]]
			cc.CO[slot] = co[rank]
			rank++
		}
	}

	emask := coordinate.LayoutFromIndex(cbc.CEL, cubie.NumEdges, len(b.Edges))
	eperm := coordinate.PermutationFromIndex(cbc.CEP, len(b.Edges))
	eo := coordinate.EdgeOrientationFromIndex(cbc.CEO, len(b.Edges))
	rank = 0
	for slot := 0; slot < cubie.NumEdges; slot++ {
		if emask[slot] {
			cc.EP[slot] = b.Edges[eperm[rank]]
			cc.EO[slot] = eo[rank]
			rank++
		}
	}

	return cc
}

// IsSolved reports whether cbc is this block's solved coordinate.
func (b *Block) IsSolved(cbc CBC) bool {
	return cbc.Equal(b.Solved)
}

// NCorners and NEdges report the block's piece counts.
func (b *Block) NCorners() int { return len(b.Corners) }
func (b *Block) NEdges() int   { return len(b.Edges) }

// NCornerLayouts and NEdgeLayouts report C(8,nc) and C(12,ne).
func (b *Block) NCornerLayouts() int { return coordinate.Binomial(cubie.NumCorners, len(b.Corners)) }
func (b *Block) NEdgeLayouts() int   { return coordinate.Binomial(cubie.NumEdges, len(b.Edges)) }

// CIndex and EIndex pack a CBC's corner (resp. edge) fields into the
// pruning-table sub-index used by package pruning: ccl*nc!*3^nc +
// ccp*3^nc + cco, and the symmetric edge formula.
func (b *Block) CIndex(cbc CBC) int {
	return cbc.CCL*b.NCP*b.NCO + cbc.CCP*b.NCO + cbc.CCO
}

func (b *Block) EIndex(cbc CBC) int {
	return cbc.CEL*b.NEP*b.NEO + cbc.CEP*b.NEO + cbc.CEO
}

// NCornerStates and NEdgeStates are the full corner/edge state-space sizes
// used to size a pruning table.
func (b *Block) NCornerStates() int { return b.NCornerLayouts() * b.NCP * b.NCO }
func (b *Block) NEdgeStates() int   { return b.NEdgeLayouts() * b.NEP * b.NEO }
