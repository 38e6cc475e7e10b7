package cubie

// Move is one of the 18 half-turn-metric face turns. The integer values are
// the exact wire tags external callers (notation parsers, table files) use,
// fixed so move tables generated by one build stay valid for another.
type Move int

const (
	U Move = iota
	U2
	U3
	D
	D2
	D3
	R
	R2
	R3
	L
	L2
	L3
	F
	F2
	F3
	B
	B2
	B3
	NumHTMMoves
)

var moveNames = [NumHTMMoves]string{
	"U", "U2", "U'", "D", "D2", "D'",
	"R", "R2", "R'", "L", "L2", "L'",
	"F", "F2", "F'", "B", "B2", "B'",
}

func (m Move) String() string {
	if m < 0 || int(m) >= len(moveNames) {
		return "?"
	}
	return moveNames[m]
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return inverseOfHTMMoves[m]
}

var inverseOfHTMMoves = [NumHTMMoves]Move{
	U: U3, U2: U2, U3: U,
	D: D3, D2: D2, D3: D,
	R: R3, R2: R2, R3: R,
	L: L3, L2: L2, L3: L,
	F: F3, F2: F2, F3: F,
	B: B3, B2: B2, B3: B,
}

// Cube returns the elementary CubieCube for this move.
func (m Move) Cube() Cube {
	return elementaryTransformations[m]
}

// Face identifies which of the 6 faces a move turns; used by the
// face-successor move-restriction relation.
type Face int

const (
	FaceU Face = iota
	FaceD
	FaceR
	FaceL
	FaceF
	FaceB
)

// Face returns the face this move turns.
func (m Move) Face() Face {
	switch {
	case m >= U && m <= U3:
		return FaceU
	case m >= D && m <= D3:
		return FaceD
	case m >= R && m <= R3:
		return FaceR
	case m >= L && m <= L3:
		return FaceL
	case m >= F && m <= F3:
		return FaceF
	default:
		return FaceB
	}
}

// AllHTMMoves lists the 18 moves in wire order.
var AllHTMMoves = [NumHTMMoves]Move{U, U2, U3, D, D2, D3, R, R2, R3, L, L2, L3, F, F2, F3, B, B2, B3}

// Rotation identifies one of the seven symmetry entries (the four
// generators S_URF, z2, y and the left-right mirror, plus the redundant
// S_URF2, y2 and y3 convenience powers) stored alongside the 18 HTM moves
// in the elementary transformation table.
type Rotation int

const (
	RotSURF Rotation = iota + Rotation(NumHTMMoves)
	RotSURF2
	RotZ2
	RotY
	RotY2
	RotY3
	RotLR
	numElementary
)

// Cube returns the elementary CubieCube for this rotation/reflection.
func (r Rotation) Cube() Cube {
	return elementaryTransformations[r]
}

// NumElementary is the width of the combined elementary transformation
// table: the 18 HTM moves followed by the 7 symmetry generators. Move
// tables are generated over this full alphabet so a single table serves
// both move application and symmetry-conjugated coordinate lookups.
const NumElementary = int(numElementary)

// ElementaryCube returns the CubieCube at slot i of the combined 25-entry
// elementary transformation table (moves 0..17, generators 18..24).
func ElementaryCube(i int) Cube {
	return elementaryTransformations[i]
}

// elementaryTransformations holds, at indices 0..17, the 18 HTM moves in
// wire order, and at indices 18..24, the symmetry generators: S_URF, its
// inverse S_URF2, the z2 rotation, and y, y2, y3 (y cubed = y'), and the
// left-right mirror S_LR.
var elementaryTransformations = [numElementary]Cube{
	U: {
		CP: [8]int{1, 2, 3, 0, 4, 5, 6, 7},
		CO: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int{1, 2, 3, 0, 4, 5, 6, 7, 8, 9, 10, 11},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	U2: {
		CP: [8]int{2, 3, 0, 1, 4, 5, 6, 7},
		CO: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int{2, 3, 0, 1, 4, 5, 6, 7, 8, 9, 10, 11},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	U3: {
		CP: [8]int{3, 0, 1, 2, 4, 5, 6, 7},
		CO: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int{3, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	D: {
		CP: [8]int{0, 1, 2, 3, 7, 4, 5, 6},
		CO: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int{0, 1, 2, 3, 4, 5, 6, 7, 11, 8, 9, 10},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	D2: {
		CP: [8]int{0, 1, 2, 3, 6, 7, 4, 5},
		CO: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int{0, 1, 2, 3, 4, 5, 6, 7, 10, 11, 8, 9},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	D3: {
		CP: [8]int{0, 1, 2, 3, 5, 6, 7, 4},
		CO: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int{0, 1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 8},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	R: {
		CP: [8]int{0, 5, 1, 3, 4, 6, 2, 7},
		CO: [8]int{0, 2, 1, 0, 0, 1, 2, 0},
		EP: [12]int{0, 5, 2, 3, 4, 9, 1, 7, 8, 6, 10, 11},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	R2: {
		CP: [8]int{0, 6, 5, 3, 4, 2, 1, 7},
		CO: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int{0, 9, 2, 3, 4, 6, 5, 7, 8, 1, 10, 11},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	R3: {
		CP: [8]int{0, 2, 6, 3, 4, 1, 5, 7},
		CO: [8]int{0, 2, 1, 0, 0, 1, 2, 0},
		EP: [12]int{0, 6, 2, 3, 4, 1, 9, 7, 8, 5, 10, 11},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	L: {
		CP: [8]int{3, 1, 2, 7, 0, 5, 6, 4},
		CO: [8]int{1, 0, 0, 2, 2, 0, 0, 1},
		EP: [12]int{0, 1, 2, 7, 3, 5, 6, 11, 8, 9, 10, 4},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	L2: {
		CP: [8]int{7, 1, 2, 4, 3, 5, 6, 0},
		CO: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int{0, 1, 2, 11, 7, 5, 6, 4, 8, 9, 10, 3},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	L3: {
		CP: [8]int{4, 1, 2, 0, 7, 5, 6, 3},
		CO: [8]int{1, 0, 0, 2, 2, 0, 0, 1},
		EP: [12]int{0, 1, 2, 4, 11, 5, 6, 3, 8, 9, 10, 7},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	F: {
		CP: [8]int{4, 0, 2, 3, 5, 1, 6, 7},
		CO: [8]int{2, 1, 0, 0, 1, 2, 0, 0},
		EP: [12]int{4, 1, 2, 3, 8, 0, 6, 7, 5, 9, 10, 11},
		EO: [12]int{1, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0, 0},
	},
	F2: {
		CP: [8]int{5, 4, 2, 3, 1, 0, 6, 7},
		CO: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int{8, 1, 2, 3, 5, 4, 6, 7, 0, 9, 10, 11},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	F3: {
		CP: [8]int{1, 5, 2, 3, 0, 4, 6, 7},
		CO: [8]int{2, 1, 0, 0, 1, 2, 0, 0},
		EP: [12]int{5, 1, 2, 3, 0, 8, 6, 7, 4, 9, 10, 11},
		EO: [12]int{1, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0, 0},
	},
	B: {
		CP: [8]int{0, 1, 6, 2, 4, 5, 7, 3},
		CO: [8]int{0, 0, 2, 1, 0, 0, 1, 2},
		EP: [12]int{0, 1, 6, 3, 4, 5, 10, 2, 8, 9, 7, 11},
		EO: [12]int{0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 1, 0},
	},
	B2: {
		CP: [8]int{0, 1, 7, 6, 4, 5, 3, 2},
		CO: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int{0, 1, 10, 3, 4, 5, 7, 6, 8, 9, 2, 11},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	B3: {
		CP: [8]int{0, 1, 3, 7, 4, 5, 2, 6},
		CO: [8]int{0, 0, 2, 1, 0, 0, 1, 2},
		EP: [12]int{0, 1, 7, 3, 4, 5, 2, 10, 8, 9, 6, 11},
		EO: [12]int{0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 1, 0},
	},
	RotSURF: {
		CP: [8]int{5, 1, 0, 4, 6, 2, 3, 7},
		CO: [8]int{2, 1, 2, 1, 1, 2, 1, 2},
		EP: [12]int{5, 0, 4, 8, 9, 1, 3, 11, 6, 2, 7, 10},
		EO: [12]int{0, 1, 0, 1, 1, 1, 1, 1, 0, 1, 0, 1},
	},
	RotSURF2: {
		CP: [8]int{2, 1, 5, 6, 3, 0, 4, 7},
		CO: [8]int{1, 2, 1, 2, 2, 1, 2, 1},
		EP: [12]int{1, 5, 9, 6, 2, 0, 8, 10, 3, 4, 11, 7},
		EO: [12]int{1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1},
	},
	RotZ2: {
		CP: [8]int{5, 4, 7, 6, 1, 0, 3, 2},
		CO: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int{8, 11, 10, 9, 5, 4, 7, 6, 0, 3, 2, 1},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	RotY: {
		CP: [8]int{1, 2, 3, 0, 5, 6, 7, 4},
		CO: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int{1, 2, 3, 0, 5, 6, 7, 4, 9, 10, 11, 8},
		EO: [12]int{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0},
	},
	RotY2: {
		CP: [8]int{2, 3, 0, 1, 6, 7, 4, 5},
		CO: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int{2, 3, 0, 1, 6, 7, 4, 5, 10, 11, 8, 9},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	RotY3: {
		CP: [8]int{3, 0, 1, 2, 7, 4, 5, 6},
		CO: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int{3, 0, 1, 2, 7, 4, 5, 6, 11, 8, 9, 10},
		EO: [12]int{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0},
	},
	RotLR: {
		CP: [8]int{1, 0, 3, 2, 5, 4, 7, 6},
		CO: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int{0, 3, 2, 1, 5, 4, 7, 6, 8, 11, 10, 9},
		EO: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
}

// AllowedNext returns the set of moves legal immediately after m under the
// face-successor relation: no move on the same face, and for an
// opposite-face pair the lower-numbered face may not follow the higher one
// (D may follow U, but U may not follow D). This relation is shared verbatim by move-table generation,
// pruning-table generation and search; using it inconsistently between
// those three breaks pruning admissibility.
func AllowedNext(m Move) []Move {
	return allowedNext[m.Face()]
}

// FirstMoveDirections is the direction set for a node with no preceding
// move (the search root): all 18 moves are legal.
func FirstMoveDirections() []Move {
	return AllHTMMoves[:]
}

var (
	afterU = []Move{D, D2, D3, R, R2, R3, L, L2, L3, F, F2, F3, B, B2, B3}
	afterD = []Move{R, R2, R3, L, L2, L3, F, F2, F3, B, B2, B3}
	afterR = []Move{U, U2, U3, D, D2, D3, L, L2, L3, F, F2, F3, B, B2, B3}
	afterL = []Move{U, U2, U3, D, D2, D3, F, F2, F3, B, B2, B3}
	afterF = []Move{U, U2, U3, D, D2, D3, R, R2, R3, L, L2, L3, B, B2, B3}
	afterB = []Move{U, U2, U3, D, D2, D3, R, R2, R3, L, L2, L3}

	allowedNext = [6][]Move{
		FaceU: afterU,
		FaceD: afterD,
		FaceR: afterR,
		FaceL: afterL,
		FaceF: afterF,
		FaceB: afterB,
	}
)
