// Package notation bridges the sticker-level cube package's move and
// facelet representation to the cubie-level engine's Move and Cube types,
// so the coordinate-search engine can be driven from the same scrambles
// and cube states the rest of the CLI and web server already handle.
package notation

import (
	"fmt"

	"github.com/ehrlich-b/blocksolver/internal/cube"
	"github.com/ehrlich-b/blocksolver/internal/cubie"
)

// ToCubieMove converts a single-layer quarter or half turn of a 3x3x3 cube
// to the matching cubie.Move. Wide turns, slice moves, whole-cube rotations
// and moves on cubes other than 3x3x3 have no cubie.Move equivalent (the
// engine only models single-layer HTM moves on the 3x3x3) and return an
// error.
func ToCubieMove(m cube.Move) (cubie.Move, error) {
	if m.Wide || m.Slice != cube.NoSlice || m.Rotation != cube.NoRotation || m.Layer != 0 {
		return 0, fmt.Errorf("notation: move %q has no single-layer cubie equivalent", m.String())
	}

	var base [3]cubie.Move // quarter, half, counter-quarter
	switch m.Face {
	case cube.Up:
		base = [3]cubie.Move{cubie.U, cubie.U2, cubie.U3}
	case cube.Down:
		base = [3]cubie.Move{cubie.D, cubie.D2, cubie.D3}
	case cube.Right:
		base = [3]cubie.Move{cubie.R, cubie.R2, cubie.R3}
	case cube.Left:
		base = [3]cubie.Move{cubie.L, cubie.L2, cubie.L3}
	case cube.Front:
		base = [3]cubie.Move{cubie.F, cubie.F2, cubie.F3}
	case cube.Back:
		base = [3]cubie.Move{cubie.B, cubie.B2, cubie.B3}
	default:
		return 0, fmt.Errorf("notation: unknown face %v", m.Face)
	}

	if m.Double {
		return base[1], nil
	}
	if m.Clockwise {
		return base[0], nil
	}
	return base[2], nil
}

// ToCubeMoves converts a cubie-level solution back into the sticker
// package's Move type, for reuse by the existing CLI/web output paths.
func ToCubeMoves(moves []cubie.Move) []cube.Move {
	out := make([]cube.Move, len(moves))
	for i, m := range moves {
		out[i] = toCubeMove(m)
	}
	return out
}

func toCubeMove(m cubie.Move) cube.Move {
	switch m {
	case cubie.U:
		return cube.Move{Face: cube.Up, Clockwise: true}
	case cubie.U2:
		return cube.Move{Face: cube.Up, Double: true}
	case cubie.U3:
		return cube.Move{Face: cube.Up, Clockwise: false}
	case cubie.D:
		return cube.Move{Face: cube.Down, Clockwise: true}
	case cubie.D2:
		return cube.Move{Face: cube.Down, Double: true}
	case cubie.D3:
		return cube.Move{Face: cube.Down, Clockwise: false}
	case cubie.R:
		return cube.Move{Face: cube.Right, Clockwise: true}
	case cubie.R2:
		return cube.Move{Face: cube.Right, Double: true}
	case cubie.R3:
		return cube.Move{Face: cube.Right, Clockwise: false}
	case cubie.L:
		return cube.Move{Face: cube.Left, Clockwise: true}
	case cubie.L2:
		return cube.Move{Face: cube.Left, Double: true}
	case cubie.L3:
		return cube.Move{Face: cube.Left, Clockwise: false}
	case cubie.F:
		return cube.Move{Face: cube.Front, Clockwise: true}
	case cubie.F2:
		return cube.Move{Face: cube.Front, Double: true}
	case cubie.F3:
		return cube.Move{Face: cube.Front, Clockwise: false}
	case cubie.B:
		return cube.Move{Face: cube.Back, Clockwise: true}
	case cubie.B2:
		return cube.Move{Face: cube.Back, Double: true}
	default: // cubie.B3
		return cube.Move{Face: cube.Back, Clockwise: false}
	}
}

// ToCubieMoves converts a full scramble, failing on the first move with no
// cubie equivalent.
func ToCubieMoves(moves []cube.Move) ([]cubie.Move, error) {
	out := make([]cubie.Move, len(moves))
	for i, m := range moves {
		cm, err := ToCubieMove(m)
		if err != nil {
			return nil, err
		}
		out[i] = cm
	}
	return out, nil
}

// solvedColorOf gives the sticker color permanently assigned to a face in
// cube.NewCube's solved coloring (internal/cube/cube.go's faceColors).
func solvedColorOf(f cube.Face) cube.Color {
	switch f {
	case cube.Front:
		return cube.White
	case cube.Back:
		return cube.Yellow
	case cube.Left:
		return cube.Red
	case cube.Right:
		return cube.Orange
	case cube.Up:
		return cube.Blue
	default: // cube.Down
		return cube.Green
	}
}

// cornerSlot names the cubie corner slot for a face set, and axisFace names
// which of the three faces is the U/D (primary) one.
type cornerSlot struct {
	corner   int
	axisFace cube.Face
	sideA    cube.Face
	sideB    cube.Face
}

var cornerSlots = []cornerSlot{
	{cubie.ULB, cube.Up, cube.Left, cube.Back},
	{cubie.URB, cube.Up, cube.Back, cube.Right},
	{cubie.ULF, cube.Up, cube.Front, cube.Left},
	{cubie.URF, cube.Up, cube.Right, cube.Front},
	{cubie.DLF, cube.Down, cube.Left, cube.Front},
	{cubie.DRF, cube.Down, cube.Front, cube.Right},
	{cubie.DLB, cube.Down, cube.Back, cube.Left},
	{cubie.DRB, cube.Down, cube.Right, cube.Back},
}

type edgeSlot struct {
	edge     int
	faceA    cube.Face
	faceB    cube.Face
}

var edgeSlots = []edgeSlot{
	{cubie.UB, cube.Up, cube.Back},
	{cubie.UL, cube.Up, cube.Left},
	{cubie.UR, cube.Up, cube.Right},
	{cubie.UF, cube.Up, cube.Front},
	{cubie.LF, cube.Front, cube.Left},
	{cubie.RF, cube.Front, cube.Right},
	{cubie.RB, cube.Back, cube.Right},
	{cubie.LB, cube.Back, cube.Left},
	{cubie.DF, cube.Down, cube.Front},
	{cubie.DL, cube.Down, cube.Left},
	{cubie.DR, cube.Down, cube.Right},
	{cubie.DB, cube.Down, cube.Back},
}

// cornerIdentity maps a corner's 3-color set (as it was at the solved state)
// back to the cubie slot index whose colors those are.
func cornerIdentity(colors map[cube.Color]bool) (int, bool) {
	for _, s := range cornerSlots {
		want := map[cube.Color]bool{
			solvedColorOf(s.axisFace): true,
			solvedColorOf(s.sideA):    true,
			solvedColorOf(s.sideB):    true,
		}
		if sameSet(want, colors) {
			return s.corner, true
		}
	}
	return 0, false
}

func edgeIdentity(colors map[cube.Color]bool) (int, bool) {
	for _, s := range edgeSlots {
		want := map[cube.Color]bool{
			solvedColorOf(s.faceA): true,
			solvedColorOf(s.faceB): true,
		}
		if sameSet(want, colors) {
			return s.edge, true
		}
	}
	return 0, false
}

func sameSet(a, b map[cube.Color]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

// cornerAxisColor returns the solved color of the axis (U/D) sticker that
// permanently belongs to the given corner piece, independent of where that
// piece currently sits.
func cornerAxisColor(piece int) cube.Color {
	for _, s := range cornerSlots {
		if s.corner == piece {
			return solvedColorOf(s.axisFace)
		}
	}
	panic(fmt.Sprintf("notation: unknown corner piece %d", piece))
}

// edgeAxisColor is the edgeSlots analogue of cornerAxisColor: the solved
// color of the piece's own faceA identity sticker.
func edgeAxisColor(piece int) cube.Color {
	for _, s := range edgeSlots {
		if s.edge == piece {
			return solvedColorOf(s.faceA)
		}
	}
	panic(fmt.Sprintf("notation: unknown edge piece %d", piece))
}

// DecodeCube reads a solved-or-scrambled 3x3x3 cube.Cube's facelets into
// cubie-level permutation/orientation state. Corner orientation counts how
// many reading positions away the piece's own axis (U/D) sticker sits from
// the mapping's first ("axis") reading position; edge orientation is 0
// when the piece's own faceA identity sticker sits in the current slot's
// first reading position, 1 otherwise. Only 3x3x3 cubes are supported.
func DecodeCube(c *cube.Cube) (cubie.Cube, error) {
	if c.Size != 3 {
		return cubie.Cube{}, fmt.Errorf("notation: DecodeCube only supports 3x3x3 cubes, got size %d", c.Size)
	}

	var out cubie.Cube
	mappings := cube.Get3x3CornerMappings()
	for slot, m := range mappings {
		colors := []cube.Color{
			c.Faces[m.Face1][m.Row1][m.Col1],
			c.Faces[m.Face2][m.Row2][m.Col2],
			c.Faces[m.Face3][m.Row3][m.Col3],
		}
		set := map[cube.Color]bool{colors[0]: true, colors[1]: true, colors[2]: true}
		piece, ok := cornerIdentity(set)
		if !ok {
			return cubie.Cube{}, fmt.Errorf("notation: corner at slot %d has an unrecognized color set", slot)
		}

		want := cornerAxisColor(piece)
		orientation := -1
		for i, col := range colors {
			if col == want {
				orientation = i
				break
			}
		}
		if orientation == -1 {
			return cubie.Cube{}, fmt.Errorf("notation: corner at slot %d is missing its axis color", slot)
		}

		out.CP[cornerSlots[slot].corner] = piece
		out.CO[cornerSlots[slot].corner] = orientation
	}

	edgeMappings := cube.Get3x3EdgeMappings()
	for slot, m := range edgeMappings {
		colors := []cube.Color{
			c.Faces[m.Face1][m.Row1][m.Col1],
			c.Faces[m.Face2][m.Row2][m.Col2],
		}
		set := map[cube.Color]bool{colors[0]: true, colors[1]: true}
		piece, ok := edgeIdentity(set)
		if !ok {
			return cubie.Cube{}, fmt.Errorf("notation: edge at slot %d has an unrecognized color set", slot)
		}

		wantA := edgeAxisColor(piece)
		orientation := 0
		if colors[0] != wantA {
			orientation = 1
		}

		out.EP[edgeSlots[slot].edge] = piece
		out.EO[edgeSlots[slot].edge] = orientation
	}

	return out, nil
}
