// Package symmetry implements the cube's 48-element rotation/reflection
// group, parameterized by four generators (a 3-fold corner rotation, a
// 4-fold face rotation, a 2-fold rotation, and a left-right mirror), and the
// move-translation tables used to conjugate HTM moves under any element of
// the group.
package symmetry

import "github.com/ehrlich-b/blocksolver/internal/cubie"

// Generator component ranges; NSym = NSURF*NY*NZ2*NLR = 48.
const (
	NSURF = 3
	NY    = 4
	NZ2   = 2
	NLR   = 2
	NSym  = NSURF * NY * NZ2 * NLR
)

// Index packs a (cSurf, cY, cZ2, cLR) generator-power tuple into [0,NSym).
func Index(cSurf, cY, cZ2, cLR int) int {
	return cLR + NLR*(cZ2+NZ2*(cY+NY*cSurf))
}

// Decompose recovers the generator-power tuple from a symmetry index.
func Decompose(index int) (cSurf, cY, cZ2, cLR int) {
	div := index
	cLR = div % NLR
	div /= NLR
	cZ2 = div % NZ2
	div /= NZ2
	cY = div % NY
	div /= NY
	cSurf = div
	return
}

// Per-generator move conjugation tables: moveConj[m] = S*m*S^-1 for one
// application of the generator S.
var surfMoveConj = [cubie.NumHTMMoves]cubie.Move{
	cubie.U: cubie.F, cubie.U2: cubie.F2, cubie.U3: cubie.F3,
	cubie.D: cubie.B, cubie.D2: cubie.B2, cubie.D3: cubie.B3,
	cubie.R: cubie.U, cubie.R2: cubie.U2, cubie.R3: cubie.U3,
	cubie.L: cubie.D, cubie.L2: cubie.D2, cubie.L3: cubie.D3,
	cubie.F: cubie.R, cubie.F2: cubie.R2, cubie.F3: cubie.R3,
	cubie.B: cubie.L, cubie.B2: cubie.L2, cubie.B3: cubie.L3,
}

var yMoveConj = [cubie.NumHTMMoves]cubie.Move{
	cubie.U: cubie.U, cubie.U2: cubie.U2, cubie.U3: cubie.U3,
	cubie.D: cubie.D, cubie.D2: cubie.D2, cubie.D3: cubie.D3,
	cubie.R: cubie.B, cubie.R2: cubie.B2, cubie.R3: cubie.B3,
	cubie.L: cubie.F, cubie.L2: cubie.F2, cubie.L3: cubie.F3,
	cubie.F: cubie.R, cubie.F2: cubie.R2, cubie.F3: cubie.R3,
	cubie.B: cubie.L, cubie.B2: cubie.L2, cubie.B3: cubie.L3,
}

var z2MoveConj = [cubie.NumHTMMoves]cubie.Move{
	cubie.U: cubie.D, cubie.U2: cubie.D2, cubie.U3: cubie.D3,
	cubie.D: cubie.U, cubie.D2: cubie.U2, cubie.D3: cubie.U3,
	cubie.R: cubie.L, cubie.R2: cubie.L2, cubie.R3: cubie.L3,
	cubie.L: cubie.R, cubie.L2: cubie.R2, cubie.L3: cubie.R3,
	cubie.F: cubie.F, cubie.F2: cubie.F2, cubie.F3: cubie.F3,
	cubie.B: cubie.B, cubie.B2: cubie.B2, cubie.B3: cubie.B3,
}

var lrMoveConj = [cubie.NumHTMMoves]cubie.Move{
	cubie.U: cubie.U3, cubie.U2: cubie.U2, cubie.U3: cubie.U,
	cubie.D: cubie.D3, cubie.D2: cubie.D2, cubie.D3: cubie.D,
	cubie.R: cubie.L3, cubie.R2: cubie.L2, cubie.R3: cubie.L,
	cubie.L: cubie.R3, cubie.L2: cubie.R2, cubie.L3: cubie.R,
	cubie.F: cubie.F3, cubie.F2: cubie.F2, cubie.F3: cubie.F,
	cubie.B: cubie.B3, cubie.B2: cubie.B2, cubie.B3: cubie.B,
}

// permuteMoves composes mp1 o mp2: (mp1 o mp2)[m] = mp1[mp2[m]].
func permuteMoves(mp1, mp2 [cubie.NumHTMMoves]cubie.Move) [cubie.NumHTMMoves]cubie.Move {
	var out [cubie.NumHTMMoves]cubie.Move
	for _, m := range cubie.AllHTMMoves {
		out[m] = mp1[mp2[m]]
	}
	return out
}

func identityMovePermutation() [cubie.NumHTMMoves]cubie.Move {
	var out [cubie.NumHTMMoves]cubie.Move
	for _, m := range cubie.AllHTMMoves {
		out[m] = m
	}
	return out
}

func movePermutationFor(index int) [cubie.NumHTMMoves]cubie.Move {
	ret := identityMovePermutation()
	cSurf, cY, cZ2, cLR := Decompose(index)
	for i := 0; i < cLR; i++ {
		ret = permuteMoves(ret, lrMoveConj)
	}
	for i := 0; i < cZ2; i++ {
		ret = permuteMoves(ret, z2MoveConj)
	}
	for i := 0; i < cY; i++ {
		ret = permuteMoves(ret, yMoveConj)
	}
	for i := 0; i < cSurf; i++ {
		ret = permuteMoves(ret, surfMoveConj)
	}
	return ret
}

func cubeForIndex(index int) cubie.Cube {
	c := cubie.Solved()
	cSurf, cY, cZ2, cLR := Decompose(index)
	for i := 0; i < cLR; i++ {
		c.Apply(cubie.RotLR.Cube())
	}
	for i := 0; i < cZ2; i++ {
		c.Apply(cubie.RotZ2.Cube())
	}
	for i := 0; i < cY; i++ {
		c.Apply(cubie.RotY.Cube())
	}
	for i := 0; i < cSurf; i++ {
		c.Apply(cubie.RotSURF.Cube())
	}
	return c
}

var (
	movePermCache [NSym][cubie.NumHTMMoves]cubie.Move
	cubeCache     [NSym]cubie.Cube
)

func init() {
	for i := 0; i < NSym; i++ {
		movePermCache[i] = movePermutationFor(i)
		cubeCache[i] = cubeForIndex(i)
	}
}

// TranslateMove returns m' = sigma*m*sigma^-1 for the symmetry at symIndex.
func TranslateMove(symIndex int, m cubie.Move) cubie.Move {
	return movePermCache[symIndex][m]
}

// CubeForIndex returns the CubieCube representative sigma of a symmetry
// index, built by composing the four generators the same number of times
// Decompose reports.
func CubeForIndex(symIndex int) cubie.Cube {
	return cubeCache[symIndex]
}

// Conjugate returns the cube c viewed from the orientation/reflection named
// by symIndex: in math notation sigma^-1*c*sigma, which under this
// package's chronological Cube.Apply convention (c.Apply(m) means "c, then
// m") is computed as sigma, then c, then sigma's inverse — the same
// left-to-right order TranslateMove composes generators in, so the two
// stay consistent: Conjugate(c,S).ApplyMove(TranslateMove(S,m)) equals
// Conjugate(c.ApplyMove(m), S) for every cube c, symmetry S and move m.
// The rotation part of sigma is conjugated first; when sigma includes the
// left-right mirror, the result is then conjugated by S_LR and its corner
// twists are negated, since a mirror reverses every corner's twist
// direction, which plain 0..2 orientation addition cannot express.
func Conjugate(c cubie.Cube, symIndex int) cubie.Cube {
	cSurf, cY, cZ2, cLR := Decompose(symIndex)
	rho := CubeForIndex(Index(cSurf, cY, cZ2, 0))
	result := rho
	result.Apply(c)
	result.Apply(rho.Inverse())
	if cLR == 1 {
		lr := cubie.RotLR.Cube()
		mirrored := lr
		mirrored.Apply(result)
		mirrored.Apply(lr)
		for i := range mirrored.CO {
			mirrored.CO[i] = (3 - mirrored.CO[i]) % 3
		}
		result = mirrored
	}
	return result
}
