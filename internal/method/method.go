// Package method names the concrete blocks and symmetry rotation lists that
// make up the shipped multi-step solving methods, the way original_source's
// script/ directory wires one block + rotation list per named step.
package method

import (
	"github.com/ehrlich-b/blocksolver/internal/block"
	"github.com/ehrlich-b/blocksolver/internal/cubie"
	"github.com/ehrlich-b/blocksolver/internal/step"
	"github.com/ehrlich-b/blocksolver/internal/symmetry"
)

// DLB222Block is the single down-left-back 2x2x2 corner block: one corner,
// its three adjacent edges.
func DLB222Block() *block.Block {
	return block.New("DLB_222", []int{cubie.DLB}, []int{cubie.LB, cubie.DB, cubie.DL})
}

// DLB222Rotations covers the 8 ways a 2x2x2 corner block can be placed
// among the cube's 8 corners: 4 spins around the vertical axis, doubled by
// the z2 flip that swaps top and bottom.
func DLB222Rotations() []int {
	rots := make([]int, 0, 8)
	for cz2 := 0; cz2 < 2; cz2++ {
		for cy := 0; cy < 4; cy++ {
			rots = append(rots, symmetry.Index(0, cy, cz2, 0))
		}
	}
	return rots
}

// DB123Block is one of the two 1x2x3 blocks a 2x2x3 is split into (the
// optimal 2x2x3 pruning table is too large to generate directly; two
// 1x2x3 sub-blocks sharing the DB edge stand in for it).
func DB123Block() *block.Block {
	return block.New("DB_123", []int{cubie.DLB, cubie.DRB}, []int{cubie.DB, cubie.RB, cubie.LB})
}

// DB223Rotations returns the 12 pairs of symmetry indices used by the
// split 2x2x3 step, one pair per placement of the 2x2x3 among the cube's
// 12 edge positions. Each pair's two indices rotate the same 1x2x3 block
// onto the two halves of the target 2x2x3.
func DB223Rotations() [][2]int {
	return [][2]int{
		{symmetry.Index(0, 0, 0, 0), symmetry.Index(2, 3, 0, 0)}, // DB
		{symmetry.Index(0, 1, 0, 0), symmetry.Index(2, 0, 0, 0)}, // DL
		{symmetry.Index(0, 2, 0, 0), symmetry.Index(2, 1, 0, 0)}, // DF
		{symmetry.Index(0, 3, 0, 0), symmetry.Index(2, 2, 0, 0)}, // DR
		{symmetry.Index(0, 0, 1, 0), symmetry.Index(2, 3, 1, 0)}, // UB
		{symmetry.Index(0, 1, 1, 0), symmetry.Index(2, 0, 1, 0)}, // UR
		{symmetry.Index(0, 3, 1, 0), symmetry.Index(2, 2, 1, 0)}, // UL
		{symmetry.Index(0, 2, 1, 0), symmetry.Index(2, 1, 1, 0)}, // UF
		{symmetry.Index(1, 0, 0, 0), symmetry.Index(1, 3, 1, 0)}, // LB
		{symmetry.Index(1, 1, 0, 0), symmetry.Index(1, 2, 1, 0)}, // LF
		{symmetry.Index(1, 3, 0, 0), symmetry.Index(1, 0, 1, 0)}, // RB
		{symmetry.Index(1, 2, 0, 0), symmetry.Index(1, 1, 1, 0)}, // RF
	}
}

// F2L1Block1 is the 222-plus-extra-corners half of the F2L-1 split block:
// the DLB 2x2x2 (the DLB corner with the DL/LB/DB edges) plus the DLF and
// DRB corners.
func F2L1Block1() *block.Block {
	return block.New("222_w_extra_corners", []int{cubie.DLF, cubie.DLB, cubie.DRB}, []int{cubie.DL, cubie.LB, cubie.DB})
}

// F2L1Block2 is the two-squares half of the F2L-1 split block: the DLF and
// DRB corners (both also in block 1) and the four edges that complete both
// F2L pairs.
func F2L1Block2() *block.Block {
	return block.New("2_squares", []int{cubie.DLF, cubie.DRB}, []int{cubie.LF, cubie.DF, cubie.RB, cubie.DR})
}

// F2L1Rotations covers all 24 pure rotations (no mirror): 3 face choices
// for the S_URF generator times 4 spins times 2 flips.
func F2L1Rotations() []int {
	rots := make([]int, 0, 24)
	for cSurf := 0; cSurf < 3; cSurf++ {
		for cz2 := 0; cz2 < 2; cz2++ {
			for cy := 0; cy < 4; cy++ {
				rots = append(rots, symmetry.Index(cSurf, cy, cz2, 0))
			}
		}
	}
	return rots
}

// RouxFirstBlockBlock is the left 1x2x3 column used by Roux-style methods:
// the two down-left corners (DLF, DLB) and the three edges that complete
// the column.
func RouxFirstBlockBlock() *block.Block {
	return block.New("RouxFirstBlock", []int{cubie.DLF, cubie.DLB}, []int{cubie.LF, cubie.LB, cubie.DL})
}

// RouxFirstBlockRotations reuses the 2x2x2 placement set; a 1x2x3 column
// has the same 8-fold placement symmetry as the 2x2x2 corner it contains.
func RouxFirstBlockRotations() []int {
	return DLB222Rotations()
}

// BuildDLB222 constructs the DLB 2x2x2 step, loading or generating its
// tables under tablesDir.
func BuildDLB222(tablesDir string) (*step.Step, error) {
	return step.New("DLB_222", DLB222Block(), DLB222Rotations(), tablesDir)
}

// BuildDB223 constructs the split 2x2x3 step from two 1x2x3 sub-steps that
// share one block but each hold their own rotation half of every pair.
func BuildDB223(tablesDir string) (*step.SplitStep, error) {
	b := DB123Block()
	pairs := DB223Rotations()
	rotsA := make([]int, len(pairs))
	rotsB := make([]int, len(pairs))
	for i, p := range pairs {
		rotsA[i] = p[0]
		rotsB[i] = p[1]
	}
	a, err := step.New("DB_123_a", b, rotsA, tablesDir)
	if err != nil {
		return nil, err
	}
	bStep, err := step.New("DB_123_b", b, rotsB, tablesDir)
	if err != nil {
		return nil, err
	}
	return step.NewSplitStep("DB_223", a, bStep), nil
}

// BuildF2L1 constructs the F2L-1 split step over its two coupled blocks.
func BuildF2L1(tablesDir string) (*step.SplitStep, error) {
	rotations := F2L1Rotations()
	a, err := step.New("F2L1_block1", F2L1Block1(), rotations, tablesDir)
	if err != nil {
		return nil, err
	}
	b, err := step.New("F2L1_block2", F2L1Block2(), rotations, tablesDir)
	if err != nil {
		return nil, err
	}
	return step.NewSplitStep("F2L-1", a, b), nil
}

// BuildRouxFirstBlock constructs the Roux first-block step.
func BuildRouxFirstBlock(tablesDir string) (*step.Step, error) {
	return step.New("RouxFirstBlock", RouxFirstBlockBlock(), RouxFirstBlockRotations(), tablesDir)
}
