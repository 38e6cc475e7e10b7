// Package step wires a block, its tables, and its symmetry representatives
// into a Solve(root, maxDepth, slackness) function over MultiBlockCube
// state, and composes two blocks into a split step for subgoals like
// F2L-1 that require two coupled sub-blocks solved simultaneously.
package step

import (
	"github.com/ehrlich-b/blocksolver/internal/block"
	"github.com/ehrlich-b/blocksolver/internal/cubie"
	"github.com/ehrlich-b/blocksolver/internal/movetable"
	"github.com/ehrlich-b/blocksolver/internal/pruning"
	"github.com/ehrlich-b/blocksolver/internal/search"
	"github.com/ehrlich-b/blocksolver/internal/symmetry"
)

// Step binds one block's tables and symmetry rotations into a solver.
type Step struct {
	Name      string
	Block     *block.Block
	Moves     *movetable.BlockMoveTable
	Prune     *pruning.PruningTable
	Rotations []int // symmetry indices, one per MultiBlockCube representative

	// Inverse is not read by Step's own methods; in a chained solve the
	// inverse expansion is switched per stage by multistep.Stage.Inverse.
	Inverse bool
}

// New builds a Step for a single block, loading cached move/pruning tables
// from tablesDir or generating and caching them there.
func New(name string, b *block.Block, rotations []int, tablesDir string) (*Step, error) {
	mt, err := movetable.LoadOrGenerate(b, tablesDir)
	if err != nil {
		return nil, err
	}
	pt, err := pruning.LoadOrGenerate(b, mt, tablesDir)
	if err != nil {
		return nil, err
	}
	return &Step{Name: name, Block: b, Moves: mt, Prune: pt, Rotations: rotations}, nil
}

// Initialize projects a full cubie-level scramble onto this step's
// MultiBlockCube, one entry per rotation, each obtained by conjugating the
// scramble into that rotation's frame before projecting onto the block.
func (s *Step) Initialize(scramble cubie.Cube) block.MultiBlockCube {
	mb := block.NewMultiBlockCube(len(s.Rotations))
	for i, sym := range s.Rotations {
		mb[i] = s.Block.ToCBC(symmetry.Conjugate(scramble, sym))
	}
	return mb
}

// Apply advances every representative by the move translated into that
// representative's symmetry frame.
func (s *Step) Apply(mb block.MultiBlockCube, m cubie.Move) block.MultiBlockCube {
	out := block.NewMultiBlockCube(len(mb))
	for i, sym := range s.Rotations {
		out[i] = s.Moves.ApplyMove(mb[i], symmetry.TranslateMove(sym, m))
	}
	return out
}

// Estimate is the minimum pruning value across representatives.
func (s *Step) Estimate(mb block.MultiBlockCube) int {
	best := -1
	for _, cbc := range mb {
		e := s.Prune.Estimate(cbc)
		if best == -1 || e < best {
			best = e
		}
	}
	return best
}

// IsSolved reports whether any representative is block-solved.
func (s *Step) IsSolved(mb block.MultiBlockCube) bool {
	for _, cbc := range mb {
		if s.Block.IsSolved(cbc) {
			return true
		}
	}
	return false
}

// Solve runs IDA* from root (as produced by Initialize) to maxDepth,
// continuing through slackness once the first solution bound is found.
func (s *Step) Solve(root block.MultiBlockCube, maxDepth, slackness int) []*search.Node[block.MultiBlockCube] {
	n := search.MakeRoot(root)
	return search.IDAstar(n, search.Options[block.MultiBlockCube]{
		Apply:     s.Apply,
		Estimate:  s.Estimate,
		IsSolved:  s.IsSolved,
		MaxDepth:  maxDepth,
		Slackness: slackness,
	})
}

// PairState holds the two sub-blocks' MultiBlockCubes for a SplitStep.
type PairState struct {
	a, b block.MultiBlockCube
}

// SplitStep composes two blocks (e.g. F2L-1's two coupled 2x2x3-ish
// sub-blocks) into one step whose per-representative estimate is the max
// of the two sub-pruning values and whose solved predicate requires both
// blocks solved on a shared representative index.
type SplitStep struct {
	Name      string
	A, B      *Step
	Rotations []int // A's rotation list; B's list must have the same length
}

// NewSplitStep builds a SplitStep from two already-built Steps whose
// rotation lists have the same length: representative i of A is paired
// with representative i of B. The two lists may differ, as in the split
// 2x2x3, where each pair rotates one block onto both halves of the target.
func NewSplitStep(name string, a, b *Step) *SplitStep {
	return &SplitStep{Name: name, A: a, B: b, Rotations: a.Rotations}
}

// Initialize projects the scramble onto both sub-blocks.
func (s *SplitStep) Initialize(scramble cubie.Cube) PairState {
	return PairState{a: s.A.Initialize(scramble), b: s.B.Initialize(scramble)}
}

// Apply advances both sub-blocks by the same move.
func (s *SplitStep) Apply(st PairState, m cubie.Move) PairState {
	return PairState{a: s.A.Apply(st.a, m), b: s.B.Apply(st.b, m)}
}

// Estimate is the minimum, across representatives, of the maximum of the
// two sub-block pruning values at that representative — admissible because
// each representative is an independently sufficient goal and, within one
// representative, both sub-blocks must be solved simultaneously.
func (s *SplitStep) Estimate(st PairState) int {
	best := -1
	for i := range s.Rotations {
		ea := s.A.Prune.Estimate(st.a[i])
		eb := s.B.Prune.Estimate(st.b[i])
		e := ea
		if eb > e {
			e = eb
		}
		if best == -1 || e < best {
			best = e
		}
	}
	return best
}

// IsSolved reports whether both sub-blocks are solved on the same
// representative.
func (s *SplitStep) IsSolved(st PairState) bool {
	for i := range s.Rotations {
		if s.A.Block.IsSolved(st.a[i]) && s.B.Block.IsSolved(st.b[i]) {
			return true
		}
	}
	return false
}

// Solve runs IDA* over the paired state.
func (s *SplitStep) Solve(root PairState, maxDepth, slackness int) []*search.Node[PairState] {
	n := search.MakeRoot(root)
	return search.IDAstar(n, search.Options[PairState]{
		Apply:     s.Apply,
		Estimate:  s.Estimate,
		IsSolved:  s.IsSolved,
		MaxDepth:  maxDepth,
		Slackness: slackness,
	})
}
