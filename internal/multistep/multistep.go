// Package multistep chains a sequence of steps into a breadth-bounded
// search: each step's solutions become the next step's candidate starting
// points, kept sorted by total depth, with no further parents expanded
// once a breadth budget of candidates has been collected, the way original_source/script/multistep.hpp's make_stepper composes
// block_solver_222/223/F2L-1 into one driver.
package multistep

import (
	"fmt"
	"sort"

	"github.com/ehrlich-b/blocksolver/internal/block"
	"github.com/ehrlich-b/blocksolver/internal/cubie"
	"github.com/ehrlich-b/blocksolver/internal/step"
)

// Solution is the move sequence and depth a Solver surfaced.
type Solution struct {
	Moves []cubie.Move
	Depth int
}

// Solver initializes its own state from a full cubie cube and searches
// from there, returning solutions as plain move sequences so multistep
// never needs to know a step's internal coordinate representation.
type Solver interface {
	Initialize(cubie.Cube) any
	Solve(root any, maxDepth int) []Solution
}

// StepSolver adapts a single-block Step to the Solver interface.
type StepSolver struct {
	S *step.Step
}

func (a StepSolver) Initialize(c cubie.Cube) any { return a.S.Initialize(c) }

func (a StepSolver) Solve(root any, maxDepth int) []Solution {
	nodes := a.S.Solve(root.(block.MultiBlockCube), maxDepth, 0)
	out := make([]Solution, len(nodes))
	for i, n := range nodes {
		out[i] = Solution{Moves: n.GetPath(), Depth: n.Depth}
	}
	return out
}

// SplitStepSolver adapts a two-block SplitStep to the Solver interface.
type SplitStepSolver struct {
	S *step.SplitStep
}

func (a SplitStepSolver) Initialize(c cubie.Cube) any { return a.S.Initialize(c) }

func (a SplitStepSolver) Solve(root any, maxDepth int) []Solution {
	nodes := a.S.Solve(root.(step.PairState), maxDepth, 0)
	out := make([]Solution, len(nodes))
	for i, n := range nodes {
		out[i] = Solution{Moves: n.GetPath(), Depth: n.Depth}
	}
	return out
}

// Segment is one named step's contribution to a finished solve.
type Segment struct {
	Moves   []cubie.Move
	Comment string
}

// Skeleton is a full solve broken into its named step segments.
type Skeleton []Segment

// String renders a Skeleton as "<moves> // <comment>" lines.
func (s Skeleton) String() string {
	out := ""
	for i, seg := range s {
		if i > 0 {
			out += "\n"
		}
		parts := make([]string, len(seg.Moves))
		for j, m := range seg.Moves {
			parts[j] = m.String()
		}
		line := ""
		for j, p := range parts {
			if j > 0 {
				line += " "
			}
			line += p
		}
		if seg.Comment != "" {
			out += fmt.Sprintf("%s // %s", line, seg.Comment)
		} else {
			out += line
		}
	}
	return out
}

// Node is one partial solve: the cube reached, the moves and inverse-flag
// used to reach it from its parent, and depth accounting.
type Node struct {
	State   cubie.Cube
	Moves   []cubie.Move
	InvFlag bool
	Parent  *Node
	Depth   int
}

// NewRoot starts a chain at the given cube with depth 0 and no history.
func NewRoot(state cubie.Cube) *Node {
	return &Node{State: state}
}

// GetSkeleton walks from n back to the root, pairing each segment with its
// step's comment, in solve order.
func (n *Node) GetSkeleton(comments []string) Skeleton {
	var segs []Segment
	node := n
	for node.Parent != nil {
		segs = append(segs, Segment{Moves: node.Moves})
		node = node.Parent
	}
	if len(segs) != len(comments) {
		panic(fmt.Sprintf("multistep: got %d segments but %d comments", len(segs), len(comments)))
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	ret := make(Skeleton, len(segs))
	for i, seg := range segs {
		ret[i] = Segment{Moves: seg.Moves, Comment: comments[i]}
	}
	return ret
}

// Stage names one link in a chained method: its solver, whether it also
// expands the scramble's functional inverse, and the comment attached to
// its segment in the final Skeleton.
type Stage struct {
	Solver  Solver
	Inverse bool
	Comment string
}

// expand grows n by one stage, producing children reached either directly
// or via the inverse cube when Inverse is set, matching the two variants
// (never, or always per step) observed in the source material.
func expand(n *Node, st Stage, moveBudget int) []*Node {
	var children []*Node

	root := st.Solver.Initialize(n.State)
	for _, sol := range st.Solver.Solve(root, moveBudget) {
		next := n.State.ApplySequence(sol.Moves)
		children = append(children, &Node{
			State:   next,
			Moves:   sol.Moves,
			InvFlag: n.InvFlag,
			Parent:  n,
			Depth:   n.Depth + sol.Depth,
		})
	}

	if st.Inverse {
		invCube := n.State.Inverse()
		rootInv := st.Solver.Initialize(invCube)
		for _, sol := range st.Solver.Solve(rootInv, moveBudget) {
			next := invCube.ApplySequence(sol.Moves)
			children = append(children, &Node{
				State:   next,
				Moves:   sol.Moves,
				InvFlag: !n.InvFlag,
				Parent:  n,
				Depth:   n.Depth + sol.Depth,
			})
		}
	}

	return children
}

// RunStage runs one stage across the frontier in order, starting no new
// parent once at least breadth children have been collected, then sorts
// the merged results by depth. Every child of an expanded parent is kept,
// so the result can hold more than breadth nodes.
func RunStage(frontier []*Node, st Stage, moveBudget, breadth int) []*Node {
	var next []*Node
	for _, n := range frontier {
		if len(next) >= breadth {
			break
		}
		budget := moveBudget - n.Depth
		children := expand(n, st, budget)
		next = append(next, children...)
	}
	sort.Slice(next, func(i, j int) bool { return next[i].Depth < next[j].Depth })
	return next
}

// Solve drives a sequence of stages from a single root cube, returning the
// finished frontier sorted by total depth and the comments to pass to
// GetSkeleton. Every stage shares the same moveBudget and breadth; the
// breadth cutoff applies per stage.
func Solve(root cubie.Cube, stages []Stage, moveBudget, breadth int) ([]*Node, []string) {
	frontier := []*Node{NewRoot(root)}
	comments := make([]string, len(stages))
	for i, st := range stages {
		frontier = RunStage(frontier, st, moveBudget, breadth)
		comments[i] = st.Comment
	}
	return frontier, comments
}
