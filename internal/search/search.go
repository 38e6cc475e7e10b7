// Package search implements symmetry-aware IDA* over a generic state type:
// a single CoordinateBlockCube for an unsplit step, or a MultiBlockCube for
// a step solvable in multiple symmetry orientations.
package search

import (
	"strings"

	"github.com/ehrlich-b/blocksolver/internal/cubie"
)

// Node is one position in the search tree: a state, its depth from the
// scramble root, a link to its parent, and the moves applied since that
// parent to reach it.
type Node[S any] struct {
	State  S
	Depth  int
	Parent *Node[S]
	Moves  []cubie.Move
}

// MakeRoot creates a depth-0 node with no parent.
func MakeRoot[S any](state S) *Node[S] {
	return &Node[S]{State: state}
}

// Expand creates a child of n reached by applying moves, which advance
// state to the given value.
func (n *Node[S]) Expand(state S, moves []cubie.Move) *Node[S] {
	return &Node[S]{State: state, Depth: n.Depth + len(moves), Parent: n, Moves: moves}
}

// GetPath returns the full move sequence from the search root to n.
func (n *Node[S]) GetPath() []cubie.Move {
	if n.Parent == nil {
		return append([]cubie.Move{}, n.Moves...)
	}
	return append(n.Parent.GetPath(), n.Moves...)
}

// GetSkeleton renders GetPath as space-separated move notation.
func (n *Node[S]) GetSkeleton() string {
	path := n.GetPath()
	parts := make([]string, len(path))
	for i, m := range path {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// Options configures one IDA* run over state type S.
type Options[S any] struct {
	Apply    func(S, cubie.Move) S
	Estimate func(S) int
	IsSolved func(S) bool

	// Directions overrides the legal-move set at a node; nil uses the
	// shared face-successor relation (cubie.AllowedNext / FirstMoveDirections).
	Directions func(*Node[S]) []cubie.Move

	MaxDepth  int
	Slackness int
}

func defaultDirections[S any](n *Node[S]) []cubie.Move {
	if len(n.Moves) == 0 {
		return cubie.FirstMoveDirections()
	}
	return cubie.AllowedNext(n.Moves[len(n.Moves)-1])
}

// IDAstar runs iterative-deepening A* from root: the cost bound climbs
// 0,1,2,...,maxDepth; a node is expanded only if depth+estimate(state) <=
// bound. Once a bound first yields a solution, the search continues
// through bound+slackness inclusive and stops. Returned nodes are
// deduplicated by move sequence and given in discovery order.
func IDAstar[S any](root *Node[S], opt Options[S]) []*Node[S] {
	directions := opt.Directions
	if directions == nil {
		directions = defaultDirections[S]
	}

	var solutions []*Node[S]
	seen := make(map[string]bool)
	foundAt := -1

	var dfs func(n *Node[S], bound int, out *[]*Node[S])
	dfs = func(n *Node[S], bound int, out *[]*Node[S]) {
		if opt.IsSolved(n.State) {
			*out = append(*out, n)
			return
		}
		if n.Depth+opt.Estimate(n.State) > bound {
			return
		}
		for _, m := range directions(n) {
			child := n.Expand(opt.Apply(n.State, m), []cubie.Move{m})
			dfs(child, bound, out)
		}
	}

	for bound := 0; bound <= opt.MaxDepth; bound++ {
		var found []*Node[S]
		dfs(root, bound, &found)

		for _, n := range found {
			key := n.GetSkeleton()
			if seen[key] {
				continue
			}
			seen[key] = true
			solutions = append(solutions, n)
		}

		if foundAt == -1 && len(solutions) > 0 {
			foundAt = bound
		}
		if foundAt != -1 && bound >= foundAt+opt.Slackness {
			break
		}
	}

	return solutions
}
