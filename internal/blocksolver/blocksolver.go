// Package blocksolver adapts the coordinate-search engine (method, step,
// multistep) to the cube package's Solver interface, registering itself as
// "blocksolver" so the existing CLI and web surfaces can select it the
// same way they select "beginner", "cfop", or "kociemba".
package blocksolver

import (
	"fmt"
	"time"

	"github.com/ehrlich-b/blocksolver/internal/cube"
	"github.com/ehrlich-b/blocksolver/internal/cubie"
	"github.com/ehrlich-b/blocksolver/internal/method"
	"github.com/ehrlich-b/blocksolver/internal/multistep"
	"github.com/ehrlich-b/blocksolver/internal/notation"
)

func init() {
	cube.RegisterSolver("blocksolver", func() cube.Solver { return New("") })
}

// DefaultTablesDir is where move and pruning tables are cached when no
// directory is given explicitly.
const DefaultTablesDir = "tables"

// Adapter drives the 2x2x2 -> 2x2x3 -> F2L-1 block-building chain and
// reports its result through cube.SolverResult.
type Adapter struct {
	TablesDir  string
	MoveBudget int
	Breadth    int
}

// New builds an Adapter; an empty tablesDir uses DefaultTablesDir.
func New(tablesDir string) *Adapter {
	if tablesDir == "" {
		tablesDir = DefaultTablesDir
	}
	return &Adapter{TablesDir: tablesDir, MoveBudget: 24, Breadth: 64}
}

func (a *Adapter) Name() string { return "BlockSolver" }

func (a *Adapter) Solve(c *cube.Cube) (*cube.SolverResult, error) {
	return a.SolveStream(c, nil)
}

// StageProgress reports one completed stage of a streamed solve: its
// position and comment, how many candidates survived the breadth cutoff,
// and the shallowest total depth among them.
type StageProgress struct {
	Index        int
	Comment      string
	FrontierSize int
	BestDepth    int
}

// SolveStream behaves like Solve but calls onStage after every stage
// completes, so a caller driving a long-lived connection (a websocket, a
// REPL) can report progress before the final result is ready. onStage may
// be nil.
func (a *Adapter) SolveStream(c *cube.Cube, onStage func(StageProgress)) (*cube.SolverResult, error) {
	start := time.Now()

	if c.Size != 3 {
		return nil, fmt.Errorf("blocksolver: only 3x3x3 cubes are supported, got size %d", c.Size)
	}

	cc, err := notation.DecodeCube(c)
	if err != nil {
		return nil, fmt.Errorf("blocksolver: %w", err)
	}

	stages, err := a.buildStages()
	if err != nil {
		return nil, fmt.Errorf("blocksolver: %w", err)
	}

	frontier := []*multistep.Node{multistep.NewRoot(cc)}
	comments := make([]string, len(stages))
	for i, st := range stages {
		frontier = multistep.RunStage(frontier, st, a.MoveBudget, a.Breadth)
		comments[i] = st.Comment

		if onStage != nil {
			best := -1
			if len(frontier) > 0 {
				best = frontier[0].Depth
			}
			onStage(StageProgress{Index: i, Comment: st.Comment, FrontierSize: len(frontier), BestDepth: best})
		}
		if len(frontier) == 0 {
			break
		}
	}

	if len(frontier) == 0 {
		return nil, fmt.Errorf("blocksolver: no solution found within a %d move budget", a.MoveBudget)
	}

	best := frontier[0]
	skeleton := best.GetSkeleton(comments)

	var moves []cubie.Move
	for _, seg := range skeleton {
		moves = append(moves, seg.Moves...)
	}

	// Stages are searched independently, so the join between two stages'
	// move sequences can leave a cancelling or combinable pair (e.g. a
	// stage ending in R next to one starting with R'). Clean those up
	// before reporting the result.
	solution := cube.OptimizeMoves(notation.ToCubeMoves(moves))

	return &cube.SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}

// buildStages wires the three chained steps (2x2x2, split 2x2x3, F2L-1)
// into multistep.Stage values, loading or generating their tables under
// a.TablesDir.
func (a *Adapter) buildStages() ([]multistep.Stage, error) {
	dlb, err := method.BuildDLB222(a.TablesDir)
	if err != nil {
		return nil, err
	}
	db223, err := method.BuildDB223(a.TablesDir)
	if err != nil {
		return nil, err
	}
	f2l1, err := method.BuildF2L1(a.TablesDir)
	if err != nil {
		return nil, err
	}

	return []multistep.Stage{
		{Solver: multistep.StepSolver{S: dlb}, Comment: "2x2x2"},
		{Solver: multistep.SplitStepSolver{S: db223}, Comment: "2x2x3"},
		{Solver: multistep.SplitStepSolver{S: f2l1}, Comment: "F2L-1"},
	}, nil
}
