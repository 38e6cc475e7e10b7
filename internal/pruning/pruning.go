// Package pruning implements the exact-distance heuristic tables used by
// search: one byte per reachable block coordinate, holding the minimum HTM
// move count back to the block's solved state.
package pruning

import (
	"path/filepath"

	"github.com/ehrlich-b/blocksolver/internal/block"
	"github.com/ehrlich-b/blocksolver/internal/cubie"
	"github.com/ehrlich-b/blocksolver/internal/movetable"
	"github.com/ehrlich-b/blocksolver/internal/store"
	"github.com/ehrlich-b/blocksolver/internal/tableerr"
)

const unvisited = 255

// PruningTable is a dense byte array indexed by the compound corner/edge
// coordinate described in A.4.4.
type PruningTable struct {
	Block *block.Block
	data  []byte
}

func (p *PruningTable) size() int {
	return p.Block.NEdgeStates() * p.Block.NCornerStates()
}

func (p *PruningTable) index(cbc block.CBC) int {
	return p.Block.EIndex(cbc)*p.Block.NCornerStates() + p.Block.CIndex(cbc)
}

// Estimate returns the exact minimum move count from cbc to the block's
// solved coordinate.
func (p *PruningTable) Estimate(cbc block.CBC) int {
	idx := p.index(cbc)
	if idx < 0 || idx >= len(p.data) {
		tableerr.OutOfBounds("pruning index %d out of range [0,%d) for block %s", idx, len(p.data), p.Block.ID)
	}
	return int(p.data[idx])
}

type frontierEntry struct {
	cbc  block.CBC
	last cubie.Move
	has  bool
}

// Generate floods the block's coordinate space breadth-first from the
// solved state, advancing coordinates through table and restricting
// successor moves with the shared face-successor relation so the BFS
// never revisits a state through a redundant move pair.
func Generate(b *block.Block, table *movetable.BlockMoveTable) *PruningTable {
	p := &PruningTable{Block: b}
	p.data = make([]byte, p.size())
	for i := range p.data {
		p.data[i] = unvisited
	}

	solvedIdx := p.index(b.Solved)
	p.data[solvedIdx] = 0

	frontier := []frontierEntry{{cbc: b.Solved}}
	depth := byte(0)

	for len(frontier) > 0 && depth < unvisited-1 {
		depth++
		var next []frontierEntry
		for _, e := range frontier {
			var directions []cubie.Move
			if e.has {
				directions = cubie.AllowedNext(e.last)
			} else {
				directions = cubie.FirstMoveDirections()
			}
			for _, m := range directions {
				child := table.ApplyMove(e.cbc, m)
				idx := p.index(child)
				if p.data[idx] != unvisited {
					continue
				}
				p.data[idx] = depth
				next = append(next, frontierEntry{cbc: child, last: m, has: true})
			}
		}
		frontier = next
	}

	for _, v := range p.data {
		if v == unvisited {
			tableerr.InvariantViolation("pruning table for block %s left unreachable coordinates after BFS", b.ID)
		}
	}

	return p
}

func tablePath(dir string, b *block.Block) string {
	return filepath.Join(dir, b.Name, "table.dat")
}

// Save writes the table to dir/{block.name}/table.dat.
func (p *PruningTable) Save(dir string) error {
	return store.SaveBytes(tablePath(dir, p.Block), p.data)
}

// Load reads a previously generated table for b from dir.
func Load(b *block.Block, dir string) (*PruningTable, error) {
	p := &PruningTable{Block: b}
	data, err := store.LoadBytes(tablePath(dir, b), p.size())
	if err != nil {
		return nil, err
	}
	p.data = data
	return p, nil
}

// LoadOrGenerate loads a cached table from dir, or generates and caches a
// fresh one using table if loading fails for any reason.
func LoadOrGenerate(b *block.Block, table *movetable.BlockMoveTable, dir string) (*PruningTable, error) {
	if p, err := Load(b, dir); err == nil {
		return p, nil
	}
	p := Generate(b, table)
	if err := p.Save(dir); err != nil {
		return nil, err
	}
	return p, nil
}
