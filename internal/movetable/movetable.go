// Package movetable precomputes, for a block, the successor coordinate of
// each of its four sub-coordinates under every move in the combined
// 25-entry elementary transformation alphabet (the 18 HTM moves plus the 7
// symmetry generators), so search and symmetry-conjugated lookups share
// one table.
package movetable

import (
	"path/filepath"

	"github.com/ehrlich-b/blocksolver/internal/block"
	"github.com/ehrlich-b/blocksolver/internal/cubie"
	"github.com/ehrlich-b/blocksolver/internal/store"
)

// BlockMoveTable holds the four dense transition arrays described in
// A.4.2: cp/ep combine layout and permutation into one successor index,
// co/eo are keyed by (layout, orientation) alone since an elementary
// transformation's orientation delta depends only on slot position, never
// on which piece occupies it.
type BlockMoveTable struct {
	Block *block.Block

	cp []uint32 // [(ccl*NCP+ccp)*NumElementary + idx] -> ccl'*NCP + ccp'
	co []uint32 // [(ccl*NCO+cco)*NumElementary + idx] -> cco'
	ep []uint32 // [(cel*NEP+cep)*NumElementary + idx] -> cel'*NEP + cep'
	eo []uint32 // [(cel*NEO+ceo)*NumElementary + idx] -> ceo'
}

// Generate builds a BlockMoveTable from scratch by constructing, for every
// reachable (layout, permutation) and (layout, orientation) pair, the
// corresponding block-restricted cube, applying each of the 25 elementary
// transformations, and re-encoding the result.
func Generate(b *block.Block) *BlockMoveTable {
	ncl, ncp, nco := b.NCornerLayouts(), b.NCP, b.NCO
	nel, nep, neo := b.NEdgeLayouts(), b.NEP, b.NEO
	n := cubie.NumElementary

	t := &BlockMoveTable{
		Block: b,
		cp:    make([]uint32, ncl*ncp*n),
		co:    make([]uint32, ncl*nco*n),
		ep:    make([]uint32, nel*nep*n),
		eo:    make([]uint32, nel*neo*n),
	}

	for ccl := 0; ccl < ncl; ccl++ {
		for ccp := 0; ccp < ncp; ccp++ {
			base := b.ToCube(block.CBC{CCL: ccl, CCP: ccp})
			row := (ccl*ncp + ccp) * n
			for idx := 0; idx < n; idx++ {
				moved := base
				moved.CornerApply(cubie.ElementaryCube(idx))
				out := b.ToCBC(moved)
				t.cp[row+idx] = uint32(out.CCL*ncp + out.CCP)
			}
		}
	}

	for ccl := 0; ccl < ncl; ccl++ {
		for cco := 0; cco < nco; cco++ {
			base := b.ToCube(block.CBC{CCL: ccl, CCO: cco})
			row := (ccl*nco + cco) * n
			for idx := 0; idx < n; idx++ {
				moved := base
				moved.CornerApply(cubie.ElementaryCube(idx))
				out := b.ToCBC(moved)
				t.co[row+idx] = uint32(out.CCO)
			}
		}
	}

	for cel := 0; cel < nel; cel++ {
		for cep := 0; cep < nep; cep++ {
			base := b.ToCube(block.CBC{CEL: cel, CEP: cep})
			row := (cel*nep + cep) * n
			for idx := 0; idx < n; idx++ {
				moved := base
				moved.EdgeApply(cubie.ElementaryCube(idx))
				out := b.ToCBC(moved)
				t.ep[row+idx] = uint32(out.CEL*nep + out.CEP)
			}
		}
	}

	for cel := 0; cel < nel; cel++ {
		for ceo := 0; ceo < neo; ceo++ {
			base := b.ToCube(block.CBC{CEL: cel, CEO: ceo})
			row := (cel*neo + ceo) * n
			for idx := 0; idx < n; idx++ {
				moved := base
				moved.EdgeApply(cubie.ElementaryCube(idx))
				out := b.ToCBC(moved)
				t.eo[row+idx] = uint32(out.CEO)
			}
		}
	}

	return t
}

// Apply advances cbc by the elementary transformation at index idx (0..17
// for an HTM move, 18..24 for a symmetry generator).
func (t *BlockMoveTable) Apply(cbc block.CBC, idx int) block.CBC {
	ncp, nco := t.Block.NCP, t.Block.NCO
	nep, neo := t.Block.NEP, t.Block.NEO
	n := cubie.NumElementary

	cpv := t.cp[(cbc.CCL*ncp+cbc.CCP)*n+idx]
	epv := t.ep[(cbc.CEL*nep+cbc.CEP)*n+idx]

	return block.CBC{
		CCL: int(cpv) / ncp,
		CCP: int(cpv) % ncp,
		CCO: int(t.co[(cbc.CCL*nco+cbc.CCO)*n+idx]),
		CEL: int(epv) / nep,
		CEP: int(epv) % nep,
		CEO: int(t.eo[(cbc.CEL*neo+cbc.CEO)*n+idx]),
	}
}

// ApplyMove advances cbc by a single HTM move.
func (t *BlockMoveTable) ApplyMove(cbc block.CBC, m cubie.Move) block.CBC {
	return t.Apply(cbc, int(m))
}

// ApplyRotation advances cbc by a symmetry generator, used to build a
// block's other symmetry representatives from its base coordinate without
// returning to cubie-level state.
func (t *BlockMoveTable) ApplyRotation(cbc block.CBC, r cubie.Rotation) block.CBC {
	return t.Apply(cbc, int(r))
}

func tablePaths(dir string, b *block.Block) (cp, co, ep, eo string) {
	base := filepath.Join(dir, b.ID)
	return filepath.Join(base, "cp_table.dat"),
		filepath.Join(base, "co_table.dat"),
		filepath.Join(base, "ep_table.dat"),
		filepath.Join(base, "eo_table.dat")
}

// Save writes the four tables under dir/{block.id}/{cp,co,ep,eo}_table.dat.
func (t *BlockMoveTable) Save(dir string) error {
	cpPath, coPath, epPath, eoPath := tablePaths(dir, t.Block)
	if err := store.SaveUint32s(cpPath, t.cp); err != nil {
		return err
	}
	if err := store.SaveUint32s(coPath, t.co); err != nil {
		return err
	}
	if err := store.SaveUint32s(epPath, t.ep); err != nil {
		return err
	}
	if err := store.SaveUint32s(eoPath, t.eo); err != nil {
		return err
	}
	return nil
}

// Load reads a previously generated table for b from dir, failing with a
// wrapped tableerr.ErrLoad if any file is missing or the wrong size.
func Load(b *block.Block, dir string) (*BlockMoveTable, error) {
	ncl, ncp, nco := b.NCornerLayouts(), b.NCP, b.NCO
	nel, nep, neo := b.NEdgeLayouts(), b.NEP, b.NEO
	n := cubie.NumElementary

	cpPath, coPath, epPath, eoPath := tablePaths(dir, b)
	cp, err := store.LoadUint32s(cpPath, ncl*ncp*n)
	if err != nil {
		return nil, err
	}
	co, err := store.LoadUint32s(coPath, ncl*nco*n)
	if err != nil {
		return nil, err
	}
	ep, err := store.LoadUint32s(epPath, nel*nep*n)
	if err != nil {
		return nil, err
	}
	eo, err := store.LoadUint32s(eoPath, nel*neo*n)
	if err != nil {
		return nil, err
	}
	return &BlockMoveTable{Block: b, cp: cp, co: co, ep: ep, eo: eo}, nil
}

// LoadOrGenerate loads a cached table from dir, or generates and caches a
// fresh one if loading fails for any reason.
func LoadOrGenerate(b *block.Block, dir string) (*BlockMoveTable, error) {
	if t, err := Load(b, dir); err == nil {
		return t, nil
	}
	t := Generate(b)
	if err := t.Save(dir); err != nil {
		return nil, err
	}
	return t, nil
}
