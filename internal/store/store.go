// Package store implements the raw binary persistence format shared by
// move tables and pruning tables: move tables are little-endian uint32
// arrays, pruning tables are raw byte arrays, both loaded if present and
// correctly sized, generated and written otherwise.
package store

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/ehrlich-b/blocksolver/internal/tableerr"
)

// SaveUint32s writes data as a little-endian uint32 array to path,
// creating parent directories as needed.
func SaveUint32s(path string, data []uint32) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return tableerr.LoadError(path, err)
	}
	buf := make([]byte, 4*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint32(buf[4*i:], v)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return tableerr.LoadError(path, err)
	}
	return nil
}

// LoadUint32s reads a little-endian uint32 array of exactly want entries
// from path. It returns a wrapped tableerr.ErrLoad if the file is absent,
// unreadable, or the wrong size.
func LoadUint32s(path string, want int) ([]uint32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, tableerr.LoadError(path, err)
	}
	if len(raw) != 4*want {
		return nil, tableerr.LoadError(path, os.ErrInvalid)
	}
	out := make([]uint32, want)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(raw[4*i:])
	}
	return out, nil
}

// SaveBytes writes data verbatim to path, creating parent directories as
// needed.
func SaveBytes(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return tableerr.LoadError(path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return tableerr.LoadError(path, err)
	}
	return nil
}

// LoadBytes reads exactly want bytes from path, returning a wrapped
// tableerr.ErrLoad on any mismatch.
func LoadBytes(path string, want int) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, tableerr.LoadError(path, err)
	}
	if len(raw) != want {
		return nil, tableerr.LoadError(path, os.ErrInvalid)
	}
	return raw, nil
}
