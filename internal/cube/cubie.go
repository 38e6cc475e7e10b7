package cube

import (
	"fmt"
	"strconv"
	"strings"
)

// CUBIE ADDRESSING SYSTEM
//
// This file implements a linear addressing system for cube positions, used
// by show's --highlight-positions flag to let a caller name an arbitrary
// set of stickers instead of one of the fixed pattern modes.
//
// CubiePosition represents a 3D position on the cube using linear addressing
// For an NxN cube, positions are numbered 1 to (6 * N * N):
//
// Face layout (reading positions like a book, left-to-right, top-to-bottom):
// For 3x3:     For 4x4:
//   1 2 3        1  2  3  4
//   4 5 6        5  6  7  8
//   7 8 9        9 10 11 12
//               13 14 15 16
//
// 3D cube numbering (example for 3x3):
// Front face (F): 1-9     (White on a solved cube)
// Back face (B):  10-18   (Yellow on a solved cube)
// Left face (L):  19-27   (Red on a solved cube)
// Right face (R): 28-36   (Orange on a solved cube)
// Up face (U):    37-45   (Blue on a solved cube)
// Down face (D):  46-54   (Green on a solved cube)

type CubieAddress int

// Dynamic cubie addressing for any NxN cube
// GetFacePositions returns all cubie addresses for a given face
func GetFacePositions(face Face, size int) []CubieAddress {
	faceSize := size * size
	startPos := int(face)*faceSize + 1

	positions := make([]CubieAddress, faceSize)
	for i := 0; i < faceSize; i++ {
		positions[i] = CubieAddress(startPos + i)
	}
	return positions
}

// Get3x3SpecificPositions returns commonly used position sets for 3x3 cubes only
func Get3x3SpecificPositions() map[string][]CubieAddress {
	if size := 3; size == 3 {
		return map[string][]CubieAddress{
			// Layer aliases for 3x3
			"TL": GetFacePositions(Up, 3),          // Top Layer
			"BL": GetFacePositions(Down, 3),        // Bottom Layer
			"ML": {12, 16, 21, 25, 30, 34, 39, 43}, // Stickers 3 and 7 of the Back, Left, Right and Up faces

			// Piece type aliases for 3x3
			"TC": {1, 3, 7, 9},                     // Front face corners
			"TE": {2, 4, 6, 8},                     // Front face edges
			"ME": {12, 16, 21, 25, 30, 34, 39, 43}, // Same stickers as ML
			"BC": {46, 48, 52, 54},                 // Bottom corners
			"BE": {47, 49, 51, 53},                 // Bottom edges

			// Face aliases for 3x3
			"UF": GetFacePositions(Up, 3),
			"LF": GetFacePositions(Left, 3),
			"FF": GetFacePositions(Front, 3),
			"RF": GetFacePositions(Right, 3),
			"BF": GetFacePositions(Back, 3),
			"DF": GetFacePositions(Down, 3),

			// Special combinations for 3x3
			"WC": {2, 4, 6, 8, 50},          // Front face edges + Down center
			"WF": GetFacePositions(Up, 3),   // Up face (Blue when solved)
			"YC": {47, 49, 51, 53, 5},       // Down face edges + Front center
			"YF": GetFacePositions(Down, 3), // Down face (Green when solved)
		}
	}
	return make(map[string][]CubieAddress)
}

// CubieToFacePos converts a cubie address to face and position within that face
func CubieToFacePos(address CubieAddress, size int) (Face, int, int) {
	pos := int(address) - 1 // Convert to 0-based indexing
	faceSize := size * size

	faceIndex := pos / faceSize
	posInFace := pos % faceSize

	face := Face(faceIndex)
	row := posInFace / size
	col := posInFace % size

	return face, row, col
}

// FacePosToCubie converts face and position to cubie address
func FacePosToCubie(face Face, row, col, size int) CubieAddress {
	faceSize := size * size
	posInFace := row*size + col
	absolutePos := int(face)*faceSize + posInFace + 1

	return CubieAddress(absolutePos)
}

// GetCubieColor returns the color at a specific cubie address
func (c *Cube) GetCubieColor(address CubieAddress) Color {
	face, row, col := CubieToFacePos(address, c.Size)
	return c.Faces[face][row][col]
}

// SetCubieColor sets the color at a specific cubie address
func (c *Cube) SetCubieColor(address CubieAddress, color Color) {
	face, row, col := CubieToFacePos(address, c.Size)
	c.Faces[face][row][col] = color
}

// ParseCubieSpec parses a comma-separated cubie specification such as
// "1,2,3", "1-9,46-54", or "TL,ME,BC" into the addresses it names.
// Aliases only resolve for 3x3 cubes, since Get3x3SpecificPositions is
// the only alias table defined.
func ParseCubieSpec(spec string, size int) ([]CubieAddress, error) {
	var aliases map[string][]CubieAddress
	if size == 3 {
		aliases = Get3x3SpecificPositions()
	}

	var result []CubieAddress
	for _, term := range strings.Split(spec, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}

		if addrs, ok := aliases[term]; ok {
			result = append(result, addrs...)
			continue
		}

		if lo, hi, ok := strings.Cut(term, "-"); ok {
			loN, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("invalid range start %q in %q: %w", lo, term, err)
			}
			hiN, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("invalid range end %q in %q: %w", hi, term, err)
			}
			if hiN < loN {
				loN, hiN = hiN, loN
			}
			for n := loN; n <= hiN; n++ {
				result = append(result, CubieAddress(n))
			}
			continue
		}

		n, err := strconv.Atoi(term)
		if err != nil {
			return nil, fmt.Errorf("unrecognized cubie spec term %q", term)
		}
		result = append(result, CubieAddress(n))
	}

	maxAddr := CubieAddress(6 * size * size)
	for _, addr := range result {
		if addr < 1 || addr > maxAddr {
			return nil, fmt.Errorf("cubie address %d out of range for a %dx%d cube (1-%d)", addr, size, size, maxAddr)
		}
	}

	return result, nil
}
