package cube

import "strings"

// FormatSticker renders a single sticker as a colored letter, a colored
// Unicode block, or a plain letter, matching the rendering modes every
// display command in this package already accepts.
func (c Color) FormatSticker(useColor, useUnicode bool) string {
	switch {
	case useUnicode:
		return c.UnicodeString()
	case useColor:
		return c.ColoredString()
	default:
		return c.String()
	}
}

// FormatSticker renders the given color the same way Color.FormatSticker
// does; the receiver is not consulted, so callers look the color up in
// Faces themselves.
func (c *Cube) FormatSticker(color Color, useColor, useUnicode bool) string {
	return color.FormatSticker(useColor, useUnicode)
}

// UnfoldedString renders the cube as an unfolded cross: Up on top, Down on
// bottom, and Left/Front/Right/Back across the middle row, the layout
// every solve/twist/show/verify command prints after applying moves.
func (c *Cube) UnfoldedString(useColor, useUnicode bool) string {
	var sb strings.Builder

	var leftPadding string
	if useUnicode {
		leftPadding = strings.Repeat(" ", (c.Size*2)+1)
	} else {
		leftPadding = strings.Repeat(" ", c.Size) + " "
	}

	for row := 0; row < c.Size; row++ {
		sb.WriteString(leftPadding)
		for col := 0; col < c.Size; col++ {
			sb.WriteString(c.FormatSticker(c.Faces[Up][row][col], useColor, useUnicode))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	middleFaces := [4]Face{Left, Front, Right, Back}
	for row := 0; row < c.Size; row++ {
		for i, face := range middleFaces {
			for col := 0; col < c.Size; col++ {
				sb.WriteString(c.FormatSticker(c.Faces[face][row][col], useColor, useUnicode))
			}
			if i < len(middleFaces)-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for row := 0; row < c.Size; row++ {
		sb.WriteString(leftPadding)
		for col := 0; col < c.Size; col++ {
			sb.WriteString(c.FormatSticker(c.Faces[Down][row][col], useColor, useUnicode))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
