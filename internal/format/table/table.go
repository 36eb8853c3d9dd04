package table

import "strings"

// Alignment controls which side of a column receives the padding.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format pads every cell to its column's widest entry and joins cells with
// two spaces. Columns missing from alignments default to AlignLeft.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for c, cell := range row {
			cells[c] = pad(cell, widths[c], alignmentFor(alignments, c))
		}
		lines[i] = strings.Join(cells, "  ")
	}
	return lines
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			for len(widths) <= c {
				widths = append(widths, 0)
			}
			if n := len([]rune(cell)); n > widths[c] {
				widths[c] = n
			}
		}
	}
	return widths
}

func alignmentFor(alignments []Alignment, column int) Alignment {
	if column < len(alignments) {
		return alignments[column]
	}
	return AlignLeft
}

func pad(cell string, width int, align Alignment) string {
	gap := width - len([]rune(cell))
	if gap <= 0 {
		return cell
	}
	fill := strings.Repeat(" ", gap)
	if align == AlignRight {
		return fill + cell
	}
	return cell + fill
}
