// SPDX-License-Identifier: MIT
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/simplex"
	"github.com/katalvlaran/simplex/tableau"
)

// minColumnWidth keeps narrow columns readable next to the x0/x1 headers.
const minColumnWidth = 2

// Grid renders t as a fixed-width aligned grid: a header row labelling the
// columns x0, x1..x(n-2) and RHS, vertical bars isolating the x0 and RHS
// columns, and a dashed separator beneath the objective row. Every line
// ends with a newline. Cells are formatted with the shortest exact
// representation (strconv 'g').
func Grid(t *tableau.Tableau) string {
	rows, cols := t.Rows(), t.Cols()

	cells := make([][]string, rows)
	for y := 0; y < rows; y++ {
		cells[y] = make([]string, cols)
		for x := 0; x < cols; x++ {
			cells[y][x] = formatCell(t.At(y, x))
		}
	}

	headers := make([]string, cols)
	headers[0] = "x0"
	headers[cols-1] = "RHS"
	for x := 1; x < cols-1; x++ {
		headers[x] = "x" + strconv.Itoa(x)
	}

	widths := make([]int, cols)
	for x := 0; x < cols; x++ {
		width := len(headers[x])
		for y := 0; y < rows; y++ {
			if len(cells[y][x]) > width {
				width = len(cells[y][x])
			}
		}
		if width < minColumnWidth {
			width = minColumnWidth
		}
		widths[x] = width
	}

	var b strings.Builder
	header := formatLine(headers, widths)
	b.WriteString(header)
	b.WriteByte('\n')

	for y := 0; y < rows; y++ {
		b.WriteString(formatLine(cells[y], widths))
		b.WriteByte('\n')
		if y == 0 { // separator beneath the objective row
			b.WriteString(strings.Repeat("-", len(header)))
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// Annotated renders t like Grid and appends the current solution vector
// (BV/NBV per non-RHS column) plus, when another pivot exists, the pivot
// cell the solver would choose next.
func Annotated(t *tableau.Tableau) string {
	var b strings.Builder
	b.WriteString(Grid(t))

	vector := simplex.Vector(t)
	parts := make([]string, len(vector))
	for index, variable := range vector {
		parts[index] = variable.String()
	}
	b.WriteString("vector: ")
	b.WriteString(strings.Join(parts, " "))
	b.WriteByte('\n')

	if point, state := simplex.FindPivotElement(t); state == simplex.PivotFound {
		fmt.Fprintf(&b, "pivot: column %d, row %d\n", point.Col, point.Row)
	}

	return b.String()
}

// formatLine right-aligns each field to its column width and joins the
// fields: "x0 | x1  x2  ... | RHS".
func formatLine(fields []string, widths []int) string {
	last := len(fields) - 1

	var b strings.Builder
	b.WriteString(rightAlign(fields[0], widths[0]))
	for x := 1; x < last; x++ {
		if x == 1 {
			b.WriteString(" | ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString(rightAlign(fields[x], widths[x]))
	}
	b.WriteString(" | ")
	b.WriteString(rightAlign(fields[last], widths[last]))

	return b.String()
}

func rightAlign(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat(" ", width-len(s)) + s
}

func formatCell(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
