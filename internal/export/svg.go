// Package export renders a history window as standalone image files.
package export

import (
	"fmt"
	"strings"

	"github.com/anku308/wolfca/internal/automaton"
)

// HistoryToSVG renders the generations as an SVG raster, oldest generation
// at the top, one rect per live cell. cell is the edge length in pixels.
func HistoryToSVG(rows []automaton.Row, cell int) string {
	if len(rows) == 0 || cell <= 0 {
		return ""
	}
	width := rows[0].Len() * cell
	height := len(rows) * cell

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<g fill="#000000">
`, width, height, width, height))

	for row, a := range rows {
		for i := 0; i < a.Len(); i++ {
			if !a.Cell(i) {
				continue
			}
			sb.WriteString(fmt.Sprintf("<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\"/>\n",
				i*cell, row*cell, cell, cell))
		}
	}
	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}
