package engine

import (
	"strconv"
	"strings"
)

// Render draws the board as right-aligned columns with "." for empty cells.
func Render(g Game) (string, error) {
	rows, err := Snapshot(g)
	if err != nil {
		return "", err
	}

	cellWidth := 1
	for _, row := range rows {
		for _, v := range row {
			if n := len(strconv.Itoa(v)); v != 0 && n > cellWidth {
				cellWidth = n
			}
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			text := "."
			if v != 0 {
				text = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", cellWidth-len(text)))
			sb.WriteString(text)
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
