package item

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"
)

// LineCount returns the number of visual rows text occupies once wrapped to
// width columns: the sum, over each "\n"-separated line, of
// ceil(display_width(line)/width), with an empty line counting as one row.
// A width of zero or less is treated as a width of one.
func LineCount(width int, text string) int {
	if width <= 0 {
		width = 1
	}
	lines := strings.Split(text, "\n")
	total := 0
	for _, line := range lines {
		w := runewidth.StringWidth(line)
		n := (w + width - 1) / width
		if n == 0 {
			n = 1
		}
		total += n
	}
	if total == 0 {
		total = 1
	}
	return total
}
