// Tool to preview the stencil a word rasterizes into before it goes
// in config.ini. Prints the particle offsets as an ASCII grid.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"

	"github.com/Rakly3/CursorDemo/engine/plugin"
)

func main() {
	word := flag.String("word", "cursor", "word to rasterize")
	regular := flag.Bool("regular", false, "use the regular face instead of bold")
	flag.Parse()

	var face font.Face = inconsolata.Bold8x16
	if *regular {
		face = inconsolata.Regular8x16
	}

	points := plugin.Stencil(*word, face)
	if len(points) == 0 {
		fmt.Fprintf(os.Stderr, "word %q has no drawable pixels\n", *word)
		os.Exit(1)
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	w := int(maxX-minX) + 1
	h := int(maxY-minY) + 1
	grid := make([][]bool, h)
	for i := range grid {
		grid[i] = make([]bool, w)
	}
	for _, p := range points {
		grid[int(p.Y-minY)][int(p.X-minX)] = true
	}

	var b strings.Builder
	for _, row := range grid {
		for _, on := range row {
			if on {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
	fmt.Printf("%d particles, %dx%d px\n", len(points), w, h)
}
