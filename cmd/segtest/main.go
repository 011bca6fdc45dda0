// segtest runs chart segmentation from the command line: it decodes a chart
// image, prompts on stdin for any colors that have no name yet, and prints
// the resulting grid and its statistics. Useful for checking a scanned chart
// before opening it in the GUI.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"chart-tracer/internal/chart"
	"chart-tracer/internal/chartimage"
	"chart-tracer/internal/palette"
	"chart-tracer/internal/project"
	"chart-tracer/pkg/rgb"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	imagePath := flag.String("image", "", "chart image to segment")
	ansi := flag.Bool("ansi", true, "print the grid with ANSI truecolor")
	save := flag.Bool("save", false, "save named colors to the chart's progress file")
	flag.Parse()

	if *imagePath == "" {
		flag.Usage()
		os.Exit(1)
	}

	ch, err := chartimage.Load(*imagePath)
	if err != nil {
		log.Fatalf("Failed to load chart: %v", err)
	}
	fmt.Printf("Loaded %s chart %s (%dx%d)\n", ch.Format, *imagePath, ch.Width(), ch.Height())

	progress := project.Load(*imagePath)
	pal := progress.Palette

	builder := chart.NewBuilder(ch.Buffer())
	stdin := bufio.NewReader(os.Stdin)

	res := builder.Build(pal)
	for !res.Done {
		fullName, oneChar := promptForName(stdin, res.Color)
		res = builder.Resume(pal, fullName, oneChar)
	}

	if *save {
		if err := progress.Save(); err != nil {
			log.Fatalf("Failed to save progress: %v", err)
		}
		fmt.Printf("Saved palette to %s\n", progress.Path())
	}

	if *ansi {
		printGrid(res.Grid, pal)
	}

	printSummary(chart.Summarize(res.Grid, res.Areas), pal)
}

// promptForName asks the user to label a color segmentation stopped on.
func promptForName(r *bufio.Reader, c rgb.RGB) (fullName, oneChar string) {
	fmt.Printf("\nNew color %s \x1b[48;2;%d;%d;%dm        \x1b[0m\n", c.Hex(), c.R, c.G, c.B)

	for fullName == "" {
		fmt.Print("  Full name: ")
		line, err := r.ReadString('\n')
		if err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}
		fullName = strings.TrimSpace(line)
	}

	for len([]rune(oneChar)) != 1 {
		fmt.Print("  One-character code: ")
		line, err := r.ReadString('\n')
		if err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}
		oneChar = strings.TrimSpace(line)
	}
	return fullName, oneChar
}

// printGrid renders the grid as one-character codes on their cell colors,
// over the separator color as background.
func printGrid(grid chart.Grid, pal *palette.Palette) {
	sep := rgb.Separator
	for i, row := range grid {
		// Odd rows are shifted half a cell in the physical pattern.
		if i%2 == 1 {
			fmt.Printf("\x1b[48;2;%d;%d;%dm \x1b[0m", sep.R, sep.G, sep.B)
		}
		for _, c := range row {
			code, err := pal.OneChar(c)
			if err != nil {
				code = "?"
			}
			fmt.Printf("\x1b[48;2;%d;%d;%dm%s \x1b[0m", c.R, c.G, c.B, code)
		}
		fmt.Println()
	}
}

func printSummary(s chart.Summary, pal *palette.Palette) {
	fmt.Printf("\n=== Chart Summary ===\n")
	fmt.Printf("Rows:   %d\n", s.Rows)
	fmt.Printf("Cells:  %d\n", s.Cells)
	fmt.Printf("Colors: %d\n", s.Colors)
	fmt.Printf("Row length: %.1f +/- %.1f cells\n", s.MeanRowLen, s.StdDevRowLen)
	fmt.Printf("Region area: %.1f +/- %.1f px\n", s.MeanArea, s.StdDevArea)

	fmt.Printf("\n%-4s %-20s %s\n", "Code", "Color", "Cells")
	for _, c := range pal.Colors() {
		code, _ := pal.OneChar(c)
		name, _ := pal.FullName(c)
		fmt.Printf("%-4s %-20s %d\n", code, name, s.CountByColor[c])
	}
}
