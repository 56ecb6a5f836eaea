package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/Karel2025colab/BTP-room-estimator/internal/estimate"
	"github.com/Karel2025colab/BTP-room-estimator/internal/quote"
)

// printQuote colors whole lines of the aligned text rendering so the column
// layout is unaffected.
func printQuote(w io.Writer, q quote.Quote) {
	title := color.New(color.Bold, color.FgCyan)
	totalRow := color.New(color.Bold)
	grand := color.New(color.Bold, color.FgGreen)

	lines := strings.Split(strings.TrimRight(q.Text(), "\n"), "\n")
	for i, line := range lines {
		switch {
		case i == 0:
			fmt.Fprintln(w, title.Sprint(line))
		case strings.HasPrefix(line, "Grand total"):
			fmt.Fprintln(w, grand.Sprint(line))
		case strings.Contains(line, " "+estimate.TotalLabel+" "):
			fmt.Fprintln(w, totalRow.Sprint(line))
		default:
			fmt.Fprintln(w, line)
		}
	}
}
