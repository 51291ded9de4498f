package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const tableWidth = 80

// TextRenderer prints the fixed-width leaderboard table
type TextRenderer struct {
	opts Options
}

// Render writes the table, followed by the skipped units when enabled
func (t *TextRenderer) Render(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)

	heavy := strings.Repeat("=", tableWidth)
	light := strings.Repeat("-", tableWidth)

	fmt.Fprintln(bw, heavy)
	fmt.Fprintf(bw, "GOLF CLUB LEADERBOARD - BEST %d ROUND AVERAGE\n", r.MinRounds)
	fmt.Fprintln(bw, heavy)
	fmt.Fprintf(bw, "%-6s %-30s %-8s %-8s %s\n", "Rank", "Player Name", "Avg", "Rounds",
		fmt.Sprintf("Best %d Scores", r.MinRounds))
	fmt.Fprintln(bw, light)

	for _, s := range r.Standings {
		fmt.Fprintf(bw, "%-6d %-30s %-8.*f %-8d %s\n",
			s.Rank, s.Name, t.opts.Precision, s.Average, s.Rounds, joinScores(s.Best))
	}

	fmt.Fprintln(bw, heavy)
	fmt.Fprintf(bw, "Total players qualifying: %d\n", len(r.Standings))

	if t.opts.ShowSkipped && len(r.Skipped) > 0 {
		fmt.Fprintf(bw, "\nSkipped (%d):\n", len(r.Skipped))
		for i, skip := range r.Skipped {
			prefix := "├"
			if i == len(r.Skipped)-1 {
				prefix = "╰"
			}
			fmt.Fprintf(bw, "%s── %s %s: %s\n", prefix, skip.Level, skip.Unit, skip.Reason)
		}
	}

	return bw.Flush()
}

func joinScores(scores []int) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ", ")
}
