package report

import (
	"encoding/json"
	"io"
	"math"

	"github.com/s0up4200/golfboard/scoring"
	"github.com/s0up4200/golfboard/season"
)

// JSONRenderer writes the leaderboard as a single JSON document
type JSONRenderer struct {
	opts Options
}

type jsonReport struct {
	Season     string             `json:"season"`
	MinRounds  int                `json:"min_rounds"`
	Players    int                `json:"players"`
	Qualifying int                `json:"qualifying"`
	Filter     string             `json:"filter,omitempty"`
	Standings  []scoring.Standing `json:"standings"`
	Skipped    []season.Skip      `json:"skipped,omitempty"`
}

// Render encodes the report. Averages are rounded to the configured precision.
func (j *JSONRenderer) Render(w io.Writer, r *Report) error {
	out := jsonReport{
		Season:     r.Season,
		MinRounds:  r.MinRounds,
		Players:    r.Players,
		Qualifying: len(r.Standings),
		Filter:     r.Filter,
		Standings:  make([]scoring.Standing, len(r.Standings)),
	}

	scale := math.Pow10(j.opts.Precision)
	for i, s := range r.Standings {
		s.Average = math.Round(s.Average*scale) / scale
		out.Standings[i] = s
	}

	if j.opts.ShowSkipped {
		out.Skipped = r.Skipped
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
