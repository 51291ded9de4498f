package scoring

import (
	"slices"
	"sort"
)

// DefaultMinRounds is the number of rounds needed to appear on the
// leaderboard, and the number of best rounds averaged
const DefaultMinRounds = 5

// Standing is one ranked leaderboard row
type Standing struct {
	Rank     int     `json:"rank"`
	PlayerID string  `json:"player_id,omitempty"`
	Name     string  `json:"name"`
	Average  float64 `json:"average"`
	Rounds   int     `json:"rounds"`
	Best     []int   `json:"best"`
}

// Calculator ranks players by the mean of their lowest MinRounds scores
type Calculator struct {
	minRounds int
}

// NewCalculator creates a calculator for the given qualifying threshold
func NewCalculator(minRounds int) (*Calculator, error) {
	if minRounds < 1 {
		return nil, ErrInvalidMinRounds
	}
	return &Calculator{minRounds: minRounds}, nil
}

// MinRounds returns the qualifying threshold
func (c *Calculator) MinRounds() int {
	return c.minRounds
}

// Calculate builds the ranked leaderboard. Players with fewer than
// MinRounds scores are left out. Equal averages keep snapshot order.
func (c *Calculator) Calculate(s *Snapshot) []Standing {
	standings := make([]Standing, 0, s.Len())

	// Players hands out copies, so sorting in place is safe
	for _, p := range s.Players() {
		if len(p.Scores) < c.minRounds {
			continue
		}

		slices.Sort(p.Scores)
		best := p.Scores[:c.minRounds:c.minRounds]

		total := 0
		for _, score := range best {
			total += score
		}

		standings = append(standings, Standing{
			PlayerID: p.PlayerID,
			Name:     p.Name,
			Average:  float64(total) / float64(len(best)),
			Rounds:   len(p.Scores),
			Best:     best,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Average < standings[j].Average
	})

	for i := range standings {
		standings[i].Rank = i + 1
	}

	return standings
}
