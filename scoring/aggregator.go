// Package scoring accumulates gross scores per player and ranks players by
// the average of their best rounds.
package scoring

import (
	"slices"
	"strings"
)

// Result is a single player's gross score for one round
type Result struct {
	PlayerID   string
	Name       string
	GrossScore int
	HasScore   bool
}

// PlayerRecord holds every gross score collected for a player, in the
// order the rounds were processed
type PlayerRecord struct {
	PlayerID string
	Name     string
	Scores   []int
}

// Aggregator owns the per-player score lists while a season is walked.
// It is not safe for concurrent use.
type Aggregator struct {
	players   map[string]*PlayerRecord
	order     []string
	finalized bool
}

// NewAggregator creates an empty aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{
		players: make(map[string]*PlayerRecord),
	}
}

// Add appends the result's gross score to the player's list, creating the
// list on first encounter. Players are keyed by id, or by name when the
// result carries no id. Nothing is deduplicated.
func (a *Aggregator) Add(r Result) error {
	if a.finalized {
		return ErrFinalized
	}

	name := strings.TrimSpace(r.Name)
	id := strings.TrimSpace(r.PlayerID)
	if name == "" {
		return &AggregationError{PlayerID: id, Err: ErrMissingName}
	}
	if !r.HasScore {
		return &AggregationError{PlayerID: id, Name: name, Err: ErrMissingScore}
	}

	key := id
	if key == "" {
		key = "name:" + name
	}

	record, ok := a.players[key]
	if !ok {
		record = &PlayerRecord{PlayerID: id}
		a.players[key] = record
		a.order = append(a.order, key)
	}
	// latest spelling wins, as the API may correct names mid-season
	record.Name = name
	record.Scores = append(record.Scores, r.GrossScore)

	return nil
}

// Len returns the number of distinct players seen so far
func (a *Aggregator) Len() int {
	return len(a.order)
}

// Finalize stops further mutation and returns an immutable snapshot.
// Calling it again returns an equal snapshot.
func (a *Aggregator) Finalize() *Snapshot {
	a.finalized = true

	players := make([]PlayerRecord, 0, len(a.order))
	for _, key := range a.order {
		record := a.players[key]
		players = append(players, PlayerRecord{
			PlayerID: record.PlayerID,
			Name:     record.Name,
			Scores:   slices.Clone(record.Scores),
		})
	}
	return &Snapshot{players: players}
}

// Snapshot is the frozen result of an aggregation, in first-encounter order
type Snapshot struct {
	players []PlayerRecord
}

// Len returns the number of players in the snapshot
func (s *Snapshot) Len() int {
	return len(s.players)
}

// Players returns a copy of every player record
func (s *Snapshot) Players() []PlayerRecord {
	out := make([]PlayerRecord, len(s.players))
	for i, p := range s.players {
		out[i] = PlayerRecord{
			PlayerID: p.PlayerID,
			Name:     p.Name,
			Scores:   slices.Clone(p.Scores),
		}
	}
	return out
}
