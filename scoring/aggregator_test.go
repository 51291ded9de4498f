package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshotOf builds a snapshot through the aggregator, failing on any rejected record
func snapshotOf(t *testing.T, players ...PlayerRecord) *Snapshot {
	t.Helper()
	agg := NewAggregator()
	for _, p := range players {
		for _, gross := range p.Scores {
			require.NoError(t, agg.Add(score(p.PlayerID, p.Name, gross)))
		}
	}
	return agg.Finalize()
}

func score(id, name string, gross int) Result {
	return Result{PlayerID: id, Name: name, GrossScore: gross, HasScore: true}
}

func TestAggregator_Add(t *testing.T) {
	agg := NewAggregator()

	require.NoError(t, agg.Add(score("1", "Alice", 70)))
	require.NoError(t, agg.Add(score("2", "Bob", 80)))
	require.NoError(t, agg.Add(score("1", "Alice", 72)))
	require.NoError(t, agg.Add(score("1", "Alice", 72)))

	assert.Equal(t, 2, agg.Len())

	players := agg.Finalize().Players()
	require.Len(t, players, 2)
	assert.Equal(t, "Alice", players[0].Name)
	assert.Equal(t, []int{70, 72, 72}, players[0].Scores)
	assert.Equal(t, "Bob", players[1].Name)
	assert.Equal(t, []int{80}, players[1].Scores)
}

func TestAggregator_KeysByName(t *testing.T) {
	agg := NewAggregator()

	require.NoError(t, agg.Add(score("", "Carol", 75)))
	require.NoError(t, agg.Add(score("", " Carol ", 77)))
	require.NoError(t, agg.Add(score("9", "Carol", 79)))

	players := agg.Finalize().Players()
	require.Len(t, players, 2)
	assert.Equal(t, []int{75, 77}, players[0].Scores)
	assert.Equal(t, "9", players[1].PlayerID)
	assert.Equal(t, []int{79}, players[1].Scores)
}

func TestAggregator_LatestNameWins(t *testing.T) {
	agg := NewAggregator()

	require.NoError(t, agg.Add(score("1", "Alic", 70)))
	require.NoError(t, agg.Add(score("1", "Alice", 71)))

	players := agg.Finalize().Players()
	require.Len(t, players, 1)
	assert.Equal(t, "Alice", players[0].Name)
}

func TestAggregator_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		result  Result
		wantErr error
	}{
		{
			name:    "missing name",
			result:  Result{PlayerID: "1", GrossScore: 70, HasScore: true},
			wantErr: ErrMissingName,
		},
		{
			name:    "blank name",
			result:  Result{PlayerID: "1", Name: "   ", GrossScore: 70, HasScore: true},
			wantErr: ErrMissingName,
		},
		{
			name:    "missing score",
			result:  Result{PlayerID: "1", Name: "Alice"},
			wantErr: ErrMissingScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewAggregator()
			err := agg.Add(tt.result)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var aggErr *AggregationError
			require.ErrorAs(t, err, &aggErr)
			assert.Equal(t, "1", aggErr.PlayerID)
			assert.Equal(t, 0, agg.Len())
		})
	}
}

func TestAggregator_RejectionKeepsPriorScores(t *testing.T) {
	agg := NewAggregator()

	require.NoError(t, agg.Add(score("1", "Alice", 70)))
	require.Error(t, agg.Add(Result{PlayerID: "1", Name: "Alice"}))
	require.NoError(t, agg.Add(score("1", "Alice", 71)))

	players := agg.Finalize().Players()
	require.Len(t, players, 1)
	assert.Equal(t, []int{70, 71}, players[0].Scores)
}

func TestAggregator_Finalize(t *testing.T) {
	agg := NewAggregator()
	require.NoError(t, agg.Add(score("1", "Alice", 70)))

	first := agg.Finalize()
	assert.ErrorIs(t, agg.Add(score("1", "Alice", 71)), ErrFinalized)

	second := agg.Finalize()
	assert.Equal(t, first.Players(), second.Players())
	assert.Equal(t, []int{70}, first.Players()[0].Scores)
}

func TestSnapshot_Immutable(t *testing.T) {
	snapshot := snapshotOf(t, PlayerRecord{PlayerID: "1", Name: "Alice", Scores: []int{70, 71}})

	players := snapshot.Players()
	players[0].Scores[0] = 99
	players[0].Name = "Mallory"

	again := snapshot.Players()
	assert.Equal(t, "Alice", again[0].Name)
	assert.Equal(t, []int{70, 71}, again[0].Scores)
}

func TestAggregationError_Error(t *testing.T) {
	assert.Equal(t, `rejected result for "Alice": missing gross score`,
		(&AggregationError{PlayerID: "1", Name: "Alice", Err: ErrMissingScore}).Error())
	assert.Equal(t, "rejected result for player 1: missing player name",
		(&AggregationError{PlayerID: "1", Err: ErrMissingName}).Error())
	assert.Equal(t, "rejected result: missing player name",
		(&AggregationError{Err: ErrMissingName}).Error())
}
