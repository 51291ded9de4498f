package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/golfboard/season"
)

func TestRecorder_ObserveRequest(t *testing.T) {
	r := NewRecorder()

	r.ObserveRequest("/seasons", 200, 10*time.Millisecond)
	r.ObserveRequest("/seasons", 200, 20*time.Millisecond)
	r.ObserveRequest("/events/{event}/rounds", 502, time.Millisecond)
	r.ObserveRequest("/events/{event}/rounds", 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.apiRequests.WithLabelValues("/seasons", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.apiRequests.WithLabelValues("/events/{event}/rounds", "502")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.apiRequests.WithLabelValues("/events/{event}/rounds", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.apiRequestLatency))
}

func TestRecorder_RecordWalk(t *testing.T) {
	r := NewRecorder()

	r.RecordWalk(&season.Summary{
		Results:  40,
		Rejected: 3,
		Skipped: []season.Skip{
			{Level: season.LevelTournament},
			{Level: season.LevelTournament},
			{Level: season.LevelRound},
		},
	})
	r.RecordWalk(nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.skippedUnits.WithLabelValues("tournament")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.skippedUnits.WithLabelValues("round")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.rejectedRecords))
	assert.Equal(t, 40.0, testutil.ToFloat64(r.resultsAccepted))
}

func TestRecorder_RecordLeaderboardAndRun(t *testing.T) {
	r := NewRecorder()

	r.RecordLeaderboard(12, 7)
	r.RecordRun(1500*time.Millisecond, false)

	assert.Equal(t, 12.0, testutil.ToFloat64(r.playersSeen))
	assert.Equal(t, 7.0, testutil.ToFloat64(r.playersQualified))
	assert.Equal(t, 1.5, testutil.ToFloat64(r.runDuration))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.lastSuccess))

	r.RecordRun(time.Second, true)
	assert.Greater(t, testutil.ToFloat64(r.lastSuccess), 0.0)
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.ObserveRequest("/seasons", 200, time.Millisecond)
	r.RecordLeaderboard(3, 1)

	path := filepath.Join(t.TempDir(), "golfboard.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `golfboard_api_requests_total{route="/seasons",status="200"} 1`)
	assert.Contains(t, string(data), "golfboard_players_qualified 1")
}

func TestRecorder_WriteTextfileError(t *testing.T) {
	r := NewRecorder()
	err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "golfboard.prom"))
	assert.Error(t, err)
}
