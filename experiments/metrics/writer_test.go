package metrics

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gametree/searcher"
)

/*
Writer coverage:
- timestamped result directory layout
- setup stored as indented JSON
- game and move records stored as CSV with stable headers
*/

func TestNewWriter(t *testing.T) {
	t.Run("creating a timestamped result directory", func(t *testing.T) {
		dir := t.TempDir()

		w, err := NewWriter(dir, "demo")

		require.NoError(t, err)
		require.True(t, strings.HasPrefix(w.Dir(), filepath.Join(dir, "demo")), "Results should nest under the series name")
		info, err := os.Stat(w.Dir())
		require.NoError(t, err)
		require.True(t, info.IsDir())
	})
}

func TestWriteSetup(t *testing.T) {
	t.Run("storing the series setup as JSON", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "demo")
		require.NoError(t, err)
		setup := Setup{
			Series: "demo",
			Games:  8,
			Agents: []AgentConfig{
				{ID: 1, Kind: "mcts", Iterations: 100, TimeBudget: -1, Exploration: 1},
				{ID: 2, Kind: "random"},
			},
			StartTime: time.Now(),
			EndTime:   time.Now().Add(time.Second),
			Duration:  time.Second,
		}

		require.NoError(t, w.WriteSetup(setup))

		data, err := os.ReadFile(filepath.Join(w.Dir(), "setup.json"))
		require.NoError(t, err)
		var got Setup
		require.NoError(t, json.Unmarshal(data, &got))
		require.Equal(t, setup.Series, got.Series)
		require.Equal(t, setup.Games, got.Games)
		require.Equal(t, setup.Agents, got.Agents)
		require.Equal(t, setup.Duration, got.Duration)
	})
}

func TestWriteGameRecords(t *testing.T) {
	t.Run("storing one row per game", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "demo")
		require.NoError(t, err)
		start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		records := []GameRecord{
			{ID: "g1", Agent1: 1, Agent2: 2, Starter: 1, Winner: "X", Moves: 7, StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second},
			{ID: "g2", Agent1: 1, Agent2: 2, Starter: 2, Winner: "draw", Moves: 9, StartTime: start, EndTime: start.Add(2 * time.Second), Duration: 2 * time.Second},
		}

		require.NoError(t, w.WriteGameRecords(records))

		f, err := os.Open(filepath.Join(w.Dir(), "game_records.csv"))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3, "Should write a header and one row per record")
		require.Equal(t, []string{"id", "agent1", "agent2", "starter", "winner", "moves", "start_time", "end_time", "duration"}, rows[0])
		require.Equal(t, []string{"g1", "1", "2", "1", "X", "7", "2025-03-01T12:00:00Z", "2025-03-01T12:00:01Z", "1s"}, rows[1])
		require.Equal(t, "draw", rows[2][4])
	})
}

func TestWriteMoveRecords(t *testing.T) {
	t.Run("storing one row per move", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "demo")
		require.NoError(t, err)
		records := []MoveRecord{
			{Game: "g1", Step: 1, Player: "X", SearchMetrics: searcher.SearchMetrics{
				Duration: 2 * time.Millisecond, Iterations: 42, RolloutMoves: 7, TreeSize: 13,
			}},
			{Game: "g1", Step: 2, Player: "O"},
		}

		require.NoError(t, w.WriteMoveRecords(records))

		f, err := os.Open(filepath.Join(w.Dir(), "move_records.csv"))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		require.Equal(t, []string{"game", "step", "player", "duration", "iterations", "rollout_moves", "tree_size"}, rows[0])
		require.Equal(t, []string{"g1", "1", "X", "2ms", "42", "7", "13"}, rows[1])
		require.Equal(t, []string{"g1", "2", "O", "0s", "0", "0", "0"}, rows[2])
	})
}
