package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "minmax_vs_random")
	require.NoError(t, err)

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		records := []GameRecord{
			{ID: 1, Agent0: "minmax", Agent1: "random", GameMetric: GameMetric{
				StartingPlayer: 0, Winner: 0, StartTime: start, EndTime: start.Add(time.Second),
				Duration: time.Second, TotalMoves: 9,
			}},
			{ID: 2, Agent0: "random", Agent1: "minmax", GameMetric: GameMetric{Winner: -1, TotalMoves: 500}},
		}
		require.NoError(t, w.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 3, "Should write a header and one row per game")
		require.Equal(t, "winner", rows[0][4])
		require.Equal(t, []string{"1", "minmax", "random", "0", "0"}, rows[1][:5])
		require.Equal(t, "-1", rows[2][4], "Draws should be written as -1")
		require.Equal(t, "500", rows[2][8])
	})

	t.Run("move records", func(t *testing.T) {
		records := []MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: 0, Action: "(4,1) left", Attempts: 3, Duration: time.Millisecond}},
		}
		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"1", "1", "0", "(4,1) left", "3", "1ms"}, rows[1])
	})

	t.Run("summary", func(t *testing.T) {
		summary := Summary{First: "minmax", Second: "random", Games: 100, FirstWins: 92, SecondWins: 8, WinRate: 0.92}
		require.NoError(t, w.WriteSummary(summary))

		data, err := os.ReadFile(filepath.Join(w.Dir(), "summary.yaml"))
		require.NoError(t, err)
		var got Summary
		require.NoError(t, yaml.Unmarshal(data, &got))
		require.Equal(t, summary, got)
	})
}
