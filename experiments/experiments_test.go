package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunModeMatchups(t *testing.T) {
	root := t.TempDir()
	dir, err := RunModeMatchups(Options{Dir: root, Games: 2, Size: 1, MaxTurns: 20})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "mode_matchups"), filepath.Dir(dir))

	configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, configs, 4)
	require.Equal(t, []string{"id", "mode", "goroutines", "pruning"}, configs[0])
	require.Equal(t, []string{"3", "hard", "1", "true"}, configs[3])

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 1+3*2)
	// Second game of a matchup swaps the seats
	require.Equal(t, []string{"1", "2"}, games[1][2:4])
	require.Equal(t, []string{"2", "1"}, games[2][2:4])
	require.Equal(t, "white", games[1][4])
	require.NotEqual(t, games[1][1], games[2][1], "every game has its own id")

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Greater(t, len(moves), 1)
	require.Equal(t, "game", moves[0][0])
}

func TestRunModeMatchupsParallel(t *testing.T) {
	dir, err := RunModeMatchups(Options{Dir: t.TempDir(), Games: 2, Size: 1, MaxTurns: 10, Parallel: 4})
	require.NoError(t, err)

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 1+3*2)
	for i, row := range games[1:] {
		require.Equal(t, strconv.Itoa(i+1), row[0], "records follow the schedule")
	}
	require.Equal(t, []string{"2", "3"}, games[5][2:4])
	require.Equal(t, []string{"3", "2"}, games[6][2:4])
}

func TestRunThroughputExperiment(t *testing.T) {
	dir, err := RunThroughputExperiment(Options{Dir: t.TempDir(), Games: 1, Size: 1, MaxTurns: 6})
	require.NoError(t, err)

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 1+len(throughputConfigs))
	for _, row := range games[1:] {
		require.Equal(t, row[2], row[3], "both seats use the same agent")
	}
}

func TestRunExperimentBadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := RunModeMatchups(Options{Dir: file, Games: 1, Size: 1, MaxTurns: 2})
	require.Error(t, err)
}
