package stats

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"znkr.io/distle/edit"
	"znkr.io/distle/game"
)

var start = time.Date(2024, time.September, 12, 0, 0, 0, 0, time.UTC)

func result(id, secret string, won bool, played time.Time, guesses ...string) *game.Result {
	res := &game.Result{ID: id, Secret: secret, Won: won, MaxGuesses: 10, Played: played}
	for _, g := range guesses {
		c := edit.Compare(g, secret)
		res.Turns = append(res.Turns, game.Turn{Guess: g, Distance: c.Distance, Feedback: c.Sequence})
	}
	return res
}

func TestStore(t *testing.T) {
	s, err := OpenInMemory(nil)
	require.NoError(t, err)
	defer s.Close()

	sum, err := s.Summary()
	require.NoError(t, err)
	require.Equal(t, Summary{}, sum)

	// Recorded out of order on purpose.
	require.NoError(t, s.Record(result("b", "skater", true, start.Add(time.Hour), "slater", "skater")))
	require.NoError(t, s.Record(result("a", "crater", true, start, "slater", "skater", "crater", "crater")))
	require.NoError(t, s.Record(result("c", "slated", false, start.Add(2*time.Hour), "slater")))

	recs, err := s.Records()
	require.NoError(t, err)
	want := []Record{
		{
			ID:       "a",
			Secret:   "crater",
			Won:      true,
			Guesses:  4,
			Feedback: []edit.Sequence{{edit.Replace, edit.Replace}, {edit.Replace, edit.Replace}, {}, {}},
			Played:   start,
		},
		{
			ID:       "b",
			Secret:   "skater",
			Won:      true,
			Guesses:  2,
			Feedback: []edit.Sequence{{edit.Replace}, {}},
			Played:   start.Add(time.Hour),
		},
		{
			ID:       "c",
			Secret:   "slated",
			Guesses:  1,
			Feedback: []edit.Sequence{{edit.Replace}},
			Played:   start.Add(2 * time.Hour),
		},
	}
	if diff := cmp.Diff(want, recs); diff != "" {
		t.Errorf("Records() is different (-want, +got):\n%s", diff)
	}

	sum, err = s.Summary()
	require.NoError(t, err)
	require.Equal(t, Summary{Games: 3, Wins: 2, AverageGuesses: 3}, sum)
}

func TestStoreOnDisk(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, nil)
	require.NoError(t, err)
	require.NoError(t, s.Record(result("a", "skater", true, start, "skater")))
	require.NoError(t, s.Close())

	s, err = Open(dir, nil)
	require.NoError(t, err)
	defer s.Close()
	sum, err := s.Summary()
	require.NoError(t, err)
	require.Equal(t, Summary{Games: 1, Wins: 1, AverageGuesses: 1}, sum)
}
