package puzzle_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/daily"
	"github.com/katalvlaran/wordladder/game"
	"github.com/katalvlaran/wordladder/internal/puzzle"
	"github.com/katalvlaran/wordladder/internal/store"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/vocab"
)

// chain returns n+1 words of length n where word i is i 'b's then 'a's,
// so the graph is a simple path and dist(i, j) = |i-j|.
func chain(n int) []string {
	out := make([]string, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, strings.Repeat("b", i)+strings.Repeat("a", n-i))
	}
	return out
}

var day = time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func newService(t *testing.T, st store.Store, words []string) *puzzle.Service {
	t.Helper()
	g := ladder.MustBuild(words...)
	svc, err := puzzle.New(puzzle.Config{
		Graph:    g,
		Store:    st,
		Selector: daily.New(g, daily.WithSeed(11)),
		Clock:    fixedClock(day),
	})
	require.NoError(t, err)
	return svc
}

func memStore(t *testing.T) *store.BadgerStore {
	t.Helper()
	s, err := store.OpenBadger(store.BadgerConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNew_Validation(t *testing.T) {
	g := ladder.MustBuild(chain(3)...)
	_, err := puzzle.New(puzzle.Config{Store: store.NewFileStore(filepath.Join(t.TempDir(), "p.json"))})
	assert.ErrorIs(t, err, puzzle.ErrConfig)

	_, err = puzzle.New(puzzle.Config{Graph: g})
	assert.ErrorIs(t, err, puzzle.ErrConfig)

	_, err = puzzle.New(puzzle.Config{
		Graph: g,
		Store: store.NewFileStore(filepath.Join(t.TempDir(), "p.json")),
		Range: daily.Range{MinSteps: 5, MaxSteps: 1},
	})
	assert.ErrorIs(t, err, daily.ErrBadRange)
}

func TestDailyPair_SelectsOncePerDay(t *testing.T) {
	ctx := context.Background()
	st := memStore(t)
	svc := newService(t, st, chain(10))

	rec, err := svc.DailyPair(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", rec.Date)
	d, err := svc.Graph().Distance(rec.Start(), rec.End())
	require.NoError(t, err)
	assert.True(t, daily.DefaultRange().Contains(d), "distance %d", d)

	again, err := svc.DailyPair(ctx)
	require.NoError(t, err)
	assert.Equal(t, rec, again)

	stored, err := st.Get(ctx, "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, rec, stored)
}

func TestDailyPair_Concurrent(t *testing.T) {
	ctx := context.Background()
	st := memStore(t)
	svc := newService(t, st, chain(10))

	const n = 16
	recs := make([]*store.Record, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := svc.DailyPair(ctx)
			assert.NoError(t, err)
			recs[i] = r
		}(i)
	}
	wg.Wait()

	for _, r := range recs[1:] {
		assert.Equal(t, recs[0], r)
	}
	all, err := st.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDailyPair_NewDayReselects(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "daily_pair.json")
	require.NoError(t, store.NewFileStore(path).Put(ctx, &store.Record{
		Date: "2024-02-29", Pair: [2]string{"aaaaaaaaaa", "bbbbbbaaaa"},
	}))

	svc := newService(t, store.NewFileStore(path), chain(10))
	rec, err := svc.DailyPair(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", rec.Date)
}

func TestDailyPair_CorruptFileRegenerates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daily_pair.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	svc := newService(t, store.NewFileStore(path), chain(10))
	rec, err := svc.DailyPair(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", rec.Date)
}

func TestDailyPair_StalePairReselects(t *testing.T) {
	ctx := context.Background()
	st := memStore(t)
	stale := &store.Record{Date: "2024-03-01", Pair: [2]string{"qqqqqqqqqq", "zzzzzzzzzz"}}
	require.NoError(t, st.Put(ctx, stale))
	svc := newService(t, st, chain(10))

	rec, err := svc.DailyPair(ctx)
	require.NoError(t, err)
	assert.True(t, svc.Graph().HasWord(rec.Start()))
	assert.True(t, svc.Graph().HasWord(rec.End()))
	assert.NotEqual(t, stale.Pair, rec.Pair)

	stored, err := st.Get(ctx, "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, rec, stored)

	_, err = svc.Solution(ctx)
	assert.NoError(t, err)
}

func TestDailyPair_SelectionFailed(t *testing.T) {
	words := chain(4) // longest ladder is 4 steps
	g := ladder.MustBuild(words...)
	svc, err := puzzle.New(puzzle.Config{
		Graph:    g,
		Store:    memStore(t),
		Selector: daily.New(g, daily.WithSeed(1), daily.WithAttempts(20)),
		Clock:    fixedClock(day),
	})
	require.NoError(t, err)

	_, err = svc.DailyPair(context.Background())
	assert.ErrorIs(t, err, puzzle.ErrSelectionFailed)
	assert.ErrorIs(t, err, daily.ErrSelectionFailed)

	_, err = svc.Hint(context.Background(), words[0])
	assert.ErrorIs(t, err, puzzle.ErrSelectionFailed)
}

func TestSolution(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, memStore(t), chain(10))

	rec, err := svc.DailyPair(ctx)
	require.NoError(t, err)
	p, err := svc.Solution(ctx)
	require.NoError(t, err)
	assert.Equal(t, rec.Start(), p.Start())
	assert.Equal(t, rec.End(), p.End())
	assert.True(t, p.IsLadder())
}

func TestSolution_NoPath(t *testing.T) {
	ctx := context.Background()
	st := memStore(t)
	g := ladder.MustBuild("cat", "bat", "zzz")
	require.NoError(t, st.Put(ctx, &store.Record{Date: "2024-03-01", Pair: [2]string{"cat", "zzz"}}))
	svc, err := puzzle.New(puzzle.Config{Graph: g, Store: st, Clock: fixedClock(day)})
	require.NoError(t, err)

	_, err = svc.Solution(ctx)
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
	assert.ErrorIs(t, err, ladder.ErrNoPath)
}

func TestValidateGuess(t *testing.T) {
	svc := newService(t, memStore(t), chain(10))
	ctx := context.Background()
	w := chain(10)

	cases := []struct {
		name, guess, current string
		want                 puzzle.Verdict
	}{
		{"one letter", w[1], w[0], puzzle.Verdict{Valid: true}},
		{"case and space", "  " + strings.ToUpper(w[1]), w[0], puzzle.Verdict{Valid: true}},
		{"same word", w[0], w[0], puzzle.Verdict{Reason: puzzle.ReasonSameWord}},
		{"unknown", "cccccccccc", w[0], puzzle.Verdict{Reason: puzzle.ReasonNotAWord}},
		{"two letters", w[2], w[0], puzzle.Verdict{Reason: puzzle.ReasonNotOneLetter}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, svc.ValidateGuess(ctx, c.guess, c.current))
		})
	}
}

func TestValidateGuess_Dictionary(t *testing.T) {
	g := ladder.MustBuild("cat", "bat")
	dict, err := vocab.NewSet([]string{"cat", "bat", "cot"})
	require.NoError(t, err)
	svc, err := puzzle.New(puzzle.Config{Graph: g, Store: memStore(t), Dictionary: dict})
	require.NoError(t, err)

	// "cot" is a legal guess even though the graph does not hold it
	assert.Equal(t, puzzle.Verdict{Valid: true}, svc.ValidateGuess(context.Background(), "cot", "cat"))
}

func TestHint(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, memStore(t), chain(10))
	rec, err := svc.DailyPair(ctx)
	require.NoError(t, err)

	h, err := svc.Hint(ctx, rec.End())
	require.NoError(t, err)
	assert.Equal(t, 0, h.Distance)
	assert.Equal(t, game.VeryClose, h.Tier)
	assert.Equal(t, rec.End(), h.Target)
	assert.NotEmpty(t, h.Message)

	h, err = svc.Hint(ctx, "nope")
	require.NoError(t, err)
	assert.Equal(t, game.Unreachable, h.Distance)
	assert.Equal(t, game.FarOrUnreachable, h.Tier)
}

func TestDistanceAndHistory(t *testing.T) {
	ctx := context.Background()
	w := chain(10)
	svc := newService(t, memStore(t), w)

	assert.Equal(t, 7, svc.Distance(w[1], w[8]))
	assert.Equal(t, game.Unreachable, svc.Distance(w[1], "missing"))

	hist, err := svc.History(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, hist)

	_, err = svc.DailyPair(ctx)
	require.NoError(t, err)
	hist, err = svc.History(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, hist, 1)
}
