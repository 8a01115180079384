package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/daily"
	"github.com/katalvlaran/wordladder/internal/httpapi"
	"github.com/katalvlaran/wordladder/internal/puzzle"
	"github.com/katalvlaran/wordladder/internal/store"
	"github.com/katalvlaran/wordladder/ladder"
)

func chain(n int) []string {
	out := make([]string, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, strings.Repeat("b", i)+strings.Repeat("a", n-i))
	}
	return out
}

func newServer(t *testing.T) (*httpapi.Server, *puzzle.Service) {
	t.Helper()
	st, err := store.OpenBadger(store.BadgerConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	g := ladder.MustBuild(chain(10)...)
	svc, err := puzzle.New(puzzle.Config{
		Graph:    g,
		Store:    st,
		Selector: daily.New(g, daily.WithSeed(5)),
		Clock:    func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return httpapi.NewServer(svc), svc
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestDailyPairAndSolution(t *testing.T) {
	srv, svc := newServer(t)

	res := do(t, srv, http.MethodGet, "/api/daily-pair", "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "application/json", res.Header().Get("Content-Type"))
	var pair []string
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &pair))
	require.Len(t, pair, 2)

	rec, err := svc.DailyPair(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rec.Pair[:], pair)

	res = do(t, srv, http.MethodGet, "/api/daily-solution", "")
	require.Equal(t, http.StatusOK, res.Code)
	var sol struct {
		Solution []string `json:"solution"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &sol))
	assert.Equal(t, pair[0], sol.Solution[0])
	assert.Equal(t, pair[1], sol.Solution[len(sol.Solution)-1])
	assert.True(t, ladder.Path(sol.Solution).IsLadder())
}

func TestValidateGuess(t *testing.T) {
	srv, _ := newServer(t)
	w := chain(10)

	res := do(t, srv, http.MethodPost, "/api/validate-guess",
		`{"guess":"`+w[1]+`","current_word":"`+w[0]+`"}`)
	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"valid":true}`, res.Body.String())

	res = do(t, srv, http.MethodPost, "/api/validate-guess",
		`{"guess":"`+w[3]+`","current_word":"`+w[0]+`"}`)
	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"valid":false,"reason":"not_one_letter"}`, res.Body.String())

	res = do(t, srv, http.MethodPost, "/api/validate-guess", `{"guess":"`+w[1]+`"}`)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = do(t, srv, http.MethodPost, "/api/validate-guess", `{not json`)
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestHint(t *testing.T) {
	srv, svc := newServer(t)
	rec, err := svc.DailyPair(context.Background())
	require.NoError(t, err)

	res := do(t, srv, http.MethodPost, "/api/hint", `{"word":"`+rec.End()+`"}`)
	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"distance":0,"tier":"very_close","message":"Very close! You're almost there."}`, res.Body.String())

	res = do(t, srv, http.MethodPost, "/api/hint", `{"word":"zzzzzzzzzz"}`)
	require.Equal(t, http.StatusOK, res.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.EqualValues(t, -1, body["distance"])
	assert.Equal(t, "far_or_unreachable", body["tier"])

	res = do(t, srv, http.MethodPost, "/api/hint", `{}`)
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestDistance(t *testing.T) {
	srv, _ := newServer(t)
	w := chain(10)

	res := do(t, srv, http.MethodGet, "/api/distance?word="+w[2]+"&target="+w[9], "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"distance":7}`, res.Body.String())

	res = do(t, srv, http.MethodGet, "/api/distance?word="+w[2]+"&target=nope", "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"distance":-1}`, res.Body.String())

	res = do(t, srv, http.MethodGet, "/api/distance?word="+w[2], "")
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestHistory(t *testing.T) {
	srv, svc := newServer(t)
	_, err := svc.DailyPair(context.Background())
	require.NoError(t, err)

	res := do(t, srv, http.MethodGet, "/api/history?limit=5", "")
	require.Equal(t, http.StatusOK, res.Code)
	var recs []store.Record
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "2024-03-01", recs[0].Date)

	for _, bad := range []string{"0", "abc", "1000"} {
		res = do(t, srv, http.MethodGet, "/api/history?limit="+bad, "")
		assert.Equal(t, http.StatusBadRequest, res.Code, bad)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	srv, _ := newServer(t)

	res := do(t, srv, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"status":"ok"}`, res.Body.String())

	do(t, srv, http.MethodGet, "/api/daily-pair", "")
	res = do(t, srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "wordladder_requests_total")
}

func TestCORS(t *testing.T) {
	srv := httpapi.NewServer(&fakePuzzle{}, httpapi.WithCORSOrigins([]string{"https://play.example"}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://play.example")
	res := httptest.NewRecorder()
	srv.ServeHTTP(res, req)
	assert.Equal(t, "https://play.example", res.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	res = httptest.NewRecorder()
	srv.ServeHTTP(res, req)
	assert.Empty(t, res.Header().Get("Access-Control-Allow-Origin"))
}

// fakePuzzle returns canned errors to exercise failure paths.
type fakePuzzle struct {
	pairErr     error
	solutionErr error
}

func (f *fakePuzzle) DailyPair(context.Context) (*store.Record, error) {
	if f.pairErr != nil {
		return nil, f.pairErr
	}
	return &store.Record{Date: "2024-03-01", Pair: [2]string{"cold", "warm"}}, nil
}

func (f *fakePuzzle) Solution(context.Context) (ladder.Path, error) {
	if f.solutionErr != nil {
		return nil, f.solutionErr
	}
	return ladder.Path{"cold", "cord", "card", "ward", "warm"}, nil
}

func (f *fakePuzzle) ValidateGuess(context.Context, string, string) puzzle.Verdict {
	return puzzle.Verdict{Valid: true}
}

func (f *fakePuzzle) Hint(context.Context, string) (puzzle.HintResult, error) {
	return puzzle.HintResult{}, f.pairErr
}

func (f *fakePuzzle) Distance(string, string) int { return 0 }

func (f *fakePuzzle) History(context.Context, int) ([]store.Record, error) {
	return nil, errors.New("disk on fire")
}

func TestErrorMapping(t *testing.T) {
	f := &fakePuzzle{
		pairErr:     puzzle.ErrSelectionFailed,
		solutionErr: puzzle.ErrNoSolution,
	}
	srv := httpapi.NewServer(f)

	res := do(t, srv, http.MethodGet, "/api/daily-pair", "")
	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Contains(t, res.Body.String(), "try again")

	res = do(t, srv, http.MethodGet, "/api/daily-solution", "")
	assert.Equal(t, http.StatusNotFound, res.Code)

	res = do(t, srv, http.MethodPost, "/api/hint", `{"word":"cold"}`)
	assert.Equal(t, http.StatusInternalServerError, res.Code)

	res = do(t, srv, http.MethodGet, "/api/history", "")
	assert.Equal(t, http.StatusInternalServerError, res.Code)
}
