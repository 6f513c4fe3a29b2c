package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/kazipot/core"
)

type stubAnalyzer struct {
	hits    []core.Hit
	err     error
	queries []string
}

func (s *stubAnalyzer) AnalyzeQuery(_ context.Context, query string) ([]core.Hit, error) {
	s.queries = append(s.queries, query)
	if s.err != nil {
		return nil, s.err
	}
	return s.hits, nil
}

func newTestServer(t *testing.T, analyzer QueryAnalyzer) *httptest.Server {
	t.Helper()
	srv, err := NewServer(DefaultConfig(), analyzer)
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestNewServerValidation(t *testing.T) {
	_, err := NewServer(DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrAnalyzerRequired)
}

func TestHandleSearch(t *testing.T) {
	analyzer := &stubAnalyzer{hits: []core.Hit{
		{
			Id:         7,
			Name:       "Blejski grad",
			Type:       "grad",
			RegionName: "gorenjska",
			Place:      "bled",
			Kind:       core.KindAttraction,
			Score:      2.5,
			ExactHit:   true,
		},
	}}
	ts := newTestServer(t, analyzer)

	resp, err := http.Get(ts.URL + "/api/search?q=blejski+grad")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body searchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "blejski grad", body.Query)
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Hits, 1)
	assert.Equal(t, uint64(7), body.Hits[0].Id)
	assert.Equal(t, "Blejski grad", body.Hits[0].Name)
	assert.Equal(t, "attraction", body.Hits[0].Kind)
	assert.True(t, body.Hits[0].ExactHit)

	require.Len(t, analyzer.queries, 1)
	assert.Equal(t, "blejski grad", analyzer.queries[0])
}

func TestHandleSearchEmptyResult(t *testing.T) {
	ts := newTestServer(t, &stubAnalyzer{hits: []core.Hit{}})

	resp, err := http.Get(ts.URL + "/api/search?q=neznano")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body searchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0, body.Count)
	assert.Empty(t, body.Hits)
}

func TestHandleSearchMissingQuery(t *testing.T) {
	analyzer := &stubAnalyzer{}
	ts := newTestServer(t, analyzer)

	for _, url := range []string{"/api/search", "/api/search?q=", "/api/search?q=+++"} {
		resp, err := http.Get(ts.URL + url)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "url %s", url)
	}
	assert.Empty(t, analyzer.queries)
}

func TestHandleSearchAnalyzerError(t *testing.T) {
	ts := newTestServer(t, &stubAnalyzer{err: errors.New("index gone")})

	resp, err := http.Get(ts.URL + "/api/search?q=grad")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "internal_error", body.Code)
	assert.NotContains(t, body.Message, "index gone")
}

func TestHandleHealth(t *testing.T) {
	ts := newTestServer(t, &stubAnalyzer{})

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}
