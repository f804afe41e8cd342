package recording

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "recordings.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenAndHealthCheck(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.HealthCheck())
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "recordings.db")
	store, err := Open(path, false)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, path)
}

func TestSaveAndListByRun(t *testing.T) {
	store := newTestStore(t)

	first := &Response{
		RunID:      "run-a",
		Endpoint:   "search/byterm",
		Query:      "max=5&q=test",
		StatusCode: 200,
		Body:       []byte(`{"status": "true"}`),
	}
	second := &Response{
		RunID:      "run-a",
		Endpoint:   "categories/list",
		StatusCode: 200,
		Body:       []byte(`{"status": "true", "feeds": []}`),
	}
	other := &Response{
		RunID:      "run-b",
		Endpoint:   "stats/current",
		StatusCode: 500,
		Body:       []byte(`oops`),
	}

	require.NoError(t, store.Save(first))
	require.NoError(t, store.Save(second))
	require.NoError(t, store.Save(other))

	responses, err := store.ListByRun("run-a")
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "search/byterm", responses[0].Endpoint)
	assert.Equal(t, "categories/list", responses[1].Endpoint)
	assert.JSONEq(t, `{"status": "true"}`, string(responses[0].Body))

	responses, err = store.ListByRun("run-b")
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, 500, responses[0].StatusCode)
}

func TestListByRunEmpty(t *testing.T) {
	store := newTestStore(t)

	responses, err := store.ListByRun("no-such-run")
	require.NoError(t, err)
	assert.Empty(t, responses)
}

func TestRuns(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(&Response{RunID: "run-a", Endpoint: "stats/current"}))
	require.NoError(t, store.Save(&Response{RunID: "run-b", Endpoint: "stats/current"}))
	require.NoError(t, store.Save(&Response{RunID: "run-a", Endpoint: "categories/list"}))

	runs, err := store.Runs()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"run-a", "run-b"}, runs)
}
