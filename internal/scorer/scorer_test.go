package scorer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modflow/backend/internal/scorer"
)

func TestClient_Score(t *testing.T) {
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"attributeScores": {
				"TOXICITY": {"summaryScore": {"value": 0.93}},
				"THREAT": {"summaryScore": {"value": 0.12}}
			}
		}`))
	}))
	defer srv.Close()

	c := scorer.NewClient(srv.URL, "secret")
	scores, err := c.Score(context.Background(), "you are all idiots")
	require.NoError(t, err)

	assert.InDelta(t, 0.93, scores["TOXICITY"], 1e-9)
	assert.InDelta(t, 0.12, scores["THREAT"], 1e-9)

	comment, ok := gotBody["comment"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "you are all idiots", comment["text"])

	attrs, ok := gotBody["requestedAttributes"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, attrs, "TOXICITY")
	assert.Contains(t, attrs, "SEVERE_TOXICITY")
}

func TestClient_ScoreServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := scorer.NewClient(srv.URL, "secret")
	_, err := c.Score(context.Background(), "hello")
	assert.Error(t, err)
}

func TestClient_ScoreRetriesServerFailures(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"attributeScores": {"TOXICITY": {"summaryScore": {"value": 0.5}}}}`))
	}))
	defer srv.Close()

	c := scorer.NewClient(srv.URL, "secret")
	scores, err := c.Score(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.InDelta(t, 0.5, scores["TOXICITY"], 1e-9)
}
