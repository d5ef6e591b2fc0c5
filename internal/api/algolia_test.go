package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fragmede/hackerstories/internal/config"
	"github.com/fragmede/hackerstories/internal/stories"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.Endpoint = srv.URL + "/api/v1/search?query="
	cfg.RequestsPerSecond = 0
	cfg.RequestTimeout = 5 * time.Second
	return NewClient(cfg)
}

const twoHits = `{
  "hits": [
    {"objectID": "0", "title": "React", "url": "https://reactjs.org/", "author": "Jordan Walke", "points": 4, "num_comments": 3, "created_at_i": 1700000000},
    {"objectID": "1", "title": "Redux", "url": "https://redux.js.org/", "author": "Dan Abramov", "points": 5, "num_comments": 2}
  ],
  "page": 0,
  "nbPages": 1
}`

func TestSearch(t *testing.T) {
	var gotQuery, gotUA string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, twoHits)
	})

	got, err := client.Search(context.Background(), "react hooks")
	require.NoError(t, err)

	assert.Equal(t, "react hooks", gotQuery)
	assert.Equal(t, "hackerstories/1.0", gotUA)
	assert.Equal(t, []stories.Story{
		{ObjectID: "0", Title: "React", URL: "https://reactjs.org/", Author: "Jordan Walke", Points: 4, NumComments: 3, CreatedAt: 1700000000},
		{ObjectID: "1", Title: "Redux", URL: "https://redux.js.org/", Author: "Dan Abramov", Points: 5, NumComments: 2},
	}, got)
}

func TestSearch_SkipsComments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"hits": [
			{"objectID": "7", "comment_text": "nice", "author": "pg"},
			{"objectID": "8", "title": "Vue", "num_comments": 4}
		]}`)
	})

	got, err := client.Search(context.Background(), "vue")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "8", got[0].ObjectID)
}

func TestSearch_EmptyHits(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"hits": []}`)
	})

	got, err := client.Search(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearch_ProtocolErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"missing hits", http.StatusOK, `{"results": []}`, ErrMissingHits},
		{"null hits", http.StatusOK, `{"hits": null}`, ErrMissingHits},
		{"missing object id", http.StatusOK, `{"hits": [{"title": "x"}]}`, ErrMissingObjectID},
		{"malformed json", http.StatusOK, `{"hits": [`, nil},
		{"server error", http.StatusInternalServerError, `oops`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			})

			got, err := client.Search(context.Background(), "q")
			require.Error(t, err)
			assert.Nil(t, got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSearch_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, twoHits)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, "react")
	assert.Error(t, err)
}

func TestSearchURL(t *testing.T) {
	cfg := config.Default()
	cfg.Endpoint = "https://hn.algolia.com/api/v1/search?query="
	client := NewClient(cfg)

	assert.Equal(t, "https://hn.algolia.com/api/v1/search?query=React", client.SearchURL("React", 0))
	assert.Equal(t, "https://hn.algolia.com/api/v1/search?query=a+%26+b", client.SearchURL("a & b", 0))
	assert.Equal(t, "https://hn.algolia.com/api/v1/search?query=go&page=2", client.SearchURL("go", 2))
}

func TestSearchPages(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		// Page 1 repeats the last hit of page 0.
		fmt.Fprintf(w, `{"hits": [
			{"objectID": "%d", "title": "story %d"},
			{"objectID": "%d", "title": "story %d"}
		]}`, page, page, page+1, page+1)
	})

	got, err := client.SearchPages(context.Background(), "go", 2)
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
	ids := make([]string, 0, len(got))
	for _, s := range got {
		ids = append(ids, s.ObjectID)
	}
	assert.Equal(t, []string{"0", "1", "2"}, ids)
}

func TestSearchPages_FailsWhenAnyPageFails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, twoHits)
	})

	_, err := client.SearchPages(context.Background(), "go", 3)
	assert.Error(t, err)
}

func TestSearchPages_SinglePage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("page"))
		fmt.Fprint(w, twoHits)
	})

	got, err := client.SearchPages(context.Background(), "react", 1)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestToStory_ClampsNegativeCounts(t *testing.T) {
	s, ok := AlgoliaHit{ObjectID: "1", Title: "t", Points: -3, NumComments: -1}.ToStory()
	require.True(t, ok)
	assert.Equal(t, 0, s.Points)
	assert.Equal(t, 0, s.NumComments)
}
