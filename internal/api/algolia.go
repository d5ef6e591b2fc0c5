package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/fragmede/hackerstories/internal/stories"
)

var (
	// ErrMissingHits is returned when a response body has no hits array.
	ErrMissingHits = errors.New("response has no hits array")

	// ErrMissingObjectID is returned for a hit without an objectID.
	ErrMissingObjectID = errors.New("hit has no objectID")
)

// AlgoliaResponse is the search response from the Algolia HN API.
type AlgoliaResponse struct {
	Hits    []AlgoliaHit `json:"hits"`
	Page    int          `json:"page"`
	NbPages int          `json:"nbPages"`
}

// AlgoliaHit is a single search result.
type AlgoliaHit struct {
	ObjectID    string `json:"objectID"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	Points      int    `json:"points"`
	NumComments int    `json:"num_comments"`
	CreatedAtI  int64  `json:"created_at_i"`
	StoryText   string `json:"story_text"`
}

// ToStory converts a hit to a stories.Story. The second result is false
// for hits that are not stories (comments have no title).
func (h AlgoliaHit) ToStory() (stories.Story, bool) {
	if h.Title == "" {
		return stories.Story{}, false
	}
	return stories.Story{
		ObjectID:    h.ObjectID,
		Title:       h.Title,
		URL:         h.URL,
		Author:      h.Author,
		Points:      max(h.Points, 0),
		NumComments: max(h.NumComments, 0),
		CreatedAt:   h.CreatedAtI,
		Text:        h.StoryText,
	}, true
}

// SearchURL builds the request URL for query. Page 0 is the first page.
func (c *Client) SearchURL(query string, page int) string {
	u := c.endpoint + url.QueryEscape(query)
	if page > 0 {
		u += fmt.Sprintf("&page=%d", page)
	}
	return u
}

// Search fetches the first page of stories matching query.
func (c *Client) Search(ctx context.Context, query string) ([]stories.Story, error) {
	result, err := c.searchPage(ctx, query, 0)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}
	return result, nil
}

// SearchPages fetches the first pages result pages concurrently and
// returns them concatenated in page order, without duplicate objectIDs.
// Any failed page fails the whole search.
func (c *Client) SearchPages(ctx context.Context, query string, pages int) ([]stories.Story, error) {
	if pages <= 1 {
		return c.Search(ctx, query)
	}

	results := make([][]stories.Story, pages)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i := 0; i < pages; i++ {
		g.Go(func() error {
			page, err := c.searchPage(ctx, query, i)
			if err != nil {
				return fmt.Errorf("page %d: %w", i, err)
			}
			results[i] = page
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}

	seen := make(map[string]bool)
	merged := make([]stories.Story, 0, len(results)*len(results[0]))
	for _, page := range results {
		for _, s := range page {
			if seen[s.ObjectID] {
				continue
			}
			seen[s.ObjectID] = true
			merged = append(merged, s)
		}
	}
	return merged, nil
}

func (c *Client) searchPage(ctx context.Context, query string, page int) ([]stories.Story, error) {
	var resp AlgoliaResponse
	if err := c.get(ctx, c.SearchURL(query, page), &resp); err != nil {
		return nil, err
	}
	if resp.Hits == nil {
		return nil, ErrMissingHits
	}

	result := make([]stories.Story, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		if hit.ObjectID == "" {
			return nil, ErrMissingObjectID
		}
		if s, ok := hit.ToStory(); ok {
			result = append(result, s)
		}
	}
	return result, nil
}
