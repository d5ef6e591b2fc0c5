package stories

// Story is a single search hit shown in the list.
// ObjectID is the only field used for equality.
type Story struct {
	ObjectID    string `json:"objectID"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	Points      int    `json:"points"`
	NumComments int    `json:"num_comments"`

	// CreatedAt is the creation time in epoch seconds; zero when unknown.
	CreatedAt int64 `json:"created_at_i,omitempty"`

	// Text is the raw HN HTML body of text posts (Ask HN and friends).
	Text string `json:"story_text,omitempty"`
}

// State is the lifecycle of one list fetch. Values are never modified in
// place; Reduce always returns a fresh State.
type State struct {
	Data      []Story
	IsLoading bool
	IsError   bool
}

// InitialState returns the empty, idle state.
func InitialState() State {
	return State{Data: []Story{}}
}
