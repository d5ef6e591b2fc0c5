package messages

import "github.com/fragmede/hackerstories/internal/stories"

// FocusListMsg hands key presses back to the story list.
type FocusListMsg struct{}

// Search messages.
type (
	// SearchSubmittedMsg asks for a new search. Force skips the cache.
	SearchSubmittedMsg struct {
		Query string
		Force bool
	}

	// FilterChangedMsg carries the local title filter.
	FilterChangedMsg struct {
		Query string
	}

	// RefreshMsg re-runs the current search, bypassing the cache.
	RefreshMsg struct{}
)

// Data messages.
type (
	// StoriesLoadedMsg is the outcome of one search. Generation
	// identifies the request so superseded results can be dropped.
	StoriesLoadedMsg struct {
		Query      string
		Generation int
		Stories    []stories.Story
		FromCache  bool
		Err        error
	}

	StoryRemovedMsg struct {
		Story stories.Story
	}

	StatusMsg struct {
		Text    string
		IsError bool
	}
)
