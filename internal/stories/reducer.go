package stories

import (
	"fmt"
	"slices"
)

// Event drives State transitions. The set of events is closed: only the
// types in this file implement it.
type Event interface {
	event()
}

type (
	// FetchInit marks the start of a fetch.
	FetchInit struct{}

	// FetchSuccess replaces the list with the fetched stories.
	FetchSuccess struct {
		Stories []Story
	}

	// FetchFailure marks the fetch as failed. Err is for the caller's
	// logging; it is not kept in State.
	FetchFailure struct {
		Err error
	}

	// RemoveStory drops every story sharing Story's ObjectID.
	RemoveStory struct {
		Story Story
	}
)

func (FetchInit) event()    {}
func (FetchSuccess) event() {}
func (FetchFailure) event() {}
func (RemoveStory) event()  {}

// InvalidEventError is the panic value of Reduce for events it does not
// know. It always indicates a bug in the caller.
type InvalidEventError struct {
	Event Event
}

func (e InvalidEventError) Error() string {
	return fmt.Sprintf("stories: invalid event %T", e.Event)
}

// Reduce applies e to s and returns the resulting state.
func Reduce(s State, e Event) State {
	switch e := e.(type) {
	case FetchInit:
		return State{
			Data:      slices.Clone(s.Data),
			IsLoading: true,
			IsError:   false,
		}
	case FetchSuccess:
		return State{
			Data:      nonNil(slices.Clone(e.Stories)),
			IsLoading: false,
			IsError:   false,
		}
	case FetchFailure:
		return State{
			Data:      slices.Clone(s.Data),
			IsLoading: false,
			IsError:   true,
		}
	case RemoveStory:
		data := slices.DeleteFunc(slices.Clone(s.Data), func(st Story) bool {
			return st.ObjectID == e.Story.ObjectID
		})
		return State{
			Data:      nonNil(data),
			IsLoading: s.IsLoading,
			IsError:   s.IsError,
		}
	default:
		panic(InvalidEventError{Event: e})
	}
}

func nonNil(s []Story) []Story {
	if s == nil {
		return []Story{}
	}
	return s
}
