package storylist

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fragmede/hackerstories/internal/render"
	"github.com/fragmede/hackerstories/internal/stories"
)

const previewLength = 120

// StoryItem wraps a story for the bubbles list.
type StoryItem struct {
	stories.Story
	Index int
}

func (s StoryItem) Title() string {
	return s.Story.Title
}

func (s StoryItem) Description() string {
	parts := make([]string, 0, 4)

	parts = append(parts, fmt.Sprintf("%d points", s.Points))
	if s.Author != "" {
		parts = append(parts, "by "+s.Author)
	}
	if date := render.FormatDate(s.CreatedAt); date != "" {
		parts = append(parts, fmt.Sprintf("%s (%s)", date, render.TimeAgo(s.CreatedAt)))
	}
	parts = append(parts, fmt.Sprintf("%d comments", s.NumComments))

	desc := strings.Join(parts, " | ")
	if s.URL != "" {
		if u, err := url.Parse(s.URL); err == nil && u.Host != "" {
			desc += "  (" + u.Host + ")"
		}
	}
	return desc
}

// Preview is a one-line excerpt of a text post, empty for link posts.
func (s StoryItem) Preview() string {
	return render.PlainText(s.Text, previewLength)
}

func (s StoryItem) FilterValue() string {
	return s.Story.Title
}
