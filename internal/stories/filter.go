package stories

import "strings"

// FilterByTitle returns the stories whose title contains query,
// ignoring case, in their original order. An empty query matches
// everything.
func FilterByTitle(stories []Story, query string) []Story {
	if query == "" {
		return stories
	}
	q := strings.ToLower(query)
	out := make([]Story, 0, len(stories))
	for _, s := range stories {
		if strings.Contains(strings.ToLower(s.Title), q) {
			out = append(out, s)
		}
	}
	return out
}

// SumComments totals NumComments across stories.
func SumComments(stories []Story) int {
	total := 0
	for _, s := range stories {
		total += s.NumComments
	}
	return total
}
