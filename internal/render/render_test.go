package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		limit int
		want  string
	}{
		{"empty", "", 0, ""},
		{"plain", "hello world", 0, "hello world"},
		{"paragraphs", "first<p>second<p>third", 0, "first second third"},
		{"entities", "Tom &amp; Jerry&#x27;s &quot;show&quot;", 0, `Tom & Jerry's "show"`},
		{"link", `see <a href="https://go.dev">docs</a>`, 0, "see docs (https://go.dev)"},
		{"link text is url", `<a href="https://go.dev">https://go.dev</a>`, 0, "https://go.dev"},
		{"italics and code", "<i>really</i> use <code>go vet</code>", 0, "really use go vet"},
		{"whitespace collapsed", "a\n\n   b\tc", 0, "a b c"},
		{"truncated", "abcdefghij", 5, "abcd…"},
		{"exact length", "abcde", 5, "abcde"},
		{"multibyte", "héllo wörld", 4, "hél…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.raw, tt.limit))
		})
	}
}

func TestTimeAgo(t *testing.T) {
	fixed := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })

	ago := func(d time.Duration) int64 { return fixed.Add(-d).Unix() }

	assert.Equal(t, "", TimeAgo(0))
	assert.Equal(t, "just now", TimeAgo(ago(10*time.Second)))
	assert.Equal(t, "1 minute ago", TimeAgo(ago(time.Minute)))
	assert.Equal(t, "5 minutes ago", TimeAgo(ago(5*time.Minute)))
	assert.Equal(t, "3 hours ago", TimeAgo(ago(3*time.Hour)))
	assert.Equal(t, "2 days ago", TimeAgo(ago(48*time.Hour)))
	assert.Equal(t, "2 months ago", TimeAgo(ago(61*24*time.Hour)))
	assert.Equal(t, "1 year ago", TimeAgo(ago(400*24*time.Hour)))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(0))
	assert.Equal(t, "14/11/2023", FormatDate(time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC).Unix()))
	assert.Equal(t, "1/1/2020", FormatDate(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).Unix()))
}
