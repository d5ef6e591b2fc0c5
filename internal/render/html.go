package render

import (
	"strings"

	xhtml "golang.org/x/net/html"
)

// PlainText flattens HN's limited HTML (<p>, <a>, <i>, <code>, <pre>)
// into a single line of text, truncated to at most limit runes with an
// ellipsis. limit <= 0 disables truncation.
func PlainText(raw string, limit int) string {
	if raw == "" {
		return ""
	}

	tokenizer := xhtml.NewTokenizer(strings.NewReader(raw))
	var sb strings.Builder
	var href string

loop:
	for {
		switch tokenizer.Next() {
		case xhtml.ErrorToken:
			break loop

		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			t := tokenizer.Token()
			switch t.Data {
			case "p", "br", "pre":
				sb.WriteString(" ")
			case "a":
				for _, attr := range t.Attr {
					if attr.Key == "href" {
						href = attr.Val
					}
				}
			}

		case xhtml.EndTagToken:
			if tokenizer.Token().Data == "a" && href != "" {
				if !strings.HasSuffix(strings.TrimSpace(sb.String()), href) {
					sb.WriteString(" (" + href + ")")
				}
				href = ""
			}

		case xhtml.TextToken:
			sb.Write(tokenizer.Text())
		}
	}

	return truncate(strings.Join(strings.Fields(sb.String()), " "), limit)
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return strings.TrimRight(string(runes[:limit-1]), " ") + "…"
}
