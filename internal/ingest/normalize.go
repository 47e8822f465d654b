// Package ingest acquires and normalizes articles at the pipeline boundary.
// The core pipeline only ever sees the normalized, HTML-stripped Articles
// this package produces.
package ingest

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML reduces an HTML document or fragment to its visible plain text.
// Script, style and similar non-content subtrees are dropped. Input that is
// not parseable as HTML is returned trimmed but otherwise unchanged.
func StripHTML(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return strings.TrimSpace(content)
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return strings.TrimSpace(buf.String())
}
