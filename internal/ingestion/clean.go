// Package ingestion normalizes job-description text before keyword
// extraction. Descriptions pasted from job boards often carry HTML markup
// and irregular whitespace.
package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// CleanJobDescription strips HTML markup (when present) and collapses
// whitespace so the annotator sees plain prose. Plain-text input passes
// through with whitespace normalization only.
func CleanJobDescription(content string) string {
	if content == "" {
		return ""
	}

	if looksLikeHTML(content) {
		if text, err := stripHTML(content); err == nil {
			content = text
		}
	}

	return normalizeWhitespace(content)
}

// looksLikeHTML is a cheap heuristic: a tag-like angle-bracket pair.
func looksLikeHTML(content string) bool {
	open := strings.Index(content, "<")
	if open < 0 {
		return false
	}
	close := strings.Index(content[open:], ">")
	return close > 1
}

// stripHTML extracts the text content of an HTML fragment, dropping script
// and style bodies. Text nodes are joined with single spaces so adjacent
// elements do not run together.
func stripHTML(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", err
	}
	doc.Find("script, style").Remove()

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, node := range doc.Nodes {
		walk(node)
	}
	return strings.Join(parts, " "), nil
}

// normalizeWhitespace collapses all whitespace runs to single spaces and
// trims the ends.
func normalizeWhitespace(content string) string {
	return strings.Join(strings.Fields(content), " ")
}
