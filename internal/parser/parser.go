package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// nonContentSelector lists elements whose whole subtree is excluded from the word count.
const nonContentSelector = "script, style, noscript, header, footer, svg"

// PageAnalysis holds the on-page signals extracted from one HTML document.
// Missing elements yield empty strings and zero counts.
type PageAnalysis struct {
	WordCount       int
	Title           string
	TitleLength     int
	MetaDescription string
}

// Analyze parses body as HTML and extracts the title, meta description and
// visible word count. It never fails: malformed or partial markup degrades to
// whatever could be recovered, and an unreadable document yields the zero value.
// TitleLength is the rune count of the sanitized title.
func Analyze(body string, opts SanitizeOptions) PageAnalysis {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return PageAnalysis{}
	}

	title := parseTitle(doc, opts)
	description := findMetaDescription(doc, opts)

	return PageAnalysis{
		WordCount:       countWords(doc),
		Title:           title,
		TitleLength:     utf8.RuneCountInString(title),
		MetaDescription: description,
	}
}

func parseTitle(doc *goquery.Document, opts SanitizeOptions) string {
	titleSelection := doc.Find("title").First()
	if titleSelection.Length() == 0 {
		return ""
	}

	return Sanitize(titleSelection.Text(), opts)
}

// findMetaDescription returns the content of the first meta element named
// "description". A matching element without content stops the search.
func findMetaDescription(doc *goquery.Document, opts SanitizeOptions) string {
	var description string

	doc.Find("meta[name]").EachWithBreak(func(_ int, selection *goquery.Selection) bool {
		name, ok := selection.Attr("name")
		if !ok {
			return true
		}

		if !strings.EqualFold(strings.TrimSpace(name), "description") {
			return true
		}

		content, _ := selection.Attr("content")
		description = Sanitize(content, opts)

		return false
	})

	return description
}

// countWords removes non-content subtrees from doc and counts the
// whitespace-separated tokens of the remaining text.
func countWords(doc *goquery.Document) int {
	doc.Find(nonContentSelector).Remove()

	return len(strings.Fields(VisibleText(doc)))
}

// VisibleText joins the trimmed, non-empty text nodes of doc with single spaces.
// Comments and doctype nodes are skipped.
func VisibleText(doc *goquery.Document) string {
	parts := []string{}
	for _, node := range doc.Nodes {
		parts = collectText(node, parts)
	}

	return collapseSpaces(strings.Join(parts, " "))
}

func collectText(node *html.Node, parts []string) []string {
	if node.Type == html.TextNode {
		if trimmed := strings.TrimSpace(node.Data); trimmed != "" {
			parts = append(parts, trimmed)
		}

		return parts
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		parts = collectText(child, parts)
	}

	return parts
}
