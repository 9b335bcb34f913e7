// Package ruledoc extracts lint rule definitions from the ESLint rules
// documentation page.
//
// The page is a sequence of category headings, each followed by a table
// whose paragraphs alternate rule name and rule description.
package ruledoc

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// ErrMissingTable is returned when a category heading has no table sibling
// after it.
var ErrMissingTable = errors.New("category heading has no rule table")

// Rule is a single lint rule and its one-line description.
type Rule struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Group is a documentation category and the rules listed under it,
// in document order.
type Group struct {
	Category string `json:"category"`
	ID       string `json:"id"`
	Rules    []Rule `json:"rules"`
}

// Options controls which headings are treated as categories.
type Options struct {
	// HeadingTag is the element name of category headings. Defaults to "h2".
	HeadingTag string

	// Exclude lists heading ids that never produce a group.
	// Defaults to "deprecated" and "removed".
	Exclude []string
}

// DefaultOptions returns the options matching the upstream rules page.
func DefaultOptions() Options {
	return Options{
		HeadingTag: "h2",
		Exclude:    []string{"deprecated", "removed"},
	}
}

func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.HeadingTag == "" {
		o.HeadingTag = defaults.HeadingTag
	}
	if o.Exclude == nil {
		o.Exclude = defaults.Exclude
	}
	return o
}

// Extract parses an HTML document and returns its rule groups.
func Extract(r io.Reader, opts Options) ([]Group, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse rules HTML: %w", err)
	}
	return ExtractNode(doc, opts)
}

// ExtractNode returns the rule groups of an already parsed document.
// A heading without a following table aborts extraction.
func ExtractNode(doc *html.Node, opts Options) ([]Group, error) {
	opts = opts.withDefaults()

	var groups []Group
	for _, heading := range findHeadings(doc, opts.HeadingTag) {
		id := getAttr(heading, "id")
		if slices.Contains(opts.Exclude, id) {
			continue
		}

		table := nextSiblingElement(heading, "table")
		if table == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingTable, id)
		}

		groups = append(groups, Group{
			Category: collapseSpace(extractText(heading)),
			ID:       id,
			Rules:    pairFragments(paragraphTexts(table)),
		})
	}

	return groups, nil
}

// CountRules returns the total number of rules across groups.
func CountRules(groups []Group) int {
	total := 0
	for _, g := range groups {
		total += len(g.Rules)
	}
	return total
}

// pairFragments zips name/description fragments. A trailing unpaired
// fragment is dropped.
func pairFragments(fragments []string) []Rule {
	rules := make([]Rule, 0, len(fragments)/2)
	for i := 0; i+1 < len(fragments); i += 2 {
		rules = append(rules, Rule{
			Name:        fragments[i],
			Description: fragments[i+1],
		})
	}
	return rules
}

// findHeadings returns the elements named tag that carry an id attribute.
func findHeadings(doc *html.Node, tag string) []*html.Node {
	var headings []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag && hasAttr(n, "id") {
			headings = append(headings, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return headings
}

func nextSiblingElement(n *html.Node, tag string) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode && s.Data == tag {
			return s
		}
	}
	return nil
}

// paragraphTexts returns the text of every p element below n.
func paragraphTexts(n *html.Node) []string {
	var texts []string
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.ElementNode && c.Data == "p" {
			texts = append(texts, collapseSpace(extractText(c)))
			return
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return texts
}

func hasAttr(n *html.Node, key string) bool {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return true
		}
	}
	return false
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// extractText concatenates the text nodes below n without trimming, so
// inline markup like <code> keeps its surrounding spaces.
func extractText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text.WriteString(extractText(c))
	}
	return text.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
