package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Anchor is a hyperlink together with its visible text.
type Anchor struct {
	Href string
	Text string
}

// Page is a parsed document the engine can query for anchors, heading and
// list-item text, and the full visible text.
type Page struct {
	doc *goquery.Document
	raw []byte
}

// Parse builds a queryable Page from raw document bytes.
func Parse(body []byte) (*Page, error) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Page{doc: goquery.NewDocumentFromNode(root), raw: body}, nil
}

// Anchors returns every a[href] element with its visible text.
func (p *Page) Anchors() []Anchor {
	var anchors []Anchor
	p.doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if href == "" {
			return
		}
		anchors = append(anchors, Anchor{Href: href, Text: s.Text()})
	})
	return anchors
}

// HeadingsAndListItems returns the visible text of every h2, h3, h4 and li
// element, in document order.
func (p *Page) HeadingsAndListItems() []string {
	var texts []string
	p.doc.Find("h2, h3, h4, li").Each(func(_ int, s *goquery.Selection) {
		texts = append(texts, s.Text())
	})
	return texts
}

// VisibleText returns the concatenated text content of the whole document.
func (p *Page) VisibleText() string {
	return p.doc.Text()
}

// Title returns the document title, trimmed.
func (p *Page) Title() string {
	return strings.TrimSpace(p.doc.Find("title").First().Text())
}

// MetaDescription returns the meta description content, if any.
func (p *Page) MetaDescription() string {
	desc, _ := p.doc.Find(`meta[name="description"]`).Attr("content")
	return strings.TrimSpace(desc)
}

// Summary extracts the main content text of the page. Extraction failures
// yield an empty summary rather than an error; the page is still usable.
func (p *Page) Summary() string {
	result, err := trafilatura.Extract(bytes.NewReader(p.raw), trafilatura.Options{})
	if err != nil || result == nil {
		return ""
	}
	return strings.TrimSpace(result.ContentText)
}
