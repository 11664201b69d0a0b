package engine

import (
	"bytes"
	"context"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// FetchJobPosting downloads a job posting URL and extracts its readable
// text. Structured extraction via goquery first, markdown conversion of
// the selected content, plain HTML text walk as the last resort.
// The returned text is capped at cfg.MaxContentChars runes.
func FetchJobPosting(ctx context.Context, rawURL string) (title, content string, err error) {
	metrics.FetchRequests.Add(1)
	defer func() {
		if err != nil {
			metrics.FetchErrors.Add(1)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	resp, err := fetchWithRetry(ctx, rawURL)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	body, err := readResponseBody(resp)
	if err != nil {
		return "", "", err
	}

	title, content = extractWithGoquery(body)
	if content == "" {
		content = extractPlainText(body)
	}

	if cfg.MaxContentChars > 0 {
		content = TruncateRunes(content, cfg.MaxContentChars, "...")
	}
	return title, content, nil
}

// extractWithGoquery pulls the main content region out of an HTML page and
// converts it to markdown-ish plain text.
func extractWithGoquery(body []byte) (title, content string) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", ""
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		doc.Find("meta[property='og:title']").Each(func(i int, s *goquery.Selection) {
			if title == "" {
				title, _ = s.Attr("content")
			}
		})
	}

	removeSelectors := []string{
		"script", "style", "noscript", "iframe", "svg",
		"header", "footer", "nav", "aside",
		".advertisement", ".ad", ".sidebar", ".comments",
		"[role=navigation]", "[role=banner]", "[role=contentinfo]",
	}
	doc.Find(strings.Join(removeSelectors, ", ")).Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	contentSel := doc.Find("article, main, .content, .job-description, .posting, #content").First()
	if contentSel.Length() == 0 {
		contentSel = doc.Find("body")
	}

	rawHTML, err := goquery.OuterHtml(contentSel)
	if err == nil && rawHTML != "" {
		if md, mdErr := htmltomarkdown.ConvertString(rawHTML); mdErr == nil {
			if text := strings.TrimSpace(md); text != "" {
				return title, text
			}
		}
	}

	return title, CollapseSpaces(contentSel.Text())
}

// extractPlainText walks the HTML tree and concatenates text nodes.
// Last-resort extraction for markup goquery refuses to parse.
func extractPlainText(body []byte) string {
	node, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return CleanHTML(string(body))
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)
	return CollapseSpaces(sb.String())
}
