// Package normalizer converts HTML document snapshots into the de-tagged
// plain text the diff engine consumes. Diffing operates on text only;
// preserving markup fidelity is the editor layer's concern.
package normalizer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/aleister1102/redline/internal/common/errorwrapper"
)

// StripTags removes all markup from an HTML fragment, returning its text
// content. Script and style bodies are dropped entirely; block-level
// elements are separated by newlines so paragraph positions survive
// de-tagging.
func StripTags(html string) (string, error) {
	if html == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", errorwrapper.WrapError(err, "failed to parse HTML input")
	}

	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	blocks := doc.Find("p, h1, h2, h3, h4, h5, h6, li, pre")
	if blocks.Length() == 0 {
		return doc.Text(), nil
	}

	blocks.Each(func(i int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(text)
	})

	return sb.String(), nil
}

// IsHTML reports whether content looks like markup rather than plain text.
func IsHTML(content string) bool {
	trimmed := strings.TrimSpace(content)
	return strings.HasPrefix(trimmed, "<") && strings.Contains(trimmed, ">")
}
