package content

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// The strip sites embed their metadata as JSON-LD script blocks. The page
// markup around those blocks changes without notice, which is why all the
// parsing lives in this file: when the site shifts, this is the only code
// that should need to move with it.

// stripEntry is one resolved comic image.
type stripEntry struct {
	ImageURL string
	AltText  string
}

// ldImage is the subset of a JSON-LD node the comic lookup cares about.
type ldImage struct {
	Type          string `json:"@type"`
	ContentURL    string `json:"contentUrl"`
	URL           string `json:"url"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	DatePublished string `json:"datePublished"`
}

// extractDatedStrip scans every JSON-LD block in the page for ImageObject
// entries and returns the one published today, falling back to one published
// exactly yesterday. Both dates are preformatted in the site's own
// "Month D, YYYY" style.
func extractDatedStrip(page io.Reader, today, yesterday string) (stripEntry, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return stripEntry{}, fmt.Errorf("parse html: %w", err)
	}

	var images []ldImage
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		images = append(images, parseLDBlock(sel.Text())...)
	})

	if match, ok := findByDate(images, today); ok {
		return match, nil
	}
	if match, ok := findByDate(images, yesterday); ok {
		return match, nil
	}
	return stripEntry{}, fmt.Errorf("no image entry dated %q or %q among %d metadata entries", today, yesterday, len(images))
}

// parseLDBlock decodes one script block. Blocks may hold a single node, an
// array of nodes, or a node with an @graph list; all three occur in the wild.
func parseLDBlock(raw string) []ldImage {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var single ldImage
	if err := json.Unmarshal([]byte(raw), &single); err == nil && single.Type != "" {
		return []ldImage{single}
	}

	var list []ldImage
	if err := json.Unmarshal([]byte(raw), &list); err == nil && len(list) > 0 {
		return list
	}

	var graph struct {
		Graph []ldImage `json:"@graph"`
	}
	if err := json.Unmarshal([]byte(raw), &graph); err == nil {
		return graph.Graph
	}
	return nil
}

func findByDate(images []ldImage, date string) (stripEntry, bool) {
	for _, img := range images {
		if img.Type != "ImageObject" || img.DatePublished != date {
			continue
		}
		url := img.ContentURL
		if url == "" {
			url = img.URL
		}
		if url == "" {
			continue
		}
		alt := img.Name
		if alt == "" {
			alt = img.Description
		}
		if alt == "" {
			alt = "Comic strip for " + date
		}
		return stripEntry{ImageURL: url, AltText: alt}, true
	}
	return stripEntry{}, false
}
