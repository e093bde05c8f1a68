package content

import (
	"context"
	"fmt"
	"strings"
)

// Line-count range queried against PoetryDB. Short enough to fit the
// edition layout, long enough to be a real poem.
const (
	poemMinLines = 4
	poemMaxLines = 12
)

type poetryDBPoem struct {
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Lines  []string `json:"lines"`
}

// FetchPoem picks a line count uniformly at random in [poemMinLines,
// poemMaxLines], asks PoetryDB for poems of that exact length, and picks one
// of the matches uniformly at random. Returns the fallback poem on any
// failure, with the failure as a diagnostic error.
func (s *HTTPService) FetchPoem(ctx context.Context) (Poem, error) {
	lineCount := poemMinLines + s.randIntN(poemMaxLines-poemMinLines+1)
	url := fmt.Sprintf("%s/linecount/%d/title,author,lines.json", s.poemBaseURL, lineCount)

	var poems []poetryDBPoem
	if err := s.getJSON(ctx, url, &poems); err != nil {
		return FallbackPoem(), err
	}
	if len(poems) == 0 {
		return FallbackPoem(), fmt.Errorf("poetrydb: no poems with %d lines", lineCount)
	}

	picked := poems[s.randIntN(len(poems))]
	lines := cleanPoemLines(picked.Lines)
	if len(lines) == 0 {
		return FallbackPoem(), fmt.Errorf("poetrydb: poem %q empty after cleaning", picked.Title)
	}

	return Poem{Title: picked.Title, Author: picked.Author, Lines: lines}, nil
}

// cleanPoemLines strips PoetryDB's underscore emphasis glyphs, collapses
// double hyphens into an en-dash, and drops lines left blank by the
// cleaning.
func cleanPoemLines(raw []string) []string {
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.ReplaceAll(line, "_", "")
		line = strings.ReplaceAll(line, "--", "–")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
