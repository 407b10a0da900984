// Package feed fetches RSS/Atom documents and extracts the top-level
// podcast metadata. Entries/episodes are never consumed.
package feed

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmcdole/gofeed"
)

// ErrIncompleteFeed is returned when a parsed feed lacks a required
// field.
var ErrIncompleteFeed = errors.New("feed is missing required fields")

// Metadata holds the normalized fields extracted from a feed document.
type Metadata struct {
	Titulo    string
	Descricao string
	Autor     string
	PosterURL string
}

// Fetcher fetches and parses feeds.
type Fetcher struct {
	parser *gofeed.Parser
}

// NewFetcher creates a Fetcher with a default parser.
func NewFetcher() *Fetcher {
	return &Fetcher{parser: gofeed.NewParser()}
}

// Fetch downloads and parses the feed at url. Title and author are
// required; description and image default to empty when the feed omits
// them.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Metadata, error) {
	parsed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	if parsed.Title == "" {
		return nil, fmt.Errorf("%w: titulo", ErrIncompleteFeed)
	}

	autor := ""
	if len(parsed.Authors) > 0 && parsed.Authors[0] != nil {
		autor = parsed.Authors[0].Name
	}
	if autor == "" && parsed.ITunesExt != nil {
		autor = parsed.ITunesExt.Author
	}
	if autor == "" {
		return nil, fmt.Errorf("%w: autor", ErrIncompleteFeed)
	}

	posterURL := ""
	if parsed.Image != nil {
		posterURL = parsed.Image.URL
	}
	if posterURL == "" && parsed.ITunesExt != nil {
		posterURL = parsed.ITunesExt.Image
	}

	return &Metadata{
		Titulo:    parsed.Title,
		Descricao: parsed.Description,
		Autor:     autor,
		PosterURL: posterURL,
	}, nil
}
