package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/pronounce/internal/audio"
	"codeberg.org/snonux/pronounce/internal/cli"
	"codeberg.org/snonux/pronounce/internal/vocabulary"
)

// Processor handles the main query processing logic
type Processor struct {
	flags    *cli.Flags
	resolver *vocabulary.Resolver
	fetcher  *audio.Fetcher
}

// NewProcessor creates a new query processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags:    flags,
		resolver: vocabulary.NewResolver(),
		fetcher:  audio.NewFetcher(),
	}
}

// ProcessQuery resolves the audio token for query and downloads the clip
// into the configured output directory. Both steps run exactly once, in
// order; a failure in either terminates the run.
func (p *Processor) ProcessQuery(query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return fmt.Errorf("query cannot be empty")
	}

	token, err := p.resolver.Resolve(query)
	if err != nil {
		if errors.Is(err, vocabulary.ErrNoToken) {
			fmt.Fprintf(os.Stderr, "No audio token found for '%s'\n", query)
			return err
		}
		return fmt.Errorf("failed to fetch page for '%s': %w", query, err)
	}
	fmt.Printf("Found audio token: %s\n", token)

	fmt.Printf("Downloading audio for '%s'...\n", query)
	outputPath, err := p.fetcher.Fetch(context.Background(), token, query, p.flags.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to download audio for '%s': %w", query, err)
	}
	fmt.Printf("Successfully saved: %s\n", outputPath)

	return nil
}
