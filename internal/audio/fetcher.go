package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
)

const (
	// BaseURL is the audio host template prefix; the token and the .mp3
	// suffix complete it. Tokens are already URL-safe, so no escaping.
	BaseURL = "https://audio.vocabulary.com/1.0/us/"

	fetchTimeout = 30 * time.Second
)

// DownloadError reports a failed audio download, either a transport failure
// or a non-success HTTP status.
type DownloadError struct {
	URL    string
	Status int
	Err    error
}

func (e *DownloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("download of %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("download of %s failed with status %d", e.URL, e.Status)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

// Fetcher downloads pronunciation clips from the audio host.
type Fetcher struct {
	BaseURL string       // Audio host prefix, token + ".mp3" gets appended
	Client  *http.Client // HTTP client used for the download
}

// NewFetcher creates a fetcher with the vocabulary.com defaults. The timeout
// is longer than the resolver's since audio payloads are larger than pages.
func NewFetcher() *Fetcher {
	return &Fetcher{
		BaseURL: BaseURL,
		Client:  &http.Client{Timeout: fetchTimeout},
	}
}

// Fetch downloads the clip identified by token and writes it into outputDir
// under a filename derived from query. Missing directories are created and
// an existing file of the same name is overwritten. It returns the path of
// the written file.
func (f *Fetcher) Fetch(ctx context.Context, token, query, outputDir string) (string, error) {
	audioURL := f.BaseURL + token + ".mp3"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, audioURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", &DownloadError{URL: audioURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &DownloadError{URL: audioURL, Status: resp.StatusCode}
	}

	// Ensure output directory exists
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := filepath.Join(outputDir, SafeFilename(query))
	out, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	bar := progressbar.DefaultBytes(resp.ContentLength, "downloading")
	if _, err := io.Copy(io.MultiWriter(out, bar), resp.Body); err != nil {
		os.Remove(outputPath) // Clean up on error
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}

	return outputPath, nil
}
