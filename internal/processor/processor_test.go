package processor

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/snonux/pronounce/internal/audio"
	"codeberg.org/snonux/pronounce/internal/cli"
	"codeberg.org/snonux/pronounce/internal/vocabulary"
)

func newTestProcessor(pageSrv, audioSrv *httptest.Server, outputDir string) *Processor {
	return &Processor{
		flags: &cli.Flags{OutputDir: outputDir},
		resolver: &vocabulary.Resolver{
			BaseURL: pageSrv.URL + "/dictionary/",
			Timeout: 5 * time.Second,
		},
		fetcher: &audio.Fetcher{
			BaseURL: audioSrv.URL + "/1.0/us/",
			Client:  &http.Client{Timeout: 5 * time.Second},
		},
	}
}

func TestProcessQuery(t *testing.T) {
	pageSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><a class="audio" data-audio="C/BNUT8S5S2HDK"></a></html>`))
	}))
	defer pageSrv.Close()

	var audioRequested string
	audioSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		audioRequested = r.URL.Path
		w.Write([]byte("ID3 fake clip"))
	}))
	defer audioSrv.Close()

	outputDir := t.TempDir()
	proc := newTestProcessor(pageSrv, audioSrv, outputDir)

	if err := proc.ProcessQuery("machine learning"); err != nil {
		t.Fatalf("ProcessQuery failed: %v", err)
	}

	if audioRequested != "/1.0/us/C/BNUT8S5S2HDK.mp3" {
		t.Errorf("Expected audio request for resolved token, got %s", audioRequested)
	}

	wantFile := filepath.Join(outputDir, "machine_learning.mp3")
	if _, err := os.Stat(wantFile); err != nil {
		t.Errorf("Expected downloaded file at %s: %v", wantFile, err)
	}
}

func TestProcessQuery_NoToken(t *testing.T) {
	pageSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>nothing here</body></html>`))
	}))
	defer pageSrv.Close()

	audioCalled := false
	audioSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		audioCalled = true
	}))
	defer audioSrv.Close()

	outputDir := t.TempDir()
	proc := newTestProcessor(pageSrv, audioSrv, outputDir)

	err := proc.ProcessQuery("gibberishword")
	if !errors.Is(err, vocabulary.ErrNoToken) {
		t.Errorf("Expected ErrNoToken, got %v", err)
	}

	// The fetch step must not run when no token was found
	if audioCalled {
		t.Error("Audio host was contacted despite missing token")
	}

	entries, _ := os.ReadDir(outputDir)
	if len(entries) != 0 {
		t.Errorf("Expected no files written, found %d entries", len(entries))
	}
}

func TestProcessQuery_FetchFails(t *testing.T) {
	pageSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<a data-audio="C/BROKEN1"></a>`))
	}))
	defer pageSrv.Close()

	audioSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer audioSrv.Close()

	outputDir := t.TempDir()
	proc := newTestProcessor(pageSrv, audioSrv, outputDir)

	if err := proc.ProcessQuery("example"); err == nil {
		t.Fatal("Expected error when audio download fails")
	}

	entries, _ := os.ReadDir(outputDir)
	if len(entries) != 0 {
		t.Errorf("Expected no files written on failed download, found %d entries", len(entries))
	}
}

func TestProcessQuery_EmptyQuery(t *testing.T) {
	proc := NewProcessor(&cli.Flags{OutputDir: t.TempDir()})

	for _, query := range []string{"", "  ", "\n"} {
		if err := proc.ProcessQuery(query); err == nil {
			t.Errorf("Expected error for empty query %q", query)
		}
	}
}
