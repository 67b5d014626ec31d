// Package fetch retrieves raw quiz datasets, repairs common JSON
// artifacts, and caches parsed results with a freshness window.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// Fetcher retrieves the raw bytes of a dataset at a relative path.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// HTTPFetcher fetches datasets from a base URL.
type HTTPFetcher struct {
	Base   string
	Client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher with a 30 s timeout client.
func NewHTTPFetcher(base string) *HTTPFetcher {
	return &HTTPFetcher{
		Base:   base,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	url := f.Base + "/" + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &ErrRetrieval{Path: path, Err: err}
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, &ErrRetrieval{Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ErrRetrieval{Path: path, Status: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrRetrieval{Path: path, Err: err}
	}
	return raw, nil
}

// FileFetcher reads datasets from a local directory.
type FileFetcher struct {
	Dir string
}

func (f *FileFetcher) Fetch(_ context.Context, path string) ([]byte, error) {
	raw, err := os.ReadFile(filepath.Join(f.Dir, filepath.FromSlash(path)))
	if err != nil {
		return nil, &ErrRetrieval{Path: path, Err: err}
	}
	return raw, nil
}

// DatasetPath builds the conventional dataset path for a subject/chapter.
func DatasetPath(subject, slug string) string {
	return fmt.Sprintf("data/%s/%s.json", subject, slug)
}

// IndexPath builds the chapter index path for a subject.
func IndexPath(subject string) string {
	return fmt.Sprintf("data/%s/index.json", subject)
}

var (
	bomPrefix     = []byte("\xef\xbb\xbf")
	trailingComma = regexp.MustCompile(`,(\s*[}\]])`)
)

// Parse decodes dataset bytes. On a decode error it strips a leading BOM
// and trailing commas and retries once; a second failure is
// *ErrMalformedJSON.
func Parse(path string, raw []byte) (any, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err == nil {
		return v, nil
	}

	repaired := trailingComma.ReplaceAll(bytes.TrimPrefix(raw, bomPrefix), []byte("$1"))
	if err := json.Unmarshal(repaired, &v); err != nil {
		return nil, &ErrMalformedJSON{Path: path, Err: err}
	}
	return v, nil
}
