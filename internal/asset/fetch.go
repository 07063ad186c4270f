package asset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"
)

const fetchTimeout = 30 * time.Second

var httpClient = &http.Client{Timeout: fetchTimeout}

// IsURL returns true if the target looks like an HTTP(S) URL.
func IsURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// Fetch retrieves the raw bytes of an audio resource, from disk or over
// HTTP. A non-2xx response fails with LoadError carrying the status
// code. The returned name preserves the extension for format detection.
func Fetch(ctx context.Context, target string) ([]byte, string, error) {
	if !IsURL(target) {
		data, err := os.ReadFile(target)
		if err != nil {
			return nil, "", fmt.Errorf("reading %s: %w", target, err)
		}
		return data, target, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, "", fmt.Errorf("building request for %s: %w", target, err)
	}
	req.Header.Set("User-Agent", "unknown-pleasures")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &LoadError{URL: target, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading response from %s: %w", target, err)
	}
	return data, urlName(target), nil
}

// urlName extracts the last path element so Decode can key off the
// extension even for remote assets.
func urlName(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.Path == "" {
		return target
	}
	return path.Base(u.Path)
}
