package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/domain"
)

// Fetcher downloads node-list documents over HTTP.
type Fetcher struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewFetcher creates a Fetcher with the given request timeout.
func NewFetcher(timeout time.Duration, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Fetch downloads the document at url. Any transport error or non-2xx status
// is fatal for the run; there is no partial output to salvage without a
// source document.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch node list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch node list: status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read node list: %w", err)
	}

	f.logger.Info("node list fetched", "url", url, "bytes", len(body))
	return body, nil
}

// Extract parses a fetched document; see the package-level [Extract].
// Having it on the Fetcher lets the pipeline take one source dependency.
func (f *Fetcher) Extract(doc []byte, format string) (domain.Nodes, error) {
	return Extract(doc, format)
}
