// Package geoportal talks to the administrative-area provider: reverse
// geocoding of positions and boundary polygon lookup, plus the persistent
// cache that keeps repeat runs off the provider.
package geoportal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/config"
	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/domain"
	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/observability"
)

// Queries are made in plain WGS-84 coordinates.
const spatialReference = "EPSG:4326"

// Client fetches raw provider documents. Responses are returned unparsed so
// the cache can persist them byte for byte.
type Client struct {
	pointURL   string
	areaURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a provider client from config.
func NewClient(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		pointURL: cfg.PointURL,
		areaURL:  cfg.AreaURL,
		httpClient: &http.Client{
			Timeout: cfg.ProviderTimeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// FetchPoint reverse-geocodes a position into its raw candidate-area
// document.
func (c *Client) FetchPoint(ctx context.Context, pos domain.Position) (json.RawMessage, error) {
	params := url.Values{
		"lng": {strconv.FormatFloat(pos.Lng, 'g', -1, 64)},
		"lat": {strconv.FormatFloat(pos.Lat, 'g', -1, 64)},
		"srs": {spatialReference},
	}
	return c.doRequest(ctx, c.pointURL+"?"+params.Encode(), "point")
}

// FetchArea fetches the raw boundary document for an area id.
func (c *Client) FetchArea(ctx context.Context, areaID string) (json.RawMessage, error) {
	params := url.Values{
		"id": {areaID},
	}
	return c.doRequest(ctx, c.areaURL+"?"+params.Encode(), "area")
}

func (c *Client) doRequest(ctx context.Context, fullURL, kind string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ProviderDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ProviderRequests.WithLabelValues(kind, "error").Inc()
		return nil, fmt.Errorf("%s lookup request: %w", kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.ProviderRequests.WithLabelValues(kind, "error").Inc()
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("geoportal error: status %d: %s", resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.ProviderRequests.WithLabelValues(kind, "error").Inc()
		return nil, fmt.Errorf("read %s lookup response: %w", kind, err)
	}
	if !json.Valid(body) {
		c.metrics.ProviderRequests.WithLabelValues(kind, "error").Inc()
		return nil, fmt.Errorf("%s lookup: provider returned invalid JSON", kind)
	}

	c.metrics.ProviderRequests.WithLabelValues(kind, "success").Inc()
	c.logger.Debug("geoportal lookup", "kind", kind, "url", fullURL)
	return body, nil
}
