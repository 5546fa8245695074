// Command expansion-map turns a Freifunk node list into a choropleth map:
// it fetches the node document from the given URL, resolves every node
// position to its municipal administrative area, and writes nodes.geojson
// plus state.json for the static map page under web/.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/adapter/artifact"
	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/adapter/geoportal"
	httpadapter "github.com/freifunk-westpfalz/ffrn-expansion-map/internal/adapter/http"
	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/adapter/source"
	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/config"
	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/observability"
	"github.com/freifunk-westpfalz/ffrn-expansion-map/internal/pipeline"
)

var (
	app = kingpin.New(
		"expansion-map",
		"Generate a per-municipality node-count GeoJSON map from a Freifunk node list.")

	format = app.Flag("format", "Node list format.").
		Default(source.FormatNodelist).
		Enum(source.Formats...)
	sourceURL = app.Arg("source-url", "URL of the node list document.").
			Required().
			String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	fetcher := source.NewFetcher(cfg.ProviderTimeout, logger)
	client := geoportal.NewClient(cfg, metrics, logger)
	cache := geoportal.LoadCache(cfg.CachePath, logger)
	lookup := geoportal.NewCachedLookup(client, cache, metrics)

	p := pipeline.New(fetcher, lookup, logger, metrics)

	// Optional debug endpoint for long cold-cache runs.
	var srv *httpadapter.Server
	if cfg.MetricsAddr != "" {
		srv = httpadapter.NewServer(cfg.MetricsAddr, p, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics endpoint error", "error", err)
			}
		}()
	}

	result, err := p.Run(context.Background(), *sourceURL, *format)
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	writer := artifact.NewWriter(logger)
	if err := writer.WriteGeoJSON(cfg.GeoJSONPath, result.Collection); err != nil {
		logger.Error("write failed", "error", err)
		os.Exit(1)
	}
	if err := writer.WriteState(cfg.StatePath, result.State); err != nil {
		logger.Error("write failed", "error", err)
		os.Exit(1)
	}

	// The cache is an optimization; losing this run's entries is not a
	// failure of the run itself.
	if err := cache.Save(cfg.CachePath); err != nil {
		logger.Warn("cache save failed", "error", err)
	}

	if srv != nil {
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error("metrics endpoint shutdown error", "error", err)
		}
	}
}
