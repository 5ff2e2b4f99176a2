package eventbrite

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/vishalsachdev/eventbrite-mcp/internal/logging"
)

// Collector accumulates events matching a date range across a bounded
// sequence of gateway pages.
//
// Pages are scanned sequentially from the query's start page (page 1
// unless the caller asks otherwise). The scan stops as soon as the
// accumulated match count reaches the configured target, the gateway
// reports no more pages, or the page-scan bound is hit. The date-range
// predicate is applied client side because the gateway's own range
// filtering is unreliable for some datasets.
//
// Collector is stateless across calls and safe for concurrent use.
type Collector struct {
	client   *Client
	resolver OrganizationResolver
	target   int
	maxPages int
	logger   *slog.Logger
}

// NewCollector creates a collector using the config's target and
// page-scan bound.
func NewCollector(client *Client, resolver OrganizationResolver, cfg Config, logger *slog.Logger) *Collector {
	cfg = cfg.WithDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		client:   client,
		resolver: resolver,
		target:   cfg.CollectTarget,
		maxPages: cfg.MaxPageScan,
		logger:   logger,
	}
}

// Collect runs one collection: resolve the event source, scan pages,
// filter each page against rng, and return the matches in page-scan
// order with a synthesized single-page pagination block.
//
// Any gateway failure aborts the whole collection; no partial result is
// returned and nothing is retried. Context cancellation aborts between
// page fetches and, through the HTTP layer, during them.
func (c *Collector) Collect(ctx context.Context, q NormalizedQuery, rng DateRange) (*CollectedResult, error) {
	src, err := c.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	collected := make([]EventRecord, 0, c.target)
	scanned := 0

	startPage := 1
	if hint, ok := q[paramPage]; ok {
		if v, err := strconv.Atoi(hint); err == nil && v > 1 {
			startPage = v
		}
	}

	for page := startPage; page < startPage+c.maxPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pq := q.Clone()
		pq[paramPage] = strconv.Itoa(page)

		var result *PageResult
		if src.OrganizationID != "" {
			result, err = c.client.OrganizationEvents(ctx, src.OrganizationID, pq)
		} else {
			result, err = c.client.UserEvents(ctx, pq)
		}
		if err != nil {
			return nil, err
		}
		scanned++

		matched := 0
		for _, ev := range result.Events {
			start, err := ev.StartUTC()
			if err != nil {
				c.logger.Warn("skipping event with unparseable start timestamp",
					logging.EventID(ev.ID),
					slog.String("start_utc", ev.Start.UTC))
				continue
			}
			if rng.Contains(start) {
				collected = append(collected, ev)
				matched++
			}
		}

		c.logger.Debug("scanned events page",
			"page", page,
			"page_events", len(result.Events),
			"matched", matched,
			"collected", len(collected))

		if len(collected) >= c.target {
			break
		}
		if !result.Pagination.HasMoreItems {
			break
		}
	}

	return &CollectedResult{
		Events:       collected,
		PagesScanned: scanned,
		Pagination: Pagination{
			ObjectCount:  len(collected),
			PageNumber:   1,
			PageSize:     len(collected),
			PageCount:    1,
			HasMoreItems: false,
		},
	}, nil
}
