package sources

import (
	"context"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/exchange"
	"github.com/idanyas/amdrates/metrics"
	"github.com/idanyas/amdrates/rates"
)

// Collected is one source's contribution to a refresh cycle.
type Collected struct {
	Source rates.Source
	Rates  []rates.Rate
}

// Collector drives the per-source adapters. It owns the shared HTTP client
// and the one-shot stock-exchange token; everything else it needs arrives
// through the config.
type Collector struct {
	client *http.Client
	cfg    *config.Config
	reg    *metrics.Registry

	tokenOnce sync.Once
	token     string
}

// NewCollector wires the collector. reg may be nil when metrics are not
// served.
func NewCollector(client *http.Client, cfg *config.Config, reg *metrics.Registry) *Collector {
	return &Collector{client: client, cfg: cfg, reg: reg}
}

// tinkoffToken reads the stock-exchange bearer on first use and scrubs it
// from the process environment so child processes and crash dumps never see
// it.
func (c *Collector) tinkoffToken() string {
	c.tokenOnce.Do(func() {
		c.token = os.Getenv("TINKOFF_TOKEN")
		os.Unsetenv("TINKOFF_TOKEN")
	})
	return c.token
}

// Collect launches one goroutine per enabled source and streams results into
// out. It returns right after spawning; out closes once the slowest worker
// finishes. A failed source is logged and simply absent this cycle.
func (c *Collector) Collect(ctx context.Context, out chan<- Collected) {
	var wg sync.WaitGroup
	for _, src := range rates.All() {
		sc, ok := c.cfg.Source(src.Key())
		if !ok || !sc.Enabled {
			continue
		}
		wg.Add(1)
		go func(src rates.Source, sc config.SrcConfig) {
			defer wg.Done()
			start := time.Now()
			rs, err := c.collectSource(ctx, src, sc)
			if c.reg != nil {
				c.reg.RecordFetch(src.Key(), err == nil, time.Since(start).Seconds())
			}
			if err != nil {
				log.Warn().Err(err).Stringer("source", src).Msg("source failed, skipping this cycle")
				return
			}
			rs = filterUsable(rs)
			if len(rs) == 0 {
				log.Warn().Stringer("source", src).Msg("source returned no usable rates")
				return
			}
			c.checkArbitrage(src, rs)
			out <- Collected{Source: src, Rates: rs}
		}(src, sc)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
}

// filterUsable drops rates with an unknown currency on either side or
// without a single positive quote.
func filterUsable(rs []rates.Rate) []rates.Rate {
	out := rs[:0]
	for _, r := range rs {
		if r.Usable() {
			out = append(out, r)
		}
	}
	return out
}

// checkArbitrage flags internally inconsistent boards. Each rate type a
// source published is checked against itself only; a hit is logged and
// counted, never fatal, since the quotes still answer queries.
func (c *Collector) checkArbitrage(src rates.Source, rs []rates.Rate) {
	seen := map[rates.RateType]bool{}
	for _, r := range rs {
		if seen[r.Type] {
			continue
		}
		seen[r.Type] = true
		if exchange.DetectArbitrage(rs, r.Type) {
			log.Warn().Stringer("source", src).Stringer("type", r.Type).
				Msg("arbitrage cycle in source quotes")
			if c.reg != nil {
				c.reg.RecordArbitrage(src.Key())
			}
		}
	}
}

// RefreshOnce runs one full collection cycle and publishes the snapshot. A
// cycle with zero rates still replaces the map, so stale boards disappear
// rather than linger.
func (c *Collector) RefreshOnce(ctx context.Context, store *exchange.Store) {
	out := make(chan Collected, c.cfg.EnabledCount())
	c.Collect(ctx, out)

	fresh := rates.SourceRates{}
	total := 0
	for col := range out {
		fresh[col.Source] = col.Rates
		total += len(col.Rates)
	}
	store.ReplaceRates(fresh)
	store.ClearCache()
	if c.reg != nil {
		c.reg.SetStoredRates(total)
	}
	log.Info().Int("sources", len(fresh)).Int("rates", total).Msg("rates refreshed")
}

// RunRefreshLoop publishes a fresh snapshot every update interval until the
// context is cancelled. The first cycle starts immediately so the bot can
// answer as soon as sources respond.
func (c *Collector) RunRefreshLoop(ctx context.Context, store *exchange.Store) {
	ticker := time.NewTicker(c.cfg.UpdateInterval())
	defer ticker.Stop()
	for {
		c.RefreshOnce(ctx, store)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
