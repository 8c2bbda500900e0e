package exchange

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/idanyas/amdrates/rates"
)

// Facade is the query surface the transport talks to. It never returns an
// error: anything that cannot be answered becomes the sentinel string.
type Facade struct {
	store    *Store
	interval time.Duration
	version  string
}

func NewFacade(store *Store, interval time.Duration, version string) *Facade {
	return &Facade{store: store, interval: interval, version: version}
}

// SrcQuery renders one source's board, serving repeats from the cache.
func (f *Facade) SrcQuery(src rates.Source, rt rates.RateType) string {
	if s, ok := f.store.CacheGetSrc(src, rt); ok {
		return s
	}
	rendered := renderSrcTable(src, f.store.SnapshotRates(), rt)
	if rendered == "" {
		rendered = Sentinel
	}
	f.store.CachePutSrc(src, rt, rendered)
	return rendered
}

// ConvQuery renders the ranked conversion table for a pair.
func (f *Facade) ConvQuery(from, to rates.Currency, rt rates.RateType, inverted bool) string {
	if from.IsEmpty() || to.IsEmpty() {
		return Sentinel
	}
	if s, ok := f.store.CacheGetConv(from, to, rt, inverted); ok {
		return s
	}
	rendered := renderConvTable(from, to, f.store.SnapshotRates(), rt, inverted)
	if rendered == "" {
		rendered = Sentinel
	}
	f.store.CachePutConv(from, to, rt, inverted, rendered)
	return rendered
}

// ListSources names every known provider, lowercase and sorted.
func (f *Facade) ListSources() string {
	all := rates.All()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, s.Key())
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// Info reports the build version, refresh cadence and last update stamp.
func (f *Facade) Info() string {
	return fmt.Sprintf("version: %s\nupdate interval: %s\nlast update: %s",
		f.version, f.interval, f.store.UpdatedAt().Format("2006-01-02 15:04:05 MST"))
}
