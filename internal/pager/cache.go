package pager

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/espian/ticktock/internal/countdown"
	"github.com/espian/ticktock/internal/logging"
)

// PositionNone is the answer to every identity query: pages never report a
// stable position across data changes, so the host must treat each swap as
// a full structural invalidation rather than diffing.
const PositionNone = -1

// DefaultCapacity bounds the position cache when none is configured.
const DefaultCapacity = 16

// StalenessPolicy decides what a cache hit means once the backing record
// may have changed.
type StalenessPolicy int

const (
	// ReuseCached returns a previously realized page unchanged, even if
	// the backing record changed since. Cheap, possibly stale.
	ReuseCached StalenessPolicy = iota
	// RefreshOnGet discards any cached page and re-realizes from the
	// current snapshot on every Get.
	RefreshOnGet
)

// Config configures a page cache.
type Config struct {
	// Capacity bounds the number of cached pages; older pages are evicted
	// and detached. Zero means DefaultCapacity.
	Capacity int
	// Policy is the staleness policy for cache hits.
	Policy StalenessPolicy
	// EmptyState keeps one placeholder slot reachable when the result set
	// is empty.
	EmptyState bool
	// OnInvalidate is the "everything changed" signal, fired on every
	// effective Swap.
	OnInvalidate func()
	// Pool runs the per-page days-remaining computation. Optional; without
	// it pages realize with their days slot unfilled.
	Pool *countdown.Pool
}

// Cache maps integer positions to lazily realized pages over the current
// Result snapshot. All methods must be called from the sequencing
// goroutine; only the async days delivery happens elsewhere.
type Cache struct {
	cfg    Config
	res    *Result
	pages  *lru.Cache[int, *Page]
	titles map[int]string
}

// New creates a page cache. It starts with no backing result; Swap one in
// before expecting countdown pages.
func New(cfg Config) (*Cache, error) {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}

	pages, err := lru.NewWithEvict(cfg.Capacity, func(_ int, p *Page) {
		p.Detach()
	})
	if err != nil {
		return nil, err
	}

	return &Cache{
		cfg:    cfg,
		pages:  pages,
		titles: map[int]string{},
	}, nil
}

// Get returns the page for position, realizing and caching it on first
// request. When the result set is empty and the empty-state slot is
// configured, every call returns a fresh placeholder.
func (c *Cache) Get(position int) *Page {
	switch c.cfg.Policy {
	case RefreshOnGet:
		c.pages.Remove(position)
	default:
		if p, ok := c.pages.Get(position); ok {
			return p
		}
	}

	if c.res.Len() == 0 {
		if c.cfg.EmptyState {
			return NewEmptyPage()
		}
		return nil
	}

	row, ok := c.res.At(position)
	if !ok {
		return nil
	}

	p := newCountdownPage(row)
	// The page must be cached before its worker is dispatched so the
	// callback target exists by the time a result can arrive.
	c.pages.Add(position, p)

	if p.Err != nil {
		logging.Warn("malformed stored date",
			logging.KeyOperation, "realize",
			logging.KeyCountdownID, p.ID,
			logging.KeyError, p.Err)
		return p
	}

	if c.cfg.Pool != nil {
		c.cfg.Pool.Submit(p.Context(), p.Target, p.SetDays)
	}

	logging.Debug("page realized",
		logging.KeyOperation, "realize",
		logging.KeyPosition, position,
		logging.KeyCountdownID, p.ID)
	return p
}

// Len returns the number of reachable page slots: the result length, or one
// placeholder slot when the result is empty and the empty state is
// configured.
func (c *Cache) Len() int {
	if n := c.res.Len(); n > 0 {
		return n
	}
	if c.cfg.EmptyState {
		return 1
	}
	return 0
}

// PositionOf reports where a previously realized page now lives. It always
// answers PositionNone: identity is never assumed stable across swaps.
func (c *Cache) PositionOf(*Page) int {
	return PositionNone
}

// Swap replaces the backing result snapshot. Swapping in the identical
// Result is a no-op. Otherwise all cached pages are detached and dropped,
// titles are rebuilt, and the invalidation signal fires even if the new
// snapshot is content-identical to the old one.
func (c *Cache) Swap(res *Result) {
	if c.res == res {
		return
	}

	c.res = res
	c.pages.Purge()

	c.titles = make(map[int]string, res.Len())
	for i := 0; i < res.Len(); i++ {
		row, _ := res.At(i)
		title := strings.ToUpper(row.Label)
		if title == "" {
			title = row.IDString()
		}
		c.titles[i] = title
	}

	logging.Debug("result swapped",
		logging.KeyOperation, "swap",
		logging.KeyCount, res.Len())

	if c.cfg.OnInvalidate != nil {
		c.cfg.OnInvalidate()
	}
}

// Title returns the title for a position, falling back to the empty-state
// title when there are no rows.
func (c *Cache) Title(position int) string {
	if len(c.titles) == 0 {
		return emptyTitle
	}
	return c.titles[position]
}

// Result returns the current backing snapshot.
func (c *Cache) Result() *Result {
	return c.res
}
