package pager

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/espian/ticktock/internal/errors"
	"github.com/espian/ticktock/internal/model"
)

// Kind discriminates between a page realized from a record and the
// designated empty-state placeholder.
type Kind int

const (
	// KindCountdown is a page backed by one countdown record.
	KindCountdown Kind = iota
	// KindEmpty is the placeholder shown when the result set has no rows.
	KindEmpty
)

// emptyTitle is the page title when there is nothing to show.
const emptyTitle = "NO ITEMS"

// Page is a per-position, lazily realized presentation unit. A countdown
// page carries a copy of one record's fields plus a days-remaining slot
// that is filled in asynchronously after construction.
//
// A page owns a context for its async work: Detach cancels it, so results
// arriving for a page the user has left are dropped instead of delivered.
type Page struct {
	Kind Kind

	ID          int64
	Label       string
	DateText    string    // stored long-form date text
	DisplayDate string    // medium-form rendering, empty when malformed
	Target      time.Time // parsed target date, zero when malformed
	Err         error     // set when the stored date fails to parse

	mu      sync.Mutex
	days    int
	hasDays bool
	notify  func(days int)

	ctx    context.Context
	cancel context.CancelFunc
}

// NewEmptyPage returns a fresh empty-state placeholder. Placeholders are
// never cached positionally; every request gets a new instance.
func NewEmptyPage() *Page {
	ctx, cancel := context.WithCancel(context.Background())
	return &Page{Kind: KindEmpty, ctx: ctx, cancel: cancel}
}

// newCountdownPage copies the record's fields into a page. A date that no
// longer parses marks the page malformed; the record itself is left alone.
func newCountdownPage(c model.Countdown) *Page {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Page{
		Kind:     KindCountdown,
		ID:       c.ID,
		Label:    c.Label,
		DateText: c.Date,
		ctx:      ctx,
		cancel:   cancel,
	}

	target, err := c.TargetDate()
	if err != nil {
		p.Err = errors.Wrap(errors.ErrMalformedDate, c.Date)
		return p
	}
	p.Target = target
	p.DisplayDate = target.Format(model.DisplayDateFormat)
	return p
}

// Title returns the page title: the upper-cased label, the record id for
// records with an empty label, and a fixed placeholder for the empty state.
func (p *Page) Title() string {
	if p.Kind == KindEmpty {
		return emptyTitle
	}
	if p.Label == "" {
		return model.Countdown{ID: p.ID}.IDString()
	}
	return strings.ToUpper(p.Label)
}

// Context returns the context bounding the page's async work.
func (p *Page) Context() context.Context {
	return p.ctx
}

// SetDays records the computed days-remaining value and, when a display
// callback is attached, delivers it exactly once. Safe to call from a
// worker goroutine.
func (p *Page) SetDays(days int) {
	p.mu.Lock()
	p.days = days
	p.hasDays = true
	fn := p.notify
	p.notify = nil
	p.mu.Unlock()

	if fn != nil {
		fn(days)
	}
}

// Days returns the computed days-remaining value, reporting false while the
// computation is still in flight.
func (p *Page) Days() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.days, p.hasDays
}

// OnDays attaches the display callback for the async result. If the result
// already arrived the callback fires immediately; either way it fires at
// most once per realization.
func (p *Page) OnDays(fn func(days int)) {
	p.mu.Lock()
	if p.hasDays {
		days := p.days
		p.mu.Unlock()
		fn(days)
		return
	}
	p.notify = fn
	p.mu.Unlock()
}

// Detach cancels pending async work and drops any display callback. A
// detached page silently ignores late results.
func (p *Page) Detach() {
	p.cancel()
	p.mu.Lock()
	p.notify = nil
	p.mu.Unlock()
}
