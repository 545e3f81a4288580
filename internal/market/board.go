package market

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/guttosm/dashpulse/internal/catalog"
	"github.com/guttosm/dashpulse/internal/domain/models"
	"github.com/guttosm/dashpulse/internal/logger"
)

// DefaultMaxMove is the largest relative price move applied to a quote per tick (0.5%).
const DefaultMaxMove = 0.005

// refreshSpecs maps a refresh rate to its cron schedule. Manual has no schedule.
var refreshSpecs = map[models.RefreshRate]string{
	models.RefreshRealTime: "@every 1s",
	models.Refresh5s:       "@every 5s",
	models.Refresh15s:      "@every 15s",
	models.RefreshManual:   "",
}

// Board is the in-memory ticker: a fixed set of symbols whose prices drift on a schedule.
//
// Behavior:
//   - Quotes keep the catalog order.
//   - Tick applies a bounded random walk and publishes the new snapshot to subscribers.
//   - Publishing never blocks; a subscriber that is not keeping up misses snapshots.
type Board struct {
	mu      sync.RWMutex
	quotes  []models.Quote
	index   map[string]int
	rng     *rand.Rand
	maxMove float64

	schedMu sync.Mutex
	cron    *cron.Cron
	entry   cron.EntryID
	rate    models.RefreshRate

	subMu   sync.Mutex
	subs    map[int]chan []models.Quote
	nextSub int
}

// BoardOption customizes a Board.
type BoardOption func(*Board)

// WithBoardRand overrides the random source used by Tick.
func WithBoardRand(r *rand.Rand) BoardOption {
	return func(b *Board) { b.rng = r }
}

// WithMaxMove overrides the per-tick relative move bound.
func WithMaxMove(m float64) BoardOption {
	return func(b *Board) { b.maxMove = m }
}

// NewBoard builds a board from catalog seeds. The refresh schedule is manual until
// SetRefreshRate is called.
func NewBoard(seeds []catalog.QuoteSeed, opts ...BoardOption) *Board {
	b := &Board{
		quotes:  make([]models.Quote, 0, len(seeds)),
		index:   make(map[string]int, len(seeds)),
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		maxMove: DefaultMaxMove,
		cron:    cron.New(),
		rate:    models.RefreshManual,
		subs:    make(map[int]chan []models.Quote),
	}
	for _, opt := range opts {
		opt(b)
	}
	for _, s := range seeds {
		b.index[s.Symbol] = len(b.quotes)
		b.quotes = append(b.quotes, newQuote(s.Symbol, s.Price, s.Open))
	}
	return b
}

func newQuote(symbol string, price, open float64) models.Quote {
	price = models.Round2(price)
	return models.Quote{
		Symbol:        symbol,
		Price:         price,
		Open:          open,
		Change:        models.Round2(price - open),
		ChangePercent: models.Round2((price - open) / open * 100),
	}
}

// Quotes returns a snapshot of all quotes.
func (b *Board) Quotes() []models.Quote {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.Quote, len(b.quotes))
	copy(out, b.quotes)
	return out
}

// Quote returns the quote for symbol.
func (b *Board) Quote(symbol string) (models.Quote, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	i, ok := b.index[symbol]
	if !ok {
		return models.Quote{}, false
	}
	return b.quotes[i], true
}

// Tick moves every price by at most maxMove (relative) and publishes the new snapshot.
func (b *Board) Tick() []models.Quote {
	b.mu.Lock()
	for i, q := range b.quotes {
		move := (b.rng.Float64()*2 - 1) * b.maxMove
		price := q.Price * (1 + move)
		if price < 0.01 {
			price = 0.01
		}
		b.quotes[i] = newQuote(q.Symbol, price, q.Open)
	}
	snapshot := make([]models.Quote, len(b.quotes))
	copy(snapshot, b.quotes)
	b.mu.Unlock()

	b.publish(snapshot)
	return snapshot
}

// Subscribe registers a subscriber with the given buffer size. The returned function
// unsubscribes and closes the channel; it is safe to call more than once.
func (b *Board) Subscribe(buffer int) (<-chan []models.Quote, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan []models.Quote, buffer)

	b.subMu.Lock()
	id := b.nextSub
	b.nextSub++
	b.subs[id] = ch
	b.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.subMu.Lock()
			delete(b.subs, id)
			b.subMu.Unlock()
			close(ch)
		})
	}
}

// Subscribers returns the number of active subscribers.
func (b *Board) Subscribers() int {
	b.subMu.Lock()
	defer b.subMu.Unlock()
	return len(b.subs)
}

func (b *Board) publish(snapshot []models.Quote) {
	b.subMu.Lock()
	defer b.subMu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- snapshot:
		default:
		}
	}
}

// SetRefreshRate replaces the tick schedule. Manual removes it.
func (b *Board) SetRefreshRate(rate models.RefreshRate) error {
	spec, ok := refreshSpecs[rate]
	if !ok {
		return fmt.Errorf("refresh rate %q: %w", rate, models.ErrInvalidArgument)
	}

	b.schedMu.Lock()
	defer b.schedMu.Unlock()

	if b.entry != 0 {
		b.cron.Remove(b.entry)
		b.entry = 0
	}
	if spec != "" {
		id, err := b.cron.AddFunc(spec, func() { b.Tick() })
		if err != nil {
			return fmt.Errorf("schedule ticker refresh: %w", err)
		}
		b.entry = id
	}
	b.rate = rate
	logger.L().Info().Str("rate", string(rate)).Msg("ticker_refresh_scheduled")
	return nil
}

// RefreshRate returns the active refresh rate.
func (b *Board) RefreshRate() models.RefreshRate {
	b.schedMu.Lock()
	defer b.schedMu.Unlock()
	return b.rate
}

// Start starts the refresh scheduler.
func (b *Board) Start() {
	b.cron.Start()
	logger.L().Info().Int("symbols", len(b.index)).Msg("ticker_started")
}

// Stop stops the scheduler and waits for a running tick to finish.
func (b *Board) Stop() {
	<-b.cron.Stop().Done()
	logger.L().Info().Msg("ticker_stopped")
}
