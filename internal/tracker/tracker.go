package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kjannette/trahn-ticker/internal/config"
	"github.com/kjannette/trahn-ticker/internal/external"
	"github.com/kjannette/trahn-ticker/internal/models"
)

type Fetcher interface {
	FetchPrices(ctx context.Context, ids []models.AssetID) (*models.Snapshot, error)
}

type Presenter interface {
	Render(snap *models.Snapshot)
}

type State int

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Tracker struct {
	fetcher   Fetcher
	presenter Presenter
	assets    []models.AssetID
	interval  time.Duration
	out       io.Writer
	log       logrus.FieldLogger

	mu     sync.Mutex
	state  State
	cycles int
}

type Option func(*Tracker)

func WithAssets(assets []models.AssetID) Option {
	return func(t *Tracker) {
		t.assets = assets
	}
}

func WithInterval(d time.Duration) Option {
	return func(t *Tracker) {
		t.interval = d
	}
}

func WithOutput(w io.Writer) Option {
	return func(t *Tracker) {
		t.out = w
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(t *Tracker) {
		t.log = l
	}
}

func New(fetcher Fetcher, presenter Presenter, opts ...Option) *Tracker {
	t := &Tracker{
		fetcher:   fetcher,
		presenter: presenter,
		assets:    config.DefaultAssets,
		interval:  config.RefreshInterval,
		out:       os.Stdout,
		log:       logrus.StandardLogger(),
		state:     StateRunning,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run loops fetch -> render -> sleep until ctx is cancelled, then prints the
// farewell line and returns. Cancellation is the only way out.
func (t *Tracker) Run(ctx context.Context) {
	defer t.stop()

	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintln(t.out, "\nFetching latest prices...")
		snap := t.fetch(ctx)
		if ctx.Err() != nil {
			return
		}
		t.presenter.Render(snap)
		t.countCycle()

		fmt.Fprintf(t.out, "\nRefreshing in %d seconds...\n", int(t.interval.Seconds()))

		select {
		case <-ctx.Done():
			return
		case <-time.After(t.interval):
		}
	}
}

func (t *Tracker) fetch(ctx context.Context) *models.Snapshot {
	snap, err := t.fetcher.FetchPrices(ctx, t.assets)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		log := t.log.WithField("component", "coingecko")
		var statusErr *external.StatusError
		if errors.As(err, &statusErr) {
			log.Errorf("Error: %v", err)
			log.WithField("status", statusErr.StatusCode).Debugf("response body: %s", statusErr.Body)
		} else {
			log.Errorf("Error fetching data: %v", err)
		}
		return nil
	}
	return snap
}

func (t *Tracker) stop() {
	t.mu.Lock()
	t.state = StateStopped
	t.mu.Unlock()
	fmt.Fprintln(t.out, "\nExiting program...")
}

func (t *Tracker) countCycle() {
	t.mu.Lock()
	t.cycles++
	t.mu.Unlock()
}

func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Cycles reports how many fetch-render passes have completed.
func (t *Tracker) Cycles() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cycles
}
