// Package dashboard keeps the state behind the weather display: the last
// query, the last report or error, and the unit preference. Fetches run on
// background goroutines; results are applied on the caller's loop through
// Poll so that the animation controller is only ever touched from one
// goroutine.
package dashboard

import (
	"context"
	"log"
	"time"

	"github.com/iburimskiy/weather-visualization/internal/animation"
	"github.com/iburimskiy/weather-visualization/internal/prefs"
	"github.com/iburimskiy/weather-visualization/internal/weather"
)

// Locator resolves the user's position.
type Locator interface {
	Locate(ctx context.Context) (weather.Query, error)
}

type result struct {
	seq    uint64
	query  weather.Query
	report *weather.Report
	err    error
}

// Dashboard is not safe for concurrent use apart from its internal fetch
// goroutines.
type Dashboard struct {
	provider weather.Provider
	prefs    *prefs.Manager
	timeout  time.Duration

	query   weather.Query
	report  *weather.Report
	err     error
	loading bool

	seq     uint64
	results chan result
}

// New creates a dashboard that will look up initial on the first Refresh.
func New(p weather.Provider, pm *prefs.Manager, initial weather.Query, timeout time.Duration) *Dashboard {
	return &Dashboard{
		provider: p,
		prefs:    pm,
		timeout:  timeout,
		query:    initial,
		results:  make(chan result, 4),
	}
}

// Search looks up a new location.
func (d *Dashboard) Search(q weather.Query) {
	d.query = q
	d.fetch(func(ctx context.Context) (weather.Query, error) { return q, nil })
}

// Locate looks up the user's own position.
func (d *Dashboard) Locate(l Locator) {
	d.fetch(l.Locate)
}

// Refresh re-fetches the last query.
func (d *Dashboard) Refresh() {
	d.Search(d.query)
}

// ToggleUnits switches metric/imperial, persists the choice and re-fetches
// the last query when something is already displayed.
func (d *Dashboard) ToggleUnits() {
	d.prefs.SetUnits(string(d.Units().Toggle()))
	if d.report != nil {
		d.Refresh()
	}
}

// Units returns the preferred unit system.
func (d *Dashboard) Units() weather.Units {
	u, err := weather.ParseUnits(d.prefs.Settings().Units)
	if err != nil {
		return weather.Metric
	}
	return u
}

func (d *Dashboard) fetch(resolve func(context.Context) (weather.Query, error)) {
	d.seq++
	seq := d.seq
	units := d.Units()
	d.loading = true

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		q, err := resolve(ctx)
		if err != nil {
			d.results <- result{seq: seq, err: err}
			return
		}
		rep, err := d.provider.Report(ctx, q, units)
		d.results <- result{seq: seq, query: q, report: rep, err: err}
	}()
}

// Poll applies any finished fetch without blocking. It returns true when a
// new report was installed; results of superseded fetches are dropped.
func (d *Dashboard) Poll() bool {
	updated := false
	for {
		select {
		case r := <-d.results:
			if r.seq != d.seq {
				continue
			}
			d.loading = false
			if r.err != nil {
				d.err = r.err
				log.Printf("[Dashboard] %v", r.err)
				continue
			}
			d.query = r.query
			d.report = r.report
			d.err = nil
			updated = true
		default:
			return updated
		}
	}
}

// Report returns the report on display, nil before the first success.
func (d *Dashboard) Report() *weather.Report { return d.report }

// Err returns the error of the latest fetch, nil when it succeeded.
func (d *Dashboard) Err() error { return d.err }

// Loading reports whether a fetch is in flight.
func (d *Dashboard) Loading() bool { return d.loading }

// Query returns the last requested location.
func (d *Dashboard) Query() weather.Query { return d.query }

// Condition returns the animation tag for the report on display.
func (d *Dashboard) Condition() animation.Condition {
	if d.report == nil {
		return animation.ConditionNone
	}
	return animation.ConditionFromWeather(d.report.Current.Primary().Main)
}
