package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/iburimskiy/weather-visualization/internal/animation"
	"github.com/iburimskiy/weather-visualization/internal/prefs"
	"github.com/iburimskiy/weather-visualization/internal/weather"
)

type fakeProvider struct {
	mu    sync.Mutex
	calls []string
	main  map[string]string
	delay map[string]time.Duration
}

func (f *fakeProvider) Report(ctx context.Context, q weather.Query, units weather.Units) (*weather.Report, error) {
	f.mu.Lock()
	f.calls = append(f.calls, q.String()+"/"+string(units))
	main, ok := f.main[q.String()]
	delay := f.delay[q.String()]
	f.mu.Unlock()

	time.Sleep(delay)
	if !ok {
		return nil, weather.ErrNotFound
	}
	rep := &weather.Report{Units: units}
	rep.Current.Name = q.String()
	rep.Current.Weather = []weather.Condition{{Main: main}}
	return rep, nil
}

type fakeLocator struct{ q weather.Query }

func (l fakeLocator) Locate(context.Context) (weather.Query, error) { return l.q, nil }

func newTestDashboard(p weather.Provider) *Dashboard {
	pm, _ := prefs.NewManager(nil)
	return New(p, pm, weather.CityQuery("Mumbai"), time.Second)
}

// settle polls until no fetch is in flight.
func settle(t *testing.T, d *Dashboard) bool {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	updated := false
	for time.Now().Before(deadline) {
		if d.Poll() {
			updated = true
		}
		if !d.Loading() {
			return updated
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("fetch did not finish")
	return false
}

func TestRefreshInstallsReport(t *testing.T) {
	p := &fakeProvider{main: map[string]string{"Mumbai": "Drizzle"}}
	d := newTestDashboard(p)

	if d.Condition() != animation.ConditionNone {
		t.Errorf("Condition() before fetch: got %q, want none", d.Condition())
	}
	d.Refresh()
	if !d.Loading() {
		t.Error("Loading(): got false right after Refresh")
	}
	if !settle(t, d) {
		t.Fatal("Poll() never reported an update")
	}
	if d.Report() == nil || d.Report().Current.Name != "Mumbai" {
		t.Fatalf("Report(): got %+v", d.Report())
	}
	if d.Condition() != animation.ConditionRain {
		t.Errorf("Condition(): got %q, want rain", d.Condition())
	}
}

func TestSearchFailureKeepsLastQuery(t *testing.T) {
	p := &fakeProvider{main: map[string]string{"Mumbai": "Snow"}}
	d := newTestDashboard(p)
	d.Refresh()
	settle(t, d)

	d.Search(weather.CityQuery("Atlantis"))
	if settle(t, d) {
		t.Error("failed search reported an update")
	}
	if !errors.Is(d.Err(), weather.ErrNotFound) {
		t.Errorf("Err(): got %v, want ErrNotFound", d.Err())
	}
	if d.Report().Current.Name != "Mumbai" {
		t.Errorf("report replaced by failed search: %s", d.Report().Current.Name)
	}
}

func TestStaleResultsAreDropped(t *testing.T) {
	p := &fakeProvider{
		main:  map[string]string{"Slow": "Rain", "Fast": "Snow"},
		delay: map[string]time.Duration{"Slow": 100 * time.Millisecond},
	}
	d := newTestDashboard(p)

	d.Search(weather.CityQuery("Slow"))
	d.Search(weather.CityQuery("Fast"))
	settle(t, d)
	time.Sleep(150 * time.Millisecond)
	d.Poll()

	if got := d.Report().Current.Name; got != "Fast" {
		t.Errorf("report: got %s, want Fast", got)
	}
}

func TestToggleUnitsRefetches(t *testing.T) {
	p := &fakeProvider{main: map[string]string{"Mumbai": "Clear"}}
	d := newTestDashboard(p)

	// Nothing displayed yet: only the preference changes.
	d.ToggleUnits()
	if d.Loading() {
		t.Error("ToggleUnits() without a report started a fetch")
	}
	if d.Units() != weather.Imperial {
		t.Errorf("Units(): got %q, want imperial", d.Units())
	}

	d.Refresh()
	settle(t, d)
	d.ToggleUnits()
	settle(t, d)

	if d.Report().Units != weather.Metric {
		t.Errorf("report units: got %q, want metric", d.Report().Units)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	want := []string{"Mumbai/imperial", "Mumbai/metric"}
	if len(p.calls) != len(want) || p.calls[0] != want[0] || p.calls[1] != want[1] {
		t.Errorf("calls: got %v, want %v", p.calls, want)
	}
}

func TestLocateSwitchesToCoords(t *testing.T) {
	q := weather.CoordsQuery(18.52, 73.85)
	p := &fakeProvider{main: map[string]string{q.String(): "Thunderstorm"}}
	d := newTestDashboard(p)

	d.Locate(fakeLocator{q: q})
	settle(t, d)

	if !d.Query().ByCoords {
		t.Errorf("Query(): got %+v, want coordinates", d.Query())
	}
	if d.Condition() != animation.ConditionThunderstorm {
		t.Errorf("Condition(): got %q, want thunderstorm", d.Condition())
	}
}
