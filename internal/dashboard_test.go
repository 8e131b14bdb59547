package internal

import (
	"errors"
	"testing"
)

func testDashboard(snap Snapshot) *Dashboard {
	d := NewDashboard(nil, nil, nil, nil, 1.0)
	d.Layout(1280, 900)
	d.applyResult(FetchResult{Snapshot: snap})
	return d
}

func TestDashboardInitialState(t *testing.T) {
	d := NewDashboard(nil, nil, nil, nil, 1.0)
	if d.state != stateLoading {
		t.Errorf("initial state = %v, want loading", d.state)
	}
	if d.selected != IndexSymbol {
		t.Errorf("initial selection = %q, want %q", d.selected, IndexSymbol)
	}
}

func TestDashboardLoadViaUpdate(t *testing.T) {
	results := make(chan FetchResult, 1)
	d := NewDashboard(results, nil, nil, nil, 1.0)
	d.Layout(1280, 900)

	if err := d.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if d.state != stateLoading {
		t.Error("state left loading before the fetch settled")
	}

	results <- FetchResult{Snapshot: Snapshot{"AAPL": {Symbol: "AAPL", CurrentPrice: fptr(150.25)}}}
	if err := d.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if d.state != stateLoaded {
		t.Error("state did not transition to loaded after the fetch settled")
	}
	if len(d.snapshot) != 1 {
		t.Errorf("snapshot length = %d, want 1", len(d.snapshot))
	}
}

func TestDashboardFetchFailureLoadsEmpty(t *testing.T) {
	d := NewDashboard(nil, nil, nil, nil, 1.0)
	d.applyResult(FetchResult{Err: errors.New("connection refused")})

	if d.state != stateLoaded {
		t.Error("failure path did not transition to loaded")
	}
	if len(d.snapshot) != 0 {
		t.Errorf("snapshot length after failure = %d, want 0", len(d.snapshot))
	}
}

func TestDashboardLoadedIsTerminal(t *testing.T) {
	d := testDashboard(Snapshot{"AAPL": {Symbol: "AAPL", CurrentPrice: fptr(150.25)}})

	// A stray second result must not rewrite the snapshot or the state.
	d.applyResult(FetchResult{Err: errors.New("late failure")})
	if d.state != stateLoaded {
		t.Error("state left loaded")
	}
	if len(d.snapshot) != 1 {
		t.Errorf("snapshot rewritten after load: length = %d, want 1", len(d.snapshot))
	}
}

func TestCardClickSelects(t *testing.T) {
	d := testDashboard(Snapshot{
		"AAPL": {Symbol: "AAPL", CurrentPrice: fptr(150.25)},
		"META": {Symbol: "META", CurrentPrice: nil},
	})

	layout := d.currentLayout()
	if len(layout.Cards) != 2 {
		t.Fatalf("card count = %d, want 2", len(layout.Cards))
	}

	aapl := layout.Cards[0]
	if aapl.Ticker != "AAPL" {
		t.Fatalf("first card = %q, want AAPL", aapl.Ticker)
	}
	d.handleClick(aapl.Rect.Min.X+5, aapl.Rect.Min.Y+5)
	if d.selected != "AAPL" {
		t.Errorf("selection after AAPL card click = %q, want AAPL", d.selected)
	}
}

func TestDisabledCardClickKeepsSelection(t *testing.T) {
	d := testDashboard(Snapshot{
		"AAPL": {Symbol: "AAPL", CurrentPrice: fptr(150.25)},
		"META": {Symbol: "META", CurrentPrice: nil},
	})

	layout := d.currentLayout()
	meta := layout.Cards[1]
	if meta.Ticker != "META" {
		t.Fatalf("second card = %q, want META", meta.Ticker)
	}

	before := d.selected
	d.handleClick(meta.Rect.Min.X+5, meta.Rect.Min.Y+5)
	if d.selected != before {
		t.Errorf("selection changed to %q by a disabled card, want %q kept", d.selected, before)
	}
}

func TestLegendClickSelects(t *testing.T) {
	d := testDashboard(Snapshot{})

	layout := d.currentLayout()
	if len(layout.Legend) != len(TrackedSymbols) {
		t.Fatalf("legend count = %d, want %d", len(layout.Legend), len(TrackedSymbols))
	}

	for _, slot := range layout.Legend {
		d.handleClick(slot.Rect.Min.X+2, slot.Rect.Min.Y+2)
		if d.selected != slot.Ticker {
			t.Errorf("selection after legend click = %q, want %q", d.selected, slot.Ticker)
		}
	}
}

func TestSelectionFollowsLastClick(t *testing.T) {
	d := testDashboard(Snapshot{
		"AAPL":  {Symbol: "AAPL", CurrentPrice: fptr(150.25)},
		"MSFT":  {Symbol: "MSFT", CurrentPrice: fptr(410.10)},
		"^GSPC": {Symbol: "^GSPC", CurrentPrice: fptr(5000)},
	})

	layout := d.currentLayout()
	sequence := []int{0, 1, 2, 1, 0}
	for _, i := range sequence {
		slot := layout.Cards[i]
		d.handleClick(slot.Rect.Min.X+1, slot.Rect.Min.Y+1)
		if d.selected != slot.Ticker {
			t.Fatalf("selection = %q, want most recent click %q", d.selected, slot.Ticker)
		}
	}
}

func TestColumnsForWidth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{320, 1},
		{639, 1},
		{640, 2},
		{959, 2},
		{960, 3},
		{1920, 3},
	}
	for _, tt := range tests {
		if got := columnsForWidth(tt.width); got != tt.want {
			t.Errorf("columnsForWidth(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestChartPointBudget(t *testing.T) {
	if got := chartPointBudget(100); got != 100 {
		t.Errorf("narrow budget = %d, want floor of 100", got)
	}
	if got := chartPointBudget(800); got != 400 {
		t.Errorf("budget = %d, want 400", got)
	}
	if got := chartPointBudget(5000); got != 1000 {
		t.Errorf("wide budget = %d, want cap of 1000", got)
	}
}

func TestLayoutCardsDoNotOverlap(t *testing.T) {
	tickers := []string{"AAPL", "GOOGL", "MSFT", "AMZN", "META", "^GSPC"}
	for _, width := range []int{480, 800, 1280} {
		layout := computeLayout(width, 900, 1.0, tickers)
		for i := range layout.Cards {
			for j := i + 1; j < len(layout.Cards); j++ {
				if layout.Cards[i].Rect.Overlaps(layout.Cards[j].Rect) {
					t.Errorf("width %d: cards %d and %d overlap", width, i, j)
				}
			}
		}
		if !layout.Chart.Empty() && layout.Chart.Min.Y <= layout.Legend[len(layout.Legend)-1].Rect.Max.Y {
			t.Errorf("width %d: chart overlaps legend", width)
		}
	}
}
