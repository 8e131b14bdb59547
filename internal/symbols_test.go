package internal

import "testing"

func TestLookupSymbolKnown(t *testing.T) {
	meta, ok := LookupSymbol("AAPL")
	if !ok {
		t.Fatal("AAPL reported as unknown")
	}
	if meta.Name != "Apple" || meta.Label != "AAPL" {
		t.Errorf("AAPL meta = %+v", meta)
	}
}

func TestLookupSymbolIndexRelabel(t *testing.T) {
	meta, ok := LookupSymbol(IndexSymbol)
	if !ok {
		t.Fatal("index symbol reported as unknown")
	}
	if meta.Label != "S&P 500" {
		t.Errorf("index label = %q, want S&P 500", meta.Label)
	}
}

func TestLookupSymbolUnknownFallback(t *testing.T) {
	meta, ok := LookupSymbol("ZZZZ")
	if ok {
		t.Error("unknown ticker reported as tracked")
	}
	if meta.Ticker != "ZZZZ" || meta.Name != "ZZZZ" || meta.Label != "ZZZZ" {
		t.Errorf("placeholder meta = %+v, want ticker-derived fields", meta)
	}
	if meta.Glyph == "" {
		t.Error("placeholder glyph is empty")
	}
}

func TestTrackedSymbolCount(t *testing.T) {
	if len(TrackedSymbols) != 6 {
		t.Errorf("tracked symbol count = %d, want 6", len(TrackedSymbols))
	}
	seen := map[string]bool{}
	for _, s := range TrackedSymbols {
		if seen[s.Ticker] {
			t.Errorf("duplicate ticker %q", s.Ticker)
		}
		seen[s.Ticker] = true
	}
	if !seen[IndexSymbol] {
		t.Errorf("tracked set is missing the index symbol %q", IndexSymbol)
	}
}
