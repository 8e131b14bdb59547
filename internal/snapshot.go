package internal

import "sort"

// HistoryPoint is one daily observation in a symbol's price history.
type HistoryPoint struct {
	Date   string  `json:"date"`
	Price  float64 `json:"price"`
	Volume float64 `json:"volume"`
}

// Quote is the fetched record for one symbol. The numeric fields are
// pointers because the source reports null when its own upstream fetch
// failed; nil is a distinct "unavailable" state, not zero.
type Quote struct {
	Symbol        string         `json:"symbol"`
	Name          string         `json:"name"`
	CurrentPrice  *float64       `json:"current_price"`
	Change        *float64       `json:"change"`
	ChangePercent *float64       `json:"change_percent"`
	Volume        *float64       `json:"volume"`
	History       []HistoryPoint `json:"history"`
}

// Snapshot is the full market-data mapping for the session. Written
// once when the fetch settles, read-only afterward.
type Snapshot map[string]Quote

// Tickers returns the snapshot's tickers in display order: the tracked
// symbols first in their fixed order, then anything the backend sent
// that is not in the tracked set, sorted for stable rendering.
func (s Snapshot) Tickers() []string {
	out := make([]string, 0, len(s))
	for _, meta := range TrackedSymbols {
		if _, ok := s[meta.Ticker]; ok {
			out = append(out, meta.Ticker)
		}
	}
	var extra []string
	for ticker := range s {
		if _, known := symbolIndex[ticker]; !known {
			extra = append(extra, ticker)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// UnknownTickers returns the tickers present in the snapshot but absent
// from the tracked set. They render with placeholder metadata.
func (s Snapshot) UnknownTickers() []string {
	var extra []string
	for ticker := range s {
		if _, known := symbolIndex[ticker]; !known {
			extra = append(extra, ticker)
		}
	}
	sort.Strings(extra)
	return extra
}
