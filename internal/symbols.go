package internal

import "image/color"

// SymbolMeta is the compiled-in display metadata for a tracked ticker.
// The tracked set is fixed; changing it means editing this table.
type SymbolMeta struct {
	Ticker string
	Name   string
	Color  color.RGBA
	Glyph  string
	// Label is what the card's ticker line shows. Usually the ticker
	// itself; the index symbol carries its conventional short name.
	Label string
}

var TrackedSymbols = []SymbolMeta{
	{Ticker: "AAPL", Name: "Apple", Color: color.RGBA{160, 160, 170, 255}, Glyph: "⌘", Label: "AAPL"},
	{Ticker: "GOOGL", Name: "Alphabet", Color: color.RGBA{66, 133, 244, 255}, Glyph: "G", Label: "GOOGL"},
	{Ticker: "MSFT", Name: "Microsoft", Color: color.RGBA{0, 164, 239, 255}, Glyph: "⊞", Label: "MSFT"},
	{Ticker: "AMZN", Name: "Amazon", Color: color.RGBA{255, 153, 0, 255}, Glyph: "a", Label: "AMZN"},
	{Ticker: "META", Name: "Meta", Color: color.RGBA{0, 129, 251, 255}, Glyph: "∞", Label: "META"},
	{Ticker: "^GSPC", Name: "S&P 500 Index", Color: color.RGBA{98, 212, 151, 255}, Glyph: "↑", Label: "S&P 500"},
}

// IndexSymbol drives the chart until the user picks something else.
const IndexSymbol = "^GSPC"

var symbolIndex = func() map[string]SymbolMeta {
	m := make(map[string]SymbolMeta, len(TrackedSymbols))
	for _, s := range TrackedSymbols {
		m[s.Ticker] = s
	}
	return m
}()

// LookupSymbol returns the metadata for ticker. The second return is
// false when the ticker is not in the tracked set, in which case the
// caller gets generic placeholder metadata instead of a zero value.
func LookupSymbol(ticker string) (SymbolMeta, bool) {
	if meta, ok := symbolIndex[ticker]; ok {
		return meta, true
	}
	return SymbolMeta{
		Ticker: ticker,
		Name:   ticker,
		Color:  color.RGBA{120, 120, 120, 255},
		Glyph:  "?",
		Label:  ticker,
	}, false
}
