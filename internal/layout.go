package internal

import "image"

// cardSlot ties a ticker to the screen rectangle it occupies, for both
// drawing and click hit-testing.
type cardSlot struct {
	Ticker string
	Rect   image.Rectangle
}

// viewLayout is the loaded view's geometry for one frame, computed
// from the window size alone so Update and Draw agree on hit targets.
type viewLayout struct {
	Title         image.Point
	Cards         []cardSlot
	HistoryHeader image.Point
	Legend        []cardSlot
	Chart         image.Rectangle
}

// columnsForWidth picks the overview grid's column count from the
// logical window width: 1 narrow, 2 medium, 3 wide.
func columnsForWidth(logicalWidth int) int {
	switch {
	case logicalWidth < 640:
		return 1
	case logicalWidth < 960:
		return 2
	default:
		return 3
	}
}

// chartPointBudget caps how many history points get plotted for a
// given chart width.
func chartPointBudget(chartWidth int) int {
	budget := chartWidth / 2
	if budget < 100 {
		budget = 100
	}
	if budget > 1000 {
		budget = 1000
	}
	return budget
}

func computeLayout(width, height int, scale float64, tickers []string) viewLayout {
	margin := int(16 * scale)
	gap := int(12 * scale)
	titleH := int(26 * scale)
	cardH := int(96 * scale)
	headerH := int(22 * scale)
	badgeW := int(104 * scale)
	badgeH := int(26 * scale)
	badgeGap := int(8 * scale)

	var layout viewLayout
	layout.Title = image.Pt(margin, margin)

	cols := columnsForWidth(int(float64(width) / scale))
	gridTop := margin + titleH + gap
	gridW := width - 2*margin
	cardW := (gridW - (cols-1)*gap) / cols
	if cardW < 1 {
		cardW = 1
	}

	y := gridTop
	for i, ticker := range tickers {
		col := i % cols
		row := i / cols
		x := margin + col*(cardW+gap)
		y = gridTop + row*(cardH+gap)
		layout.Cards = append(layout.Cards, cardSlot{
			Ticker: ticker,
			Rect:   image.Rect(x, y, x+cardW, y+cardH),
		})
	}
	gridBottom := gridTop
	if len(tickers) > 0 {
		gridBottom = y + cardH
	}

	layout.HistoryHeader = image.Pt(margin, gridBottom+gap)

	// Legend badges wrap onto extra rows when the window is narrow.
	legendTop := gridBottom + gap + headerH + gap/2
	bx, by := margin, legendTop
	for _, meta := range TrackedSymbols {
		if bx+badgeW > width-margin && bx > margin {
			bx = margin
			by += badgeH + badgeGap
		}
		layout.Legend = append(layout.Legend, cardSlot{
			Ticker: meta.Ticker,
			Rect:   image.Rect(bx, by, bx+badgeW, by+badgeH),
		})
		bx += badgeW + badgeGap
	}
	legendBottom := by + badgeH

	chartTop := legendBottom + gap
	if chartTop < height-margin {
		layout.Chart = image.Rect(margin, chartTop, width-margin, height-margin)
	}

	return layout
}
