package internal

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/temidaradev/esset/v2"
)

type viewState int

const (
	stateLoading viewState = iota
	stateLoaded
)

var (
	backgroundColor = color.RGBA{30, 32, 38, 255}
	cardColor       = color.RGBA{44, 47, 56, 255}
	cardColorDim    = color.RGBA{36, 38, 44, 255}
	badgeColorIdle  = color.RGBA{52, 55, 64, 255}
	textPrimary     = color.RGBA{235, 235, 240, 255}
	textMuted       = color.RGBA{150, 152, 160, 255}
	textDim         = color.RGBA{105, 107, 115, 255}
	gainColor       = color.RGBA{52, 199, 123, 255}
	lossColor       = color.RGBA{235, 87, 87, 255}
)

// Dashboard is the whole view: a loading screen until the one fetch of
// the session settles, then an overview card grid plus the history
// chart for the selected symbol. It implements ebiten.Game.
type Dashboard struct {
	result <-chan FetchResult

	state    viewState
	snapshot Snapshot
	selected string

	fontFace    text.Face
	titleFace   text.Face
	priceFace   text.Face
	deviceScale float64

	width, height   int
	solidColorImage *ebiten.Image
}

func NewDashboard(result <-chan FetchResult, fontFace, titleFace, priceFace text.Face, deviceScale float64) *Dashboard {
	return &Dashboard{
		result:      result,
		state:       stateLoading,
		selected:    IndexSymbol,
		fontFace:    fontFace,
		titleFace:   titleFace,
		priceFace:   priceFace,
		deviceScale: deviceScale,
	}
}

func (d *Dashboard) initSolidColorImage() {
	if d.solidColorImage == nil {
		d.solidColorImage = ebiten.NewImage(1, 1)
		d.solidColorImage.Fill(color.White)
	}
}

// applyResult is the one-time snapshot write. Failure and success both
// land in the loaded state; a failed fetch just means an empty grid.
func (d *Dashboard) applyResult(res FetchResult) {
	if d.state == stateLoaded {
		return
	}
	if res.Err != nil {
		Logger.Errorw("market data fetch failed", "error", res.Err)
		d.snapshot = Snapshot{}
	} else {
		d.snapshot = res.Snapshot
		for _, ticker := range d.snapshot.UnknownTickers() {
			Logger.Warnw("snapshot ticker not in tracked set, rendering placeholder", "ticker", ticker)
		}
		Logger.Infow("market data loaded", "symbols", len(d.snapshot))
	}
	d.state = stateLoaded
}

// selectSymbol is the single mutation point for the selection.
func (d *Dashboard) selectSymbol(ticker string) {
	d.selected = ticker
	Logger.Debugw("symbol selected", "ticker", ticker)
}

func (d *Dashboard) handleClick(mx, my int) {
	pt := image.Pt(mx, my)
	layout := d.currentLayout()

	for _, slot := range layout.Cards {
		if !pt.In(slot.Rect) {
			continue
		}
		// Cards with a missing price are not clickable.
		if q, ok := d.snapshot[slot.Ticker]; ok && q.CurrentPrice != nil {
			d.selectSymbol(slot.Ticker)
		}
		return
	}

	for _, slot := range layout.Legend {
		if pt.In(slot.Rect) {
			d.selectSymbol(slot.Ticker)
			return
		}
	}
}

func (d *Dashboard) Update() error {
	select {
	case res := <-d.result:
		d.applyResult(res)
	default:
	}

	if d.state == stateLoaded && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		d.handleClick(mx, my)
	}

	return nil
}

func (d *Dashboard) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	d.width, d.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (d *Dashboard) Draw(screen *ebiten.Image) {
	d.initSolidColorImage()
	screen.Fill(backgroundColor)

	if d.state == stateLoading {
		d.drawCentered(screen, "Loading market data...", screen.Bounds(), textMuted)
		return
	}

	layout := d.currentLayout()

	esset.DrawText(screen, "Market Dashboard", 0, float64(layout.Title.X), float64(layout.Title.Y), d.titleFace, textPrimary)

	for _, slot := range layout.Cards {
		d.drawCard(screen, slot)
	}

	esset.DrawText(screen, "Price History (1Y)", 0, float64(layout.HistoryHeader.X), float64(layout.HistoryHeader.Y), d.titleFace, textPrimary)

	for _, slot := range layout.Legend {
		d.drawLegendBadge(screen, slot)
	}

	d.drawChart(screen, layout.Chart)
}

func (d *Dashboard) drawCard(screen *ebiten.Image, slot cardSlot) {
	quote := d.snapshot[slot.Ticker]
	meta, _ := LookupSymbol(slot.Ticker)
	missing := quote.CurrentPrice == nil

	bg := cardColor
	nameColor := textPrimary
	accent := meta.Color
	if missing {
		bg = cardColorDim
		nameColor = textDim
		accent = textDim
	}

	r := slot.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)

	pad := 10.0 * d.deviceScale
	x := float64(r.Min.X) + pad
	y := float64(r.Min.Y) + pad
	lineH := 16.0 * d.deviceScale

	name := quote.Name
	if name == "" {
		name = meta.Name
	}
	esset.DrawText(screen, name, 0, x, y, d.fontFace, nameColor)

	// Directional badge, only when both change fields are present.
	if !missing && quote.Change != nil && quote.ChangePercent != nil {
		pct := *quote.ChangePercent
		arrow, badgeColor := "▲", gainColor
		if pct < 0 {
			arrow, badgeColor = "▼", lossColor
		}
		badgeText := fmt.Sprintf("%s %.2f%%", arrow, math.Abs(pct))
		w, _ := text.Measure(badgeText, d.fontFace, -1)
		esset.DrawText(screen, badgeText, 0, float64(r.Max.X)-pad-w, y, d.fontFace, badgeColor)
	}

	esset.DrawText(screen, meta.Glyph+" "+meta.Label, 0, x, y+lineH, d.fontFace, accent)

	if missing {
		esset.DrawText(screen, "Error loading data", 0, x, y+2.4*lineH, d.fontFace, textDim)
		return
	}

	esset.DrawText(screen, FormatPrice(quote.CurrentPrice), 0, x, y+2.2*lineH, d.priceFace, textPrimary)
	esset.DrawText(screen, "Vol "+FormatMagnitude(quote.Volume), 0, x, y+3.8*lineH, d.fontFace, textMuted)
}

func (d *Dashboard) drawLegendBadge(screen *ebiten.Image, slot cardSlot) {
	meta, _ := LookupSymbol(slot.Ticker)
	selected := slot.Ticker == d.selected

	bg := badgeColorIdle
	fg := textMuted
	if selected {
		bg = meta.Color
		fg = color.RGBA{20, 22, 26, 255}
	}

	r := slot.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, false)

	w, h := text.Measure(meta.Label, d.fontFace, -1)
	tx := float64(r.Min.X) + (float64(r.Dx())-w)/2
	ty := float64(r.Min.Y) + (float64(r.Dy())-h)/2
	esset.DrawText(screen, meta.Label, 0, tx, ty, d.fontFace, fg)
}

func (d *Dashboard) drawChart(screen *ebiten.Image, rect image.Rectangle) {
	if rect.Empty() {
		return
	}

	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), cardColor, false)

	quote := d.snapshot[d.selected]
	meta, _ := LookupSymbol(d.selected)

	inset := int(12 * d.deviceScale)
	plot := rect.Inset(inset)
	if plot.Empty() {
		return
	}

	shown := DownsampleHistory(quote.History, chartPointBudget(rect.Dx()))
	series := ChartSeries(shown, plot)
	if len(series) == 0 {
		// Empty history plots nothing; the panel itself stays up.
		return
	}

	cr := float64(meta.Color.R) / 255
	cg := float64(meta.Color.G) / 255
	cb := float64(meta.Color.B) / 255

	if len(series) == 1 {
		vector.DrawFilledCircle(screen, series[0].X, series[0].Y, 3*float32(d.deviceScale), meta.Color, false)
	} else {
		// Filled area under the line, then the line itself on top.
		area := &vector.Path{}
		area.MoveTo(series[0].X, float32(plot.Max.Y))
		for _, p := range series {
			area.LineTo(p.X, p.Y)
		}
		area.LineTo(series[len(series)-1].X, float32(plot.Max.Y))
		area.Close()

		vs, is := area.AppendVerticesAndIndicesForFilling(nil, nil)
		fillOp := &ebiten.DrawTrianglesOptions{}
		fillOp.FillRule = ebiten.FillRuleNonZero
		const fillAlpha = 0.25
		fillOp.ColorM.Scale(cr*fillAlpha, cg*fillAlpha, cb*fillAlpha, fillAlpha)
		screen.DrawTriangles(vs, is, d.solidColorImage, fillOp)

		line := &vector.Path{}
		line.MoveTo(series[0].X, series[0].Y)
		for _, p := range series[1:] {
			line.LineTo(p.X, p.Y)
		}
		svs, sis := line.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
			Width: 2.0 * float32(d.deviceScale),
		})
		strokeOp := &ebiten.DrawTrianglesOptions{}
		strokeOp.ColorM.Scale(cr, cg, cb, 1)
		screen.DrawTriangles(svs, sis, d.solidColorImage, strokeOp)
	}

	d.drawTooltip(screen, plot, shown, series)
}

func (d *Dashboard) drawTooltip(screen *ebiten.Image, plot image.Rectangle, shown []HistoryPoint, series []ChartPoint) {
	mx, my := ebiten.CursorPosition()
	if !image.Pt(mx, my).In(plot) {
		return
	}

	idx := NearestPointIndex(series, float32(mx))
	if idx < 0 || idx >= len(shown) {
		return
	}
	hp := shown[idx]
	p := series[idx]

	vector.DrawFilledCircle(screen, p.X, p.Y, 4*float32(d.deviceScale), textPrimary, false)

	label := hp.Date + "  " + FormatPrice(&hp.Price)
	w, h := text.Measure(label, d.fontFace, -1)
	pad := 6.0 * d.deviceScale

	bx := float64(p.X) - (w+2*pad)/2
	by := float64(p.Y) - h - 3*pad
	if bx < float64(plot.Min.X) {
		bx = float64(plot.Min.X)
	}
	if bx+w+2*pad > float64(plot.Max.X) {
		bx = float64(plot.Max.X) - w - 2*pad
	}
	if by < float64(plot.Min.Y) {
		by = float64(p.Y) + 2*pad
	}

	vector.DrawFilledRect(screen, float32(bx), float32(by), float32(w+2*pad), float32(h+pad), color.RGBA{20, 22, 26, 230}, false)
	esset.DrawText(screen, label, 0, bx+pad, by+pad/2, d.fontFace, textPrimary)
}

func (d *Dashboard) drawCentered(screen *ebiten.Image, message string, rect image.Rectangle, clr color.Color) {
	w, h := text.Measure(message, d.fontFace, -1)
	x := float64(rect.Min.X) + (float64(rect.Dx())-w)/2
	y := float64(rect.Min.Y) + (float64(rect.Dy())-h)/2
	esset.DrawText(screen, message, 0, x, y, d.fontFace, clr)
}

func (d *Dashboard) currentLayout() viewLayout {
	return computeLayout(d.width, d.height, d.deviceScale, d.snapshot.Tickers())
}
