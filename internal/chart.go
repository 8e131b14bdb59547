package internal

import "image"

// ChartPoint is a history entry scaled into screen space.
type ChartPoint struct {
	X, Y float32
}

// PriceBounds scans history for its price extremes. ok is false for an
// empty series.
func PriceBounds(history []HistoryPoint) (minPrice, maxPrice float64, ok bool) {
	if len(history) == 0 {
		return 0, 0, false
	}
	minPrice = history[0].Price
	maxPrice = history[0].Price
	for _, hp := range history {
		if hp.Price < minPrice {
			minPrice = hp.Price
		}
		if hp.Price > maxPrice {
			maxPrice = hp.Price
		}
	}
	return minPrice, maxPrice, true
}

// DownsampleHistory thins history to at most maxPoints entries with an
// even stride, always keeping the first and last observation. A year
// of daily data stays recognizable at any chart width.
func DownsampleHistory(history []HistoryPoint, maxPoints int) []HistoryPoint {
	if maxPoints < 2 || len(history) <= maxPoints {
		return history
	}
	out := make([]HistoryPoint, 0, maxPoints)
	step := float64(len(history)-1) / float64(maxPoints-1)
	for i := 0; i < maxPoints; i++ {
		out = append(out, history[int(float64(i)*step+0.5)])
	}
	out[len(out)-1] = history[len(history)-1]
	return out
}

// ChartSeries maps history into pixel coordinates within rect: dates
// spread evenly across the width in order, prices scaled so the series
// minimum sits at the bottom edge and the maximum at the top. An empty
// history yields an empty series. A flat series plots along the
// vertical middle instead of dividing by zero.
func ChartSeries(history []HistoryPoint, rect image.Rectangle) []ChartPoint {
	if len(history) == 0 || rect.Empty() {
		return nil
	}

	minPrice, maxPrice, _ := PriceBounds(history)
	priceRange := maxPrice - minPrice
	if priceRange == 0 {
		priceRange = 1.0
		minPrice -= 0.5
	}

	if len(history) == 1 {
		x := float32(rect.Min.X) + float32(rect.Dx())/2
		y := float32(rect.Max.Y) - float32((history[0].Price-minPrice)/priceRange)*float32(rect.Dy())
		return []ChartPoint{{X: x, Y: y}}
	}

	points := make([]ChartPoint, len(history))
	for i, hp := range history {
		x := float32(rect.Min.X) + float32(i)/float32(len(history)-1)*float32(rect.Dx())
		y := float32(rect.Max.Y) - float32((hp.Price-minPrice)/priceRange)*float32(rect.Dy())
		points[i] = ChartPoint{X: x, Y: y}
	}
	return points
}

// NearestPointIndex finds the series point closest to x, for hover
// tooltips. Returns -1 for an empty series.
func NearestPointIndex(points []ChartPoint, x float32) int {
	best := -1
	var bestDist float32
	for i, p := range points {
		d := p.X - x
		if d < 0 {
			d = -d
		}
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
