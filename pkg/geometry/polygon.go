package geometry

import "math"

// ArrowHead returns the triangle of a fixed-size arrowhead whose tip is at
// head and which points away from tail. span scales the half-width of the
// base relative to size. It reports false when tail and head coincide.
func ArrowHead(tail, head Point2D, size, span float64) ([]Point2D, bool) {
	dx := head.X - tail.X
	dy := head.Y - tail.Y
	length := math.Hypot(dx, dy)
	if length < 0.1 {
		return nil, false
	}
	dx /= length
	dy /= length

	return []Point2D{
		head,
		{X: head.X - size*dx + size*dy*span, Y: head.Y - size*dy - size*dx*span},
		{X: head.X - size*dx - size*dy*span, Y: head.Y - size*dy + size*dx*span},
	}, true
}

// BoundsOf returns the smallest rectangle containing all points.
func BoundsOf(points []Point2D) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}
