// SPDX-License-Identifier: Unlicense OR MIT

package epaint

// A Point is a two dimensional point in logical UI coordinates.
// The coordinate space has the origin in the top left corner with
// the axes extending right and down.
type Point struct {
	X, Y float32
}

// A Rect contains the points (X, Y) where Min.X <= X < Max.X,
// Min.Y <= Y < Max.Y.
type Rect struct {
	Min, Max Point
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add return the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// RectFromSize returns the rectangle from the origin to (w, h).
func RectFromSize(w, h float32) Rect {
	return Rect{Max: Point{X: w, Y: h}}
}

// Size returns r's width and height.
func (r Rect) Size() Point {
	return Point{X: r.Dx(), Y: r.Dy()}
}

// Dx returns r's width.
func (r Rect) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns r's height.
func (r Rect) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Mul returns r with both corners scaled by s.
func (r Rect) Mul(s float32) Rect {
	return Rect{Min: r.Min.Mul(s), Max: r.Max.Mul(s)}
}

// Union returns the smallest rectangle containing both r and r2.
func (r Rect) Union(r2 Rect) Rect {
	if r.Min.X > r2.Min.X {
		r.Min.X = r2.Min.X
	}
	if r.Min.Y > r2.Min.Y {
		r.Min.Y = r2.Min.Y
	}
	if r.Max.X < r2.Max.X {
		r.Max.X = r2.Max.X
	}
	if r.Max.Y < r2.Max.Y {
		r.Max.Y = r2.Max.Y
	}
	return r
}
