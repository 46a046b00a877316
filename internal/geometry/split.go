package geometry

// SplitAndClose separates a shape into parallel x, y and z sequences for
// plotting. Shapes of more than two points are closed by repeating the first
// point; markers and segments are left open.
func SplitAndClose(s Shape) (xs, ys, zs []float64) {
	n := len(s)
	capacity := n
	if n > 2 {
		capacity++
	}
	xs = make([]float64, 0, capacity)
	ys = make([]float64, 0, capacity)
	zs = make([]float64, 0, capacity)

	for _, p := range s {
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
		zs = append(zs, p.Z)
	}
	if n > 2 {
		xs = append(xs, xs[0])
		ys = append(ys, ys[0])
		zs = append(zs, zs[0])
	}
	return xs, ys, zs
}
