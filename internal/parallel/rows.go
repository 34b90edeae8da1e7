package parallel

// Band is a half-open range of raster rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Bands splits height rows into at most n contiguous bands of near-equal
// size. It returns nil when there is nothing to split.
func Bands(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	n = min(max(n, 1), height)

	bands := make([]Band, 0, n)
	size, extra := height/n, height%n
	y := 0
	for i := range n {
		h := size
		if i < extra {
			h++
		}
		bands = append(bands, Band{Y0: y, Y1: y + h})
		y += h
	}
	return bands
}

// Rows calls fn once per band of rows, spreading bands over the pool.
// A nil pool runs fn inline over all rows.
func (p *WorkerPool) Rows(height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if p == nil {
		fn(0, height)
		return
	}

	// Several bands per worker lets stealing even out the load.
	bands := Bands(height, p.workers*4)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b.Y0, b.Y1) }
	}
	p.ExecuteAll(work)
}
