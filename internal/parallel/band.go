package parallel

// Band is an inclusive range of rows.
type Band struct {
	Start, End int
}

// Bands splits the inclusive row range [start, end] into at most n
// contiguous, disjoint bands of near-equal height, in ascending order.
// An empty range yields no bands.
func Bands(start, end, n int) []Band {
	if end < start {
		return nil
	}
	rows := end - start + 1
	n = max(min(n, rows), 1)

	bands := make([]Band, 0, n)
	size, extra := rows/n, rows%n
	for i := range n {
		h := size
		if i < extra {
			h++
		}
		bands = append(bands, Band{Start: start, End: start + h - 1})
		start += h
	}
	return bands
}
