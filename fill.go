package radial

import (
	"github.com/gogpu/radial/internal/blend"
	"github.com/gogpu/radial/internal/cache"
	"github.com/gogpu/radial/internal/coverage"
	"github.com/gogpu/radial/internal/ramp"
)

// Filler paints coverage cells with radial gradients.
//
// A Filler holds configuration and a locked color table cache, so one
// Filler may run any number of Fill calls concurrently as long as they
// target disjoint buffer regions.
type Filler struct {
	opts   fillerOptions
	alpha  *AlphaCache
	tables *cache.Cache[tableKey, []uint32]

	pool lazyPool
}

// NewFiller creates a Filler.
func NewFiller(opts ...FillerOption) *Filler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	alpha := o.alpha
	if alpha == nil {
		alpha = DefaultAlphaCache()
	}
	f := &Filler{opts: o, alpha: alpha, pool: lazyPool{workers: o.workers}}
	if o.tableCache >= 0 {
		f.tables = cache.New[tableKey, []uint32](o.tableCache)
	}
	return f
}

// Fill paints rows [startRow, endRow] of rows into dst.
//
// The Material's paint must be a *RadialGradient. Any other paint is
// reported once to the configured Publisher, returned as a
// *PaintMismatchError, and leaves dst untouched. An empty row range is a
// no-op. Rows and columns outside dst are skipped.
func (f *Filler) Fill(m Material, rule FillRule, rows *RowTable, startRow, endRow int, dst *Buffer) error {
	job, err := f.prepare(m, rule)
	if err != nil {
		return err
	}
	job.fillRows(rows, startRow, endRow, dst)
	return nil
}

// fillJob is everything resolved once per Fill call.
type fillJob struct {
	geometry ramp.Geometry
	pad      bool
	colors   []uint32
	opaque   bool
	fold     func(int32) uint32

	alpha *AlphaCache
	gamma *GammaTables
}

func (f *Filler) prepare(m Material, rule FillRule) (*fillJob, error) {
	g, ok := m.Paint.(*RadialGradient)
	if !ok || g == nil {
		err := &PaintMismatchError{Expected: PaintRadialGradient, Actual: paintTypeOf(m.Paint)}
		if f.opts.publisher != nil {
			f.opts.publisher.Publish(err)
		}
		return nil, err
	}

	job := &fillJob{
		geometry: g.geometry(),
		pad:      g.Style == SpreadPad,
		colors:   f.colors(g, m.ScaledOpacity),
		opaque:   g.Opaque(m.ScaledOpacity),
		fold:     coverage.NonZero.Folder(),
		alpha:    f.alpha,
		gamma:    f.opts.gamma,
	}
	if rule == FillRuleEvenOdd {
		job.fold = coverage.EvenOdd.Folder()
	}

	Logger().Debug("radial: fill",
		"case", ramp.Classify(job.geometry),
		"spread", g.Style,
		"rule", rule,
		"opaque", job.opaque,
		"gamma", job.gamma != nil)
	return job, nil
}

// tableKey identifies a resolved color table. Pad and reflect share the
// mirrored layout but are keyed apart anyway.
type tableKey struct {
	stops   string
	spread  Spread
	opacity uint8
}

// colors returns the 512-entry table for g, reusing a cached copy when the
// same ramp was resolved before. Cached tables are shared and read-only.
func (f *Filler) colors(g *RadialGradient, opacity uint8) []uint32 {
	if f.tables == nil {
		return g.LinearColors(opacity)
	}
	key := tableKey{stops: g.Ramp.fingerprint(), spread: g.Style, opacity: opacity}
	return f.tables.GetOrCreate(key, func() []uint32 {
		return g.LinearColors(opacity)
	})
}

// TableCacheStats reports hits and misses of the color table cache. Both
// are zero when caching is disabled.
func (f *Filler) TableCacheStats() (hits, misses uint64) {
	if f.tables == nil {
		return 0, 0
	}
	s := f.tables.Stats()
	return s.Hits, s.Misses
}

// ResetTableCache drops every cached color table. Statistics are kept.
// Call it after a batch of gradients that will not be drawn again.
func (f *Filler) ResetTableCache() {
	if f.tables != nil {
		f.tables.Clear()
	}
}

func paintTypeOf(p Paint) PaintType {
	if p == nil {
		return PaintNone
	}
	if g, ok := p.(*RadialGradient); ok && g == nil {
		return PaintNone
	}
	return p.PaintType()
}

// fillRows walks rows [start, end], clipped to the table and dst.
func (j *fillJob) fillRows(rows *RowTable, start, end int, dst *Buffer) {
	start = max(start, 0)
	end = min(end, rows.Len()-1, dst.Height-1)
	if start > end {
		return
	}

	if j.gamma != nil {
		walkRows(j, blend.Gamma{Alpha: j.alpha, R: &j.gamma.R, G: &j.gamma.G, B: &j.gamma.B}, rows, start, end, dst)
		return
	}
	walkRows(j, blend.Linear{Alpha: j.alpha}, rows, start, end, dst)
}

// walkRows is instantiated once per blender so the per-pixel blend call is
// resolved statically.
func walkRows[B blend.Blender](j *fillJob, b B, rows *RowTable, start, end int, dst *Buffer) {
	s := scanline[B]{
		eval:    ramp.New(j.geometry, j.pad),
		blender: b,
		colors:  j.colors,
		opaque:  j.opaque,
	}
	cells := rows.Cells()
	for y := start; y <= end; y++ {
		row := rows.Row(y)
		if row.Empty() {
			continue
		}
		s.eval.Row(y)
		s.dst = dst.Row(y)
		coverage.Walk(cells, row.Head(), j.fold, &s)
	}
}

// scanline paints the spans of one row.
type scanline[B blend.Blender] struct {
	eval    ramp.Evaluator
	blender B
	colors  []uint32
	opaque  bool
	dst     []uint32
}

// Run implements coverage.Sink.
func (s *scanline[B]) Run(x0, x1 int, alpha uint32) {
	x0 = max(x0, 0)
	x1 = min(x1, len(s.dst))
	if x0 >= x1 {
		return
	}
	s.eval.Seek(x0)
	dst := s.dst[x0:x1]

	if !s.opaque {
		for i, d := range dst {
			dst[i] = blend.Over(s.blender, d, s.colors[s.eval.Next()], alpha)
		}
		return
	}
	if alpha >= blend.OpaqueThreshold {
		for i := range dst {
			dst[i] = s.colors[s.eval.Next()]
		}
		return
	}
	for i, d := range dst {
		dst[i] = blend.OverOpaque(s.blender, d, s.colors[s.eval.Next()], alpha)
	}
}

// Pixel implements coverage.Sink.
func (s *scanline[B]) Pixel(x int, alpha uint32) {
	if x < 0 || x >= len(s.dst) {
		return
	}
	s.eval.Seek(x)
	s.dst[x] = blend.Over(s.blender, s.dst[x], s.colors[s.eval.Next()], alpha)
}
