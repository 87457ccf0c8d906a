package radial

import (
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	f := NewFiller()
	if f.opts.gamma != nil {
		t.Error("default filler should blend linearly")
	}
	if f.alpha != DefaultAlphaCache() {
		t.Error("default filler should share DefaultAlphaCache")
	}
	if _, ok := f.opts.publisher.(logPublisher); !ok {
		t.Errorf("default publisher = %T, want logPublisher", f.opts.publisher)
	}
}

func TestFillerOptions(t *testing.T) {
	gamma := NewGammaTables(2.2)
	alpha := NewAlphaCache()
	pub := PublisherFunc(func(error) {})

	f := NewFiller(WithGamma(gamma), WithAlphaCache(alpha), WithPublisher(pub), WithWorkers(3))
	if f.opts.gamma != gamma {
		t.Error("WithGamma not applied")
	}
	if f.alpha != alpha {
		t.Error("WithAlphaCache not applied")
	}
	if f.opts.publisher == nil {
		t.Error("WithPublisher not applied")
	}
	if f.tables == nil || f.tables.Capacity() != 64 {
		t.Error("default table cache missing")
	}
	if f.pool.workers != 3 {
		t.Errorf("workers = %d, want 3", f.pool.workers)
	}
}

func TestGammaTables(t *testing.T) {
	id := IdentityGammaTables()
	for i := range 256 {
		if id.R[i] != byte(i) || id.G[i] != byte(i) || id.B[i] != byte(i) {
			t.Fatalf("identity table differs at %d", i)
		}
	}

	g := NewGammaTablesRGB(1, 2.2, 0.5)
	if g.R[128] != 128 {
		t.Errorf("R[128] = %d, want 128", g.R[128])
	}
	if g.G[128] != 186 {
		t.Errorf("G[128] = %d, want 186", g.G[128])
	}
	if g.B[128] != 64 {
		t.Errorf("B[128] = %d, want 64", g.B[128])
	}

	s := SRGBGammaTables()
	if s.R[0] != 0 || s.R[255] != 255 || s.G[128] <= 128 {
		t.Errorf("unexpected sRGB table: R[0]=%d R[255]=%d G[128]=%d", s.R[0], s.R[255], s.G[128])
	}
}

func TestAlphaCache(t *testing.T) {
	c := DefaultAlphaCache()
	if c[0<<8+255] != 255 || c[255<<8+0] != 255 || c[0] != 0 {
		t.Error("unexpected alpha cache corners")
	}
	if got := c[128<<8+128]; got != 191 {
		t.Errorf("alpha(128, 128) = %d, want 191", got)
	}
}

func TestWithTableCache(t *testing.T) {
	if f := NewFiller(WithTableCache(5)); f.tables.Capacity() != 5 {
		t.Errorf("capacity = %d, want 5", f.tables.Capacity())
	}
	if f := NewFiller(WithTableCache(-1)); f.tables != nil {
		t.Error("negative capacity should disable the table cache")
	}
}
