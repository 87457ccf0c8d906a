package radial_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/radial"
	"github.com/gogpu/radial/raster"
)

func scene(size int) (*radial.RowTable, radial.Material) {
	r := raster.NewRasterizer(size, size)
	c := float64(size) / 2
	r.AddEllipse(c, c, c*0.9, c*0.6)
	r.AddEllipse(c*0.8, c*1.1, c*0.4, c*0.5)

	g := radial.NewEllipticalGradient(c, c, c*0.8, c*0.5).
		SetFocus(c*1.2, c*0.9).
		SetStyle(radial.SpreadReflect).
		AddColorStop(0, radial.Hex("#ffcc00")).
		AddColorStop(0.6, radial.RGBA2(0.8, 0.1, 0.3, 0.7)).
		AddColorStop(1, radial.Hex("#2040ff"))
	return r.Cells(), radial.Material{Paint: g, ScaledOpacity: 230}
}

func TestFillParallelMatchesFill(t *testing.T) {
	const size = 200
	rows, m := scene(size)

	for _, rule := range []radial.FillRule{radial.FillRuleNonZero, radial.FillRuleEvenOdd} {
		serial := radial.NewBuffer(size, size)
		serial.Clear(radial.RGBA2(0.5, 0.5, 0.5, 0.5))
		parallel := radial.NewBuffer(size, size)
		parallel.Clear(radial.RGBA2(0.5, 0.5, 0.5, 0.5))

		f := radial.NewFiller(radial.WithWorkers(4), radial.WithGamma(radial.SRGBGammaTables()))
		require.NoError(t, f.Fill(m, rule, rows, 0, size-1, serial))
		require.NoError(t, f.FillParallel(context.Background(), m, rule, rows, 0, size-1, parallel))
		f.Close()

		assert.Equal(t, serial.Data, parallel.Data, "rule %v", rule)
	}
}

func TestFillParallelCancelled(t *testing.T) {
	rows, m := scene(64)
	buf := radial.NewBuffer(64, 64)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := radial.NewFiller()
	defer f.Close()
	err := f.FillParallel(ctx, m, radial.FillRuleNonZero, rows, 0, 63, buf)
	assert.ErrorIs(t, err, context.Canceled)
	for _, p := range buf.Data {
		require.Zero(t, p, "no band may run after cancellation")
	}
}

func TestFillParallelMismatch(t *testing.T) {
	published := 0
	f := radial.NewFiller(radial.WithPublisher(radial.PublisherFunc(func(error) { published++ })))
	defer f.Close()

	rows, _ := scene(16)
	err := f.FillParallel(context.Background(), radial.Material{Paint: radial.Solid{}}, radial.FillRuleNonZero, rows, 0, 15, radial.NewBuffer(16, 16))
	assert.True(t, errors.Is(err, radial.ErrPaintTypeMismatch))
	assert.Equal(t, 1, published)
}

func TestFillParallelEmptyRange(t *testing.T) {
	rows, m := scene(16)
	buf := radial.NewBuffer(16, 16)
	f := radial.NewFiller()
	defer f.Close()

	require.NoError(t, f.FillParallel(context.Background(), m, radial.FillRuleNonZero, rows, 10, 2, buf))
	for _, p := range buf.Data {
		require.Zero(t, p)
	}
}

func TestFillerCloseThenReuse(t *testing.T) {
	rows, m := scene(32)
	f := radial.NewFiller(radial.WithWorkers(2))
	f.Close()

	buf := radial.NewBuffer(32, 32)
	require.NoError(t, f.FillParallel(context.Background(), m, radial.FillRuleNonZero, rows, 0, 31, buf))
	f.Close()
	f.Close()

	assert.NotZero(t, buf.Pixel(16, 16))
}

func BenchmarkFillParallel(b *testing.B) {
	const size = 1024
	rows, m := scene(size)
	buf := radial.NewBuffer(size, size)
	f := radial.NewFiller()
	defer f.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.FillParallel(context.Background(), m, radial.FillRuleNonZero, rows, 0, size-1, buf)
	}
}
