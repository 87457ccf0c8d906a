// Package radial fills anti-aliased shapes with radial and elliptical
// gradients.
//
// # Overview
//
// radial is the scanline core of a CPU vector renderer. An upstream
// rasterizer (see the raster sub-package) turns a polygon into per-row lists
// of signed coverage cells. A Filler walks those cells, evaluates the
// gradient's color ramp at every touched pixel, and blends the result into a
// packed ARGB Buffer.
//
// # Quick Start
//
//	g := radial.NewRadialGradient(50, 50, 50).
//	    AddColorStop(0, radial.Red).
//	    AddColorStop(1, radial.Blue)
//
//	r := raster.NewRasterizer(100, 100)
//	r.AddEllipse(50, 50, 50, 50)
//
//	buf := radial.NewBuffer(100, 100)
//	f := radial.NewFiller()
//	err := f.Fill(radial.Material{Paint: g, ScaledOpacity: 255},
//	    radial.FillRuleNonZero, r.Cells(), 0, 99, buf)
//
// # Geometry
//
// Four evaluator families exist: circular or elliptical, each with the focus
// at the center or offset from it. The family is chosen from the gradient
// geometry on every Fill call.
//
// # Blending
//
// Coverage at or above 254 (after scaling by the ramp color's alpha)
// overwrites the destination. Lower coverage interpolates each channel
// towards the ramp color, optionally followed by per-channel gamma lookup
// (WithGamma). Output alpha comes from a source-over AlphaCache.
//
// # Concurrency
//
// Fill is synchronous and does not lock the buffer. FillParallel splits the
// row range into bands and fills them on a worker pool; bands never share
// buffer rows.
package radial
