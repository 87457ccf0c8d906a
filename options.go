package radial

// FillerOption configures a Filler during creation.
//
// Example:
//
//	// Linear blending, diagnostics logged at warn level
//	f := radial.NewFiller()
//
//	// Gamma-corrected blending with a custom diagnostic sink
//	f := radial.NewFiller(
//	    radial.WithGamma(radial.NewGammaTables(2.2)),
//	    radial.WithPublisher(radial.PublisherFunc(report)),
//	)
type FillerOption func(*fillerOptions)

// fillerOptions holds optional configuration for Filler creation.
type fillerOptions struct {
	gamma      *GammaTables
	alpha      *AlphaCache
	publisher  Publisher
	workers    int
	tableCache int
}

// defaultOptions returns the default filler options.
func defaultOptions() fillerOptions {
	return fillerOptions{
		gamma:      nil, // Linear blending
		alpha:      nil, // Will be set to DefaultAlphaCache if nil
		publisher:  logPublisher{},
		workers:    0, // Will be set to GOMAXPROCS by the pool
		tableCache: 0, // cache.DefaultCapacity
	}
}

// WithGamma enables gamma-corrected blending of partially covered pixels.
// Pass nil to use linear blending.
func WithGamma(t *GammaTables) FillerOption {
	return func(o *fillerOptions) {
		o.gamma = t
	}
}

// WithAlphaCache sets the source-over alpha table used by blending.
func WithAlphaCache(c *AlphaCache) FillerOption {
	return func(o *fillerOptions) {
		o.alpha = c
	}
}

// WithPublisher sets where paint mismatch diagnostics are sent.
// Pass nil to drop them.
func WithPublisher(p Publisher) FillerOption {
	return func(o *fillerOptions) {
		o.publisher = p
	}
}

// WithWorkers sets the number of goroutines FillParallel uses.
// Zero or negative selects GOMAXPROCS.
func WithWorkers(n int) FillerOption {
	return func(o *fillerOptions) {
		o.workers = n
	}
}

// WithTableCache sets how many resolved color tables the Filler keeps.
// Zero selects the default capacity; a negative value disables caching.
func WithTableCache(n int) FillerOption {
	return func(o *fillerOptions) {
		o.tableCache = n
	}
}
