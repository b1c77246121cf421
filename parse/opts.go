package parse

type parseOpts struct {
	meta string
}

type Option func(*parseOpts)

// WithMeta stamps the parsed tree, recursively, with the given provenance
// tag (typically the source file or fragment name).
func WithMeta(meta string) Option {
	return func(po *parseOpts) { po.meta = meta }
}
