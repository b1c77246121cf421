package encode

type Option func(*encState)

// Compact removes all whitespace from the output.
func Compact(v bool) Option {
	return func(es *encState) { es.compact = v }
}

// Indent sets the indentation width for pretty output.
func Indent(n int) Option {
	return func(es *encState) { es.indent = n }
}

// WithColors colorizes the output for terminal viewing. Colorized output
// is not valid JSON.
func WithColors(c *Colors) Option {
	return func(es *encState) { es.colors = c }
}
