package encode

type EncodeOption func(*encState)

// Depth sets the initial indentation level, in tab stops.
func Depth(n int) EncodeOption {
	return func(es *encState) { es.depth = n }
}

// Trailer appends raw, unprocessed lines verbatim after the rendered
// document. A missing final newline is supplied.
func Trailer(raw string) EncodeOption {
	return func(es *encState) { es.trailer = raw }
}

// EncodeColors enables colored output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.colors = c }
}
