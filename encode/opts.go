package encode

type EncodeOption func(*EncState)

// Depth sets the entry indent level of the outermost value. The
// default is 1: top-level object entries are indented one unit and
// the closing brace sits in column 0.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// MaxDepth bounds input nesting; exceeding it fails the encode with
// ErrMaxDepth instead of exhausting the stack. The default is 512.
func MaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

// AlignKeys pads keys to the widest key in each object so the "="
// separators line up. Cosmetic; off by default for stable diffs.
func AlignKeys(v bool) EncodeOption {
	return func(es *EncState) { es.align = v }
}

// NestArrays renders a sequence element that is itself a sequence as
// a nested "@( ... )" block. Off by default: the legacy behavior
// splices sub-sequence elements into the enclosing element list.
func NestArrays(v bool) EncodeOption {
	return func(es *EncState) { es.nest = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
