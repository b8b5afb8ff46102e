package fill

// ColorsEqual reports whether two RGB triples are identical.
func ColorsEqual(r1, g1, b1, r2, g2, b2 uint8) bool {
	return r1 == r2 && g1 == g2 && b1 == b2
}

// WithinTolerance reports whether every channel of the two colors differs by
// strictly less than tolerance. A tolerance of 0 never matches.
func WithinTolerance(r1, g1, b1, r2, g2, b2, tolerance uint8) bool {
	return channelDiff(r1, r2) < tolerance &&
		channelDiff(g1, g2) < tolerance &&
		channelDiff(b1, b2) < tolerance
}

// channelDiff is |a-b| without unsigned underflow.
func channelDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// Equal reports whether c and o are the same color.
func (c Color) Equal(o Color) bool {
	return ColorsEqual(c.R, c.G, c.B, o.R, o.G, o.B)
}
