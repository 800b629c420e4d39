package engine

// kickTable maps a pre-rotation state to the anchor offsets tried, in order,
// when rotating out of that state. The same row is used for both directions.
type kickTable [4][]Offset

var (
	jlstzKicks = kickTable{
		0: {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		1: {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
		2: {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
		3: {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	}

	iKicks = kickTable{
		0: {{-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		1: {{-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		2: {{2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		3: {{1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	}

	oKicks = kickTable{
		0: {{0, 0}},
		1: {{0, 0}},
		2: {{0, 0}},
		3: {{0, 0}},
	}
)

func kicksFor(k Kind) *kickTable {
	switch k {
	case I:
		return &iKicks
	case O:
		return &oKicks
	default:
		return &jlstzKicks
	}
}
