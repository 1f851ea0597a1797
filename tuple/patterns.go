package tuple

// Board cells are numbered row-major:
//
//	 0  1  2  3
//	 4  5  6  7
//	 8  9 10 11
//	12 13 14 15
//
// DefaultPatterns holds 64 six-cell tuples, eight consecutive patterns per table.
var DefaultPatterns = []Pattern{
	{0, 1, 2, 4, 5, 6},
	{2, 3, 6, 7, 10, 11},
	{9, 10, 11, 13, 14, 15},
	{4, 5, 8, 9, 12, 13},
	{8, 9, 10, 12, 13, 14},
	{0, 1, 4, 5, 8, 9},
	{1, 2, 3, 5, 6, 7},
	{6, 7, 10, 11, 14, 15},

	{1, 2, 5, 6, 9, 13},
	{4, 5, 6, 7, 10, 11},
	{2, 6, 10, 14, 13, 9},
	{4, 5, 8, 9, 10, 11},
	{1, 2, 5, 6, 10, 14},
	{6, 7, 8, 9, 10, 11},
	{1, 5, 9, 10, 13, 14},
	{4, 5, 6, 7, 8, 9},

	{0, 1, 2, 3, 4, 5},
	{2, 6, 3, 7, 11, 15},
	{12, 13, 14, 15, 10, 11},
	{0, 4, 8, 12, 9, 13},
	{8, 9, 12, 13, 14, 15},
	{0, 1, 4, 5, 8, 12},
	{0, 1, 2, 3, 6, 7},
	{3, 7, 10, 11, 14, 15},

	{0, 1, 6, 7, 8, 11},
	{3, 7, 6, 9, 10, 14},
	{5, 8, 9, 10, 15, 0}, // Trailing 0 is part of the trained layout
	{1, 5, 6, 8, 9, 12},
	{6, 9, 10, 11, 12, 13},
	{0, 4, 5, 9, 10, 13},
	{2, 3, 4, 5, 6, 9},
	{2, 5, 6, 10, 11, 15},

	{0, 1, 2, 5, 9, 10},
	{3, 5, 6, 7, 9, 11},
	{5, 6, 10, 13, 14, 15},
	{4, 6, 8, 9, 10, 12},
	{5, 6, 9, 12, 13, 14},
	{0, 4, 5, 6, 8, 10},
	{1, 2, 3, 6, 9, 10},
	{5, 7, 9, 10, 11, 15},

	{0, 1, 5, 9, 13, 14},
	{3, 4, 5, 6, 7, 8},
	{1, 2, 6, 10, 14, 15},
	{7, 8, 9, 10, 11, 12},
	{1, 2, 5, 9, 12, 13},
	{0, 4, 5, 6, 7, 11},
	{2, 3, 6, 10, 13, 14},
	{4, 8, 9, 10, 11, 15},

	{0, 1, 5, 8, 9, 13},
	{1, 3, 4, 5, 6, 7},
	{2, 6, 7, 10, 14, 15},
	{8, 9, 10, 11, 12, 14},
	{1, 4, 5, 9, 12, 13},
	{0, 2, 4, 5, 6, 7},
	{2, 3, 6, 10, 11, 14},
	{8, 9, 10, 11, 13, 15},

	{0, 1, 2, 4, 6, 10},
	{2, 3, 7, 9, 10, 11},
	{5, 9, 11, 13, 14, 15},
	{4, 5, 6, 8, 12, 13},
	{2, 6, 8, 10, 12, 14},
	{0, 1, 4, 8, 9, 10},
	{1, 2, 3, 5, 7, 9},
	{5, 6, 7, 11, 14, 15},
}

// DefaultTables is the number of tables DefaultPatterns is grouped into.
const DefaultTables = 8

// DefaultSizes returns the table sizes matching DefaultPatterns.
func DefaultSizes() []int {
	sizes := make([]int, DefaultTables)
	for i := range sizes {
		sizes[i] = DefaultTableSize
	}
	return sizes
}
