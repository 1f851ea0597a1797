package game

// State is the read-only view of a board that agents decide on.
type State interface {
	// At returns the small integer stored in cell i.
	At(i int) int
	// Len is the number of cells.
	Len() int
}
