package searcher

import "boardai/game/nogo"

const noParent = -1

// node is one entry of the search arena. Children and parent are arena indices.
type node struct {
	parent   int
	children []int
	board    nogo.Board
	self     nogo.Piece // Side whose placement produced this node
	move     nogo.Move  // Placement that produced this node
	wins     int        // Rollouts won by the searching side through this node
	visits   int
	leaf     bool // Not yet expanded (terminal nodes stay leaves)
	terminal bool // No legal placement for the side to move
}

// toMove is the side whose turn follows this node.
func (n *node) toMove() nogo.Piece {
	return n.self.Opponent()
}

// tree owns every node of one search; it is dropped as a whole when the
// search returns.
type tree struct {
	nodes []node
}

// newTree roots a tree at state, where lastMover made the previous placement.
func newTree(state nogo.Board, lastMover nogo.Piece) *tree {
	t := &tree{nodes: make([]node, 0, 1024)}
	t.nodes = append(t.nodes, node{
		parent: noParent,
		board:  state,
		self:   lastMover,
		leaf:   true,
	})
	return t
}

const root = 0

func (t *tree) add(parent int, board nogo.Board, move nogo.Move) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{
		parent: parent,
		board:  board,
		self:   move.Who,
		move:   move,
		leaf:   true,
	})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

func (t *tree) size() int {
	return len(t.nodes)
}

// bestChild returns the most visited child of id, the first one on ties.
func (t *tree) bestChild(id int) (int, bool) {
	best, bestVisits := noParent, -1
	for _, c := range t.nodes[id].children {
		if v := t.nodes[c].visits; v > bestVisits {
			best, bestVisits = c, v
		}
	}
	return best, best != noParent
}
