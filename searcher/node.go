package searcher

import (
	"quixo/game"
)

// NodeID indexes a node in its Tree.
type NodeID int

const Root NodeID = 0

// NodeState tells why a node has or lacks children.
type NodeState int

const (
	// Unexpanded nodes were never dequeued before the deadline.
	Unexpanded NodeState = iota
	// Expanded nodes had their successors generated, possibly none.
	Expanded
	// Terminal nodes hold a won board and are never expanded.
	Terminal
)

func (s NodeState) String() string {
	switch s {
	case Unexpanded:
		return "unexpanded"
	case Expanded:
		return "expanded"
	case Terminal:
		return "terminal"
	}
	return "unknown"
}

type node struct {
	board    *game.Board
	state    NodeState
	winner   game.Player
	depth    int
	player   game.Player // acting player at this node
	actions  []game.Action
	children []NodeID
}

// Tree stores nodes contiguously; children are referenced by index in the
// order they were inserted.
type Tree struct {
	nodes []node
}

func newTree(board *game.Board, player game.Player) *Tree {
	t := &Tree{}
	t.add(board, 0, player)
	return t
}

func (t *Tree) add(board *game.Board, depth int, player game.Player) NodeID {
	t.nodes = append(t.nodes, node{
		board:  board,
		state:  Unexpanded,
		winner: game.NoPlayer,
		depth:  depth,
		player: player,
	})
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) addChild(parent NodeID, action game.Action, board *game.Board) NodeID {
	p := t.nodes[parent]
	child := t.add(board, p.depth+1, p.player.Opponent())
	// t.nodes may have grown; index again rather than keep a pointer
	t.nodes[parent].actions = append(t.nodes[parent].actions, action)
	t.nodes[parent].children = append(t.nodes[parent].children, child)
	return child
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) Board(id NodeID) *game.Board {
	return t.nodes[id].board
}

func (t *Tree) State(id NodeID) NodeState {
	return t.nodes[id].state
}

func (t *Tree) Winner(id NodeID) game.Player {
	return t.nodes[id].winner
}

func (t *Tree) Depth(id NodeID) int {
	return t.nodes[id].depth
}

// Player is the player acting at id.
func (t *Tree) Player(id NodeID) game.Player {
	return t.nodes[id].player
}

// Children returns the actions and child ids of id in insertion order.
func (t *Tree) Children(id NodeID) ([]game.Action, []NodeID) {
	n := t.nodes[id]
	return n.actions, n.children
}

func (t *Tree) IsLeaf(id NodeID) bool {
	return len(t.nodes[id].children) == 0
}

// Leaves returns every childless node in depth-first, insertion order.
func (t *Tree) Leaves() []NodeID {
	var leaves []NodeID
	var walk func(id NodeID)
	walk = func(id NodeID) {
		if t.IsLeaf(id) {
			leaves = append(leaves, id)
			return
		}
		for _, child := range t.nodes[id].children {
			walk(child)
		}
	}
	walk(Root)
	return leaves
}

// MaxDepth is the depth of the deepest node in the tree.
func (t *Tree) MaxDepth() int {
	depth := 0
	for _, n := range t.nodes {
		depth = max(depth, n.depth)
	}
	return depth
}
