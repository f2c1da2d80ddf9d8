package searcher

import (
	"time"

	"quixo/game"
	"quixo/meta"

	"github.com/rs/zerolog/log"
)

type Option func(b *Builder)

// Builder expands game trees breadth-first until its time budget runs out.
type Builder struct {
	duration      time.Duration
	now           func() time.Time
	completeLevel bool
	metrics       MetricsCollector
	last          SearchMetrics
}

func WithDuration(duration time.Duration) Option {
	return func(b *Builder) {
		if duration > 0 {
			b.duration = duration
		}
	}
}

// WithClock replaces time.Now as the source of elapsed time.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithLevelCompletion lets the builder finish the current depth past the
// deadline when at least half of it was already expanded.
func WithLevelCompletion() Option {
	return func(b *Builder) {
		b.completeLevel = true
	}
}

func WithMetrics() Option {
	return func(b *Builder) {
		b.metrics = NewMetricsCollector()
	}
}

func NewBuilder(options ...Option) *Builder {
	b := &Builder{ // Default values
		duration: meta.SEARCH_DURATION,
		now:      time.Now,
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// Build expands the tree rooted at board with player to act. Nodes are
// dequeued in FIFO order and the deadline is checked once per dequeued node;
// whatever is still queued when it expires stays Unexpanded.
func (b *Builder) Build(player game.Player, board *game.Board) *Tree {
	start := b.now()
	b.metrics.Start()

	tree := newTree(board.Clone(), player)
	queue := []NodeID{Root}
	depth, explored := 0, 0

	for len(queue) > 0 {
		if b.now().Sub(start) > b.duration && !b.finishLevel(tree, queue, depth, explored) {
			b.metrics.DeadlineHit()
			break
		}

		id := queue[0]
		queue = queue[1:]

		n := &tree.nodes[id]
		if n.depth != depth {
			depth, explored = n.depth, 0
		}
		explored++

		if winner := n.board.Winner(); winner != game.NoPlayer {
			n.state = Terminal
			n.winner = winner
			b.metrics.AddTerminal()
			continue
		}

		n.state = Expanded
		successors := Successors(n.player, n.board)
		for _, s := range successors {
			queue = append(queue, tree.addChild(id, s.Action, s.Board))
		}
		b.metrics.AddExpanded()
	}

	b.last = b.metrics.Complete(tree)
	log.Debug().
		Int("nodes", tree.Len()).
		Int("depth", tree.MaxDepth()).
		Int("queued", len(queue)).
		Msg("tree-built")
	return tree
}

// finishLevel reports whether the expansion of the current depth should go on
// past the deadline.
func (b *Builder) finishLevel(tree *Tree, queue []NodeID, depth, explored int) bool {
	if !b.completeLevel {
		return false
	}
	remaining := 0
	for _, id := range queue {
		if tree.nodes[id].depth != depth {
			break
		}
		remaining++
	}
	return remaining > 0 && remaining <= explored
}

// Metrics returns the metrics of the last Build when collected with WithMetrics.
func (b *Builder) Metrics() SearchMetrics {
	return b.last
}
